// Package biquad provides the second-order IIR runtime used by the channel
// filter.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded by
// [Chain] for higher-order low-pass designs. A chain can be primed to its
// steady state for a constant input, which is how zero-phase filtering
// avoids start-up transients at the edges of a recording.
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
