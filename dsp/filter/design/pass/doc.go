// Package pass designs low-pass Butterworth cascades for the channel filter.
//
// Designs are returned as [biquad.Coefficients] slices, one entry per
// second-order section, with a trailing first-order section for odd orders.
// All designs use the bilinear transform with frequency pre-warping so the
// digital response is exactly -3 dB at the requested cutoff.
package pass
