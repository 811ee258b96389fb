// Package zerophase applies a biquad cascade forward and backward so the
// result has no phase shift and the squared magnitude response of the
// cascade.
//
// Both ends of the signal are extended by odd reflection before filtering
// and each pass starts from the cascade's steady state for the first
// sample it sees. The number of padding samples depends on the filter
// order; signals that are not longer than the padding are rejected with
// [ErrTooShort].
package zerophase
