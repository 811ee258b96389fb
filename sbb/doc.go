// Package sbb reads SBB sensor-log files.
//
// An SBB file is a flat array of 32-bit IEEE-754 floats written sample by
// sample: the N channel values of sample 0, then the N values of sample 1,
// and so on. Loading decodes the floats, checks that the element count is a
// multiple of N, transposes the sample-major layout into one series per
// channel and adds a synthetic "sample" axis running 1..length.
//
// The transpose is behind the [Reshaper] interface so the numeric backend
// can be swapped: [Interleaved] uses plain loops, [Dense] uses gonum
// matrices.
package sbb
