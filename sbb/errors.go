package sbb

import "errors"

var (
	// ErrMisaligned is returned when the element count is not a multiple of
	// the channel count.
	ErrMisaligned = errors.New("sbb: element count is not a multiple of the channel count")
	// ErrOddBytes is returned when the byte length is not a multiple of 4.
	ErrOddBytes = errors.New("sbb: byte length is not a multiple of 4")
	// ErrEmpty is returned for a file without samples.
	ErrEmpty = errors.New("sbb: file contains no samples")
	// ErrChannelCount is returned for a non-positive channel count.
	ErrChannelCount = errors.New("sbb: channel count must be positive")
	// ErrNames is returned when channel names do not fit the channel count.
	ErrNames = errors.New("sbb: invalid channel names")
)
