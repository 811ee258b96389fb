package sbb

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decode interprets raw as consecutive float32 values in the given byte
// order and widens them to float64.
func Decode(raw []byte, order binary.ByteOrder) ([]float64, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddBytes, len(raw))
	}

	out := make([]float64, len(raw)/4)
	for i := range out {
		out[i] = float64(math.Float32frombits(order.Uint32(raw[4*i:])))
	}

	return out, nil
}
