package testutil

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// EncodeFloat32 packs values as consecutive little-endian IEEE-754 float32.
func EncodeFloat32(values []float64) []byte {
	return EncodeFloat32Order(values, binary.LittleEndian)
}

// EncodeFloat32Order packs values as consecutive float32 in the given byte order.
func EncodeFloat32Order(values []float64, order binary.ByteOrder) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		order.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
	}
	return buf
}

// WriteSBB writes values as a little-endian float32 file named name inside
// a per-test temporary directory and returns its path.
func WriteSBB(t *testing.T, name string, values []float64) string {
	t.Helper()
	return WriteRaw(t, name, EncodeFloat32(values))
}

// WriteRaw writes raw bytes to a per-test temporary file and returns its path.
func WriteRaw(t *testing.T, name string, raw []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
