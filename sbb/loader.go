package sbb

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Loader reads SBB files for a fixed channel layout.
type Loader struct {
	names    []string
	n        int
	order    binary.ByteOrder
	reshaper Reshaper
}

// Option configures a Loader.
type Option func(*Loader)

// WithByteOrder sets the float byte order. Default is little-endian.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(l *Loader) {
		if order != nil {
			l.order = order
		}
	}
}

// WithReshaper replaces the deinterleaving backend. Default is Interleaved.
func WithReshaper(r Reshaper) Option {
	return func(l *Loader) {
		if r != nil {
			l.reshaper = r
		}
	}
}

// NewLoader returns a Loader for files with n channels per sample, the first
// len(names) of which are named.
func NewLoader(names []string, n int, opts ...Option) (*Loader, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrChannelCount, n)
	}

	if len(names) > n {
		return nil, fmt.Errorf("%w: %d names for %d channels", ErrNames, len(names), n)
	}

	l := &Loader{
		names:    append([]string(nil), names...),
		n:        n,
		order:    binary.LittleEndian,
		reshaper: Interleaved{},
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Channels returns the channel count per sample.
func (l *Loader) Channels() int {
	return l.n
}

// Parse builds a Dataset from the raw file contents.
func (l *Loader) Parse(raw []byte) (*Dataset, error) {
	flat, err := Decode(raw, l.order)
	if err != nil {
		return nil, err
	}

	if len(flat) == 0 {
		return nil, ErrEmpty
	}

	rows, err := l.reshaper.Reshape(flat, l.n)
	if err != nil {
		return nil, err
	}

	return NewDataset(l.names, rows)
}

// Load reads r to the end and parses it.
func (l *Loader) Load(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sbb: read: %w", err)
	}

	return l.Parse(raw)
}

// ReadFile loads the file at path.
func (l *Loader) ReadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sbb: %w", err)
	}

	ds, err := l.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}
