// Package config loads the viewer settings file.
//
// The file is the logger's settings.json: the ordered channel names, the
// channel count per sample and the filter parameters. Files ending in .yaml
// or .yml are read as YAML with the same keys.
package config

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file read when no path is given.
const DefaultPath = "settings.json"

const (
	defaultOrder   = 2
	defaultPanStep = 1000
	reservedName   = "sample"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Settings is the immutable session configuration.
type Settings struct {
	// Signals names the channels in file order.
	Signals []string `json:"signals" yaml:"signals"`
	// N is the number of float32 values per sample.
	N int `json:"n" yaml:"n"`
	// Decim is the decimation stride applied to filtered traces.
	Decim int `json:"decim" yaml:"decim"`
	// Fs is the sample rate in Hz.
	Fs float64 `json:"Fs" yaml:"Fs"`
	// Fcut is the low-pass cutoff in Hz.
	Fcut float64 `json:"Fcut" yaml:"Fcut"`

	Order     int     `json:"order,omitempty" yaml:"order,omitempty"`
	ByteOrder string  `json:"byte_order,omitempty" yaml:"byte_order,omitempty"` // little, big
	PanStep   float64 `json:"pan_step,omitempty" yaml:"pan_step,omitempty"`
}

// Load reads, defaults and validates the settings file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse decodes settings from data. ext selects the format: ".yaml" and
// ".yml" are YAML, anything else is JSON.
func Parse(data []byte, ext string) (*Settings, error) {
	s := &Settings{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
	default:
		if err := json.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
	}

	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.Order == 0 {
		s.Order = defaultOrder
	}
	if s.ByteOrder == "" {
		s.ByteOrder = "little"
	}
	if s.PanStep == 0 {
		s.PanStep = defaultPanStep
	}
}

// Validate checks the settings for consistency.
func (s *Settings) Validate() error {
	if s.N < 1 {
		return fmt.Errorf("%w: n must be at least 1, got %d", ErrInvalid, s.N)
	}
	if len(s.Signals) == 0 {
		return fmt.Errorf("%w: no signals configured", ErrInvalid)
	}
	if len(s.Signals) > s.N {
		return fmt.Errorf("%w: %d signals for n=%d", ErrInvalid, len(s.Signals), s.N)
	}

	seen := make(map[string]bool, len(s.Signals))
	for _, name := range s.Signals {
		switch {
		case strings.TrimSpace(name) == "":
			return fmt.Errorf("%w: empty signal name", ErrInvalid)
		case name == reservedName:
			return fmt.Errorf("%w: signal name %q is reserved", ErrInvalid, name)
		case seen[name]:
			return fmt.Errorf("%w: duplicate signal %q", ErrInvalid, name)
		}
		seen[name] = true
	}

	if s.Decim < 1 {
		return fmt.Errorf("%w: decim must be at least 1, got %d", ErrInvalid, s.Decim)
	}
	if s.Fs <= 0 {
		return fmt.Errorf("%w: Fs must be positive, got %v", ErrInvalid, s.Fs)
	}
	if s.Fcut <= 0 || s.Fcut >= s.Fs/2 {
		return fmt.Errorf("%w: Fcut must be inside (0, Fs/2), got %v with Fs=%v", ErrInvalid, s.Fcut, s.Fs)
	}
	if s.Order < 1 {
		return fmt.Errorf("%w: order must be at least 1, got %d", ErrInvalid, s.Order)
	}
	if s.PanStep < 0 {
		return fmt.Errorf("%w: pan_step must not be negative, got %v", ErrInvalid, s.PanStep)
	}
	if _, err := s.Endian(); err != nil {
		return err
	}

	return nil
}

// Endian returns the byte order named by ByteOrder.
func (s *Settings) Endian() (binary.ByteOrder, error) {
	switch strings.ToLower(s.ByteOrder) {
	case "", "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: unknown byte_order %q", ErrInvalid, s.ByteOrder)
	}
}
