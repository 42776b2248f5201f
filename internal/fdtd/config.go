package fdtd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownSource is returned by ParseSource for unrecognised names.
var ErrUnknownSource = errors.New("fdtd: unknown source kind")

// SourceKind selects how the excitation is injected into Ez.
type SourceKind uint8

const (
	// SourcePoint drives a single cell.
	SourcePoint SourceKind = iota
	// SourceLine drives a full horizontal row at SourceY.
	SourceLine
	// SourcePlane drives a row that sweeps down the grid over time.
	SourcePlane
	// SourceGaussian drives a Gaussian-weighted patch around the source point.
	SourceGaussian
)

var sourceNames = [...]string{
	SourcePoint:    "Point Source",
	SourceLine:     "Line Source",
	SourcePlane:    "Plane Wave",
	SourceGaussian: "Gaussian Pulse",
}

var sourceAliases = map[string]SourceKind{
	"point":    SourcePoint,
	"line":     SourceLine,
	"plane":    SourcePlane,
	"gaussian": SourceGaussian,
	"pulse":    SourceGaussian,
}

// Sources lists every source kind in display order.
func Sources() []SourceKind {
	return []SourceKind{SourcePoint, SourceLine, SourcePlane, SourceGaussian}
}

func (k SourceKind) String() string {
	if int(k) < len(sourceNames) {
		return sourceNames[k]
	}
	return fmt.Sprintf("SourceKind(%d)", uint8(k))
}

// ParseSource accepts display names ("Plane Wave") or short aliases ("plane").
func ParseSource(name string) (SourceKind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if k, ok := sourceAliases[key]; ok {
		return k, nil
	}
	for i, n := range sourceNames {
		if strings.EqualFold(n, key) {
			return SourceKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// Frequency bounds accepted by the parameter setters, in GHz.
const (
	MinFrequencyGHz = 0.1
	MaxFrequencyGHz = 60
)

// Config controls the grid and excitation of a Solver. A negative source
// coordinate selects the grid centre.
type Config struct {
	Width  int
	Height int

	FrequencyGHz float64
	Source       SourceKind
	SourceX      int
	SourceY      int
}

// DefaultConfig returns the standard 400x400, 1 GHz point-source setup.
func DefaultConfig() Config {
	return Config{
		Width:        400,
		Height:       400,
		FrequencyGHz: 1.0,
		Source:       SourcePoint,
		SourceX:      -1,
		SourceY:      -1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["freq"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.FrequencyGHz = parsed
		}
	}
	if v, ok := cfg["source"]; ok {
		if parsed, err := ParseSource(v); err == nil {
			c.Source = parsed
		}
	}
	if v, ok := cfg["sx"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SourceX = parsed
		}
	}
	if v, ok := cfg["sy"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SourceY = parsed
		}
	}
	return c
}
