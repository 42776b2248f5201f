package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownScheme is returned by ParseScheme for unrecognised names.
var ErrUnknownScheme = errors.New("render: unknown colour scheme")

// Scheme maps a normalised field level in [0,1] to a colour.
type Scheme uint8

const (
	Rainbow Scheme = iota
	Grayscale
	Fire
	Plasma
	Thermal
	Ocean
	Spectrum
)

var schemeNames = [...]string{
	Rainbow:   "Rainbow",
	Grayscale: "Grayscale",
	Fire:      "Fire",
	Plasma:    "Plasma",
	Thermal:   "Thermal",
	Ocean:     "Ocean",
	Spectrum:  "Spectrum",
}

// Schemes lists every scheme in menu order.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemeNames))
	for i := range out {
		out[i] = Scheme(i)
	}
	return out
}

func (s Scheme) String() string {
	if int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// Next cycles to the following scheme.
func (s Scheme) Next() Scheme { return Scheme((int(s) + 1) % len(schemeNames)) }

// ParseScheme matches a scheme name case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	key := strings.TrimSpace(name)
	for i, n := range schemeNames {
		if strings.EqualFold(n, key) {
			return Scheme(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Color returns the scheme colour for level n, clamped to [0,1].
func (s Scheme) Color(n float64) color.RGBA {
	if math.IsNaN(n) {
		n = 0
	}
	n = math.Min(1, math.Max(0, n))
	var c colorful.Color
	switch s {
	case Grayscale:
		c = colorful.Color{R: n, G: n, B: n}
	case Fire:
		c = colorful.Color{R: n * 1.6, G: n * 0.9, B: n * 0.1}
	case Plasma:
		c = colorful.Color{R: 0.3 + n*0.7, G: n * 0.2, B: 1 - n*0.6}
	case Thermal:
		c = colorful.Color{R: n, G: n * 0.6, B: 0.05}
	case Ocean:
		c = colorful.Color{R: 0.05, G: 0.4 + n*0.6, B: 0.6 + n*0.4}
	case Spectrum:
		c = colorful.Hsv(n*300, 1, 1)
	default:
		c = colorful.Hsv(n*270, 1, 1)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// paletteLevels is the number of quantised entries in a scheme palette.
const paletteLevels = 256

var palettes = buildPalettes()

func buildPalettes() [][]color.RGBA {
	out := make([][]color.RGBA, len(schemeNames))
	for s := range out {
		p := make([]color.RGBA, paletteLevels)
		for i := range p {
			p[i] = Scheme(s).Color(float64(i) / (paletteLevels - 1))
		}
		out[s] = p
	}
	return out
}

// Palette returns the quantised lookup table used by FillFieldRGBA. Callers
// must not modify it.
func (s Scheme) Palette() []color.RGBA {
	if int(s) < len(palettes) {
		return palettes[s]
	}
	return palettes[Rainbow]
}
