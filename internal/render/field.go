// Package render turns scalar field views into RGBA pixel buffers.
package render

import (
	"image/color"
	"math"
)

const (
	// Gamma is applied to the normalised magnitude before colour lookup.
	Gamma = 0.45
	// peakFloor keeps the normaliser away from zero on a quiet grid.
	peakFloor = 1e-12
)

// ObjectColor marks cells covered by a placed object.
var ObjectColor = color.RGBA{R: 0xa9, G: 0xa9, B: 0xa9, A: 0xff}

// Normalize returns the per-frame divisor: the largest finite |v| (at least
// 1e-12) divided by brightness. Larger brightness reveals weaker signals.
func Normalize(values []float64, brightness float64) float64 {
	peak := peakFloor
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		peak = math.Max(peak, math.Abs(v))
	}
	return peak / math.Max(peakFloor, brightness)
}

// Level maps v to [0,1] against the divisor peak with gamma correction.
// Non-finite values map to 0.
func Level(v, peak float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Pow(math.Min(1, math.Abs(v)/peak), Gamma)
}

// FillFieldRGBA writes one RGBA pixel per value into buf. Cells where mask is
// set are drawn in ObjectColor; mask may be nil.
func FillFieldRGBA(buf []byte, values []float64, mask []bool, scheme Scheme, brightness float64) {
	palette := scheme.Palette()
	last := len(palette) - 1
	peak := Normalize(values, brightness)
	for i, v := range values {
		base := i * 4
		col := ObjectColor
		if i >= len(mask) || !mask[i] {
			col = palette[int(Level(v, peak)*float64(last)+0.5)]
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
