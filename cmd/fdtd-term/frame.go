package main

import (
	"image/color"

	"yee2d/internal/render"
)

// pixel is one sampled grid block: its colour, or the object marker.
type pixel struct {
	col    color.RGBA
	object bool
}

// downsample reduces a w x h field to cols x rows pixels, taking the peak
// magnitude over each block so thin wavefronts survive the reduction. A block
// counts as an object when any of its cells is one.
func downsample(values []float64, mask []bool, w, h, cols, rows int, scheme render.Scheme, brightness float64, dst []pixel) []pixel {
	if cols <= 0 || rows <= 0 {
		return dst[:0]
	}
	if cap(dst) < cols*rows {
		dst = make([]pixel, cols*rows)
	}
	dst = dst[:cols*rows]
	peak := render.Normalize(values, brightness)
	for r := 0; r < rows; r++ {
		j0, j1 := span(r, rows, h)
		for c := 0; c < cols; c++ {
			i0, i1 := span(c, cols, w)
			m, obj := 0.0, false
			for j := j0; j < j1; j++ {
				for i := i0; i < i1; i++ {
					idx := j*w + i
					m = max(m, render.Level(values[idx], peak))
					obj = obj || (idx < len(mask) && mask[idx])
				}
			}
			dst[r*cols+c] = pixel{col: scheme.Color(m), object: obj}
		}
	}
	return dst
}

// span maps output index k of n onto the half-open source range it covers in
// a dimension of length size. Every range holds at least one cell.
func span(k, n, size int) (int, int) {
	lo := k * size / n
	hi := (k + 1) * size / n
	if hi <= lo {
		hi = min(size, lo+1)
	}
	return min(lo, size-1), hi
}
