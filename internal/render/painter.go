//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// FieldPainter owns a grid-sized image and uploads colour-mapped field
// views into it each frame.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a w x h grid.
func NewFieldPainter(w, h int) *FieldPainter {
	return &FieldPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit colour-maps values, uploads them and draws the image scaled onto dst.
func (fp *FieldPainter) Blit(dst *ebiten.Image, values []float64, mask []bool, scheme Scheme, brightness float64, scale int) {
	if len(values) != fp.w*fp.h {
		return
	}
	FillFieldRGBA(fp.buf, values, mask, scheme, brightness)
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the grid dimensions the painter was built for.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
