//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	sourceColor   = color.RGBA{R: 255, G: 40, B: 40, A: 255}
	probeColor    = color.RGBA{R: 40, G: 220, B: 255, A: 255}
	selectedColor = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	captionColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Marks are the annotations drawn over the field view, in grid cells. SelX,
// SelY and SelRadius outline the object being edited when HasSelection is set.
type Marks struct {
	SourceX, SourceY int
	ProbeX, ProbeY   int
	ShowProbe        bool
	SelX, SelY       int
	SelRadius        float64
	HasSelection     bool
	Caption          string
}

// Overlay draws source, probe and selection markers on top of the field.
type Overlay struct {
	scale int
	pixel *ebiten.Image
}

// NewOverlay returns an overlay for a view drawn at scale pixels per cell.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: max(1, scale)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders m onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, m Marks) {
	s := float64(o.scale)
	center := func(i, j int) (float64, float64) {
		return (float64(i) + 0.5) * s, (float64(j) + 0.5) * s
	}

	x, y := center(m.SourceX, m.SourceY)
	o.drawRing(screen, x, y, 6, 2, sourceColor)
	if m.ShowProbe {
		x, y = center(m.ProbeX, m.ProbeY)
		o.drawLine(screen, x-5, y, x+5, y, 1.5, probeColor)
		o.drawLine(screen, x, y-5, x, y+5, 1.5, probeColor)
	}
	if m.HasSelection {
		x, y = center(m.SelX, m.SelY)
		o.drawRing(screen, x, y, m.SelRadius*s, 1, selectedColor)
	}
	if m.Caption != "" {
		text.Draw(screen, m.Caption, basicfont.Face7x13, 10, 20, captionColor)
	}
}

// ringSegments is the polygon resolution used for circles.
const ringSegments = 24

func (o *Overlay) drawRing(screen *ebiten.Image, cx, cy, r, thickness float64, col color.RGBA) {
	px, py := cx+r, cy
	for k := 1; k <= ringSegments; k++ {
		a := 2 * math.Pi * float64(k) / ringSegments
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		o.drawLine(screen, px, py, x, y, thickness, col)
		px, py = x, y
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(y2-y1, x2-x1))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
