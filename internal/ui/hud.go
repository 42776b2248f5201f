//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBg    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffBg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonFg    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffFg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD draws the control panel to the right of the field view: one +/- row per
// adjustable parameter followed by free-form status lines.
type HUD struct {
	target   Target
	width    int
	controls []control
	rows     []hudRow
	status   []string

	panel  *ebiten.Image
	pixel  *ebiten.Image
	height int
}

type hudRow struct {
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD builds a panel of the given pixel width for t.
func NewHUD(t Target, width int) *HUD {
	h := &HUD{target: t, width: max(0, width), controls: newControls(t)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.rows = make([]hudRow, len(h.controls))
	for i := range h.rows {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.rows[i] = hudRow{top: top, minus: minus, plus: plus}
	}
	return h
}

// SetStatus replaces the status lines drawn under the controls.
func (h *HUD) SetStatus(lines ...string) {
	h.status = append(h.status[:0], lines...)
}

// Update refreshes control values and applies clicks on the +/- buttons. It
// reports whether a parameter changed.
func (h *HUD) Update(offsetX int) bool {
	if h == nil || h.width == 0 {
		return false
	}
	snap := h.target.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(snap)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-offsetX, my)
	for i, row := range h.rows {
		switch {
		case p.In(row.minus):
			return h.controls[i].apply(h.target, -1)
		case p.In(row.plus):
			return h.controls[i].apply(h.target, 1)
		}
	}
	return false
}

// Contains reports whether screen point (x, y) falls on the panel.
func (h *HUD) Contains(x, y, offsetX int) bool {
	return h != nil && x >= offsetX && x < offsetX+h.width && y >= 0
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	text.Draw(h.panel, "Controls", face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		c, row := &h.controls[i], h.rows[i]
		baseline := row.top + labelBaseline
		text.Draw(h.panel, c.def.Label, face, panelPadding, baseline, labelColor)

		value := c.text()
		col := labelColor
		if !c.known {
			col = dimColor
		}
		x := row.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, x, baseline, col)

		_, down := c.next(-1)
		_, up := c.next(1)
		h.drawButton(row.minus, "-", down)
		h.drawButton(row.plus, "+", up)
	}

	y := controlsTop + len(h.controls)*lineHeight + statusSpacing
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += statusSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBg, buttonFg
	if !enabled {
		bg, fg = buttonOffBg, buttonOffFg
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
