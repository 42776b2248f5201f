//go:build ebiten

package app

import (
	"fmt"

	"yee2d/internal/fdtd"
	"yee2d/internal/material"
	"yee2d/internal/probe"
	"yee2d/internal/render"
	"yee2d/internal/scene"
	"yee2d/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	brightnessStep = 1.25
	rotateDegrees  = 15
	probeHistory   = 2048
)

var kindKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Game adapts the solver pair and scene editor to the ebiten.Game interface.
type Game struct {
	pair    *fdtd.Pair
	scene   *material.Scene
	applied uint64

	painter *render.FieldPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	probe   *probe.Probe
	values  []float64

	view       fdtd.View
	scheme     render.Scheme
	brightness float64
	scattered  bool

	kind     material.Kind
	knob     float64
	selected int
	presets  []string
	preset   int
	seed     int64

	scale    int
	hudWidth int
	steps    int
	paused   bool
	tickOnce bool
}

// New constructs a Game from cfg.
func New(cfg *Config) (*Game, error) {
	scheme, err := render.ParseScheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}
	pair, s, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	size := pair.Size()
	g := &Game{
		pair:       pair,
		scene:      s,
		applied:    s.Revision(),
		painter:    render.NewFieldPainter(size.W, size.H),
		overlay:    ui.NewOverlay(cfg.Scale),
		probe:      probe.New(size.W/4, size.H/2, probeHistory),
		scheme:     scheme,
		brightness: max(cfg.Brightness, 1e-3),
		knob:       0.5,
		selected:   -1,
		presets:    scene.Names(),
		seed:       cfg.Seed,
		scale:      max(1, cfg.Scale),
		hudWidth:   max(0, cfg.HUDWidth),
		steps:      max(1, cfg.StepsPerFrame),
	}
	g.hud = ui.NewHUD(pair, g.hudWidth)
	for i, name := range g.presets {
		if name == cfg.Scene {
			g.preset = i
		}
	}
	return g, nil
}

// Update handles per-frame input and advances the solvers.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()
	if g.hud.Update(g.fieldWidth()) {
		g.probe.Reset()
	}

	if g.scene.Revision() != g.applied {
		g.pair.Rasterize(g.scene.Objects())
		g.applied = g.scene.Revision()
	}

	if !g.paused || g.tickOnce {
		n := g.steps
		if g.paused {
			n = 1
		}
		for range n {
			g.pair.Step()
			g.probe.Sample(g.pair.Total)
		}
		g.tickOnce = false
	}
	g.hud.SetStatus(g.statusLines()...)
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.tickOnce = true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.pair.ResetFields()
		g.probe.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.view = g.view.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.scheme = g.scheme.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.scattered = !g.scattered
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.brightness *= brightnessStep
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.brightness /= brightnessStep
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.loadPreset(g.preset + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.scene.Clear()
		g.selected = -1
	}
	for i, k := range kindKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.kind = material.Kind(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		g.knob = max(0, g.knob-0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.knob = min(1, g.knob+0.1)
	}
	g.editSelected()
}

func (g *Game) editSelected() {
	if g.selected < 0 || g.selected >= g.scene.Len() {
		g.selected = -1
		return
	}
	dx, dy := 0, 0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		dx = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		dx = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		dy = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		dy = 1
	}
	if dx != 0 || dy != 0 {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.scene.Resize(g.selected, dx*2, -dy*2)
		} else {
			g.scene.Move(g.selected, dx*2, dy*2)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.scene.Rotate(g.selected, -rotateDegrees)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.scene.Rotate(g.selected, rotateDegrees)
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	if g.hud.Contains(mx, my, g.fieldWidth()) {
		return
	}
	i, j := mx/g.scale, my/g.scale
	size := g.pair.Size()
	if i < 0 || i >= size.W || j < 0 || j >= size.H {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ebiten.IsKeyPressed(ebiten.KeyShift):
		g.probe = probe.New(i, j, probeHistory)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ebiten.IsKeyPressed(ebiten.KeyAlt):
		g.pair.SetSourcePosition(i, j)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if idx := g.scene.Closest(i, j); idx >= 0 {
			g.selected = idx
			return
		}
		g.selected = g.scene.Add(g.kind, i, j, g.knob)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		if g.scene.Erase(i, j) {
			g.selected = -1
		}
	}
}

func (g *Game) loadPreset(idx int) {
	if len(g.presets) == 0 {
		return
	}
	g.preset = idx % len(g.presets)
	objects, err := scene.Build(g.presets[g.preset], g.pair.Size(), g.seed)
	if err != nil {
		return
	}
	g.scene.Replace(objects)
	g.selected = -1
}

func (g *Game) statusLines() []string {
	st := g.probe.Stats()
	lines := []string{
		fmt.Sprintf("View: %s", g.view),
		fmt.Sprintf("Scheme: %s  x%.2f", g.scheme, g.brightness),
		fmt.Sprintf("Tool: %s (%.1f)", g.kind, g.knob),
		fmt.Sprintf("Scene: %s, %d objects", g.presets[g.preset], g.scene.Len()),
		fmt.Sprintf("Probe (%d,%d) peak %.3e", g.probe.X, g.probe.Y, st.Peak),
		fmt.Sprintf("Probe rms %.3e", st.RMS),
	}
	if f, err := g.probe.DominantFrequency(g.pair.Total.Dt()); err == nil {
		lines = append(lines, fmt.Sprintf("Probe peak at %.2f GHz", f/1e9))
	}
	if g.paused {
		lines = append(lines, "Paused")
	}
	return lines
}

// Draw renders the selected field view with its annotations and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.scattered {
		g.values = g.pair.Scattered(g.view, g.values)
	} else {
		g.values = g.pair.Total.Project(g.view, g.values)
	}
	g.painter.Blit(screen, g.values, g.pair.Total.ObjectMask(), g.scheme, g.brightness, g.scale)

	sx, sy := g.pair.Total.SourcePosition()
	caption := "Total Field"
	if g.scattered {
		caption = "Scattered Field"
	}
	marks := ui.Marks{
		SourceX:   sx,
		SourceY:   sy,
		ProbeX:    g.probe.X,
		ProbeY:    g.probe.Y,
		ShowProbe: true,
		Caption:   caption,
	}
	if g.selected >= 0 && g.selected < g.scene.Len() {
		o := g.scene.Objects()[g.selected]
		marks.SelX, marks.SelY = o.X, o.Y
		marks.SelRadius = o.PickRadius()
		marks.HasSelection = true
	}
	g.overlay.Draw(screen, marks)

	size := g.pair.Size()
	g.hud.Draw(screen, g.fieldWidth(), size.H*g.scale)
}

func (g *Game) fieldWidth() int { return g.pair.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.pair.Size()
	return g.fieldWidth() + g.hudWidth, size.H * g.scale
}
