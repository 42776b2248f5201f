package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"yee2d/internal/core"
	"yee2d/internal/fdtd"
	"yee2d/internal/render"
	"yee2d/internal/scene"
)

type viewer struct {
	screen tcell.Screen
	pair   *fdtd.Pair
	pace   *core.FixedStep

	view       fdtd.View
	scheme     render.Scheme
	brightness float64
	scattered  bool
	paused     bool
	steps      int

	presets []string
	preset  int
	seed    int64

	values []float64
	pixels []pixel
}

func main() {
	width := flag.Int("w", 200, "grid width in cells")
	height := flag.Int("h", 200, "grid height in cells")
	freq := flag.Float64("freq", 2, "source frequency in GHz")
	source := flag.String("source", "point", "source kind: point, line, plane, gaussian")
	sceneName := flag.String("scene", "sphere", "initial object layout")
	seed := flag.Int64("seed", 42, "seed for randomised scenes")
	tps := flag.Int("tps", 30, "frames per second")
	steps := flag.Int("steps", 4, "solver steps per frame")
	flag.Parse()

	cfg := fdtd.DefaultConfig()
	cfg.Width, cfg.Height = *width, *height
	cfg.FrequencyGHz = *freq
	kind, err := fdtd.ParseSource(*source)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Source = kind

	v := &viewer{
		pair:       fdtd.NewPair(cfg),
		pace:       core.NewFixedStep(*tps),
		brightness: 1,
		steps:      max(1, *steps),
		presets:    scene.Names(),
		seed:       *seed,
	}
	if err := v.load(*sceneName); err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	v.screen = screen
	defer screen.Fini()

	v.run()
}

func (v *viewer) load(name string) error {
	objects, err := scene.Build(name, v.pair.Size(), v.seed)
	if err != nil {
		return err
	}
	for i, n := range v.presets {
		if n == name {
			v.preset = i
		}
	}
	v.pair.Rasterize(objects)
	return nil
}

func (v *viewer) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(v.pace.Interval() / 4)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-ticker.C:
			if !v.pace.ShouldStep() {
				continue
			}
			if !v.paused {
				for range v.steps {
					v.pair.Step()
				}
			}
			v.draw()
		}
	}
}

func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.pair.Step()
		case 'r':
			v.pair.ResetFields()
		case 'v':
			v.view = v.view.Next()
		case 'c':
			v.scheme = v.scheme.Next()
		case 't':
			v.scattered = !v.scattered
		case 's':
			v.pair.SetIntParameter("source_kind", (int(v.pair.Total.Source())+1)%len(fdtd.Sources()))
		case '+', '=':
			v.pair.SetFloatParameter("frequency_ghz", v.pair.Total.Frequency()+0.5)
		case '-':
			v.pair.SetFloatParameter("frequency_ghz", v.pair.Total.Frequency()-0.5)
		case ']':
			v.brightness *= 1.25
		case '[':
			v.brightness /= 1.25
		case 'l':
			if len(v.presets) > 0 {
				_ = v.load(v.presets[(v.preset+1)%len(v.presets)])
			}
		}
	}
	return true
}

func (v *viewer) draw() {
	cols, rows := v.screen.Size()
	rows-- // status line
	if cols <= 0 || rows <= 0 {
		return
	}
	if v.scattered {
		v.values = v.pair.Scattered(v.view, v.values)
	} else {
		v.values = v.pair.Total.Project(v.view, v.values)
	}
	size := v.pair.Size()
	// Each terminal cell shows two grid rows with the upper half-block glyph.
	v.pixels = downsample(v.values, v.pair.Total.ObjectMask(), size.W, size.H, cols, rows*2, v.scheme, v.brightness, v.pixels)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			top, bottom := v.pixels[(2*r)*cols+c], v.pixels[(2*r+1)*cols+c]
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			v.screen.SetContent(c, r, '▀', nil, style)
		}
	}

	status := fmt.Sprintf(" step %d | %s | %.2f GHz | %s | %s | max %.3e ",
		v.pair.StepCount(), v.pair.Total.Source(), v.pair.Total.Frequency(), v.view, v.scheme, v.pair.Total.MaxField())
	if v.scattered {
		status += "| scattered "
	}
	if v.paused {
		status += "| paused "
	}
	text := []rune(status)
	for c := 0; c < cols; c++ {
		r := ' '
		if c < len(text) {
			r = text[c]
		}
		v.screen.SetContent(c, rows, r, nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

func rgb(p pixel) tcell.Color {
	if p.object {
		return tcell.ColorDarkGray
	}
	return tcell.NewRGBColor(int32(p.col.R), int32(p.col.G), int32(p.col.B))
}
