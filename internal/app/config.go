package app

import (
	"flag"
	"fmt"

	"yee2d/internal/fdtd"
	"yee2d/internal/material"
	"yee2d/internal/render"
	"yee2d/internal/scene"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Width         int
	Height        int
	Scale         int
	TPS           int
	StepsPerFrame int
	HUDWidth      int

	FrequencyGHz float64
	Source       string
	Scene        string
	Seed         int64

	Scheme     string
	Brightness float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:         400,
		Height:        400,
		Scale:         2,
		TPS:           60,
		StepsPerFrame: 2,
		HUDWidth:      260,
		FrequencyGHz:  1,
		Source:        "point",
		Scene:         "empty",
		Seed:          42,
		Scheme:        render.Rainbow.String(),
		Brightness:    1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.StepsPerFrame, "steps", c.StepsPerFrame, "solver steps per tick")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.Float64Var(&c.FrequencyGHz, "freq", c.FrequencyGHz, "source frequency in GHz")
	fs.StringVar(&c.Source, "source", c.Source, "source kind: point, line, plane, gaussian")
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial object layout")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomised scenes")
	fs.StringVar(&c.Scheme, "scheme", c.Scheme, "colour scheme")
	fs.Float64Var(&c.Brightness, "brightness", c.Brightness, "display gain; larger values reveal weaker fields")
}

// SolverConfig converts the flags into a solver configuration.
func (c *Config) SolverConfig() (fdtd.Config, error) {
	kind, err := fdtd.ParseSource(c.Source)
	if err != nil {
		return fdtd.Config{}, err
	}
	sc := fdtd.DefaultConfig()
	sc.Width = c.Width
	sc.Height = c.Height
	sc.Source = kind
	if c.FrequencyGHz > 0 {
		sc.FrequencyGHz = c.FrequencyGHz
	}
	return sc, nil
}

// Build constructs the solver pair and the editable scene loaded with the
// configured preset.
func (c *Config) Build() (*fdtd.Pair, *material.Scene, error) {
	sc, err := c.SolverConfig()
	if err != nil {
		return nil, nil, err
	}
	pair := fdtd.NewPair(sc)
	objects, err := scene.Build(c.Scene, pair.Size(), c.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("app: %w", err)
	}
	s := material.NewScene(objects...)
	pair.Rasterize(s.Objects())
	return pair, s, nil
}
