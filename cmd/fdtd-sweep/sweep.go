package main

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"yee2d/internal/fdtd"
	"yee2d/internal/probe"
	"yee2d/internal/scene"
)

type scenario struct {
	freqGHz float64
	source  fdtd.SourceKind
	scene   string
}

func (s scenario) String() string {
	return fmt.Sprintf("freq=%.2fGHz source=%q scene=%s", s.freqGHz, s.source, s.scene)
}

type scenarioResult struct {
	scenario     scenario
	steps        int
	maxField     float64
	scatteredMax float64
	probe        probe.Stats
	dominantGHz  float64
}

type sweepConfig struct {
	width, height int
	steps         int
	workers       int
	seed          int64
	probeX        int
	probeY        int
}

// cancelCheckInterval is how many steps run between context checks.
const cancelCheckInterval = 64

func runScenario(ctx context.Context, cfg sweepConfig, sc scenario) (scenarioResult, error) {
	solverCfg := fdtd.DefaultConfig()
	solverCfg.Width = cfg.width
	solverCfg.Height = cfg.height
	solverCfg.FrequencyGHz = sc.freqGHz
	solverCfg.Source = sc.source
	pair := fdtd.NewPair(solverCfg)

	objects, err := scene.Build(sc.scene, pair.Size(), cfg.seed)
	if err != nil {
		return scenarioResult{}, err
	}
	pair.Rasterize(objects)

	px, py := cfg.probeX, cfg.probeY
	if px < 0 {
		px = pair.Size().W / 4
	}
	if py < 0 {
		py = pair.Size().H / 2
	}
	p := probe.New(px, py, cfg.steps)

	res := scenarioResult{scenario: sc}
	for n := 0; n < cfg.steps; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		pair.Step()
		p.Sample(pair.Total)
		res.maxField = max(res.maxField, pair.Total.MaxField())
	}
	res.steps = pair.StepCount()
	res.scatteredMax = pair.ScatteredMax()
	res.probe = p.Stats()
	if f, err := p.DominantFrequency(pair.Total.Dt()); err == nil {
		res.dominantGHz = f / 1e9
	}
	return res, nil
}

// sweep runs every scenario on a bounded pool of goroutines, each owning its
// own solver pair. Results are sorted by scattered field peak, largest first.
func sweep(ctx context.Context, cfg sweepConfig, scenarios []scenario) ([]scenarioResult, error) {
	results := make([]scenarioResult, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.workers))
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, cfg, sc)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].scatteredMax > results[j].scatteredMax })
	return results, nil
}

func buildScenarios(freqs []float64, sources []fdtd.SourceKind, scenes []string) []scenario {
	out := make([]scenario, 0, len(freqs)*len(sources)*len(scenes))
	for _, name := range scenes {
		for _, src := range sources {
			for _, f := range freqs {
				out = append(out, scenario{freqGHz: f, source: src, scene: name})
			}
		}
	}
	return out
}
