package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"yee2d/internal/fdtd"
	"yee2d/internal/scene"
)

func main() {
	cfg := sweepConfig{}
	flag.IntVar(&cfg.width, "w", 200, "grid width in cells")
	flag.IntVar(&cfg.height, "h", 200, "grid height in cells")
	flag.IntVar(&cfg.steps, "steps", 1000, "steps to simulate per scenario")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Int64Var(&cfg.seed, "seed", 42, "seed for randomised scenes")
	flag.IntVar(&cfg.probeX, "px", -1, "probe column (negative: quarter width)")
	flag.IntVar(&cfg.probeY, "py", -1, "probe row (negative: half height)")
	freqList := flag.String("freqs", "0.5,1,2,5,10", "comma-separated frequencies in GHz")
	sourceList := flag.String("sources", "point", "comma-separated source kinds")
	sceneList := flag.String("scenes", "sphere", "comma-separated scene presets ("+strings.Join(scene.Names(), ", ")+")")
	flag.Parse()

	freqs, err := parseFloats(*freqList)
	if err != nil {
		log.Fatalf("invalid -freqs: %v", err)
	}
	var sources []fdtd.SourceKind
	for _, name := range splitList(*sourceList) {
		kind, err := fdtd.ParseSource(name)
		if err != nil {
			log.Fatal(err)
		}
		sources = append(sources, kind)
	}
	scenes := splitList(*sceneList)
	for _, name := range scenes {
		if _, err := scene.Lookup(name); err != nil {
			log.Fatal(err)
		}
	}

	scenarios := buildScenarios(freqs, sources, scenes)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d grid)\n",
		len(scenarios), cfg.workers, cfg.steps, cfg.width, cfg.height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep(ctx, cfg, scenarios)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}
	for _, res := range results {
		fmt.Printf("%s  max=%.4e scattered=%.4e probe_peak=%.4e probe_rms=%.4e dominant=%.3fGHz\n",
			res.scenario, res.maxField, res.scatteredMax, res.probe.Peak, res.probe.RMS, res.dominantGHz)
	}
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range splitList(s) {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		if v <= 0 {
			return nil, fmt.Errorf("frequency %g must be positive", v)
		}
		out = append(out, v)
	}
	return out, nil
}
