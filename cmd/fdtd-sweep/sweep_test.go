package main

import (
	"context"
	"errors"
	"testing"

	"yee2d/internal/fdtd"
	"yee2d/internal/scene"
)

func TestSweepOrdersByScattering(t *testing.T) {
	cfg := sweepConfig{width: 60, height: 60, steps: 120, workers: 2, probeX: -1, probeY: -1}
	scenarios := buildScenarios([]float64{5}, []fdtd.SourceKind{fdtd.SourcePoint}, []string{"empty", "sphere"})
	if len(scenarios) != 2 {
		t.Fatalf("scenarios = %d", len(scenarios))
	}
	results, err := sweep(context.Background(), cfg, scenarios)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].scenario.scene != "sphere" || results[0].scatteredMax == 0 {
		t.Fatalf("first result = %+v", results[0])
	}
	if results[1].scatteredMax != 0 {
		t.Fatalf("empty scene scattered = %g", results[1].scatteredMax)
	}
	for _, r := range results {
		if r.steps != 120 || r.maxField == 0 || r.probe.Count != 120 {
			t.Fatalf("incomplete result %+v", r)
		}
	}
}

func TestSweepHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := sweepConfig{width: 20, height: 20, steps: 10, workers: 1}
	_, err := sweep(ctx, cfg, buildScenarios([]float64{1}, []fdtd.SourceKind{fdtd.SourcePoint}, []string{"empty"}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSweepReportsUnknownScene(t *testing.T) {
	cfg := sweepConfig{width: 20, height: 20, steps: 10, workers: 1}
	_, err := sweep(context.Background(), cfg, buildScenarios([]float64{1}, []fdtd.SourceKind{fdtd.SourcePoint}, []string{"nowhere"}))
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 1, 2.5 ,,")
	if err != nil || len(got) != 2 || got[1] != 2.5 {
		t.Fatalf("parseFloats = %v, %v", got, err)
	}
	if _, err := parseFloats("1,-2"); err == nil {
		t.Fatal("negative frequency accepted")
	}
}
