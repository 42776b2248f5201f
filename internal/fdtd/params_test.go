package fdtd

import (
	"errors"
	"testing"
)

func TestSetFloatParameterClampsFrequency(t *testing.T) {
	s := New(20, 20)
	if !s.SetFloatParameter("frequency_ghz", 2.5) || s.Frequency() != 2.5 {
		t.Fatalf("frequency = %g, want 2.5", s.Frequency())
	}
	if !s.SetFloatParameter("frequency_ghz", 500) || s.Frequency() != MaxFrequencyGHz {
		t.Fatalf("frequency = %g, want clamp to %g", s.Frequency(), float64(MaxFrequencyGHz))
	}
	if !s.SetFloatParameter("frequency_ghz", -1) || s.Frequency() != MinFrequencyGHz {
		t.Fatalf("frequency = %g, want clamp to %g", s.Frequency(), MinFrequencyGHz)
	}
	if s.SetFloatParameter("nope", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	s.SetFrequency(0)
	if s.Frequency() != MinFrequencyGHz {
		t.Fatal("SetFrequency must ignore non-positive values")
	}
}

func TestSetIntParameter(t *testing.T) {
	s := New(30, 20)
	if !s.SetIntParameter("source_kind", 9) || s.Source() != SourceGaussian {
		t.Fatalf("source = %v, want clamp to Gaussian", s.Source())
	}
	if !s.SetIntParameter("source_x", 100) || !s.SetIntParameter("source_y", -4) {
		t.Fatal("source position keys rejected")
	}
	if x, y := s.SourcePosition(); x != 29 || y != 0 {
		t.Fatalf("source at (%d,%d), want (29,0)", x, y)
	}
	if s.SetIntParameter("w", 10) {
		t.Fatal("grid size is not adjustable")
	}
}

func TestParametersSnapshot(t *testing.T) {
	s := New(30, 20)
	s.SetSource(SourcePlane)
	s.Step()
	snap := s.Parameters()
	if p, ok := snap.Lookup("source_name"); !ok || p.Value != "Plane Wave" {
		t.Fatalf("source_name = %+v", p)
	}
	if p, ok := snap.Lookup("step"); !ok || p.Value != "1" {
		t.Fatalf("step = %+v", p)
	}
	if p, ok := snap.Lookup("frequency_ghz"); !ok || p.Value != "1" {
		t.Fatalf("frequency_ghz = %+v", p)
	}
	controls := s.ParameterControls()
	if len(controls) != 4 || controls[2].Max != 29 || controls[3].Max != 19 {
		t.Fatalf("controls = %+v", controls)
	}
}

func TestParseSource(t *testing.T) {
	cases := map[string]SourceKind{
		"point":          SourcePoint,
		"Line Source":    SourceLine,
		"plane wave":     SourcePlane,
		" PLANE ":        SourcePlane,
		"Gaussian Pulse": SourceGaussian,
		"pulse":          SourceGaussian,
	}
	for in, want := range cases {
		got, err := ParseSource(in)
		if err != nil || got != want {
			t.Fatalf("ParseSource(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseSource("laser"); !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "128", "h": "bogus", "freq": "2.5", "source": "gaussian", "sx": "10", "sy": "-3"})
	if c.Width != 128 || c.Height != 400 {
		t.Fatalf("size = %dx%d", c.Width, c.Height)
	}
	if c.FrequencyGHz != 2.5 || c.Source != SourceGaussian {
		t.Fatalf("excitation = %g %v", c.FrequencyGHz, c.Source)
	}
	if c.SourceX != 10 || c.SourceY != -3 {
		t.Fatalf("source = (%d,%d)", c.SourceX, c.SourceY)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}

	s := NewWithConfig(c)
	if x, y := s.SourcePosition(); x != 10 || y != 200 {
		t.Fatalf("negative sy should centre the source, got (%d,%d)", x, y)
	}
}

func TestPairParametersFanOut(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 40, 40
	p := NewPair(cfg)
	if !p.SetFloatParameter("frequency_ghz", 3) || !p.SetIntParameter("source_kind", int(SourceLine)) {
		t.Fatal("pair rejected known keys")
	}
	if p.Incident.Frequency() != 3 || p.Incident.Source() != SourceLine {
		t.Fatal("incident solver did not receive the update")
	}
	if _, ok := p.Parameters().Lookup("scattered_max"); !ok {
		t.Fatal("pair snapshot lacks scattered_max")
	}
	if len(p.ParameterControls()) != len(p.Total.ParameterControls()) {
		t.Fatal("pair controls should mirror the solver's")
	}
}
