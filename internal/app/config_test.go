package app

import (
	"errors"
	"flag"
	"testing"

	"yee2d/internal/fdtd"
	"yee2d/internal/scene"
)

func TestBindParsesFlags(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("fdtd", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-w", "120", "-h", "80", "-freq", "4.5", "-source", "plane", "-scene", "sphere"}); err != nil {
		t.Fatal(err)
	}
	sc, err := c.SolverConfig()
	if err != nil {
		t.Fatal(err)
	}
	if sc.Width != 120 || sc.Height != 80 || sc.FrequencyGHz != 4.5 || sc.Source != fdtd.SourcePlane {
		t.Fatalf("solver config = %+v", sc)
	}
}

func TestBuildLoadsScene(t *testing.T) {
	c := NewConfig()
	c.Width, c.Height = 100, 100
	c.Scene = "sphere"
	pair, s, err := c.Build()
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("scene has %d objects", s.Len())
	}
	o := s.Objects()[0]
	if !pair.Total.IsObject(o.X, o.Y) || pair.Incident.IsObject(o.X, o.Y) {
		t.Fatal("preset objects must be rasterized into the total-field solver only")
	}
}

func TestBuildRejectsUnknownNames(t *testing.T) {
	c := NewConfig()
	c.Scene = "atlantis"
	if _, _, err := c.Build(); !errors.Is(err, scene.ErrUnknownScene) {
		t.Fatalf("err = %v", err)
	}
	c = NewConfig()
	c.Source = "laser"
	if _, _, err := c.Build(); !errors.Is(err, fdtd.ErrUnknownSource) {
		t.Fatalf("err = %v", err)
	}
}
