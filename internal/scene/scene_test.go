package scene

import (
	"errors"
	"slices"
	"testing"

	"yee2d/internal/core"
	"yee2d/internal/material"
)

func TestNamesSorted(t *testing.T) {
	want := []string{"clutter", "corner", "empty", "ram", "sphere", "stealth"}
	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
}

func TestUnknownScene(t *testing.T) {
	if _, err := Lookup("moon"); !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("Lookup err = %v", err)
	}
	if _, err := Build("moon", core.Size{W: 10, H: 10}, 1); !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("Build err = %v", err)
	}
}

func TestPresetsFitTheGrid(t *testing.T) {
	size := core.Size{W: 200, H: 120}
	for _, name := range Names() {
		objs, err := Build(name, size, 7)
		if err != nil {
			t.Fatal(err)
		}
		if name == "empty" {
			if len(objs) != 0 {
				t.Fatalf("empty has %d objects", len(objs))
			}
			continue
		}
		if len(objs) == 0 {
			t.Fatalf("%s produced no objects", name)
		}
		for _, o := range objs {
			if o.X < 0 || o.X >= size.W || o.Y < 0 || o.Y >= size.H {
				t.Fatalf("%s: object centre (%d,%d) outside grid", name, o.X, o.Y)
			}
			if o.SizeX < 1 || o.SizeY < 1 || o.Conductivity < 0 || o.Conductivity > 1 {
				t.Fatalf("%s: bad object %+v", name, o)
			}
		}
		m := material.Rasterize(size, objs)
		if !slices.Contains(m.Object, true) {
			t.Fatalf("%s rasterized to free space", name)
		}
	}
}

func TestClutterIsSeeded(t *testing.T) {
	size := core.Size{W: 100, H: 100}
	a, _ := Build("clutter", size, 3)
	b, _ := Build("clutter", size, 3)
	c, _ := Build("clutter", size, 4)
	if !slices.Equal(a, b) {
		t.Fatal("same seed must give the same layout")
	}
	if slices.Equal(a, c) {
		t.Fatal("different seeds should give different layouts")
	}
}

func TestSpherePreset(t *testing.T) {
	objs, _ := Build("sphere", core.Size{W: 400, H: 400}, 0)
	want := material.Object{Kind: material.MetalSphere, X: 300, Y: 200, SizeX: 40, SizeY: 40}
	if len(objs) != 1 || objs[0] != want {
		t.Fatalf("sphere = %+v", objs)
	}
}
