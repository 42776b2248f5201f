package material

import (
	"math"
	"slices"
	"testing"

	"yee2d/internal/core"
)

func cellOf(m *Maps, i, j int) (float64, float64, bool) {
	idx := j*m.Size.W + i
	return m.EpsilonR[idx], m.Sigma[idx], m.Object[idx]
}

func TestRasterizeEmptyIsFreeSpace(t *testing.T) {
	m := Rasterize(core.Size{W: 16, H: 12}, nil)
	for idx := range m.EpsilonR {
		if m.EpsilonR[idx] != 1 || m.Sigma[idx] != 0 || m.Object[idx] {
			t.Fatalf("cell %d = (%v, %v, %v), want free space", idx, m.EpsilonR[idx], m.Sigma[idx], m.Object[idx])
		}
	}
}

func TestRasterizeIntoResetsPreviousObjects(t *testing.T) {
	size := core.Size{W: 20, H: 20}
	m := Rasterize(size, []Object{{Kind: MetalBox, X: 10, Y: 10, SizeX: 6, SizeY: 6}})
	RasterizeInto(m, nil)
	if !slices.Equal(m.EpsilonR, NewMaps(size).EpsilonR) || slices.Contains(m.Object, true) {
		t.Fatal("RasterizeInto with no objects must restore free space")
	}
	for _, s := range m.Sigma {
		if s != 0 {
			t.Fatal("sigma not cleared")
		}
	}
}

func TestRasterizeIdempotent(t *testing.T) {
	size := core.Size{W: 64, H: 48}
	objects := []Object{
		{Kind: MetalSphere, X: 10, Y: 10, SizeX: 8, SizeY: 8},
		{Kind: StealthWedge, X: 30, Y: 20, SizeX: 12, SizeY: 10, Conductivity: 0.7},
		{Kind: RAMLayer, X: 40, Y: 40, SizeX: 20, SizeY: 6, Conductivity: 0.3},
		{Kind: CornerDeflector, X: 55, Y: 12, SizeX: 9, SizeY: 9, Conductivity: 0.5},
	}
	a := Rasterize(size, objects)
	b := Rasterize(size, objects)
	if !slices.Equal(a.EpsilonR, b.EpsilonR) || !slices.Equal(a.Sigma, b.Sigma) || !slices.Equal(a.Object, b.Object) {
		t.Fatal("rasterizing the same objects twice produced different maps")
	}
}

func TestRasterizeSpheres(t *testing.T) {
	size := core.Size{W: 30, H: 30}
	cases := []struct {
		kind      Kind
		knob      float64
		wantEps   float64
		wantSigma float64
	}{
		{MetalSphere, 0.2, 1, ConductorSigma},
		{DielectricSphere, 0.5, 6, 0},
		{Absorber, 0.4, 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			m := Rasterize(size, []Object{{Kind: tc.kind, X: 10, Y: 10, SizeX: 6, SizeY: 6, Conductivity: tc.knob}})
			eps, sigma, obj := cellOf(m, 13, 10)
			if !obj || eps != tc.wantEps || math.Abs(sigma-tc.wantSigma) > 1e-12 {
				t.Fatalf("rim cell = (%v, %v, %v), want (%v, %v, true)", eps, sigma, obj, tc.wantEps, tc.wantSigma)
			}
			if _, _, obj := cellOf(m, 13, 13); obj {
				t.Fatal("corner of bounding box lies outside the sphere")
			}
			if _, _, obj := cellOf(m, 14, 10); obj {
				t.Fatal("cell beyond bounding box marked")
			}
		})
	}
}

func TestRasterizeMetalBoxFillsBoundingBox(t *testing.T) {
	m := Rasterize(core.Size{W: 20, H: 20}, []Object{{Kind: MetalBox, X: 10, Y: 10, SizeX: 4, SizeY: 6}})
	for j := 0; j < 20; j++ {
		for i := 0; i < 20; i++ {
			want := i >= 8 && i <= 12 && j >= 7 && j <= 13
			_, sigma, obj := cellOf(m, i, j)
			if obj != want {
				t.Fatalf("cell (%d,%d) object=%v, want %v", i, j, obj, want)
			}
			if want && sigma != ConductorSigma {
				t.Fatalf("cell (%d,%d) sigma=%v", i, j, sigma)
			}
		}
	}
}

func TestRasterizeCornerReflectorIgnoresKnob(t *testing.T) {
	m := Rasterize(core.Size{W: 40, H: 40}, []Object{{Kind: CornerReflector, X: 20, Y: 20, SizeX: 10, SizeY: 10, Conductivity: 0}})
	inside := [][2]int{{15, 15}, {25, 15}, {25, 16}, {15, 25}, {16, 25}}
	outside := [][2]int{{20, 20}, {17, 17}, {25, 17}, {17, 25}}
	for _, p := range inside {
		_, sigma, obj := cellOf(m, p[0], p[1])
		if !obj || sigma != ConductorSigma {
			t.Fatalf("cell %v = (%v, %v), want conductor", p, sigma, obj)
		}
	}
	for _, p := range outside {
		if _, _, obj := cellOf(m, p[0], p[1]); obj {
			t.Fatalf("cell %v should be empty", p)
		}
	}
}

func TestRasterizeStealthWedgeTapers(t *testing.T) {
	m := Rasterize(core.Size{W: 40, H: 40}, []Object{{Kind: StealthWedge, X: 20, Y: 20, SizeX: 10, SizeY: 10, Conductivity: 1}})

	if _, sigma, obj := cellOf(m, 15, 15); !obj || sigma != 0 {
		t.Fatalf("top row edge = (%v, %v), want object with zero loss", sigma, obj)
	}
	if _, sigma, obj := cellOf(m, 22, 20); !obj || math.Abs(sigma-5) > 1e-12 {
		t.Fatalf("middle row = (%v, %v), want sigma 5", sigma, obj)
	}
	if _, _, obj := cellOf(m, 23, 20); obj {
		t.Fatal("middle row should have narrowed")
	}
	if _, sigma, obj := cellOf(m, 20, 25); !obj || math.Abs(sigma-10) > 1e-12 {
		t.Fatalf("tip = (%v, %v), want sigma 10", sigma, obj)
	}
	if _, _, obj := cellOf(m, 21, 25); obj {
		t.Fatal("tip row should be a single cell")
	}
}

func TestRasterizeRAMLayerGrades(t *testing.T) {
	m := Rasterize(core.Size{W: 40, H: 40}, []Object{{Kind: RAMLayer, X: 20, Y: 20, SizeX: 10, SizeY: 10, Conductivity: 1}})
	prev := -1.0
	for j := 15; j <= 25; j++ {
		eps, sigma, obj := cellOf(m, 15, j)
		if !obj || eps != 1 {
			t.Fatalf("row %d not part of layer", j)
		}
		if sigma <= prev {
			t.Fatalf("row %d sigma %v does not increase past %v", j, sigma, prev)
		}
		prev = sigma
	}
	if math.Abs(prev-15) > 1e-12 {
		t.Fatalf("bottom row sigma = %v, want 15", prev)
	}
}

func TestRasterizeCornerDeflector(t *testing.T) {
	m := Rasterize(core.Size{W: 40, H: 40}, []Object{{Kind: CornerDeflector, X: 20, Y: 20, SizeX: 8, SizeY: 8, Conductivity: 0.4}})
	if _, sigma, obj := cellOf(m, 23, 16); !obj || math.Abs(sigma-2) > 1e-12 {
		t.Fatalf("horizontal ramp = (%v, %v), want sigma 2", sigma, obj)
	}
	if _, _, obj := cellOf(m, 17, 23); !obj {
		t.Fatal("vertical ramp missing")
	}
	if _, _, obj := cellOf(m, 24, 16); obj {
		t.Fatal("ramp extends past its length")
	}
	if _, _, obj := cellOf(m, 18, 18); obj {
		t.Fatal("inside of the L should be empty")
	}
}

func TestRasterizeDegenerateSizes(t *testing.T) {
	size := core.Size{W: 12, H: 12}
	m := Rasterize(size, []Object{{Kind: MetalSphere, X: 5, Y: 5, SizeX: 0, SizeY: -3}})
	count := 0
	for _, obj := range m.Object {
		if obj {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("degenerate sphere covers %d cells, want 1", count)
	}
	if _, _, obj := cellOf(m, 5, 5); !obj {
		t.Fatal("degenerate sphere should keep its centre cell")
	}
}

func TestRasterizeClipsToGrid(t *testing.T) {
	m := Rasterize(core.Size{W: 10, H: 10}, []Object{
		{Kind: MetalBox, X: 0, Y: 0, SizeX: 10, SizeY: 10},
		{Kind: MetalBox, X: 50, Y: 50, SizeX: 4, SizeY: 4},
	})
	if _, _, obj := cellOf(m, 0, 0); !obj {
		t.Fatal("object overlapping the corner not painted")
	}
	if _, _, obj := cellOf(m, 9, 9); obj {
		t.Fatal("object outside the grid must not paint anything")
	}
}

func TestRasterizeLaterObjectsOverwrite(t *testing.T) {
	m := Rasterize(core.Size{W: 20, H: 20}, []Object{
		{Kind: MetalBox, X: 10, Y: 10, SizeX: 8, SizeY: 8},
		{Kind: DielectricSphere, X: 10, Y: 10, SizeX: 4, SizeY: 4, Conductivity: 1},
	})
	eps, sigma, _ := cellOf(m, 10, 10)
	if eps != 10 || sigma != 0 {
		t.Fatalf("overlap = (%v, %v), want dielectric (10, 0)", eps, sigma)
	}
	if _, sigma, _ := cellOf(m, 6, 6); sigma != ConductorSigma {
		t.Fatal("box cells outside the sphere must survive")
	}
}

func TestRasterizeIgnoresAngle(t *testing.T) {
	size := core.Size{W: 30, H: 30}
	base := Object{Kind: StealthWedge, X: 15, Y: 15, SizeX: 10, SizeY: 12, Conductivity: 0.5}
	rotated := base
	rotated.Angle = math.Pi / 3
	a := Rasterize(size, []Object{base})
	b := Rasterize(size, []Object{rotated})
	if !slices.Equal(a.Object, b.Object) || !slices.Equal(a.Sigma, b.Sigma) {
		t.Fatal("angle must not change rasterized geometry")
	}
}
