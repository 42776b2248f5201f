package render

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func pixel(buf []byte, i int) color.RGBA {
	return color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(nil, 1); got != 1e-12 {
		t.Fatalf("empty peak = %g", got)
	}
	vals := []float64{0.5, -2, math.NaN(), math.Inf(1)}
	if got := Normalize(vals, 1); got != 2 {
		t.Fatalf("peak = %g, want 2", got)
	}
	if got := Normalize(vals, 4); got != 0.5 {
		t.Fatalf("brightened peak = %g, want 0.5", got)
	}
}

func TestLevelAppliesGamma(t *testing.T) {
	if got, want := Level(-0.5, 1), math.Pow(0.5, 0.45); got != want {
		t.Fatalf("Level = %g, want %g", got, want)
	}
	if Level(3, 1) != 1 || Level(math.NaN(), 1) != 0 {
		t.Fatal("Level must saturate and zero non-finite input")
	}
}

func TestFillFieldRGBAGrayscale(t *testing.T) {
	vals := []float64{0, 4, -4, 1}
	mask := []bool{false, false, false, true}
	buf := make([]byte, 4*len(vals))
	FillFieldRGBA(buf, vals, mask, Grayscale, 1)

	if got := pixel(buf, 0); got != (color.RGBA{A: 0xff}) {
		t.Fatalf("zero cell = %v, want black", got)
	}
	for _, i := range []int{1, 2} {
		if got := pixel(buf, i); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
			t.Fatalf("peak cell %d = %v, want white", i, got)
		}
	}
	if got := pixel(buf, 3); got != ObjectColor {
		t.Fatalf("object cell = %v, want %v", got, ObjectColor)
	}
}

func TestSchemeEndpoints(t *testing.T) {
	cases := []struct {
		scheme Scheme
		level  float64
		want   color.RGBA
	}{
		{Rainbow, 0, color.RGBA{R: 255, A: 255}},
		{Rainbow, 1, color.RGBA{R: 128, B: 255, A: 255}},
		{Spectrum, 1, color.RGBA{R: 255, B: 255, A: 255}},
		{Grayscale, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{Fire, 1, color.RGBA{R: 255, G: 230, B: 26, A: 255}},
		{Thermal, 0, color.RGBA{B: 13, A: 255}},
	}
	for _, tc := range cases {
		if got := tc.scheme.Color(tc.level); got != tc.want {
			t.Fatalf("%v(%g) = %v, want %v", tc.scheme, tc.level, got, tc.want)
		}
	}
}

func TestPaletteMatchesColor(t *testing.T) {
	for _, s := range Schemes() {
		p := s.Palette()
		if len(p) != 256 {
			t.Fatalf("%v palette has %d entries", s, len(p))
		}
		if p[255] != s.Color(1) || p[0] != s.Color(0) {
			t.Fatalf("%v palette endpoints disagree with Color", s)
		}
	}
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme(" ocean ")
	if err != nil || s != Ocean {
		t.Fatalf("ParseScheme = %v, %v", s, err)
	}
	if _, err := ParseScheme("sepia"); !errors.Is(err, ErrUnknownScheme) {
		t.Fatalf("err = %v", err)
	}
	if Spectrum.Next() != Rainbow {
		t.Fatal("Next must wrap")
	}
}
