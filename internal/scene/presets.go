package scene

import (
	"yee2d/internal/core"
	"yee2d/internal/material"
)

func init() {
	Register("empty", func(core.Size, int64) []material.Object { return nil })
	Register("sphere", sphere)
	Register("stealth", stealth)
	Register("corner", corner)
	Register("ram", ram)
	Register("clutter", clutter)
}

// scaled returns frac of n, at least one cell.
func scaled(n int, frac float64) int {
	return max(1, int(float64(n)*frac))
}

func sphere(size core.Size, _ int64) []material.Object {
	d := scaled(min(size.W, size.H), 0.1)
	return []material.Object{{
		Kind:  material.MetalSphere,
		X:     size.W * 3 / 4,
		Y:     size.H / 2,
		SizeX: d,
		SizeY: d,
	}}
}

func stealth(size core.Size, _ int64) []material.Object {
	w := scaled(size.W, 0.2)
	return []material.Object{
		{Kind: material.RAMLayer, X: size.W * 3 / 4, Y: size.H/2 + w/2, SizeX: w, SizeY: scaled(size.H, 0.04), Conductivity: 0.8},
		{Kind: material.StealthWedge, X: size.W * 3 / 4, Y: size.H / 2, SizeX: w, SizeY: w / 2, Conductivity: 0.6},
	}
}

func corner(size core.Size, _ int64) []material.Object {
	s := scaled(min(size.W, size.H), 0.12)
	return []material.Object{
		{Kind: material.CornerReflector, X: size.W * 3 / 4, Y: size.H / 4, SizeX: s, SizeY: s},
		{Kind: material.CornerDeflector, X: size.W * 3 / 4, Y: size.H * 3 / 4, SizeX: s, SizeY: s, Conductivity: 0.7},
	}
}

func ram(size core.Size, _ int64) []material.Object {
	return []material.Object{{
		Kind:         material.RAMLayer,
		X:            size.W / 2,
		Y:            size.H * 3 / 4,
		SizeX:        size.W,
		SizeY:        scaled(size.H, 0.08),
		Conductivity: 1,
	}}
}

// clutterCount is the number of objects scattered by the clutter preset.
const clutterCount = 8

func clutter(size core.Size, seed int64) []material.Object {
	rng := core.NewRNG(seed)
	kinds := material.Kinds()
	lo := scaled(min(size.W, size.H), 0.03)
	hi := scaled(min(size.W, size.H), 0.08)
	out := make([]material.Object, 0, clutterCount)
	for range clutterCount {
		sx := rng.IntRange(lo, hi)
		out = append(out, material.Object{
			Kind:         kinds[rng.IntN(len(kinds))],
			X:            rng.IntRange(0, size.W-1),
			Y:            rng.IntRange(0, size.H-1),
			SizeX:        sx,
			SizeY:        sx,
			Conductivity: rng.Float64(),
		})
	}
	return out
}
