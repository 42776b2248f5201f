package material

import "yee2d/internal/core"

// ConductorSigma is the conductivity (S/m) written for metallic objects.
const ConductorSigma = 1e5

// Object is a placed scatterer described in grid cells.
type Object struct {
	Kind  Kind
	X, Y  int
	SizeX int
	SizeY int
	// Angle is kept for editors; geometry tests ignore it.
	Angle float64
	// Conductivity is the [0,1] knob scaling per-kind loss or permittivity.
	Conductivity float64
}

// Maps holds the per-cell material description of a grid.
type Maps struct {
	Size     core.Size
	EpsilonR []float64
	Sigma    []float64
	Object   []bool
}

// NewMaps allocates free-space maps for the given size.
func NewMaps(size core.Size) *Maps {
	n := size.Cells()
	if n < 0 {
		n = 0
	}
	m := &Maps{
		Size:     size,
		EpsilonR: make([]float64, n),
		Sigma:    make([]float64, n),
		Object:   make([]bool, n),
	}
	m.Reset()
	return m
}

// Reset restores free space: epsilonR=1, sigma=0, no objects.
func (m *Maps) Reset() {
	for i := range m.EpsilonR {
		m.EpsilonR[i] = 1
		m.Sigma[i] = 0
		m.Object[i] = false
	}
}

// Rasterize converts objects into freshly allocated material maps.
func Rasterize(size core.Size, objects []Object) *Maps {
	m := NewMaps(size)
	RasterizeInto(m, objects)
	return m
}

// RasterizeInto resets m and paints objects in order; later objects overwrite
// earlier ones where they overlap.
func RasterizeInto(m *Maps, objects []Object) {
	m.Reset()
	for _, o := range objects {
		m.paint(o)
	}
}

func (m *Maps) paint(o Object) {
	w, h := m.Size.W, m.Size.H
	sx := max(1, o.SizeX)
	sy := max(1, o.SizeY)
	halfW := max(1, sx/2)
	halfH := max(1, sy/2)

	minI := max(0, o.X-halfW)
	maxI := min(w-1, o.X+halfW)
	minJ := max(0, o.Y-halfH)
	maxJ := min(h-1, o.Y+halfH)

	g := geometry{o: o, sx: sx, sy: sy, halfW: halfW, halfH: halfH}
	for j := minJ; j <= maxJ; j++ {
		row := j * w
		for i := minI; i <= maxI; i++ {
			eps, sigma, inside := g.cell(i, j)
			if !inside {
				continue
			}
			m.EpsilonR[row+i] = eps
			m.Sigma[row+i] = sigma
			m.Object[row+i] = true
		}
	}
}

// geometry carries the clamped extents of one object.
type geometry struct {
	o            Object
	sx, sy       int
	halfW, halfH int
}

// cell runs the per-kind interior test for (i, j) and returns the material
// written there when inside.
func (g geometry) cell(i, j int) (eps, sigma float64, inside bool) {
	o := g.o
	knob := o.Conductivity
	if o.Kind.round() {
		rx := float64(i - o.X)
		ry := float64(j - o.Y)
		r := float64(max(g.sx, g.sy)) / 2
		if rx*rx+ry*ry > r*r {
			return 0, 0, false
		}
		switch o.Kind {
		case DielectricSphere:
			return 2 + knob*8, 0, true
		case Absorber:
			return 1, knob * 5, true
		}
		return 1, ConductorSigma, true
	}

	switch o.Kind {
	case MetalBox:
		return 1, ConductorSigma, true

	case CornerReflector:
		relx := i - o.X + g.halfW
		rely := j - o.Y + g.halfH
		t := max(1, min(g.sx, g.sy)/5)
		hor := rely >= 0 && rely < t && relx >= 0 && relx <= g.sx
		ver := relx >= 0 && relx < t && rely >= 0 && rely <= g.sy
		if !hor && !ver {
			return 0, 0, false
		}
		return 1, ConductorSigma, true

	case StealthWedge:
		rel, ok := bandFraction(j, o.Y, g.sy)
		if !ok {
			return 0, 0, false
		}
		row := int((1 - rel) * float64(g.sx))
		if i < o.X-row/2 || i > o.X+row/2 {
			return 0, 0, false
		}
		return 1, knob * rel * 10, true

	case RAMLayer:
		rel, ok := bandFraction(j, o.Y, g.sy)
		if !ok {
			return 0, 0, false
		}
		return 1, knob * rel * 15, true

	case CornerDeflector:
		dx := i - o.X + g.halfW
		dy := j - o.Y + g.halfH
		t := max(1, min(g.sx, g.sy)/4)
		hor := dx >= 0 && dx < g.sx && dy >= 0 && dy < t
		ver := dy >= 0 && dy < g.sy && dx >= 0 && dx < t
		if !hor && !ver {
			return 0, 0, false
		}
		return 1, knob * 5, true
	}
	return 0, 0, false
}

// bandFraction reports how far row j sits inside the band of height sy
// centred on cy, as a fraction in [0,1].
func bandFraction(j, cy, sy int) (float64, bool) {
	start := cy - sy/2
	end := cy + sy/2
	if j < start || j > end {
		return 0, false
	}
	return float64(j-start) / float64(sy), true
}
