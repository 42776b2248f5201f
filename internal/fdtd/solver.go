// Package fdtd implements a two-dimensional TM-mode (Ez, Hx, Hy) finite
// difference time domain solver on a Yee grid with per-cell lossy dielectric
// materials, soft sources and a first-order Mur absorbing boundary.
//
// A Solver is not safe for concurrent use. Materials may be replaced between
// calls to Step, never during one.
package fdtd

import (
	"errors"
	"fmt"
	"math"

	"yee2d/internal/core"
	"yee2d/internal/material"
)

// Physical constants in SI units.
const (
	C    = 299_792_458.0
	Eps0 = 8.8541878128e-12
	Mu0  = 4 * math.Pi * 1e-7
)

const (
	// Courant is the safety factor applied to the 2-D CFL limit.
	Courant = 0.5
	// CellSize is the grid spacing in metres.
	CellSize = 1e-3
	// FieldLimit bounds |Ez|; larger or non-finite values are clamped to it.
	FieldLimit = 1e4

	minGridSize = 3
	// epsFloor keeps the effective permittivity strictly positive.
	epsFloor = 1e-6
)

// ErrSizeMismatch is returned when material maps do not match the grid.
var ErrSizeMismatch = errors.New("fdtd: material size mismatch")

// Solver owns the Yee-grid fields and the material maps they propagate
// through.
type Solver struct {
	w, h int

	ez *core.Grid
	hx *core.Grid
	hy *core.Grid

	mat *material.Maps
	ca  []float64
	cb  []float64

	// Ez one cell inside each edge, captured at the start of a step.
	left, right []float64
	top, bottom []float64

	dx, dt  float64
	hCoef   float64
	murCoef float64

	step int

	freqGHz float64
	source  SourceKind
	srcX    int
	srcY    int
}

// New returns a solver for a w x h grid using the default excitation.
func New(w, h int) *Solver {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a solver in free space with all fields at rest.
// Dimensions below 3 cells are raised to 3.
func NewWithConfig(cfg Config) *Solver {
	w := max(minGridSize, cfg.Width)
	h := max(minGridSize, cfg.Height)

	s := &Solver{
		w:       w,
		h:       h,
		ez:      core.NewGrid(w, h),
		hx:      core.NewGrid(w, h),
		hy:      core.NewGrid(w, h),
		mat:     material.NewMaps(core.Size{W: w, H: h}),
		ca:      make([]float64, w*h),
		cb:      make([]float64, w*h),
		left:    make([]float64, h),
		right:   make([]float64, h),
		top:     make([]float64, w),
		bottom:  make([]float64, w),
		dx:      CellSize,
		freqGHz: cfg.FrequencyGHz,
		source:  cfg.Source,
	}
	s.dt = Courant * s.dx / (C * math.Sqrt(2))
	s.hCoef = s.dt / (Mu0 * s.dx)
	cn := C * s.dt / s.dx
	s.murCoef = (cn - 1) / (cn + 1)

	if s.freqGHz <= 0 {
		s.freqGHz = DefaultConfig().FrequencyGHz
	}
	sx, sy := cfg.SourceX, cfg.SourceY
	if sx < 0 {
		sx = w / 2
	}
	if sy < 0 {
		sy = h / 2
	}
	s.SetSourcePosition(sx, sy)
	s.updateCoefficients()
	return s
}

// Name identifies the simulation.
func (s *Solver) Name() string { return "fdtd" }

// Size returns the grid dimensions.
func (s *Solver) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Dx returns the cell spacing in metres.
func (s *Solver) Dx() float64 { return s.dx }

// Dt returns the fixed time step in seconds.
func (s *Solver) Dt() float64 { return s.dt }

// StepCount reports how many steps have run since construction or the last
// ResetFields.
func (s *Solver) StepCount() int { return s.step }

// Ez exposes the electric field, row-major W*H. Callers must not modify it.
func (s *Solver) Ez() []float64 { return s.ez.Cells() }

// Hx exposes the x magnetic field, row-major W*H. Callers must not modify it.
func (s *Solver) Hx() []float64 { return s.hx.Cells() }

// Hy exposes the y magnetic field, row-major W*H. Callers must not modify it.
func (s *Solver) Hy() []float64 { return s.hy.Cells() }

// EzAt returns Ez at column i, row j; out-of-range reads return 0.
func (s *Solver) EzAt(i, j int) float64 { return s.ez.At(i, j) }

// IsObject reports whether cell (i, j) belongs to a placed object. Coordinates
// outside the grid report false.
func (s *Solver) IsObject(i, j int) bool {
	if i < 0 || i >= s.w || j < 0 || j >= s.h {
		return false
	}
	return s.mat.Object[j*s.w+i]
}

// ObjectMask exposes the object overlay mask. Callers must not modify it.
func (s *Solver) ObjectMask() []bool { return s.mat.Object }

// Materials returns a copy of the current material maps.
func (s *Solver) Materials() *material.Maps {
	return &material.Maps{
		Size:     s.mat.Size,
		EpsilonR: append([]float64(nil), s.mat.EpsilonR...),
		Sigma:    append([]float64(nil), s.mat.Sigma...),
		Object:   append([]bool(nil), s.mat.Object...),
	}
}

// EpsilonR returns a copy of the relative permittivity map.
func (s *Solver) EpsilonR() []float64 { return append([]float64(nil), s.mat.EpsilonR...) }

// Sigma returns a copy of the conductivity map.
func (s *Solver) Sigma() []float64 { return append([]float64(nil), s.mat.Sigma...) }

// ApplyMaterials replaces the solver's materials with a copy of m. Field
// history is left untouched.
func (s *Solver) ApplyMaterials(m *material.Maps) error {
	if m == nil || m.Size != s.Size() || len(m.EpsilonR) != s.w*s.h ||
		len(m.Sigma) != s.w*s.h || len(m.Object) != s.w*s.h {
		got := core.Size{}
		if m != nil {
			got = m.Size
		}
		return fmt.Errorf("%w: grid %dx%d, maps %dx%d", ErrSizeMismatch, s.w, s.h, got.W, got.H)
	}
	copy(s.mat.EpsilonR, m.EpsilonR)
	copy(s.mat.Sigma, m.Sigma)
	copy(s.mat.Object, m.Object)
	s.updateCoefficients()
	return nil
}

// Rasterize rebuilds the material maps from objects in place.
func (s *Solver) Rasterize(objects []material.Object) {
	material.RasterizeInto(s.mat, objects)
	s.updateCoefficients()
}

// ResetFields zeroes Ez, Hx, Hy and the step counter. Materials are kept.
func (s *Solver) ResetFields() {
	s.ez.Clear()
	s.hx.Clear()
	s.hy.Clear()
	s.step = 0
}

// MaxField returns the largest finite |Ez| on the grid.
func (s *Solver) MaxField() float64 {
	peak := 0.0
	for _, v := range s.ez.Cells() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Step advances the fields by one leapfrog update: boundary snapshot, H from
// E, E from H, source injection, Mur boundary.
func (s *Solver) Step() {
	n := s.step + 1
	s.snapshotBoundary()
	s.updateH()
	s.updateE()
	s.inject(n)
	s.applyMur()
	s.step = n
}

func (s *Solver) updateH() {
	w, h := s.w, s.h
	ez, hx, hy := s.ez.Cells(), s.hx.Cells(), s.hy.Cells()
	k := s.hCoef
	for j := 0; j < h-1; j++ {
		row := j * w
		for i := 0; i < w-1; i++ {
			idx := row + i
			hx[idx] += k * (ez[idx] - ez[idx+w])
			hy[idx] += k * (ez[idx+1] - ez[idx])
		}
	}
}

func (s *Solver) updateE() {
	w, h := s.w, s.h
	ez, hx, hy := s.ez.Cells(), s.hx.Cells(), s.hy.Cells()
	for j := 1; j < h-1; j++ {
		row := j * w
		for i := 1; i < w-1; i++ {
			idx := row + i
			curl := (hy[idx] - hy[idx-1]) - (hx[idx] - hx[idx-w])
			ez[idx] = guard(s.ca[idx]*ez[idx] + s.cb[idx]*curl)
		}
	}
}

// updateCoefficients precomputes the lossy-medium update factors per cell.
func (s *Solver) updateCoefficients() {
	dt, dx := s.dt, s.dx
	for idx := range s.ca {
		eps := math.Max(s.mat.EpsilonR[idx]*Eps0, Eps0*epsFloor)
		loss := (s.mat.Sigma[idx] * dt) / (2 * eps)
		denom := 1 + loss
		s.ca[idx] = (1 - loss) / denom
		s.cb[idx] = (dt / (eps * dx)) / denom
	}
}

// guard clamps diverging or non-finite field values to ±FieldLimit, keeping
// the sign.
func guard(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > FieldLimit {
		return math.Copysign(FieldLimit, v)
	}
	return v
}
