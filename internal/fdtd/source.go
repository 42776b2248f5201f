package fdtd

import "math"

const (
	sourceAmplitude = 0.1
	// rampSteps is the number of steps shaped by the Gaussian start-up envelope.
	rampSteps = 100

	lineScale     = 0.1
	planeScale    = 0.5
	gaussianScale = 0.05
	// gaussianSpread is the spatial standard width in cells; gaussianHalf the
	// half-extent of the driven patch.
	gaussianSpread = 20.0
	gaussianHalf   = 30

	planeOffset = 50
)

// Frequency returns the excitation frequency in GHz.
func (s *Solver) Frequency() float64 { return s.freqGHz }

// SetFrequency changes the excitation frequency. Non-positive values are
// ignored.
func (s *Solver) SetFrequency(ghz float64) {
	if ghz > 0 && !math.IsInf(ghz, 0) {
		s.freqGHz = ghz
	}
}

// Source returns the active source kind.
func (s *Solver) Source() SourceKind { return s.source }

// SetSource selects how the excitation is injected.
func (s *Solver) SetSource(kind SourceKind) {
	if int(kind) < len(sourceNames) {
		s.source = kind
	}
}

// SourcePosition returns the source cell.
func (s *Solver) SourcePosition() (int, int) { return s.srcX, s.srcY }

// SetSourcePosition moves the source, clamping it into the grid.
func (s *Solver) SetSourcePosition(x, y int) {
	s.srcX = min(max(x, 0), s.w-1)
	s.srcY = min(max(y, 0), s.h-1)
}

// SourceValue returns the excitation amplitude for step n (n >= 1) at time
// t = n*dt. The first rampSteps steps are shaped by a Gaussian envelope.
func (s *Solver) SourceValue(n int) float64 {
	t := float64(n) * s.dt
	omega := 2 * math.Pi * s.freqGHz * 1e9
	if n < rampSteps {
		envelope := math.Exp(-math.Pow((t-50*s.dt)/(10*s.dt), 2))
		return math.Sin(omega*t) * envelope * sourceAmplitude
	}
	return math.Sin(omega*t) * sourceAmplitude
}

// PlaneRow returns the row driven by a plane-wave source at step n.
func (s *Solver) PlaneRow(n int) int {
	span := max(1, s.h-2*planeOffset)
	return min(s.h-2, max(1, planeOffset+(n/2)%span))
}

func (s *Solver) inject(n int) {
	v := s.SourceValue(n)
	w, h := s.w, s.h
	ez := s.ez.Cells()
	add := func(idx int, dv float64) { ez[idx] = guard(ez[idx] + dv) }

	switch s.source {
	case SourceLine:
		row := s.srcY * w
		for i := 1; i < w-1; i++ {
			add(row+i, v*lineScale)
		}
	case SourcePlane:
		row := s.PlaneRow(n) * w
		for i := 1; i < w-1; i++ {
			add(row+i, v*planeScale)
		}
	case SourceGaussian:
		x0, y0 := s.srcX, s.srcY
		for i := max(1, x0-gaussianHalf); i < min(w-1, x0+gaussianHalf); i++ {
			for j := max(1, y0-gaussianHalf); j < min(h-1, y0+gaussianHalf); j++ {
				r := math.Hypot(float64(i-x0), float64(j-y0))
				spatial := math.Exp(-math.Pow(r/gaussianSpread, 2))
				add(j*w+i, v*spatial*gaussianScale)
			}
		}
	default:
		if s.interior(s.srcX, s.srcY) {
			add(s.srcY*w+s.srcX, v)
		}
	}
}

func (s *Solver) interior(i, j int) bool {
	return i >= 1 && i < s.w-1 && j >= 1 && j < s.h-1
}
