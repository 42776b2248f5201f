// Package probe records Ez at a single grid cell over time and derives
// amplitude statistics and a power spectrum from the recorded history.
package probe

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// ErrTooFewSamples is returned when a spectrum is requested before at least
// two samples have been recorded.
var ErrTooFewSamples = errors.New("probe: too few samples")

// DefaultCapacity is the history length used when New is given a
// non-positive capacity.
const DefaultCapacity = 1024

// Sampler reads the electric field at a cell. *fdtd.Solver satisfies it.
type Sampler interface {
	EzAt(i, j int) float64
}

// Stats summarises the recorded samples.
type Stats struct {
	Count int
	Peak  float64
	RMS   float64
}

// Probe is a fixed-capacity ring buffer of Ez samples at (X, Y).
type Probe struct {
	X, Y int

	buf  []float64
	next int
	full bool
}

// New returns a probe at (x, y) keeping the most recent capacity samples.
func New(x, y, capacity int) *Probe {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Probe{X: x, Y: y, buf: make([]float64, capacity)}
}

// Capacity reports the ring size.
func (p *Probe) Capacity() int { return len(p.buf) }

// Len reports the number of samples currently held.
func (p *Probe) Len() int {
	if p.full {
		return len(p.buf)
	}
	return p.next
}

// Sample records the current field value at the probe position.
func (p *Probe) Sample(s Sampler) {
	p.Record(s.EzAt(p.X, p.Y))
}

// Record appends v, overwriting the oldest sample once the ring is full.
func (p *Probe) Record(v float64) {
	p.buf[p.next] = v
	p.next++
	if p.next == len(p.buf) {
		p.next = 0
		p.full = true
	}
}

// Samples returns the held samples oldest first.
func (p *Probe) Samples() []float64 {
	if !p.full {
		return append([]float64(nil), p.buf[:p.next]...)
	}
	out := make([]float64, 0, len(p.buf))
	out = append(out, p.buf[p.next:]...)
	return append(out, p.buf[:p.next]...)
}

// Reset discards all samples.
func (p *Probe) Reset() {
	p.next = 0
	p.full = false
	clear(p.buf)
}

// Stats returns the count, peak magnitude and RMS of the held samples.
func (p *Probe) Stats() Stats {
	s := p.Samples()
	if len(s) == 0 {
		return Stats{}
	}
	return Stats{
		Count: len(s),
		Peak:  floats.Norm(s, math.Inf(1)),
		RMS:   floats.Norm(s, 2) / math.Sqrt(float64(len(s))),
	}
}

// Bin is one positive-frequency line of a spectrum.
type Bin struct {
	FrequencyHz float64
	Magnitude   float64
}

// Spectrum returns the one-sided magnitude spectrum of the held samples with
// the mean removed. dt is the sampling interval in seconds.
func (p *Probe) Spectrum(dt float64) ([]Bin, error) {
	s := p.Samples()
	n := len(s)
	if n < 2 || dt <= 0 {
		return nil, ErrTooFewSamples
	}
	floats.AddConst(-floats.Sum(s)/float64(n), s)
	coeffs := fft.FFTReal(s)

	bins := make([]Bin, n/2+1)
	df := 1 / (float64(n) * dt)
	for k := range bins {
		bins[k] = Bin{FrequencyHz: float64(k) * df, Magnitude: cmplx.Abs(coeffs[k]) / float64(n)}
	}
	return bins, nil
}

// DominantFrequency returns the frequency of the strongest non-DC bin.
func (p *Probe) DominantFrequency(dt float64) (float64, error) {
	bins, err := p.Spectrum(dt)
	if err != nil {
		return 0, err
	}
	best := 1
	for k := 2; k < len(bins); k++ {
		if bins[k].Magnitude > bins[best].Magnitude {
			best = k
		}
	}
	return bins[best].FrequencyHz, nil
}
