package fdtd

import (
	"math"

	"yee2d/internal/core"
)

// Parameters reports the solver's configuration and status for the HUD.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.w),
				core.IntParam("h", "Height", s.h),
				core.FloatParam("dx_mm", "Cell size (mm)", s.dx*1e3),
				core.FloatParam("dt_ps", "Time step (ps)", s.dt*1e12),
			},
		},
		{
			Name: "Source",
			Params: []core.Parameter{
				core.FloatParam("frequency_ghz", "Frequency (GHz)", s.freqGHz),
				core.IntParam("source_kind", "Source kind", int(s.source)),
				core.StringParam("source_name", "Source", s.source.String()),
				core.IntParam("source_x", "Source X", s.srcX),
				core.IntParam("source_y", "Source Y", s.srcY),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				core.IntParam("step", "Time step", s.step),
				core.FloatParam("max_field", "Max field", s.MaxField()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Solver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "frequency_ghz", Label: "Frequency GHz", Type: core.ParamTypeFloat, Step: 0.1, Min: MinFrequencyGHz, Max: MaxFrequencyGHz, HasMin: true, HasMax: true},
		{Key: "source_kind", Label: "Source kind", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(len(sourceNames) - 1), HasMin: true, HasMax: true},
		{Key: "source_x", Label: "Source X", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: float64(s.w - 1), HasMin: true, HasMax: true},
		{Key: "source_y", Label: "Source Y", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: float64(s.h - 1), HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a floating point parameter, clamping to its
// bounds. It reports whether key is known.
func (s *Solver) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "frequency_ghz":
		s.SetFrequency(math.Min(MaxFrequencyGHz, math.Max(MinFrequencyGHz, value)))
		return true
	}
	return false
}

// SetIntParameter updates an integer parameter, clamping to its bounds. It
// reports whether key is known.
func (s *Solver) SetIntParameter(key string, value int) bool {
	switch key {
	case "source_kind":
		s.SetSource(SourceKind(min(max(value, 0), len(sourceNames)-1)))
		return true
	case "source_x":
		s.SetSourcePosition(value, s.srcY)
		return true
	case "source_y":
		s.SetSourcePosition(s.srcX, value)
		return true
	}
	return false
}

// Parameters reports the total-field solver's parameters plus the scattered
// field peak.
func (p *Pair) Parameters() core.ParameterSnapshot {
	snap := p.Total.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name:   "Scattered",
		Params: []core.Parameter{core.FloatParam("scattered_max", "Scattered max", p.ScatteredMax())},
	})
	return snap
}

// ParameterControls lists the HUD-adjustable parameters shared by both solvers.
func (p *Pair) ParameterControls() []core.ParameterControl {
	return p.Total.ParameterControls()
}

// SetFloatParameter applies the update to both solvers.
func (p *Pair) SetFloatParameter(key string, value float64) bool {
	ok := p.Total.SetFloatParameter(key, value)
	p.Incident.SetFloatParameter(key, value)
	return ok
}

// SetIntParameter applies the update to both solvers.
func (p *Pair) SetIntParameter(key string, value int) bool {
	ok := p.Total.SetIntParameter(key, value)
	p.Incident.SetIntParameter(key, value)
	return ok
}
