package ui

import (
	"math"
	"strconv"

	"yee2d/internal/core"
)

// Target is what the HUD inspects and adjusts.
type Target interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

// control tracks the last known value of one adjustable parameter.
type control struct {
	def   core.ParameterControl
	value float64
	known bool
}

func (c *control) step() float64 {
	s := c.def.Step
	if s <= 0 {
		if c.def.Type == core.ParamTypeInt {
			return 1
		}
		return 0.05
	}
	if c.def.Type == core.ParamTypeInt {
		return math.Max(1, math.Round(s))
	}
	return s
}

// next returns the value one step in direction dir, clamped to the control's
// bounds, and whether it differs from the current value.
func (c *control) next(dir int) (float64, bool) {
	if !c.known || dir == 0 {
		return c.value, false
	}
	target := c.value + float64(dir)*c.step()
	if c.def.HasMin {
		target = math.Max(target, c.def.Min)
	}
	if c.def.HasMax {
		target = math.Min(target, c.def.Max)
	}
	return target, math.Abs(target-c.value) > 1e-9
}

// apply pushes the stepped value to the target and records it on success.
func (c *control) apply(t Target, dir int) bool {
	v, ok := c.next(dir)
	if !ok {
		return false
	}
	switch c.def.Type {
	case core.ParamTypeInt:
		ok = t.SetIntParameter(c.def.Key, int(math.Round(v)))
	case core.ParamTypeFloat:
		ok = t.SetFloatParameter(c.def.Key, v)
	default:
		return false
	}
	if ok {
		c.value = v
	}
	return ok
}

// refresh reads the control's value from snap.
func (c *control) refresh(snap core.ParameterSnapshot) {
	c.known = false
	p, ok := snap.Lookup(c.def.Key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	c.value, c.known = v, true
}

func (c *control) text() string {
	if !c.known {
		return "--"
	}
	if c.def.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(c.value)))
	}
	precision := 1
	switch s := c.step(); {
	case s < 0.001:
		precision = 4
	case s < 0.01:
		precision = 3
	case s < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(c.value, 'f', precision, 64)
}

func newControls(t Target) []control {
	defs := t.ParameterControls()
	out := make([]control, len(defs))
	for i, s := range defs {
		out[i] = control{def: s}
	}
	return out
}
