package fdtd

import (
	"fmt"
	"math"
)

// View selects the scalar quantity derived from the field arrays.
type View uint8

const (
	// ViewElectric is |Ez|.
	ViewElectric View = iota
	// ViewMagnetic is sqrt(Hx^2 + Hy^2).
	ViewMagnetic
	// ViewPower is |Ez * |H||.
	ViewPower
)

var viewNames = [...]string{
	ViewElectric: "Electric Field",
	ViewMagnetic: "Magnetic Field",
	ViewPower:    "Power Density",
}

// Views lists every view in display order.
func Views() []View { return []View{ViewElectric, ViewMagnetic, ViewPower} }

func (v View) String() string {
	if int(v) < len(viewNames) {
		return viewNames[v]
	}
	return fmt.Sprintf("View(%d)", uint8(v))
}

// Next cycles to the following view.
func (v View) Next() View { return View((int(v) + 1) % len(viewNames)) }

// Project writes the selected view of the solver's fields into dst, which is
// reallocated when its length does not match the grid.
func (s *Solver) Project(view View, dst []float64) []float64 {
	return project(view, s.ez.Cells(), s.hx.Cells(), s.hy.Cells(), dst)
}

func project(view View, ez, hx, hy, dst []float64) []float64 {
	if len(dst) != len(ez) {
		dst = make([]float64, len(ez))
	}
	switch view {
	case ViewMagnetic:
		for i := range dst {
			dst[i] = math.Hypot(hx[i], hy[i])
		}
	case ViewPower:
		for i := range dst {
			dst[i] = math.Abs(ez[i] * math.Hypot(hx[i], hy[i]))
		}
	default:
		for i, v := range ez {
			dst[i] = math.Abs(v)
		}
	}
	return dst
}
