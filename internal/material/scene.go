package material

import "math"

const (
	// DefaultObjectSize is the edge length of newly added objects.
	DefaultObjectSize = 16
	// pickRadiusScale scales max(SizeX, SizeY) into the selection radius.
	pickRadiusScale = 1.5
)

// Scene is an editable, ordered list of placed objects. Every mutation bumps
// the revision so observers know when to re-rasterize.
type Scene struct {
	objects  []Object
	revision uint64
}

// NewScene returns a scene seeded with a copy of objects.
func NewScene(objects ...Object) *Scene {
	return &Scene{objects: append([]Object(nil), objects...)}
}

// Objects returns a copy of the current object list.
func (s *Scene) Objects() []Object {
	return append([]Object(nil), s.objects...)
}

// Len reports the number of objects.
func (s *Scene) Len() int { return len(s.objects) }

// Revision increments on every change to the object list.
func (s *Scene) Revision() uint64 { return s.revision }

// Add places a default-sized object of the given kind centred on (x, y) and
// returns its index.
func (s *Scene) Add(kind Kind, x, y int, conductivity float64) int {
	s.objects = append(s.objects, Object{
		Kind:         kind,
		X:            x,
		Y:            y,
		SizeX:        DefaultObjectSize,
		SizeY:        DefaultObjectSize,
		Conductivity: clamp01(conductivity),
	})
	s.revision++
	return len(s.objects) - 1
}

// Replace swaps the entire object list.
func (s *Scene) Replace(objects []Object) {
	s.objects = append(s.objects[:0], objects...)
	s.revision++
}

// Clear removes every object.
func (s *Scene) Clear() {
	if len(s.objects) == 0 {
		return
	}
	s.objects = s.objects[:0]
	s.revision++
}

// PickRadius is the distance from an object's centre within which it can be
// selected.
func (o Object) PickRadius() float64 {
	return float64(max(o.SizeX, o.SizeY)) * pickRadiusScale
}

// Closest returns the index of the nearest object whose pick radius contains
// (x, y), or -1.
func (s *Scene) Closest(x, y int) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, o := range s.objects {
		d := math.Hypot(float64(o.X-x), float64(o.Y-y))
		if d < o.PickRadius() && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Erase removes the object closest to (x, y). It reports whether anything was
// removed.
func (s *Scene) Erase(x, y int) bool {
	idx := s.Closest(x, y)
	if idx < 0 {
		return false
	}
	s.objects = append(s.objects[:idx], s.objects[idx+1:]...)
	s.revision++
	return true
}

// Move translates object idx by (dx, dy) cells.
func (s *Scene) Move(idx, dx, dy int) bool {
	if !s.valid(idx) {
		return false
	}
	s.objects[idx].X += dx
	s.objects[idx].Y += dy
	s.revision++
	return true
}

// Resize grows object idx by (dx, dy); sizes never drop below one cell.
func (s *Scene) Resize(idx, dx, dy int) bool {
	if !s.valid(idx) {
		return false
	}
	o := &s.objects[idx]
	o.SizeX = max(1, o.SizeX+dx)
	o.SizeY = max(1, o.SizeY+dy)
	s.revision++
	return true
}

// Rotate adds degrees to object idx's angle. Rasterization ignores the angle.
func (s *Scene) Rotate(idx int, degrees float64) bool {
	if !s.valid(idx) {
		return false
	}
	s.objects[idx].Angle += degrees * math.Pi / 180
	s.revision++
	return true
}

func (s *Scene) valid(idx int) bool { return idx >= 0 && idx < len(s.objects) }

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
