package fdtd

// snapshotBoundary records Ez one cell inward from every edge.
func (s *Solver) snapshotBoundary() {
	w, h := s.w, s.h
	ez := s.ez.Cells()
	for j := 0; j < h; j++ {
		s.left[j] = ez[j*w+1]
		s.right[j] = ez[j*w+w-2]
	}
	for i := 0; i < w; i++ {
		s.top[i] = ez[w+i]
		s.bottom[i] = ez[(h-2)*w+i]
	}
}

// applyMur sets the outer ring with the first-order Mur condition using the
// snapshot taken at the start of the step. Corners take the mean of their two
// edge neighbours.
func (s *Solver) applyMur() {
	w, h := s.w, s.h
	ez := s.ez.Cells()
	coef := s.murCoef

	for j := 1; j < h-1; j++ {
		first := j * w
		last := first + w - 1
		ez[first] = guard(s.left[j] + coef*(ez[first+1]-ez[first]))
		ez[last] = guard(s.right[j] + coef*(ez[last-1]-ez[last]))
	}

	bottomRow := (h - 1) * w
	for i := 1; i < w-1; i++ {
		ez[i] = guard(s.top[i] + coef*(ez[w+i]-ez[i]))
		b := bottomRow + i
		ez[b] = guard(s.bottom[i] + coef*(ez[b-w]-ez[b]))
	}

	ez[0] = 0.5 * (ez[1] + ez[w])
	ez[w-1] = 0.5 * (ez[w-2] + ez[2*w-1])
	bl := bottomRow
	ez[bl] = 0.5 * (ez[bl+1] + ez[bl-w])
	br := bottomRow + w - 1
	ez[br] = 0.5 * (ez[br-1] + ez[br-w])
}
