package ui

// Zone is a named rectangular region of the screen used to dispatch mouse
// events to whatever was rendered there.
type Zone struct {
	ID         string
	X, Y, W, H int
}

// Hit reports whether the cell (x, y) falls inside the zone.
func (z Zone) Hit(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

// ZoneSet is the zones of one rendered frame, searched in reverse so zones
// added later (drawn on top) win.
type ZoneSet struct {
	zones []Zone
}

// Reset clears all zones; call at the start of each render.
func (s *ZoneSet) Reset() { s.zones = s.zones[:0] }

// Add registers a zone.
func (s *ZoneSet) Add(z Zone) { s.zones = append(s.zones, z) }

// At returns the topmost zone containing (x, y).
func (s *ZoneSet) At(x, y int) (Zone, bool) {
	for i := len(s.zones) - 1; i >= 0; i-- {
		if s.zones[i].Hit(x, y) {
			return s.zones[i], true
		}
	}
	return Zone{}, false
}
