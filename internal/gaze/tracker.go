// Package gaze filters a stream of gaze (or pointer) samples.
package gaze

import "gazepaint/internal/geom"

// Tracker forwards a sample only once it has moved at least Keyhole away
// from the last forwarded sample. It smooths out the jitter of a resting
// gaze.
type Tracker struct {
	Keyhole float64

	last geom.Point
	seen bool
}

func NewTracker(keyhole float64) *Tracker {
	return &Tracker{Keyhole: keyhole}
}

// Track reports whether p should be forwarded, and remembers it if so.
// The first sample after NewTracker or Reset is always forwarded.
func (t *Tracker) Track(p geom.Point) bool {
	if t.seen && p.Distance(t.last) < t.Keyhole {
		return false
	}
	t.last = p
	t.seen = true
	return true
}

// Last returns the last forwarded sample.
func (t *Tracker) Last() (geom.Point, bool) {
	return t.last, t.seen
}

func (t *Tracker) Reset() {
	t.seen = false
}
