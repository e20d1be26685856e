package tetris

import "time"

// Gravity accumulates frame times and fires once every Interval.
type Gravity struct {
	Interval time.Duration
	elapsed  time.Duration
}

func NewGravity(interval time.Duration) *Gravity {
	return &Gravity{Interval: interval}
}

// Advance adds dt to the accumulated time and reports whether the piece
// should fall. The accumulator restarts from zero every time it fires, any
// time over the interval is lost.
func (g *Gravity) Advance(dt time.Duration) bool {
	g.elapsed += dt
	if g.elapsed < g.Interval {
		return false
	}
	g.elapsed = 0
	return true
}

// Elapsed returns the time accumulated since gravity last fired.
func (g *Gravity) Elapsed() time.Duration { return g.elapsed }
