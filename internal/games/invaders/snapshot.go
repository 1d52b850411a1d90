package invaders

import "math"

// Snapshot contains the complete session state for replay/determinism checks.
// Uses primitive types only for stable serialization. Positions are stored
// in hundredths of a world unit.
type Snapshot struct {
	Tick      uint64
	State     int
	Outcome   int
	Lives     int
	Score     int
	Direction int
	Sound     bool

	StepTimerMs   int
	ShotCountdown int

	ShipPresent bool
	ShipX       int

	// Alien cells (flattened: row*cols + col), each 3 ints: Alive, X, Y
	Rows, Cols int
	AlienData  []int

	// Bolts, each 2 ints: X, Y
	BoltData      []int
	AlienBoltData []int

	RNGState uint64
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    c.tick,
		State:   int(c.state),
		Outcome: int(c.outcome),
	}
	if r, ok := c.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}

	w := c.wave
	if w == nil {
		snap.Lives = c.cfg.Gameplay.Lives
		snap.Sound = c.cfg.Gameplay.Sound
		return snap
	}

	snap.Lives = w.lives
	snap.Score = w.score
	snap.Direction = w.direction
	snap.Sound = w.sound
	snap.StepTimerMs = int(math.Round(w.stepTimer * 1000))
	snap.ShotCountdown = w.shotCountdown
	if w.ship != nil {
		snap.ShipPresent = true
		snap.ShipX = fixed(w.ship.X)
	}

	snap.Rows, snap.Cols = w.grid.Rows(), w.grid.Cols()
	snap.AlienData = make([]int, snap.Rows*snap.Cols*3)
	w.grid.Live(func(row, col int, a *Alien) {
		idx := (row*snap.Cols + col) * 3
		snap.AlienData[idx] = 1
		snap.AlienData[idx+1] = fixed(a.X)
		snap.AlienData[idx+2] = fixed(a.Y)
	})

	snap.BoltData = flattenBolts(w.bolts)
	snap.AlienBoltData = flattenBolts(w.alienBolts)
	return snap
}

func flattenBolts(bolts []*Bolt) []int {
	out := make([]int, 0, len(bolts)*2)
	for _, b := range bolts {
		out = append(out, fixed(b.X), fixed(b.Y))
	}
	return out
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StepTimerMs)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotCountdown) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipX)         //#nosec G115 -- hash computation
	if snap.ShipPresent {
		h = h*31 + 1
	}
	if snap.Sound {
		h = h*31 + 1
	}

	for _, v := range snap.AlienData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BoltData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.AlienBoltData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
