package invaders

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Wave is one round of play: the ship, the alien formation, both bolt
// populations and the lives/score counters.
type Wave struct {
	cfg    config.InvadersConfig
	rng    Random
	events EventSink

	ship       *Ship // nil once destroyed, until restored
	grid       *Grid
	bolts      []*Bolt
	alienBolts []*Bolt
	line       DefenseLine

	direction     int     // +1 marching right, -1 marching left
	boltShape     Entity  // Size template checked once in NewWave
	stepTimer     float64 // Seconds since the last formation step
	shotCountdown int     // Formation steps until the next alien shot

	lives int
	score int
	sound bool
}

// NewWave builds a full formation and a fresh ship.
// Returns an error when cfg cannot describe a playable wave.
func NewWave(cfg config.InvadersConfig, rng Random, events EventSink) (*Wave, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: new wave: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("invaders: new wave: nil random source")
	}

	grid, err := NewGrid(cfg.Aliens.Rows, cfg.Aliens.Cols)
	if err != nil {
		return nil, err
	}

	a := cfg.Aliens
	// One walk step in from the left wall so the first frame does not reverse.
	firstX := a.HSep + a.Width/2 + a.HWalk
	topY := cfg.Screen.Height - a.Ceiling - a.Height/2
	for row := range a.Rows {
		skin := cfg.SkinForRow(row)
		for col := range a.Cols {
			x := firstX + float64(col)*(a.Width+a.HSep)
			y := topY - float64(row)*(a.Height+a.VSep)
			e, err := newEntity(x, y, a.Width, a.Height, skin)
			if err != nil {
				return nil, err
			}
			grid.place(row, col, &Alien{Entity: e, Skin: skin, Points: cfg.PointsForSkin(skin)})
		}
	}

	lineColor, ok := core.ParseColor(cfg.Defense.Color)
	if !ok {
		lineColor = core.ColorGreen
	}

	w := &Wave{
		cfg:    cfg,
		rng:    rng,
		events: events,
		grid:   grid,
		line: DefenseLine{
			X1:        0,
			X2:        cfg.Screen.Width,
			Y:         cfg.Defense.Y,
			Color:     lineColor,
			LineWidth: cfg.Defense.LineWidth,
		},
		direction: 1,
		lives:     cfg.Gameplay.Lives,
		sound:     cfg.Gameplay.Sound,
	}
	w.shotCountdown = w.freshCountdown()
	if w.boltShape, err = newEntity(0, 0, cfg.Bolts.Width, cfg.Bolts.Height, "bolt"); err != nil {
		return nil, err
	}
	if err := w.spawnShip(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Wave) spawnShip() error {
	s := w.cfg.Ship
	e, err := newEntity(w.cfg.Screen.Width/2, s.Bottom, s.Width, s.Height, s.Image)
	if err != nil {
		return err
	}
	w.ship = &Ship{Entity: e}
	return nil
}

// freshCountdown draws the alien shot countdown from [1, FireRatePeriod).
func (w *Wave) freshCountdown() int {
	return randRange(w.rng, 1, w.cfg.Bolts.FireRatePeriod)
}

func (w *Wave) emit(e Event) {
	if w.sound && w.events != nil {
		w.events.Play(e)
	}
}

// Ship returns the ship, or nil while it is destroyed.
func (w *Wave) Ship() *Ship { return w.ship }

// Grid returns the alien formation.
func (w *Wave) Grid() *Grid { return w.grid }

// Bolts returns the player bolts in flight.
func (w *Wave) Bolts() []*Bolt { return w.bolts }

// AlienBolts returns the alien bolts in flight.
func (w *Wave) AlienBolts() []*Bolt { return w.alienBolts }

// DefenseLine returns the loss boundary.
func (w *Wave) DefenseLine() DefenseLine { return w.line }

// Direction returns +1 while the formation marches right, -1 otherwise.
func (w *Wave) Direction() int { return w.direction }

// Lives returns the remaining lives.
func (w *Wave) Lives() int { return w.lives }

// Score returns the score so far.
func (w *Wave) Score() int { return w.score }

// Sound reports whether sound events are emitted.
func (w *Wave) Sound() bool { return w.sound }

// SetSound toggles sound event emission.
func (w *Wave) SetSound(on bool) { w.sound = on }

// LoseLife spends one life and returns the lives left. Never goes below zero.
func (w *Wave) LoseLife() int {
	if w.lives > 0 {
		w.lives--
	}
	return w.lives
}

// UpdateShip moves the ship from held left/right input, keeping it on screen.
func (w *Wave) UpdateShip(in core.InputFrame) {
	if w.ship == nil {
		return
	}
	if in.Has(core.ActionLeft) {
		w.ship.X -= w.cfg.Ship.Movement
	}
	if in.Has(core.ActionRight) {
		w.ship.X += w.cfg.Ship.Movement
	}
	half := w.ship.Width / 2
	w.ship.X = core.ClampF(w.ship.X, half, w.cfg.Screen.Width-half)
}

// UpdateAliens advances the formation step timer and marches the formation.
// The side check runs every frame, independent of the step timer.
func (w *Wave) UpdateAliens(dt float64) {
	a := w.cfg.Aliens

	w.stepTimer += dt
	if w.stepTimer > a.StepInterval {
		w.grid.Shift(float64(w.direction)*a.HWalk, 0)
		w.stepTimer = 0
		w.shotCountdown--
	}

	left, right, ok := w.grid.Extent()
	if !ok {
		return
	}
	margin := a.Width/2 + a.HSep
	switch {
	case right >= w.cfg.Screen.Width-margin:
		w.grid.Shift(-a.HWalk, -a.VWalk)
		w.direction = -1
	case left <= margin:
		w.grid.Shift(a.HWalk, -a.VWalk)
		w.direction = 1
	}
}

// UpdateBolts fires a player bolt when fire is held, the ship is present
// and no player bolt is in flight, then moves and prunes player bolts.
func (w *Wave) UpdateBolts(in core.InputFrame) {
	if in.Has(core.ActionFire) && len(w.bolts) == 0 && w.ship != nil {
		w.bolts = append(w.bolts, w.newBolt(w.ship.X, w.ship.Top(), w.cfg.Bolts.Speed, "bolt"))
	}

	for _, b := range w.bolts {
		b.Move()
	}
	w.prunePlayerBolts()
}

// UpdateAlienBolts fires from a random column when the countdown has run
// out, then moves and prunes alien bolts. The countdown is redrawn once per
// tick whenever bolts were in flight.
func (w *Wave) UpdateAlienBolts() {
	if w.shotCountdown <= 0 {
		w.fireAlienBolt()
	}

	if len(w.alienBolts) > 0 {
		for _, b := range w.alienBolts {
			b.Move()
		}
		w.shotCountdown = w.freshCountdown()
	}
	w.pruneAlienBolts()
}

// fireAlienBolt spawns a bolt under the bottommost alien of a random
// non-empty column. Does nothing when no alien is alive.
func (w *Wave) fireAlienBolt() {
	shooters := w.grid.Shooters()
	if len(shooters) == 0 {
		return
	}
	a := shooters[w.rng.Intn(len(shooters))]
	w.alienBolts = append(w.alienBolts, w.newBolt(a.X, a.Bottom(), -w.cfg.Bolts.Speed, "alien bolt"))
}

// newBolt places a bolt with its trailing edge on edgeY, leading in the
// direction of velocity.
func (w *Wave) newBolt(x, edgeY, velocity float64, source string) *Bolt {
	e := w.boltShape
	e.X = x
	e.Y = edgeY + math.Copysign(e.Height/2, velocity)
	e.Source = source
	return &Bolt{Entity: e, Velocity: velocity}
}

// prunePlayerBolts drops bolts whose bottom edge is above the screen.
func (w *Wave) prunePlayerBolts() {
	top := w.cfg.Screen.Height
	w.bolts = slices.DeleteFunc(w.bolts, func(b *Bolt) bool {
		return b.Bottom() > top
	})
}

// pruneAlienBolts drops bolts whose top edge is below the screen.
func (w *Wave) pruneAlienBolts() {
	w.alienBolts = slices.DeleteFunc(w.alienBolts, func(b *Bolt) bool {
		return b.Top() < 0
	})
}

// ResolveCollisions applies every hit of the frame: player bolts against
// live aliens, then alien bolts against the ship. A bolt is consumed by
// its first hit.
func (w *Wave) ResolveCollisions() {
	w.grid.Live(func(row, col int, a *Alien) {
		for i, b := range w.bolts {
			if !a.Collides(b.Entity) {
				continue
			}
			w.grid.Remove(row, col)
			w.bolts = slices.Delete(w.bolts, i, i+1)
			w.score += a.Points
			w.emit(EventAlienDestroyed)
			return
		}
	})

	if w.ship == nil {
		return
	}
	for i, b := range w.alienBolts {
		if w.ship.Collides(b.Entity) {
			w.ship = nil
			w.alienBolts = slices.Delete(w.alienBolts, i, i+1)
			w.emit(EventShipDestroyed)
			return
		}
	}
}

// RoundLost reports whether the ship has been destroyed.
func (w *Wave) RoundLost() bool {
	return w.ship == nil
}

// OverDefenseLine reports whether any live alien's bottom edge has reached
// the defense line.
func (w *Wave) OverDefenseLine() bool {
	over := false
	w.grid.Live(func(_, _ int, a *Alien) {
		if a.Bottom() <= w.line.Y {
			over = true
		}
	})
	return over
}

// RestoreShip puts a fresh ship at its starting position if it was destroyed.
func (w *Wave) RestoreShip() {
	if w.ship == nil {
		//nolint:errcheck // Ship size was validated at construction
		w.spawnShip()
	}
}

// Drawables lists the visible entities in paint order: aliens, ship,
// defense line, player bolts, alien bolts.
func (w *Wave) Drawables() []Drawable {
	out := make([]Drawable, 0, w.grid.CountAlive()+len(w.bolts)+len(w.alienBolts)+2)
	w.grid.Live(func(_, _ int, a *Alien) {
		out = append(out, spriteOf(a.Entity))
	})
	if w.ship != nil {
		out = append(out, spriteOf(w.ship.Entity))
	}
	out = append(out, pathOf(w.line))
	for _, b := range w.bolts {
		out = append(out, fillOf(b.Entity, PlayerBoltColor))
	}
	for _, b := range w.alienBolts {
		out = append(out, fillOf(b.Entity, AlienBoltColor))
	}
	return out
}
