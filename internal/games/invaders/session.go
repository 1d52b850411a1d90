package invaders

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is a session phase.
type State int

const (
	StateInactive State = iota // Waiting for any key
	StateNewWave               // Building a fresh wave
	StateActive                // Playing
	StatePaused                // Ship lost, waiting for S
	StateContinue              // Ship restored, resuming
	StateComplete              // Round won or lost
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateNewWave:
		return "newwave"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateContinue:
		return "continue"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome is how a completed round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// transitions lists the legal successors of every state.
var transitions = map[State][]State{
	StateInactive: {StateNewWave},
	StateNewWave:  {StateActive},
	StateActive:   {StatePaused, StateComplete},
	StatePaused:   {StateContinue, StateComplete},
	StateContinue: {StateActive},
	StateComplete: {},
}

// CanTransition reports whether from -> to is a legal session transition.
func CanTransition(from, to State) bool {
	return slices.Contains(transitions[from], to)
}

// Controller drives one play session: it owns at most one wave and moves
// between states on input edges and wave outcomes.
type Controller struct {
	cfg    config.InvadersConfig
	rng    Random
	events EventSink

	state   State
	wave    *Wave // nil iff Inactive
	outcome Outcome

	overlay *Message // nil iff Active
	hud     *Message // score label, Active only

	lastKeys int    // Held-key count of the previous frame
	tick     uint64 // Frames seen
	onChange func(from, to State)
}

// NewController creates a session in the Inactive state.
func NewController(cfg config.InvadersConfig, rng Random, events EventSink) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: new controller: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("invaders: new controller: nil random source")
	}
	c := &Controller{
		cfg:    cfg,
		rng:    rng,
		events: events,
		state:  StateInactive,
	}
	c.compose()
	return c, nil
}

// OnTransition registers a callback invoked after every state change.
func (c *Controller) OnTransition(fn func(from, to State)) {
	c.onChange = fn
}

// State returns the current session state.
func (c *Controller) State() State { return c.state }

// Wave returns the current wave, or nil while Inactive.
func (c *Controller) Wave() *Wave { return c.wave }

// Outcome returns how the round ended, or OutcomeNone before Complete.
func (c *Controller) Outcome() Outcome { return c.outcome }

// Overlay returns the current overlay message, or nil while Active.
func (c *Controller) Overlay() *Message { return c.overlay }

// HUD returns the score label shown while Active.
func (c *Controller) HUD() *Message { return c.hud }

// Tick returns the number of frames processed.
func (c *Controller) Tick() uint64 { return c.tick }

func (c *Controller) enter(to State) {
	from := c.state
	if !CanTransition(from, to) {
		panic(fmt.Sprintf("invaders: illegal transition %s -> %s", from, to))
	}
	c.state = to
	if c.onChange != nil {
		c.onChange(from, to)
	}
}

// Update advances the session by one frame of dt seconds.
// States are visited in a fixed order: a fresh key out of Inactive runs
// NewWave and the first Active step in the same frame, while Continue
// waits one frame before becoming Active.
func (c *Controller) Update(dt float64, in core.InputFrame) {
	keys := in.Count()
	fresh := c.lastKeys == 0 && keys > 0
	c.lastKeys = keys
	c.tick++

	if c.state == StateInactive && fresh {
		c.enter(StateNewWave)
	}

	if c.state == StateNewWave {
		w, err := NewWave(c.cfg, c.rng, c.events)
		if err != nil {
			// cfg was validated by NewController.
			panic(err)
		}
		c.wave = w
		c.enter(StateActive)
	}

	if c.state == StateActive {
		c.step(dt, in)
	}

	if c.state == StateContinue {
		c.enter(StateActive)
	}

	if c.state == StatePaused && fresh && in.Has(core.ActionContinue) {
		c.wave.RestoreShip()
		c.enter(StateContinue)
	}

	c.compose()
}

// step runs one Active frame against the wave.
func (c *Controller) step(dt float64, in core.InputFrame) {
	w := c.wave

	w.UpdateShip(in)
	w.UpdateAliens(dt)
	w.UpdateBolts(in)
	w.UpdateAlienBolts()
	w.ResolveCollisions()

	// Toggles apply after this frame's events.
	switch {
	case in.Has(core.ActionSoundOn):
		w.SetSound(true)
	case in.Has(core.ActionSoundOff):
		w.SetSound(false)
	}

	if w.RoundLost() && w.LoseLife() > 0 {
		c.enter(StatePaused)
	}

	switch {
	case w.Grid().Cleared():
		c.outcome = OutcomeWon
	case w.Lives() == 0 || w.OverDefenseLine():
		c.outcome = OutcomeLost
	}
	if c.outcome != OutcomeNone {
		c.enter(StateComplete)
	}
}

// compose rebuilds the overlay and HUD for the current state.
func (c *Controller) compose() {
	snap := c.Snapshot()
	c.overlay = composeOverlay(c.cfg.Screen, c.state, snap)
	c.hud = composeHUD(c.cfg.Screen, c.state, snap)
}

// Draw paints the wave, then the overlay or HUD. It does not mutate the session.
func (c *Controller) Draw(s Surface) {
	if c.wave != nil {
		for _, d := range c.wave.Drawables() {
			s.Draw(d)
		}
	}
	if c.overlay != nil {
		s.DrawText(*c.overlay)
	}
	if c.hud != nil {
		s.DrawText(*c.hud)
	}
}
