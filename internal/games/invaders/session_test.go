package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

const frame = 1.0 / 60.0

func newTestController(t *testing.T, cfg config.InvadersConfig) (*Controller, *eventLog) {
	t.Helper()
	events := &eventLog{}
	c, err := NewController(cfg, &stubRandom{}, events)
	if err != nil {
		t.Fatalf("NewController() error: %v", err)
	}
	return c, events
}

// startedController returns a controller already in the Active state.
func startedController(t *testing.T) *Controller {
	t.Helper()
	c, _ := newTestController(t, config.DefaultInvadersConfig())
	c.Update(frame, input(core.ActionOther))
	c.Update(frame, input())
	if c.State() != StateActive {
		t.Fatalf("State() = %s, expected active", c.State())
	}
	return c
}

func overlayText(c *Controller) string {
	if c.Overlay() == nil {
		return ""
	}
	return c.Overlay().Text
}

func TestControllerStartsInactive(t *testing.T) {
	c, _ := newTestController(t, config.DefaultInvadersConfig())

	if c.State() != StateInactive {
		t.Errorf("State() = %s, expected inactive", c.State())
	}
	if c.Wave() != nil {
		t.Error("Wave() should be nil while inactive")
	}
	if got := overlayText(c); got != TextPressAnyKey {
		t.Errorf("overlay = %q, expected %q", got, TextPressAnyKey)
	}

	// No key, no start.
	for range 10 {
		c.Update(frame, input())
	}
	if c.State() != StateInactive {
		t.Errorf("State() after idle frames = %s, expected inactive", c.State())
	}
}

func TestControllerRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Aliens.Cols = 0
	if _, err := NewController(cfg, &stubRandom{}, nil); err == nil {
		t.Error("NewController() should reject an empty grid")
	}
}

func TestFreshPressRequiresRelease(t *testing.T) {
	c, _ := newTestController(t, config.DefaultInvadersConfig())
	// Simulate a key that was already held on the previous frame.
	c.lastKeys = 1
	c.Update(frame, input(core.ActionFire))
	if c.State() != StateInactive {
		t.Fatalf("held key should not start the game, state = %s", c.State())
	}

	c.Update(frame, input())
	c.Update(frame, input(core.ActionFire))
	if c.State() != StateActive {
		t.Errorf("State() after release and press = %s, expected active", c.State())
	}
}

// End-to-end: start, fire, lose the bolt off screen, then clear the grid.
func TestSessionScenario(t *testing.T) {
	c, _ := newTestController(t, config.DefaultInvadersConfig())

	c.Update(0, input(core.ActionOther))
	if c.State() != StateActive {
		t.Fatalf("State() = %s, expected active", c.State())
	}
	w := c.Wave()
	if w.Lives() != 3 || w.Score() != 0 || w.Grid().CountAlive() != 60 {
		t.Fatalf("fresh wave: lives %d score %d alive %d", w.Lives(), w.Score(), w.Grid().CountAlive())
	}
	if c.Overlay() != nil {
		t.Errorf("overlay = %q while active, expected none", c.Overlay().Text)
	}
	if c.HUD() == nil || c.HUD().Text != "SCORE:0" {
		t.Errorf("HUD = %v, expected SCORE:0", c.HUD())
	}

	// Fire once.
	c.Update(0, input(core.ActionFire))
	if len(w.Bolts()) != 1 || w.Bolts()[0].X != w.Ship().X {
		t.Fatalf("expected one bolt at the ship's x, got %d", len(w.Bolts()))
	}

	// Let it leave the screen (between the columns, so it hits nothing).
	w.Bolts()[0].X = w.Grid().At(0, 0).Right() + 8
	for range 80 {
		c.Update(0, input())
	}
	if len(w.Bolts()) != 0 {
		t.Fatalf("bolt should be pruned after leaving the screen")
	}

	// Destroy column 0 bottom-up.
	wantScore := 0
	for row := 4; row >= 0; row-- {
		a := w.Grid().At(row, 0)
		w.bolts = []*Bolt{{Entity: Entity{X: a.X, Y: a.Y - 10, Width: 4, Height: 16}, Velocity: 10}}
		wantScore += a.Points
		c.Update(0, input())
		if w.Score() != wantScore {
			t.Fatalf("row %d: Score() = %d, expected %d", row, w.Score(), wantScore)
		}
	}
	if wantScore != 90 {
		t.Fatalf("column score = %d, expected 90", wantScore)
	}

	// Clear the rest in one frame.
	w.bolts = nil
	w.Grid().Live(func(_, _ int, a *Alien) {
		w.bolts = append(w.bolts, &Bolt{Entity: Entity{X: a.X, Y: a.Y - 10, Width: 4, Height: 16}, Velocity: 10})
	})
	c.Update(0, input())

	if c.State() != StateComplete {
		t.Fatalf("State() = %s, expected complete", c.State())
	}
	if c.Outcome() != OutcomeWon {
		t.Errorf("Outcome() = %v, expected won", c.Outcome())
	}
	if got := overlayText(c); got != TextWon {
		t.Errorf("overlay = %q, expected %q", got, TextWon)
	}
	if w.Score() != 12*90 {
		t.Errorf("final score = %d, expected %d", w.Score(), 12*90)
	}
}

func TestPauseContinueRoundTrip(t *testing.T) {
	c := startedController(t)
	w := c.Wave()
	w.Grid().Remove(0, 0)
	w.score = 30

	w.ship = nil
	c.Update(frame, input())

	if c.State() != StatePaused {
		t.Fatalf("State() = %s, expected paused", c.State())
	}
	if w.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", w.Lives())
	}
	if got := overlayText(c); got != "PRESS S TO CONTINUE 2 LIFE LEFT" {
		t.Errorf("overlay = %q", got)
	}

	// Paused frames do not touch the wave.
	for range 5 {
		c.Update(frame, input(core.ActionFire))
	}
	if c.State() != StatePaused || w.Lives() != 2 {
		t.Fatalf("paused session changed: state %s lives %d", c.State(), w.Lives())
	}

	// S held since the previous frame is not a fresh press.
	c.Update(frame, input(core.ActionContinue))
	if c.State() != StatePaused {
		t.Fatalf("S without release should not continue, state = %s", c.State())
	}

	c.Update(frame, input())
	c.Update(frame, input(core.ActionContinue))
	if c.State() != StateContinue {
		t.Fatalf("State() = %s, expected continue", c.State())
	}
	if w.Ship() == nil {
		t.Fatal("ship should be restored on continue")
	}

	c.Update(frame, input())
	if c.State() != StateActive {
		t.Fatalf("State() = %s, expected active", c.State())
	}
	if c.Wave() != w {
		t.Error("continue must keep the same wave")
	}
	if w.Score() != 30 || w.Grid().At(0, 0) != nil {
		t.Error("wave progress should carry over")
	}
}

func TestLivesDecrementToGameOver(t *testing.T) {
	c := startedController(t)
	w := c.Wave()

	for want := 2; want >= 0; want-- {
		if c.State() == StatePaused {
			c.Update(frame, input())
			c.Update(frame, input(core.ActionContinue))
			c.Update(frame, input())
		}
		prev := w.Lives()
		w.ship = nil
		c.Update(frame, input())
		if w.Lives() != want || prev-w.Lives() != 1 {
			t.Fatalf("Lives() = %d, expected %d", w.Lives(), want)
		}
	}

	if c.State() != StateComplete || c.Outcome() != OutcomeLost {
		t.Fatalf("State() = %s outcome %v, expected complete/lost", c.State(), c.Outcome())
	}
	if got := overlayText(c); got != TextGameOver {
		t.Errorf("overlay = %q, expected %q", got, TextGameOver)
	}

	// Complete is terminal.
	for range 10 {
		c.Update(frame, input(core.ActionOther))
		c.Update(frame, input())
	}
	if c.State() != StateComplete || w.Lives() != 0 {
		t.Errorf("complete session changed: state %s lives %d", c.State(), w.Lives())
	}
}

func TestWinDetection(t *testing.T) {
	c := startedController(t)
	w := c.Wave()
	for row := range w.Grid().Rows() {
		for col := range w.Grid().Cols() {
			w.Grid().Remove(row, col)
		}
	}

	c.Update(frame, input())

	if c.State() != StateComplete || c.Outcome() != OutcomeWon {
		t.Errorf("State() = %s outcome %v, expected complete/won", c.State(), c.Outcome())
	}
}

func TestWinTakesPriorityOverLoss(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Gameplay.Lives = 1
	c, _ := newTestController(t, cfg)
	c.Update(frame, input(core.ActionOther))
	w := c.Wave()
	for row := range w.Grid().Rows() {
		for col := range w.Grid().Cols() {
			w.Grid().Remove(row, col)
		}
	}
	w.ship = nil

	c.Update(frame, input())

	if c.Outcome() != OutcomeWon {
		t.Errorf("Outcome() = %v, expected won", c.Outcome())
	}
	if got := overlayText(c); got != TextWon {
		t.Errorf("overlay = %q, expected %q", got, TextWon)
	}
}

func TestDefenseLineLoss(t *testing.T) {
	c := startedController(t)
	w := c.Wave()
	w.Grid().Shift(0, -(w.Grid().At(4, 0).Bottom() - w.DefenseLine().Y))

	c.Update(frame, input())

	if c.State() != StateComplete || c.Outcome() != OutcomeLost {
		t.Errorf("State() = %s outcome %v, expected complete/lost", c.State(), c.Outcome())
	}
	if w.Lives() != 3 || w.Ship() == nil {
		t.Errorf("defense line loss should not touch lives (%d) or ship", w.Lives())
	}
	if got := overlayText(c); got != TextGameOver {
		t.Errorf("overlay = %q, expected %q", got, TextGameOver)
	}
}

func TestSoundToggle(t *testing.T) {
	c := startedController(t)
	w := c.Wave()

	c.Update(frame, input(core.ActionSoundOff))
	if w.Sound() {
		t.Error("M should turn sound off")
	}
	c.Update(frame, input(core.ActionSoundOff))
	c.Update(frame, input(core.ActionSoundOn))
	if !w.Sound() {
		t.Error("N should turn sound on")
	}
}

func TestSoundEventsReachSink(t *testing.T) {
	c, events := newTestController(t, config.DefaultInvadersConfig())
	c.Update(frame, input(core.ActionOther))
	w := c.Wave()
	kill := func(row, col int, actions ...core.Action) {
		w.bolts = []*Bolt{boltAt(w.Grid().At(row, col))}
		w.bolts[0].Y -= 10
		c.Update(frame, input(actions...))
	}

	// M on the frame of a kill still plays that kill.
	kill(2, 2, core.ActionSoundOff)
	if len(events.events) != 1 || events.events[0] != EventAlienDestroyed {
		t.Fatalf("events after muting kill = %v, expected one alien destroyed", events.events)
	}
	if w.Sound() {
		t.Error("Sound() = true after M, expected false")
	}

	// Muted kill is silent even when N arrives on the same frame.
	kill(2, 3, core.ActionSoundOn)
	if len(events.events) != 1 {
		t.Errorf("events after muted kill = %v, expected still one", events.events)
	}

	kill(2, 4)
	if len(events.events) != 2 {
		t.Errorf("events after unmuted kill = %v, expected two", events.events)
	}
	if w.Score() != 60 {
		t.Errorf("Score() = %d, expected 60", w.Score())
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from, to State
		ok       bool
	}{
		{StateInactive, StateNewWave, true},
		{StateNewWave, StateActive, true},
		{StateActive, StatePaused, true},
		{StateActive, StateComplete, true},
		{StatePaused, StateContinue, true},
		{StatePaused, StateComplete, true},
		{StateContinue, StateActive, true},
		{StateInactive, StateActive, false},
		{StateComplete, StateInactive, false},
		{StateComplete, StateActive, false},
		{StatePaused, StateActive, false},
	}

	for _, tc := range tests {
		if got := CanTransition(tc.from, tc.to); got != tc.ok {
			t.Errorf("CanTransition(%s, %s) = %v, expected %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestIllegalTransitionPanics(t *testing.T) {
	c, _ := newTestController(t, config.DefaultInvadersConfig())
	defer func() {
		if recover() == nil {
			t.Error("enter(Complete) from Inactive should panic")
		}
	}()
	c.enter(StateComplete)
}

func TestOnTransition(t *testing.T) {
	c, _ := newTestController(t, config.DefaultInvadersConfig())
	var seen []State
	c.OnTransition(func(_, to State) { seen = append(seen, to) })

	c.Update(frame, input(core.ActionOther))

	if len(seen) != 2 || seen[0] != StateNewWave || seen[1] != StateActive {
		t.Errorf("transitions = %v, expected [newwave active]", seen)
	}
}

// recordingSurface counts draw calls.
type recordingSurface struct {
	drawables []Drawable
	texts     []Message
}

func (s *recordingSurface) Draw(d Drawable)    { s.drawables = append(s.drawables, d) }
func (s *recordingSurface) DrawText(m Message) { s.texts = append(s.texts, m) }

func TestDrawIsReadOnly(t *testing.T) {
	c := startedController(t)
	c.Update(frame, input(core.ActionFire))

	before := c.Snapshot()
	s := &recordingSurface{}
	c.Draw(s)
	c.Draw(s)
	after := c.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("Draw() changed the session state")
	}
	if len(s.texts) != 2 || s.texts[0].Text != "SCORE:0" {
		t.Errorf("texts = %v, expected the HUD twice", s.texts)
	}
	if len(s.drawables) == 0 {
		t.Error("Draw() should emit wave drawables")
	}
}

func TestComposeOverlay(t *testing.T) {
	screen := config.DefaultInvadersConfig().Screen

	tests := []struct {
		state State
		snap  Snapshot
		want  string
	}{
		{StateInactive, Snapshot{}, TextPressAnyKey},
		{StateNewWave, Snapshot{}, TextGetReady},
		{StatePaused, Snapshot{Lives: 1}, "PRESS S TO CONTINUE 1 LIFE LEFT"},
		{StateContinue, Snapshot{Lives: 1}, TextGetReady},
		{StateComplete, Snapshot{Outcome: int(OutcomeLost)}, TextGameOver},
		{StateComplete, Snapshot{Outcome: int(OutcomeWon)}, TextWon},
	}

	for _, tc := range tests {
		m := composeOverlay(screen, tc.state, tc.snap)
		if m == nil {
			t.Errorf("composeOverlay(%s) = nil, expected %q", tc.state, tc.want)
			continue
		}
		if m.Text != tc.want {
			t.Errorf("composeOverlay(%s) = %q, expected %q", tc.state, m.Text, tc.want)
		}
		if m.X != 400 || m.Y != 350 {
			t.Errorf("overlay anchor = (%v, %v), expected (400, 350)", m.X, m.Y)
		}
	}

	if m := composeOverlay(screen, StateActive, Snapshot{}); m != nil {
		t.Errorf("composeOverlay(active) = %q, expected nil", m.Text)
	}

	hud := composeHUD(screen, StateActive, Snapshot{Score: 120})
	if hud == nil || hud.Text != "SCORE:120" {
		t.Fatalf("composeHUD() = %v, expected SCORE:120", hud)
	}
	if hud.Y != 630 {
		t.Errorf("HUD Y = %v, expected 630", hud.Y)
	}
	if composeHUD(screen, StatePaused, Snapshot{}) != nil {
		t.Error("HUD should be hidden outside active play")
	}
}
