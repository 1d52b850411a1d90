// Package invaders implements Alien Invaders: a ship defending against a
// marching alien formation, with a session state machine around each wave.
package invaders

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "invaders"

// Minimum terminal size for a readable formation.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// muted starts every wave with sound events off
var muted bool

// logger receives session transitions; discarded unless SetLogger is called
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetMuted turns initial sound off for new sessions.
func SetMuted(m bool) {
	muted = m
}

// SetLogger routes game logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig resolves the configuration the way Reset does.
func LoadConfig() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	if muted {
		cfg.Gameplay.Sound = false
	}
	return cfg, cfg.Validate()
}

// Game adapts a session Controller to the registry.Game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	rng     *SimpleRNG
	ctrl    *Controller
	events  EventSink

	screenTooSmall bool
}

// New creates a new Alien Invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invaders"
}

// SetEventSink routes sound events to sink. Takes effect on the next Reset.
func (g *Game) SetEventSink(sink EventSink) {
	g.events = sink
}

// Reset starts a new session in the Inactive state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultInvadersConfig()
		if muted {
			cfg.Gameplay.Sound = false
		}
	}
	g.cfg = cfg

	g.rng = NewSimpleRNG(runtime.Seed)
	ctrl, err := NewController(cfg, g.rng, g.events)
	if err != nil {
		// Defaults always validate.
		panic(err)
	}
	ctrl.OnTransition(g.logTransition)
	g.ctrl = ctrl

	logger.Debug("session reset", "seed", runtime.Seed, "difficulty", difficultyPreset, "sound", cfg.Gameplay.Sound)
}

// Resize follows a terminal resize without restarting the session.
// The world is fixed-size, so only the screen mapping changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

func (g *Game) logTransition(from, to State) {
	logger.Debug("state change", "from", from, "to", to, "tick", g.ctrl.Tick())
	if to != StateComplete {
		return
	}
	w := g.ctrl.Wave()
	switch g.ctrl.Outcome() {
	case OutcomeWon:
		logger.Info("wave cleared", "score", w.Score(), "lives", w.Lives())
	case OutcomeLost:
		logger.Info("game over", "score", w.Score(), "aliens_left", w.Grid().CountAlive())
	}
}

// Step advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.screenTooSmall {
		g.ctrl.Update(g.runtime.TickSeconds(), in)
	}
	return core.StepResult{State: g.State()}
}

// Render draws the session onto the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.ctrl.Draw(NewScreenSurface(dst, g.cfg.Screen.Width, g.cfg.Screen.Height))

	if w := g.ctrl.Wave(); w != nil {
		status := fmt.Sprintf("LIVES:%d", w.Lives())
		if !w.Sound() {
			status += "  MUTED"
		}
		dst.DrawTextColored(dst.Width()-len(status)-1, 0, status, core.ColorGray)
	}
	if g.ctrl.State() == StateComplete {
		dst.DrawTextCentered(dst.Height()/2+2, "R restart  Q quit")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Lives:    g.cfg.Gameplay.Lives,
		GameOver: g.ctrl.State() == StateComplete,
		Won:      g.ctrl.Outcome() == OutcomeWon,
		Paused:   g.ctrl.State() == StatePaused,
	}
	if w := g.ctrl.Wave(); w != nil {
		st.Score = w.Score()
		st.Lives = w.Lives()
	}
	return st
}

// Controller exposes the session for inspection.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}
