package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// stubGame records inputs and ends after a fixed number of steps.
type stubGame struct {
	resets  int
	steps   int
	endAt   int
	score   int
	won     bool
	inputs  []core.InputFrame
	resized [2]int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	over := g.endAt > 0 && g.steps >= g.endAt
	return core.GameState{Score: g.score, GameOver: over, Won: over && g.won}
}

func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// fixedClock returns a model whose clock is controlled by the test.
func fixedClock(m Model, now *time.Time) Model {
	m.now = func() time.Time { return *now }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestModelFeedsHeldKeys(t *testing.T) {
	g := &stubGame{}
	now := time.Unix(100, 0)
	m := fixedClock(NewModel(g, nil, testConfig(), ModelOptions{HoldWindow: 100 * time.Millisecond}), &now)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg(now))
	now = now.Add(50 * time.Millisecond)
	m = update(t, m, TickMsg(now))
	now = now.Add(100 * time.Millisecond)
	m = update(t, m, TickMsg(now))

	if len(g.inputs) != 3 {
		t.Fatalf("steps = %d, want 3", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[1].Has(core.ActionLeft) {
		t.Error("Left should be held within the hold window")
	}
	if g.inputs[2].Has(core.ActionLeft) {
		t.Error("Left should be released after the hold window")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig(), ModelOptions{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{endAt: 2, score: 1080, won: true}
	m := NewModel(g, store, testConfig(), ModelOptions{Player: "tester"})
	m.Init()

	for range 5 {
		m = update(t, m, TickMsg(time.Now()))
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if s := scores[0]; s.Score != 1080 || !s.Won || s.Player != "tester" || s.RunID != m.runID {
		t.Errorf("saved %+v", s)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &stubGame{endAt: 1}
	m := NewModel(g, store, testConfig(), ModelOptions{})
	m.Init()
	m = update(t, m, TickMsg(time.Now()))

	if high, _ := store.HighScore("stub"); high != 0 {
		t.Errorf("zero score should not be saved, high = %d", high)
	}
	if !m.GameState().GameOver {
		t.Error("expected game over")
	}
}

func TestModelRestartOnlyWhenOver(t *testing.T) {
	g := &stubGame{endAt: 2}
	m := NewModel(g, nil, testConfig(), ModelOptions{})
	m.Init()
	r := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}

	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, r)
	if g.resets != 1 {
		t.Fatalf("restart before game over: resets = %d", g.resets)
	}

	m = update(t, m, TickMsg(time.Now()))
	firstRun := m.runID
	m = update(t, m, r)
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.runID == firstRun {
		t.Error("restart should start a new run id")
	}
	if m.GameState().GameOver {
		t.Error("state should be refreshed after restart")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{endAt: 1}
	m := NewModel(g, nil, testConfig(), ModelOptions{Embedded: true})
	m.Init()
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m = update(t, m, esc)
	if m.BackToMenu() {
		t.Fatal("back is ignored while playing")
	}

	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, esc)
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("embedded back should return to menu without quitting")
	}
}

func TestModelResize(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), ModelOptions{})
	m.Init()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != 1 {
		t.Error("a Resizer should not be reset on resize")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("view should show the game render")
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'A', core.ColorRed)
	s.SetColored(1, 0, 'B', core.ColorRed)
	s.Set(2, 0, 'C')

	out := RenderScreen(s)
	for _, want := range []string{"A", "B", "C"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen missing %q in %q", want, out)
		}
	}
}
