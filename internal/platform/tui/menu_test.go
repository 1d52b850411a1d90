package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, "stub", testConfig())

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamp at 0", m.cursor)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("selection should quit the menu program")
	}
	if got := next.(MenuModel).Choice(); got != ChoiceScores {
		t.Errorf("Choice() = %v, want ChoiceScores", got)
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	store.SaveScore(storage.ScoreEntry{GameID: "stub", Score: 420})

	m := NewMenuModel(store, "stub", testConfig())
	view := m.View()
	if !strings.Contains(view, "HIGH SCORE 420") {
		t.Errorf("view missing high score:\n%s", view)
	}
	if !strings.Contains(view, "High Scores") {
		t.Error("view missing menu entry")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(nil, "stub", testConfig())
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if m.Choice() != ChoiceQuit {
		t.Errorf("Choice() = %v, want ChoiceQuit", m.Choice())
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := openStore(t)
	store.SaveScore(storage.ScoreEntry{GameID: "stub", Score: 100})
	store.SaveScore(storage.ScoreEntry{GameID: "stub", Score: 1080, Won: true})

	m := NewScoreboardModel(store, "stub", "Stub", 80, 24)
	if m.Tab() != TabAllRuns || len(m.Scores()) != 2 {
		t.Fatalf("tab %v with %d scores", m.Tab(), len(m.Scores()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Tab() != TabVictories || len(m.Scores()) != 1 {
		t.Fatalf("tab %v with %d scores", m.Tab(), len(m.Scores()))
	}
	if !strings.Contains(m.View(), "1080") {
		t.Error("victories view should list the winning run")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if next.(ScoreboardModel).Tab() != TabAllRuns {
		t.Error("shift+tab should go back to all runs")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "stub", "Stub", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("expected empty message")
	}
}
