package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	printScores(&buf, "Victories", []storage.ScoreEntry{
		{Score: 1080, Player: "alice", Won: true, CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
		{Score: 300, Player: "bob"},
	})

	out := buf.String()
	for _, want := range []string{"Victories", "1080", "alice", "won", "2026-01-02 03:04", "lost"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	printScores(&buf, "All runs", nil)
	if !strings.Contains(buf.String(), "none yet") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestSetupRejectsBadFlags(t *testing.T) {
	defer func() { flagFPS, flagDifficulty = 60, "" }()

	flagFPS = 0
	if err := setup(nil, nil); err == nil {
		t.Error("expected error for zero fps")
	}

	flagFPS = 60
	flagDifficulty = "impossible"
	if err := setup(nil, nil); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"list": false, "play": false, "menu": false, "serve": false, "scores": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
