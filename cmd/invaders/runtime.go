package main

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// logger reports CLI problems on stderr, outside the TUI.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "invaders",
		Level:  log.WarnLevel,
	})

	// gameLogger receives in-game debug logs; discarded without --log-file.
	gameLogger = log.New(io.Discard)
	logFile    *os.File

	sounds     *audio.SoundManager
	soundsOnce sync.Once
)

// openLog routes debug logging to path when set.
func openLog(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	logFile = f
	gameLogger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           log.DebugLevel,
	})
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil and keeps going.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// newGame creates the invaders game with sound wired in.
func newGame() (registry.Game, error) {
	game, err := registry.Create(invaders.GameID)
	if err != nil {
		return nil, err
	}
	if g, ok := game.(*invaders.Game); ok {
		if sm := soundManager(); sm != nil {
			g.SetEventSink(invaders.EventSinkFunc(func(e invaders.Event) {
				sm.Play(string(e))
			}))
		}
	}
	return game, nil
}

// soundManager opens the speaker once per process. Returns nil when no
// audio device is available.
func soundManager() *audio.SoundManager {
	soundsOnce.Do(func() {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			gameLogger.Warn("audio unavailable", "error", err)
			return
		}
		sounds = sm
	})
	return sounds
}

func closeAudio() {
	if sounds != nil {
		sounds.Cleanup()
	}
}
