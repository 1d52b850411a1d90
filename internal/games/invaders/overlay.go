package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Overlay texts.
const (
	TextPressAnyKey = "PRESS ANY KEY TO PLAY"
	TextGetReady    = "GET READY"
	TextGameOver    = "GAME OVER"
	TextWon         = "CONGRADULATION YOU WON!!"
)

const messageFontSize = 30

// composeOverlay returns the centered message for a non-Active state, or nil
// while Active.
func composeOverlay(screen config.InvadersScreen, state State, snap Snapshot) *Message {
	var text string
	switch state {
	case StateActive:
		return nil
	case StateInactive:
		text = TextPressAnyKey
	case StateNewWave, StateContinue:
		text = TextGetReady
	case StatePaused:
		text = fmt.Sprintf("PRESS S TO CONTINUE %d LIFE LEFT", snap.Lives)
	case StateComplete:
		text = TextGameOver
		if Outcome(snap.Outcome) == OutcomeWon {
			text = TextWon
		}
	}
	return &Message{
		Text:      text,
		X:         screen.Width / 2,
		Y:         screen.Height / 2,
		FontSize:  messageFontSize,
		LineColor: MessageLine,
		FillColor: MessageFill,
	}
}

// composeHUD returns the score label shown during play, or nil otherwise.
func composeHUD(screen config.InvadersScreen, state State, snap Snapshot) *Message {
	if state != StateActive {
		return nil
	}
	return &Message{
		Text:      fmt.Sprintf("SCORE:%d", snap.Score),
		X:         screen.Width / 6,
		Y:         screen.Height - screen.Height/10,
		FontSize:  messageFontSize,
		LineColor: HUDColor,
		FillColor: HUDColor,
	}
}
