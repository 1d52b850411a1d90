package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Alien Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Screen: InvadersScreen{
			Width:  800,
			Height: 700,
		},
		Aliens: InvadersAliens{
			Rows:         5,
			Cols:         12,
			Width:        33,
			Height:       33,
			HSep:         16,
			VSep:         16,
			Ceiling:      100,
			HWalk:        8,
			VWalk:        16,
			StepInterval: 1.0,
			RowSkins:     []string{"alien3", "alien2", "alien2", "alien1", "alien1"},
		},
		Ship: InvadersShip{
			Width:    44,
			Height:   44,
			Bottom:   32,
			Movement: 5,
			Image:    "ship",
		},
		Bolts: InvadersBolts{
			Width:          4,
			Height:         16,
			Speed:          10,
			FireRatePeriod: 5,
		},
		Defense: InvadersDefense{
			Y:         100,
			LineWidth: 2,
			Color:     "bright_green",
		},
		Gameplay: InvadersGameplay{
			Lives: 3,
			Sound: true,
		},
		Scoring: InvadersScoring{
			Skins: map[string]int{
				"alien3": 30,
				"alien2": 20,
				"alien1": 10,
			},
		},
	}
}
