// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrInvalidConfig is returned when a configuration cannot build a playable wave.
var ErrInvalidConfig = errors.New("invalid config")

// InvadersConfig contains all configuration for the Alien Invaders game.
type InvadersConfig struct {
	Screen   InvadersScreen   `yaml:"screen"`
	Aliens   InvadersAliens   `yaml:"aliens"`
	Ship     InvadersShip     `yaml:"ship"`
	Bolts    InvadersBolts    `yaml:"bolts"`
	Defense  InvadersDefense  `yaml:"defense"`
	Gameplay InvadersGameplay `yaml:"gameplay"`
	Scoring  InvadersScoring  `yaml:"scoring"`
}

// InvadersScreen defines the world dimensions. The y axis grows upward.
type InvadersScreen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersAliens defines the alien grid layout and formation walk.
type InvadersAliens struct {
	Rows         int      `yaml:"rows"`
	Cols         int      `yaml:"cols"`
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	HSep         float64  `yaml:"h_sep"`
	VSep         float64  `yaml:"v_sep"`
	Ceiling      float64  `yaml:"ceiling"`       // Gap between the world top and the top row
	HWalk        float64  `yaml:"h_walk"`        // Lateral step per formation move
	VWalk        float64  `yaml:"v_walk"`        // Drop when the formation hits a side
	StepInterval float64  `yaml:"step_interval"` // Seconds between formation moves
	RowSkins     []string `yaml:"row_skins"`     // Skin per row, top row first; cycles when shorter than Rows
}

// InvadersShip defines the player ship.
type InvadersShip struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Bottom   float64 `yaml:"bottom"` // Center y of the ship
	Movement float64 `yaml:"movement"`
	Image    string  `yaml:"image"`
}

// InvadersBolts defines projectile parameters.
type InvadersBolts struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	FireRatePeriod int     `yaml:"fire_rate_period"` // Countdown is drawn from [1, period)
}

// InvadersDefense defines the horizontal defense line.
type InvadersDefense struct {
	Y         float64 `yaml:"y"`
	LineWidth float64 `yaml:"line_width"`
	Color     string  `yaml:"color"`
}

// InvadersGameplay defines session-level rules.
type InvadersGameplay struct {
	Lives int  `yaml:"lives"`
	Sound bool `yaml:"sound"` // Initial sound flag
}

// InvadersScoring maps alien skins to points.
type InvadersScoring struct {
	Skins map[string]int `yaml:"skins"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a DifficultyPreset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// SkinForRow returns the skin of the given row, top row first. A table
// shorter than Aliens.Rows repeats from its first entry, so row
// len(RowSkins) gets RowSkins[0] again.
func (c InvadersConfig) SkinForRow(row int) string {
	if len(c.Aliens.RowSkins) == 0 {
		return ""
	}
	return c.Aliens.RowSkins[row%len(c.Aliens.RowSkins)]
}

// PointsForSkin returns the score awarded for destroying an alien of the skin.
func (c InvadersConfig) PointsForSkin(skin string) int {
	return c.Scoring.Skins[skin]
}

// Validate reports whether the configuration can build a playable wave.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size %.0fx%.0f must be positive", c.Screen.Width, c.Screen.Height)
	check(c.Aliens.Rows > 0 && c.Aliens.Cols > 0, "alien grid %dx%d must be non-empty", c.Aliens.Rows, c.Aliens.Cols)
	check(c.Aliens.Width > 0 && c.Aliens.Height > 0, "alien size must be positive")
	check(c.Aliens.HSep >= 0 && c.Aliens.VSep >= 0, "alien separations must not be negative")
	check(c.Aliens.StepInterval > 0, "step interval %.3f must be positive", c.Aliens.StepInterval)
	check(c.Aliens.HWalk > 0 && c.Aliens.VWalk > 0, "alien walk distances must be positive")
	check(len(c.Aliens.RowSkins) > 0, "row skin table must not be empty")
	check(c.Ship.Width > 0 && c.Ship.Height > 0, "ship size must be positive")
	check(c.Ship.Movement > 0, "ship movement must be positive")
	check(c.Bolts.Width > 0 && c.Bolts.Height > 0, "bolt size must be positive")
	check(c.Bolts.Speed > 0, "bolt speed must be positive")
	check(c.Bolts.FireRatePeriod >= 2, "fire rate period %d must be at least 2", c.Bolts.FireRatePeriod)
	check(c.Gameplay.Lives >= 1, "lives %d must be at least 1", c.Gameplay.Lives)

	for _, skin := range c.Aliens.RowSkins {
		pts, ok := c.Scoring.Skins[skin]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("skin %q has no score entry", skin))
		case pts <= 0:
			errs = append(errs, fmt.Errorf("skin %q scores %d, must be positive", skin, pts))
		}
	}
	if c.Defense.Color != "" {
		if _, ok := core.ParseColor(c.Defense.Color); !ok {
			errs = append(errs, fmt.Errorf("unknown defense line color %q", c.Defense.Color))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
