package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Entity is a positioned, sized object in world units.
// X and Y are the center; y grows upward.
type Entity struct {
	X, Y          float64
	Width, Height float64
	Source        string // Visual source identifier, opaque to the simulation
}

func newEntity(x, y, w, h float64, source string) (Entity, error) {
	if w <= 0 || h <= 0 {
		return Entity{}, fmt.Errorf("invaders: %s size %.1fx%.1f must be positive", source, w, h)
	}
	return Entity{X: x, Y: y, Width: w, Height: h, Source: source}, nil
}

// Bounds returns the entity's bounding rectangle.
func (e Entity) Bounds() core.Rect {
	return core.CenterRect(e.X, e.Y, e.Width, e.Height)
}

// Left returns the x-coordinate of the left edge.
func (e Entity) Left() float64 { return e.X - e.Width/2 }

// Right returns the x-coordinate of the right edge.
func (e Entity) Right() float64 { return e.X + e.Width/2 }

// Top returns the y-coordinate of the top edge.
func (e Entity) Top() float64 { return e.Y + e.Height/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (e Entity) Bottom() float64 { return e.Y - e.Height/2 }

// Collides reports whether the two entities' bounding boxes overlap.
func (e Entity) Collides(other Entity) bool {
	return e.Bounds().Intersects(other.Bounds())
}

// Ship is the player avatar. It lives for one life.
type Ship struct {
	Entity
}

// Alien is one cell of the formation.
type Alien struct {
	Entity
	Skin   string
	Points int // Score awarded when destroyed
}

// Bolt is a projectile with a fixed vertical velocity.
// Player bolts move up (positive velocity), alien bolts move down.
type Bolt struct {
	Entity
	Velocity float64
}

// Move advances the bolt by its velocity.
func (b *Bolt) Move() {
	b.Y += b.Velocity
}

// IsPlayerBolt reports whether the bolt was fired by the ship.
func (b *Bolt) IsPlayerBolt() bool {
	return b.Velocity > 0
}

// DefenseLine is the horizontal boundary aliens must not reach.
type DefenseLine struct {
	X1, X2    float64
	Y         float64
	Color     core.Color
	LineWidth float64
}

// Points returns the line endpoints as a flat x1, y1, x2, y2 list.
func (d DefenseLine) Points() []float64 {
	return []float64{d.X1, d.Y, d.X2, d.Y}
}
