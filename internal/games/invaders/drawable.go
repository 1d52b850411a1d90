package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// DrawKind tags the variant held by a Drawable.
type DrawKind int

const (
	KindSprite DrawKind = iota // Image source over a rectangle
	KindFill                   // Solid color rectangle
	KindPath                   // Multi-point line
)

// Colors of the non-sprite entities.
const (
	PlayerBoltColor = core.ColorBrightYellow
	AlienBoltColor  = core.ColorBrightRed
	MessageLine     = core.ColorCyan
	MessageFill     = core.ColorBrightYellow
	HUDColor        = core.ColorBrightWhite
)

// Drawable describes one visible entity. Which fields are meaningful
// depends on Kind.
type Drawable struct {
	Kind DrawKind

	// Sprite and fill: center and size in world units.
	X, Y          float64
	Width, Height float64

	Source string     // Sprite only
	Color  core.Color // Fill and path

	Points    []float64 // Path only: x1, y1, x2, y2, ...
	LineWidth float64   // Path only
}

// Message is a text label anchored at its center.
type Message struct {
	Text      string
	X, Y      float64
	FontSize  int
	LineColor core.Color
	FillColor core.Color
}

// Surface is the render collaborator.
type Surface interface {
	Draw(d Drawable)
	DrawText(m Message)
}

func spriteOf(e Entity) Drawable {
	return Drawable{Kind: KindSprite, X: e.X, Y: e.Y, Width: e.Width, Height: e.Height, Source: e.Source}
}

func fillOf(e Entity, c core.Color) Drawable {
	return Drawable{Kind: KindFill, X: e.X, Y: e.Y, Width: e.Width, Height: e.Height, Color: c}
}

func pathOf(line DefenseLine) Drawable {
	return Drawable{Kind: KindPath, Points: line.Points(), Color: line.Color, LineWidth: line.LineWidth}
}
