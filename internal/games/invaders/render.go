package invaders

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sprite glyphs by visual source. Glyphs are centered in the sprite's cells.
var spriteGlyphs = map[string]string{
	"alien1": "/o\\",
	"alien2": "{@}",
	"alien3": "<W>",
	"ship":   "/^\\",
}

var spriteColors = map[string]core.Color{
	"alien1": core.ColorGreen,
	"alien2": core.ColorCyan,
	"alien3": core.ColorMagenta,
	"ship":   core.ColorBrightWhite,
}

// Visual characters for rendering
const (
	UnknownSpriteChar = '#'
	BoltChar          = '|'
	LineChar          = '─'
)

// ScreenSurface draws world-space drawables onto a terminal screen.
// The world (y up) is scaled to fill the whole screen (y down).
type ScreenSurface struct {
	dst            *core.Screen
	worldW, worldH float64
}

// NewScreenSurface creates a surface mapping a worldW x worldH world onto dst.
func NewScreenSurface(dst *core.Screen, worldW, worldH float64) *ScreenSurface {
	return &ScreenSurface{dst: dst, worldW: worldW, worldH: worldH}
}

// CellX converts a world x to a screen column.
func (s *ScreenSurface) CellX(x float64) int {
	return int(math.Floor(x / s.worldW * float64(s.dst.Width())))
}

// CellY converts a world y to a screen row.
func (s *ScreenSurface) CellY(y float64) int {
	return int(math.Floor((s.worldH - y) / s.worldH * float64(s.dst.Height())))
}

// cellBox converts a world rectangle to the cells it covers, at least 1x1.
func (s *ScreenSurface) cellBox(cx, cy, w, h float64) core.Box {
	r := core.CenterRect(cx, cy, w, h)
	x0, x1 := s.CellX(r.X), s.CellX(r.Right())
	y0, y1 := s.CellY(r.Top()), s.CellY(r.Y)
	return core.NewBox(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Draw paints one drawable.
func (s *ScreenSurface) Draw(d Drawable) {
	switch d.Kind {
	case KindSprite:
		s.drawSprite(d)
	case KindFill:
		s.dst.DrawRectColored(s.cellBox(d.X, d.Y, d.Width, d.Height), BoltChar, d.Color)
	case KindPath:
		s.drawPath(d)
	}
}

func (s *ScreenSurface) drawSprite(d Drawable) {
	box := s.cellBox(d.X, d.Y, d.Width, d.Height)
	glyph, ok := spriteGlyphs[d.Source]
	if !ok {
		s.dst.DrawRectColored(box, UnknownSpriteChar, core.ColorGray)
		return
	}
	color := spriteColors[d.Source]
	row := s.CellY(d.Y)
	col := s.CellX(d.X) - utf8.RuneCountInString(glyph)/2
	s.dst.DrawTextColored(col, row, glyph, color)
}

// drawPath draws each segment of the path as a horizontal run at its start row.
func (s *ScreenSurface) drawPath(d Drawable) {
	for i := 0; i+3 < len(d.Points); i += 2 {
		x0, y0 := s.CellX(d.Points[i]), s.CellY(d.Points[i+1])
		x1 := s.CellX(d.Points[i+2])
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		s.dst.DrawHLine(x0, y0, core.Max(1, x1-x0), LineChar, d.Color)
	}
}

// DrawText draws the message centered on its anchor.
func (s *ScreenSurface) DrawText(m Message) {
	row := s.CellY(m.Y)
	col := s.CellX(m.X) - utf8.RuneCountInString(m.Text)/2
	col = core.Clamp(col, 0, core.Max(0, s.dst.Width()-utf8.RuneCountInString(m.Text)))
	s.dst.DrawTextColored(col, row, m.Text, m.LineColor)
}
