package game

import (
	"fmt"
	"math"

	"github.com/dkotenko/starcatch/internal/core"
)

// One terminal cell covers CellW x CellH simulation units. The 1:2 ratio
// compensates for the aspect of terminal glyphs so circles look round.
const (
	CellW = 10.0
	CellH = 20.0
)

// Visual characters for rendering
const (
	PaddleChar      = '█'
	CollectibleChar = '✦'
	GroundChar      = '─'
)

// Hazard glyphs cycled by rotation angle.
var hazardGlyphs = []rune{'◆', '◈', '◇', '◈'}

// FieldForScreen converts a terminal size in cells to playfield dimensions
// in simulation units.
func FieldForScreen(cols, rows int) core.Size {
	return core.Size{W: float64(cols) * CellW, H: float64(rows) * CellH}
}

// Render draws the current simulation state into the cell buffer.
// Read-only over session state; the driver calls it once per tick after
// the update step.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	for i := range s.collectibles {
		c := &s.collectibles[i]
		s.drawBlob(dst, c.X, c.Y, c.Radius, CollectibleChar, core.ColorBrightYellow)
	}
	for i := range s.hazards {
		h := &s.hazards[i]
		s.drawBlob(dst, h.X, h.Y, h.Radius, hazardGlyph(h.Rotation), core.ColorBrightRed)
	}

	s.drawPlayer(dst)
	s.drawHUD(dst)

	switch s.phase {
	case PhaseMenu:
		s.drawCenteredMessage(dst, "S T A R C A T C H",
			"Enter to start  |  ←/→ or mouse to move")
	case PhasePaused:
		s.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseOver:
		s.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Press R to restart", s.score, s.highScore))
	}
}

// hazardGlyph picks a glyph by rotation quadrant so spinning is visible.
func hazardGlyph(rotation float64) rune {
	idx := int(rotation/(math.Pi/4)) % len(hazardGlyphs)
	if idx < 0 {
		idx += len(hazardGlyphs)
	}
	return hazardGlyphs[idx]
}

// drawBlob rasterizes a circle in simulation units onto the cell grid.
func (s *Session) drawBlob(dst *core.Screen, x, y, radius float64, glyph rune, color core.Color) {
	cx := int(x / CellW)
	for dy := -1; dy <= 1; dy++ {
		oy := float64(dy) * CellH
		if oy*oy > radius*radius {
			continue
		}
		half := int(math.Sqrt(radius*radius-oy*oy) / CellW)
		row := int((y + oy) / CellH)
		for dx := -half; dx <= half; dx++ {
			dst.SetCell(cx+dx, row, glyph, color)
		}
	}
}

// drawPlayer renders the paddle.
func (s *Session) drawPlayer(dst *core.Screen) {
	row := int(s.player.Y / CellH)
	left := int(s.player.X / CellW)
	width := core.MaxInt(1, int(s.player.W/CellW))
	dst.DrawHLine(left, row, width, PaddleChar, core.ColorBrightCyan)
}

// drawHUD renders the score line and the bottom edge marker.
func (s *Session) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d   Best: %d ", s.score, s.highScore)
	dst.DrawText(2, 0, hud, core.ColorBrightWhite)

	if s.phase == PhaseRunning {
		rate := fmt.Sprintf(" Rate: %.2fs ", s.spawner.IntervalMs()/1000)
		dst.DrawText(dst.Width()-len(rate)-2, 0, rate, core.ColorGray)
	}

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (s *Session) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.MaxInt(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorGray)
}
