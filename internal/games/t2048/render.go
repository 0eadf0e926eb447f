package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// tileColors maps tile powers to colors; larger powers reuse the last entry.
var tileColors = []core.Color{
	core.ColorDefault,
	core.ColorWhite,        // 2
	core.ColorBrightWhite,  // 4
	core.ColorYellow,       // 8
	core.ColorOrange,       // 16
	core.ColorBrightRed,    // 32
	core.ColorRed,          // 64
	core.ColorBrightYellow, // 128
	core.ColorGreen,        // 256
	core.ColorBrightGreen,  // 512
	core.ColorCyan,         // 1024
	core.ColorBrightCyan,   // 2048
	core.ColorBlue,         // 4096
	core.ColorBrightBlue,   // 8192
	core.ColorMagenta,      // 16384
	core.ColorBrightMagenta,
}

// TileColor returns the display color for a cell.
func TileColor(c Cell) core.Color {
	p := c.Power()
	if p >= len(tileColors) {
		return tileColors[len(tileColors)-1]
	}
	return tileColors[p]
}

// tileLabel formats a tile value to fit inside a cell.
func tileLabel(c Cell) string {
	s := strconv.Itoa(c.Value())
	if len(s) > cellWidth-1 {
		s = "2^" + strconv.Itoa(c.Power())
	}
	return s
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	if g.board == nil {
		return
	}

	boardW := g.size*cellWidth + 1
	boardH := g.size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, move count and max tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(fitX(dst, boardX+(boardW-len(title))/2, len(title)), 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(core.Max(boardX, boardX+boardW-len(maxStr)), 1, maxStr)

	emptyStr := fmt.Sprintf("Empty: %d", g.board.EmptyCount())
	dst.DrawText(boardX+(boardW-len(emptyStr))/2, 2, emptyStr)
}

// renderBoard draws the grid with the highest row on top, so that
// moving up slides tiles toward the top of the screen.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.size
	for y := 0; y < n+1; y++ {
		for x := 0; x < n+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridCorner(x, y, n))
			if x < n {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < n {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	g.board.ForEachCell(func(p Position) {
		cell := g.board.at(p)
		if cell.IsEmpty() {
			return
		}

		screenRow := n - 1 - p.Row
		cellX := boardX + p.Column*cellWidth + 1
		cellY := boardY + screenRow*cellHeight + 1

		label := tileLabel(cell)
		padLeft := core.Max(0, (cellWidth-1-len(label))/2)
		dst.DrawTextColor(cellX+padLeft, cellY, label, TileColor(cell))
	})
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(
		fitX(dst, centerX-boxW/2, boxW),
		core.Clamp(centerY-boxH/2, 0, core.Max(0, dst.Height()-boxH)),
		boxW, boxH,
	)

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ')
	}
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}

// fitX shifts x so that a span of width w stays on screen where it fits.
func fitX(dst *core.Screen, x, w int) int {
	return core.Clamp(x, 0, core.Max(0, dst.Width()-w))
}
