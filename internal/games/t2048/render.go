package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3 // Title, status and blank line above the board
	minInnerW  = 4 // Minimum tile text width
)

// tileColors maps tile values to colors; larger values reuse the last entry.
var tileColors = []core.Color{
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorBrightRed,     // 32
	core.ColorRed,           // 64
	core.ColorBrightYellow,  // 128
	core.ColorBrightGreen,   // 256
	core.ColorGreen,         // 512
	core.ColorBrightCyan,    // 1024
	core.ColorCyan,          // 2048
	core.ColorBrightBlue,    // 4096
	core.ColorBrightMagenta, // 8192 and up
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	if value <= 0 {
		return core.ColorGray
	}
	idx := -1
	for v := value; v > 1; v >>= 1 {
		idx++
	}
	return tileColors[core.Clamp(idx, 0, len(tileColors)-1)]
}

// layout holds the computed board geometry for one frame.
type layout struct {
	cellW  int
	boardW int
	boardH int
	boardX int
	boardY int
}

func (g *Game) computeLayout(snap Snapshot) layout {
	inner := core.Max(minInnerW, len(strconv.Itoa(core.Max(snap.MaxTile, snap.WinTarget))))
	cellW := inner + 3 // border plus one space padding each side
	l := layout{
		cellW:  cellW,
		boardW: snap.Cols*cellW + 1,
		boardH: snap.Rows*cellHeight + 1,
	}
	l.boardX = (g.screenW - l.boardW) / 2
	l.boardY = hudHeight
	return l
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	if g.session == nil {
		return
	}
	l := g.computeLayout(g.session.Snapshot())
	g.tooSmall = g.screenW < l.boardW || g.screenH < l.boardY+l.boardH+2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	l := g.computeLayout(snap)

	g.renderHUD(dst, snap, l)
	g.renderBoard(dst, snap, l)
	g.renderOverlays(dst, snap, l)

	dst.DrawTextCentered(l.boardY+l.boardH+1, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and the status line.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, l layout) {
	dst.DrawTextCentered(0, "2 0 4 8")

	left := fmt.Sprintf("%dx%d  Target: %d", snap.Rows, snap.Cols, snap.WinTarget)
	dst.DrawText(l.boardX, 1, left)

	right := fmt.Sprintf("Moves: %d  Max: %d", snap.Moves, snap.MaxTile)
	rightX := core.Max(l.boardX, l.boardX+l.boardW-len(right))
	dst.DrawText(rightX, 1, right)
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, snap Snapshot, l layout) {
	for y := range snap.Rows + 1 {
		for x := range snap.Cols + 1 {
			px := l.boardX + x*l.cellW
			py := l.boardY + y*cellHeight

			dst.SetColored(px, py, gridCorner(x, y, snap.Cols, snap.Rows), core.ColorGray)

			if x < snap.Cols {
				for i := 1; i < l.cellW; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < snap.Rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y, row := range snap.Board {
		for x, val := range row {
			if val == 0 {
				continue
			}
			valStr := strconv.Itoa(val)
			cellX := l.boardX + x*l.cellW + 1
			cellY := l.boardY + y*cellHeight + 1
			pad := core.Max(0, (l.cellW-1-len(valStr))/2)
			dst.DrawTextColored(cellX+pad, cellY, valStr, TileColor(val))
		}
	}
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws the result box once a game has ended.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot, l layout) {
	if !snap.Finished() {
		return
	}

	area := core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH)
	maxStr := fmt.Sprintf("Max tile: %d  Moves: %d", snap.MaxTile, snap.Moves)
	hint := "R: play again | Esc/Q: quit"

	switch snap.Outcome {
	case OutcomeWon:
		g.drawOverlay(dst, area, "YOU WIN!", fmt.Sprintf("Reached %d", snap.WinTarget), maxStr, hint)
	case OutcomeLost:
		g.drawOverlay(dst, area, "GAME OVER", "No moves left", maxStr, hint)
	}
}

// drawOverlay draws a centered text box over area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := area.CenteredIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
