package tetris

import (
	"fmt"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

const (
	blockRune = '█'
	ghostRune = '░'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.Snapshot()

	totalW := boardPixelW + 2 + panelW
	boardX := (g.screenW - totalW) / 2
	boardY := 1
	panelX := boardX + boardPixelW + 2

	if g.toast != "" {
		dst.DrawTextCentered(0, g.toast, core.ColorFuchsia)
	} else {
		dst.DrawTextCentered(0, "T E T R I S", core.ColorPurple)
	}

	dst.DrawBox(core.NewRect(boardX, boardY, boardPixelW, boardPixelH), core.ColorGrape)
	originX, originY := boardX+1, boardY+1

	renderBoard(dst, &snap.Board, originX, originY)
	if snap.Current != nil && !snap.GameOver {
		if gy, ok := snap.GhostY(); ok && gy != snap.Current.Y {
			renderShape(dst, snap.Current.Shape, snap.Current.X, gy, originX, originY, ghostRune, &snap.Board)
		}
		renderShape(dst, snap.Current.Shape, snap.Current.X, snap.Current.Y, originX, originY, blockRune, nil)
	}

	g.renderPanel(dst, snap, panelX, boardY)
	g.renderOverlays(dst, snap, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minScreenW, minScreenH, g.screenW, g.screenH), core.ColorGray)
}

func renderBoard(dst *core.Screen, b *Board, ox, oy int) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			v := b[y][x]
			px, py := ox+x*cellW, oy+y
			if v == Empty {
				dst.SetColor(px+1, py, '·', core.ColorDim)
				continue
			}
			c := ColorOf(v)
			dst.SetColor(px, py, blockRune, c)
			dst.SetColor(px+1, py, blockRune, c)
		}
	}
}

// renderShape draws shape with its top-left at board cell (x, y). Rows
// above the visible board are skipped. When under is non-nil, cells
// already occupied on it are left alone.
func renderShape(dst *core.Screen, shape Shape, x, y, ox, oy int, r rune, under *Board) {
	for sy, row := range shape {
		for sx, v := range row {
			if v == 0 {
				continue
			}
			bx, by := x+sx, y+sy
			if by < 0 || by >= Height || bx < 0 || bx >= Width {
				continue
			}
			if under != nil && under[by][bx] != Empty {
				continue
			}
			c := ColorOf(v)
			px, py := ox+bx*cellW, oy+by
			dst.SetColor(px, py, r, c)
			dst.SetColor(px+1, py, r, c)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawTextColor(x, y, "NEXT", core.ColorLilac)
	box := core.NewRect(x, y+1, 4*cellW+2, 6)
	dst.DrawBox(box, core.ColorGrape)
	if snap.Next != nil {
		for sy, row := range snap.Next.Shape {
			for sx, v := range row {
				if v == 0 {
					continue
				}
				c := ColorOf(v)
				px, py := box.X+1+sx*cellW, box.Y+1+sy
				dst.SetColor(px, py, blockRune, c)
				dst.SetColor(px+1, py, blockRune, c)
			}
		}
	}

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"LINES", fmt.Sprintf("%d", snap.Lines)},
		{"SPEED", fmt.Sprintf("x%.1f", snap.SpeedFactor)},
	}
	row := box.Bottom() + 1
	for _, s := range stats {
		dst.DrawTextColor(x, row, s.label, core.ColorLilac)
		dst.DrawTextColor(x, row+1, s.value, core.ColorWhite)
		row += 3
	}
}

func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot, boardX, boardY int) {
	var title, hint string
	switch {
	case snap.GameOver:
		title, hint = "GAME OVER", "r to restart"
	case snap.Paused:
		title, hint = "PAUSED", "p to resume"
	default:
		return
	}

	midY := boardY + boardPixelH/2
	drawInBoard(dst, boardX, midY-1, title, core.ColorFuchsia)
	drawInBoard(dst, boardX, midY+1, hint, core.ColorGray)
}

// drawInBoard centers text horizontally inside the board box.
func drawInBoard(dst *core.Screen, boardX, y int, text string, c core.Color) {
	n := len([]rune(text))
	x := boardX + (boardPixelW-n)/2
	pad := core.NewRect(x-1, y, n+2, 1)
	dst.DrawRect(pad, ' ')
	dst.DrawTextColor(x, y, text, c)
}
