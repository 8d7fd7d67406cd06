package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
)

const (
	hudHeight    = 2
	footerHeight = 2
	minScreenW   = 20
	minScreenH   = 10
)

// Render draws the board, HUD and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenW < minScreenW || g.screenH < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	board := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-footerHeight)
	g.renderBoard(dst, board)

	switch g.session.Phase() {
	case PhaseNotStarted:
		g.renderBanner(dst, board, "MEMORY", "R: new game   Ctrl+L: load", core.ColorBrightCyan)
	case PhaseWon:
		t := g.session.Score()
		g.renderBanner(dst, board, "YOU WIN!",
			fmt.Sprintf("Score %d in %d turns   R: play again", t.Score, t.Turns), core.ColorBrightGreen)
	}

	g.renderFooter(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	t := g.session.Score()
	left := fmt.Sprintf("Score: %d  Combo: x%d", t.Score, t.DisplayCombo())
	right := fmt.Sprintf("Matches: %d  Turns: %d", t.Matches, t.Turns)

	dst.DrawText(1, 0, left, core.ColorBrightYellow)
	dst.DrawText(g.screenW-len(right)-1, 0, right, core.ColorWhite)

	var phase string
	switch g.session.Phase() {
	case PhaseShowing:
		phase = "Memorize the cards..."
	case PhasePlaying:
		phase = fmt.Sprintf("%dx%d", g.session.Rows(), g.session.Cols())
	}
	if phase != "" {
		dst.DrawTextCentered(1, phase, core.ColorGray)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	if msg, isErr := g.Status(); msg != "" {
		c := core.ColorBrightCyan
		if isErr {
			c = core.ColorBrightRed
		}
		dst.DrawTextCentered(g.screenH-2, msg, c)
	}
	dst.DrawTextCentered(g.screenH-1, "Arrows: move  Space: flip  R: restart  Ctrl+S: save  Q: quit", core.ColorGray)
}

// renderBoard scales layout space into board and draws every remaining card.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	container := g.session.settings.Container
	if container.W <= 0 || container.H <= 0 || board.W <= 0 || board.H <= 0 {
		return
	}
	sx := float64(board.W) / container.W
	sy := float64(board.H) / container.H

	for i, slot := range g.session.slots {
		if slot.Removed {
			continue
		}
		pos := core.V(float64(board.X)+(slot.Position.X-container.X)*sx, float64(board.Y)+(slot.Position.Y-container.Y)*sy)
		size := core.V(slot.Size.X*sx, slot.Size.Y*sy)
		g.renderCard(dst, core.Cells(pos, size), slot, i == g.cursor)
	}
}

func (g *Game) renderCard(dst *core.Screen, r core.Rect, slot *Slot, selected bool) {
	// One column and row of gutter between cards.
	if r.W > 3 {
		r.W--
	}
	if r.H > 3 {
		r.H--
	}

	var frame, face core.Color
	var glyph string
	switch {
	case slot.Turning:
		frame, face, glyph = core.ColorGray, core.ColorGray, "~"
	case slot.Matched:
		frame, face, glyph = core.ColorGreen, core.ColorBrightGreen, g.catalog.Image(slot.CardID)
	case slot.Revealed:
		frame, face, glyph = core.ColorWhite, core.ColorBrightYellow, g.catalog.Image(slot.CardID)
	default:
		frame, face, glyph = core.ColorBlue, core.ColorBlue, "?"
	}
	if selected {
		frame = core.ColorBrightCyan
	}

	if r.W >= 3 && r.H >= 3 {
		dst.DrawBox(r, frame)
		if !slot.Revealed && !slot.Turning && !slot.Matched {
			dst.DrawRect(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), '░', core.ColorBlue)
		}
	} else if selected {
		dst.DrawRect(r, ' ', frame)
	}

	cx, cy := r.Center()
	x := cx - len([]rune(glyph))/2
	dst.DrawText(x, cy, glyph, face)
	if selected && (r.W < 3 || r.H < 3) {
		dst.DrawText(x-1, cy, ">", frame)
	}
}

func (g *Game) renderBanner(dst *core.Screen, board core.Rect, title, hint string, c core.Color) {
	_, cy := board.Center()
	dst.DrawTextCentered(cy-1, title, c)
	dst.DrawTextCentered(cy+1, hint, core.ColorWhite)
}
