package mathsnake

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/math-snake/internal/core"
)

var (
	colorHead   = core.Hex("#22c55e")
	colorBody   = core.Hex("#86efac")
	colorFrame  = core.ColorGray
	colorTarget = core.ColorBrightYellow
	colorValue  = core.ColorBrightCyan
	colorLives  = core.ColorBrightRed
)

const (
	headRune     = '█'
	bodyRune     = '▓'
	particleRune = '•'
	fadedRune    = '·'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := MinTerminalSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", w, h))
		return
	}

	ox, oy := g.boardOrigin(dst)
	geo := g.sim.Geometry()
	dst.DrawBox(core.NewRect(ox, oy, geo.Cols*CellWidth+frameCells, geo.Rows+frameCells), colorFrame)

	g.renderFood(dst, ox+1, oy+1)
	g.renderSnake(dst, ox+1, oy+1)
	g.renderEffects(dst, ox+1, oy+1)

	st := g.sim.State()
	switch {
	case st.Phase == PhaseLevelComplete && g.promptReady():
		g.renderOverlay(dst,
			fmt.Sprintf("Level %d complete!", st.Level),
			fmt.Sprintf("Bonus +%d  Score %d", g.lastBonus, st.Score),
			"Enter: next level")
	case st.Phase == PhaseAllComplete:
		g.renderOverlay(dst,
			fmt.Sprintf("All %d levels complete!", st.MaxLevel),
			fmt.Sprintf("Final score %d", st.Score),
			"R: play again  B: menu")
	case st.Phase == PhaseGameOver:
		g.renderOverlay(dst,
			"Game Over",
			fmt.Sprintf("Level %d  Score %d", st.Level, st.Score),
			"R: play again  B: menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "P to continue")
	}
}

// boardOrigin returns the top-left corner of the board frame.
func (g *Game) boardOrigin(dst *core.Screen) (x, y int) {
	w := g.sim.Geometry().Cols*CellWidth + frameCells
	return max((dst.Width()-w)/2, 0), hudRows
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.sim.State()
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColor(x, 0, text, c)
		x += utf8.RuneCountInString(text)
	}

	put(fmt.Sprintf("Level %d/%d  ", st.Level, st.MaxLevel), core.ColorDefault)
	put("Target ", core.ColorDefault)
	put(fmt.Sprintf("%d", st.Target), colorTarget)
	put("  Now ", core.ColorDefault)
	put(fmt.Sprintf("%d", st.Value), colorValue)
	put("  ", core.ColorDefault)
	put(strings.Repeat("♥", st.Lives), colorLives)
	put(fmt.Sprintf("  Score %d  Grade %s", st.Score, st.Grade), core.ColorDefault)
	if m, ok := g.cues.(core.MuteToggler); ok {
		if m.Muted() {
			put("  ♪ off", core.ColorGray)
		} else {
			put("  ♪ on", core.ColorDefault)
		}
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', colorFrame)
}

func (g *Game) renderFood(dst *core.Screen, bx, by int) {
	for _, f := range g.sim.Food() {
		label := centerLabel(f.Label, CellWidth)
		dst.DrawTextColor(bx+f.Cell.X*CellWidth, by+f.Cell.Y, label, f.Color)
	}
}

// centerLabel pads s to width runes, centred.
func centerLabel(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func (g *Game) renderSnake(dst *core.Screen, bx, by int) {
	snake := g.sim.Snake()
	// Draw tail first so the head wins on overlap.
	for i := len(snake) - 1; i >= 0; i-- {
		r, c := bodyRune, colorBody
		if i == 0 {
			r, c = headRune, colorHead
		}
		x := bx + snake[i].X*CellWidth
		for dx := range CellWidth {
			dst.SetColor(x+dx, by+snake[i].Y, r, c)
		}
	}
}

// renderEffects maps pixel-space effects onto board characters.
func (g *Game) renderEffects(dst *core.Screen, bx, by int) {
	geo := g.sim.Geometry()
	fx := g.sim.Effects()

	for _, p := range fx.Particles() {
		col, row, ok := pixelToChar(geo, p.X, p.Y)
		if !ok {
			continue
		}
		r := particleRune
		if p.Life < 0.5 {
			r = fadedRune
		}
		dst.SetColor(bx+col, by+row, r, p.Color)
	}

	for _, t := range fx.Texts() {
		col, row, ok := pixelToChar(geo, t.X, t.Y)
		if !ok {
			continue
		}
		col -= utf8.RuneCountInString(t.Text) / 2
		dst.DrawTextColor(bx+col, by+row, t.Text, t.Color)
	}
}

// pixelToChar converts a pixel position to a character offset inside the
// board. Each cell is CellWidth characters wide and one row high.
func pixelToChar(geo Geometry, px, py float64) (col, row int, ok bool) {
	if geo.CellSize <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	cell := geo.PixelToCell(px, py)
	if !geo.Contains(cell) {
		return 0, 0, false
	}
	ox, _ := geo.CellOrigin(cell)
	sub := int((px - ox) * CellWidth / float64(geo.CellSize))
	return cell.X*CellWidth + min(sub, CellWidth-1), cell.Y, true
}

// renderOverlay draws a centred box with the given lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColor(boxY+1+i*2, l, c)
	}
}
