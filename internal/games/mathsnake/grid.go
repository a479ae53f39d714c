package mathsnake

import "math"

// Geometry describes the board: Cols x Rows cells of CellSize pixels.
// Effects live in pixel space; the snake and food live in cell space.
type Geometry struct {
	Cols     int
	Rows     int
	CellSize int
}

// Contains reports whether c lies inside [0,Cols) x [0,Rows).
func (g Geometry) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Center is the spawn cell for the snake's head.
func (g Geometry) Center() Cell {
	return Cell{X: g.Cols / 2, Y: g.Rows / 2}
}

// CellOrigin returns the top-left pixel of c.
func (g Geometry) CellOrigin(c Cell) (x, y float64) {
	s := float64(g.CellSize)
	return float64(c.X) * s, float64(c.Y) * s
}

// CellCenter returns the centre pixel of c.
func (g Geometry) CellCenter(c Cell) (x, y float64) {
	x, y = g.CellOrigin(c)
	half := float64(g.CellSize) / 2
	return x + half, y + half
}

// CanvasSize returns the board size in pixels.
func (g Geometry) CanvasSize() (w, h int) {
	return g.Cols * g.CellSize, g.Rows * g.CellSize
}

// CanvasCenter returns the centre pixel of the board.
func (g Geometry) CanvasCenter() (x, y float64) {
	w, h := g.CanvasSize()
	return float64(w) / 2, float64(h) / 2
}

// PixelToCell returns the cell containing pixel (x, y). The result may lie
// outside the board.
func (g Geometry) PixelToCell(x, y float64) Cell {
	if g.CellSize <= 0 {
		return Cell{}
	}
	s := float64(g.CellSize)
	return Cell{X: int(math.Floor(x / s)), Y: int(math.Floor(y / s))}
}

// Responsive sizing constants for a pixel viewport.
const (
	desktopMinWidth  = 850
	targetCellSize   = 40
	maxCellSize      = 45
	defaultHUDHeight = 160
	safeAreaBuffer   = 40
	sidePadding      = 20
)

// Board limits shared by every sizing rule.
const (
	MinCols = 8
	MinRows = 10
	MaxCols = 20
	MaxRows = 15
)

// FitGrid sizes the board for a pixel viewport. Wide viewports get the
// classic 20x15 board; narrow ones fit as many 40px cells as possible.
// hudH <= 0 uses an estimated HUD height.
func FitGrid(viewportW, viewportH, hudH int) Geometry {
	if viewportW >= desktopMinWidth {
		return Geometry{Cols: MaxCols, Rows: MaxRows, CellSize: targetCellSize}
	}
	if hudH <= 0 {
		hudH = defaultHUDHeight
	}
	availW := viewportW - sidePadding
	availH := viewportH - hudH - safeAreaBuffer

	cols := max(availW/targetCellSize, MinCols)
	rows := max(availH/targetCellSize, MinRows)

	size := max(min(availW/cols, availH/rows, maxCellSize), 1)
	return Geometry{Cols: cols, Rows: rows, CellSize: size}
}

// CellWidth is the number of terminal columns a board cell occupies.
const CellWidth = 4

// Terminal chrome around the board: HUD and separator above, then the frame.
const (
	hudRows    = 2
	frameCells = 2
)

// MinTerminalSize is the smallest screen FitTerminal accepts.
func MinTerminalSize() (w, h int) {
	return MinCols*CellWidth + frameCells, MinRows + hudRows + frameCells
}

// FitTerminal sizes the board for a character screen. Each cell is
// CellWidth columns by one row. It reports false when the minimum board
// does not fit.
func FitTerminal(screenW, screenH, cellSize int) (Geometry, bool) {
	cols := min((screenW-frameCells)/CellWidth, MaxCols)
	rows := min(screenH-hudRows-frameCells, MaxRows)
	if cols < MinCols || rows < MinRows {
		return Geometry{}, false
	}
	return Geometry{Cols: cols, Rows: rows, CellSize: cellSize}, true
}
