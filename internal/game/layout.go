package game

import "github.com/Garsondee/Fleet-Skirmish/internal/engine"

const (
	// cellSize is the pixel side of one board cell.
	cellSize = 100
	// borderWidth is the pixel gap between the window edge and the board.
	borderWidth = 50
	// boardPixels is the pixel side of the whole board.
	boardPixels = cellSize * engine.GridSize
	// screenWidth/screenHeight cover the board, its border and the log panel.
	screenWidth  = borderWidth*2 + boardPixels + logPanelWidth
	screenHeight = borderWidth*2 + boardPixels
)

// cellAt maps a screen pixel to a board cell. The bool is false outside the board,
// so those clicks never reach the engine.
func cellAt(mx, my int) (engine.Cell, bool) {
	px := mx - borderWidth
	py := my - borderWidth
	if px < 0 || py < 0 {
		return engine.Cell{}, false
	}
	c := engine.Cell{X: px / cellSize, Y: py / cellSize}
	if !c.InBounds() {
		return engine.Cell{}, false
	}
	return c, true
}

// cellOrigin returns the top-left screen pixel of a cell.
func cellOrigin(c engine.Cell) (float64, float64) {
	return float64(borderWidth + c.X*cellSize), float64(borderWidth + c.Y*cellSize)
}
