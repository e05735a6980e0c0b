package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Fleet-Skirmish/internal/engine"
)

var (
	seaColor       = color.RGBA{R: 22, G: 60, B: 96, A: 255}
	seaShade       = color.RGBA{R: 26, G: 68, B: 106, A: 255}
	gridColor      = color.RGBA{R: 60, G: 100, B: 140, A: 255}
	reachColor     = color.RGBA{R: 240, G: 240, B: 160, A: 50}
	cliffColor     = color.RGBA{R: 120, G: 110, B: 100, A: 255}
	cliffEdge      = color.RGBA{R: 80, G: 72, B: 66, A: 255}
	islandColor    = color.RGBA{R: 200, G: 180, B: 110, A: 255}
	islandPalm     = color.RGBA{R: 60, G: 140, B: 70, A: 255}
	selectionColor = color.RGBA{R: 255, G: 230, B: 80, A: 255}
	healthColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	healthBack     = color.RGBA{R: 0, G: 0, B: 0, A: 120}
)

// classLabel is the hull marking drawn on each token.
func classLabel(c engine.ShipClass) string {
	switch c {
	case engine.Destroyer:
		return "DD"
	case engine.Cruiser:
		return "CA"
	case engine.Battleship:
		return "BB"
	default:
		return "??"
	}
}

// hullLength is the token length in pixels; bigger classes draw longer hulls.
func hullLength(c engine.ShipClass) float32 {
	switch c {
	case engine.Destroyer:
		return 56
	case engine.Cruiser:
		return 70
	default:
		return 84
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 24, B: 36, A: 255})

	g.drawBoard(screen)
	g.drawIslands(screen)
	g.drawReachable(screen)
	g.drawMarkers(screen)

	g.scene.log.Draw(screen, borderWidth*2+boardPixels, screenHeight)
	g.drawHUD(screen)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	ox, oy := float32(borderWidth), float32(borderWidth)
	vector.FillRect(screen, ox, oy, boardPixels, boardPixels, seaColor, false)
	for y := 0; y < engine.GridSize; y++ {
		for x := 0; x < engine.GridSize; x++ {
			if (x+y)%2 == 1 {
				vector.FillRect(screen, ox+float32(x*cellSize), oy+float32(y*cellSize), cellSize, cellSize, seaShade, false)
			}
		}
	}
	for i := 0; i <= engine.GridSize; i++ {
		p := float32(i * cellSize)
		vector.StrokeLine(screen, ox+p, oy, ox+p, oy+boardPixels, 1.0, gridColor, false)
		vector.StrokeLine(screen, ox, oy+p, ox+boardPixels, oy+p, 1.0, gridColor, false)
	}
	vector.StrokeRect(screen, ox-2, oy-2, boardPixels+4, boardPixels+4, 2.0, gridColor, false)
}

func (g *Game) drawIslands(screen *ebiten.Image) {
	for _, is := range g.scene.islands {
		x, y := cellOrigin(is.Pos)
		fx, fy := float32(x), float32(y)
		if is.Kind == engine.TerrainHigh {
			vector.FillRect(screen, fx+14, fy+14, cellSize-28, cellSize-28, cliffColor, true)
			vector.StrokeRect(screen, fx+14, fy+14, cellSize-28, cellSize-28, 3, cliffEdge, true)
			continue
		}
		cx, cy := fx+cellSize/2, fy+cellSize/2
		vector.FillCircle(screen, cx, cy, 30, islandColor, true)
		vector.FillCircle(screen, cx+6, cy-6, 10, islandPalm, true)
	}
}

func (g *Game) drawReachable(screen *ebiten.Image) {
	for _, c := range g.scene.reachable {
		x, y := cellOrigin(c)
		vector.FillRect(screen, float32(x)+2, float32(y)+2, cellSize-4, cellSize-4, reachColor, false)
	}
}

func (g *Game) drawMarkers(screen *ebiten.Image) {
	for _, id := range g.scene.order {
		m, ok := g.scene.markers[id]
		if !ok {
			continue
		}
		x, y := m.position()
		fx, fy := float32(x), float32(y)
		hull := hullLength(m.class)
		hx := fx + (cellSize-hull)/2
		hy := fy + cellSize/2 - 14

		vector.FillRect(screen, hx, hy, hull, 28, factionColor(m.faction), true)
		vector.StrokeRect(screen, hx, hy, hull, 28, 2, color.RGBA{R: 20, G: 20, B: 20, A: 200}, true)
		drawText(screen, classLabel(m.class), int(fx+cellSize/2)-7, int(hy)+8, color.Black)

		// Health bar along the bottom of the cell.
		vector.FillRect(screen, fx+5, fy+cellSize-10, cellSize-10, 5, healthBack, false)
		vector.FillRect(screen, fx+5, fy+cellSize-10, float32(cellSize-10)*float32(m.health), 5, healthColor, false)

		if m.selected {
			vector.StrokeRect(screen, fx+3, fy+3, cellSize-6, cellSize-6, 3, selectionColor, false)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	sc := g.scene
	headline := fmt.Sprintf("Turn %d - team %s to move", sc.turn, sc.current)
	if sc.over {
		headline = fmt.Sprintf("Team %s wins. Press R for a new game.", sc.winner)
	}
	drawText(screen, headline, borderWidth, 16, factionColor(sc.current))

	id := g.match.ID()
	if len(id) > 8 {
		id = id[:8]
	}
	info := fmt.Sprintf("game %s  fire rule: %s", id, g.match.Policy())
	drawText(screen, info, borderWidth, screenHeight-borderWidth+12, color.RGBA{R: 150, G: 160, B: 170, A: 255})

	if g.statusT > 0 {
		drawText(screen, g.status, borderWidth+boardPixels-len(g.status)*logCharWidth, 16, color.White)
	}
	if g.showHUD {
		legend := "click=select/move  C=copy log  R=restart  H=hide keys"
		drawText(screen, legend, borderWidth, screenHeight-borderWidth+28, color.RGBA{R: 150, G: 160, B: 170, A: 255})
	}
}
