// Package game is the ebiten front end: it turns mouse clicks into engine calls and
// draws the effects the engine returns. It holds no rules of its own.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Fleet-Skirmish/internal/engine"
)

// Game implements ebiten.Game around one engine match.
type Game struct {
	match    *engine.Game
	scene    *scene
	opts     []engine.Option
	seed     int64
	restarts int
	showHUD  bool
	status   string // transient HUD line, e.g. clipboard result
	statusT  int    // ticks left for status
}

// New starts a match. Each restart reseeds with seed+n so boards differ but replay
// identically for the same starting seed.
func New(seed int64, opts ...engine.Option) *Game {
	g := &Game{
		opts:    opts,
		seed:    seed,
		showHUD: true,
	}
	g.restart()
	return g
}

// restart throws away the current match and begins a fresh one.
func (g *Game) restart() {
	opts := append([]engine.Option{engine.WithSeed(g.seed + int64(g.restarts))}, g.opts...)
	g.restarts++
	g.match = engine.New(opts...)
	g.scene = newScene()
	g.scene.apply(g.match.Start(), g.match.ReachableCells)
	log.Printf("game %s started (mitigation=%s)", g.match.ID(), g.match.Policy())
}

// Update handles input and advances animations. Engine calls complete before any
// animation frame runs, so a click during a glide is processed immediately.
func (g *Game) Update() error {
	g.handleInput()
	g.scene.tick()
	if g.statusT > 0 {
		g.statusT--
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.click(mx, my)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyLog()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
}

// click forwards an on-board click to the engine and mirrors the result.
func (g *Game) click(mx, my int) {
	c, ok := cellAt(mx, my)
	if !ok {
		return
	}
	g.scene.apply(g.match.HandleClick(c), g.match.ReachableCells)
}

func (g *Game) copyLog() {
	err := setClipboardText(logTranscript(g.match.Log().Messages()))
	if err != nil {
		log.Printf("clipboard: %v", err)
		g.setStatus(fmt.Sprintf("clipboard unavailable: %v", err))
		return
	}
	g.setStatus("log copied to clipboard")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusT = 180
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// ScreenSize returns the window size the game lays out to.
func ScreenSize() (int, int) {
	return screenWidth, screenHeight
}
