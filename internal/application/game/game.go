// Package game provides the ebiten.Game that runs the current Scene and
// switches between scenes.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/shadowgrove/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New creates a new Game with the given initial scene, ticking at fps
// updates per second (60 when fps is not positive).
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, fps int) *Game {
	if fps <= 0 {
		fps = 60
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(fps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene error ends the run; the scene still gets its OnExit so a
// recording in progress is written out.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		g.Close()
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Close exits the active scene once. main calls it after RunGame returns
// so closing the window behaves like quitting from a menu.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
