//go:build ebiten

package app

import (
	"time"

	"fireca/internal/render"
	"fireca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. Ebiten calls Update at
// its own TPS; the Session's fixed-step clock decides when the sim advances.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided session.
func New(session *Session, scale int, seed int64, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := session.Sim().Size()
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(session.Sim(), hudWidth),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.session.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	switch {
	case g.tickOnce:
		g.session.Step()
		g.tickOnce = false
	case !g.paused:
		g.session.Update()
	}

	if g.hud != nil {
		g.hud.Update(g.paused)
	}
	return nil
}

// Draw renders the latest projection and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Pixels(), g.scale)
	if g.hud != nil {
		w, _ := g.painter.Size()
		g.hud.Draw(screen, w*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + g.hud.Width(), h * g.scale
}

// WindowSize returns the unscaled window size matching Layout.
func (g *Game) WindowSize() (int, int) { return g.Layout(0, 0) }
