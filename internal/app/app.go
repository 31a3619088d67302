//go:build ebiten

package app

import (
	"image/color"

	"conway-ca/internal/render"
	"conway-ca/internal/ui"
	"conway-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

var keyCommands = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyQ, CmdQuit},
	{ebiten.KeyEscape, CmdQuit},
	{ebiten.KeySpace, CmdPause},
	{ebiten.KeyEnter, CmdResume},
	{ebiten.KeyN, CmdStep},
	{ebiten.KeyC, CmdClear},
	{ebiten.KeyR, CmdReseed},
	{ebiten.KeyS, CmdRandomize},
	{ebiten.KeyG, CmdGrid},
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config) *Game {
	size := session.Engine().Size()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size),
		overlay:  ui.NewOverlay(size, scale),
		hud:      ui.NewHUD("Conway's Game of Life", hudWidth),
		timer:    core.NewFixedStep(cfg.Tick),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			if g.session.Apply(kc.cmd) {
				core.Logger().Info("quit", "session", g.session)
				return ebiten.Termination
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.Click(render.CellAt(x, y, g.scale))
	}

	g.overlay.SetVisible(g.session.ShowGrid())
	g.session.Advance(g.timer.ShouldStep())
	g.hud.Update(g.session.Parameters())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Engine().Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	size := g.session.Engine().Size()
	g.hud.Draw(screen, size.Columns*g.scale, size.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// WindowSize returns the grid view plus the status panel.
func (g *Game) WindowSize() (int, int) {
	s := g.session.Engine().Size()
	return s.Columns*g.scale + hudWidth, s.Rows * g.scale
}
