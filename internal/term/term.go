// Package term drives a Session on a character terminal using tcell. Each
// cell is two columns wide so the grid keeps a square aspect; a status line
// sits below the grid.
package term

import (
	"context"
	"fmt"
	"time"

	"conway-ca/internal/app"
	"conway-ca/pkg/core"
	"conway-ca/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

const cellWidth = 2

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
)

// Driver renders a session to a tcell screen and feeds it input.
type Driver struct {
	screen  tcell.Screen
	session *app.Session
	tick    time.Duration
	buttons tcell.ButtonMask

	// onDraw, when set, runs on the driver goroutine after each frame.
	onDraw func(generation int)
}

// New returns a driver for an initialised screen. Non-positive ticks fall
// back to core.DefaultTick.
func New(screen tcell.Screen, session *app.Session, tick time.Duration) *Driver {
	if tick <= 0 {
		tick = core.DefaultTick
	}
	return &Driver{screen: screen, session: session, tick: tick}
}

// Run processes input and advances the session once per tick until a quit
// command arrives or ctx is done. The caller owns the screen's Init and Fini.
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse()
	defer d.screen.DisableMouse()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	core.Logger().Info("terminal driver started", "tick", d.tick, "size", d.session.Engine().Size())
	d.Draw()
	for {
		select {
		case <-ctx.Done():
			core.Logger().Info("terminal driver stopped", "reason", ctx.Err(), "session", d.session)
			return nil
		case <-ticker.C:
			if d.session.Advance(true) {
				d.Draw()
			}
		case ev := <-events:
			if d.Handle(ev) {
				core.Logger().Info("terminal driver stopped", "reason", "quit", "session", d.session)
				return nil
			}
			d.session.Advance(false)
			d.Draw()
		}
	}
}

// Handle applies one input event and reports whether the driver should quit.
func (d *Driver) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			return d.session.Apply(app.CmdResume)
		case tcell.KeyRune:
			return d.session.Apply(app.CommandForRune(ev.Rune()))
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && d.buttons&tcell.Button1 == 0
		d.buttons = buttons
		if pressed {
			x, y := ev.Position()
			d.session.Click(life.Position{Row: y, Col: x / cellWidth})
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

// Draw paints the grid and the status line.
func (d *Driver) Draw() {
	engine := d.session.Engine()
	size := engine.Size()
	cells := engine.Cells()

	d.screen.Clear()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Columns; c++ {
			ch, style := ' ', deadStyle
			if cells[r*size.Columns+c] == life.Alive {
				ch, style = '█', aliveStyle
			}
			for i := 0; i < cellWidth; i++ {
				d.screen.SetContent(c*cellWidth+i, r, ch, nil, style)
			}
		}
	}
	d.drawString(0, size.Rows, d.status())
	d.screen.Show()
	if d.onDraw != nil {
		d.onDraw(d.session.Generation())
	}
}

func (d *Driver) status() string {
	state := "running"
	if d.session.Paused() {
		state = "paused"
	}
	return fmt.Sprintf("gen %d  pop %d  %s  [space n c r s q]",
		d.session.Generation(), d.session.Engine().Population(), state)
}

func (d *Driver) drawString(x, y int, s string) {
	for i, r := range []rune(s) {
		d.screen.SetContent(x+i, y, r, nil, statusStyle)
	}
}
