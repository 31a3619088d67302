package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"conway-ca/internal/app"
	"conway-ca/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	return screen
}

func blinker(rows, cols int) *app.Session {
	cells, _ := life.Pattern("blinker")
	return app.NewSession(life.FromCells(life.Config{Rows: rows, Columns: cols}, cells), 1)
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return b.String()
}

func TestDrawRendersCellsAndStatus(t *testing.T) {
	screen := newScreen(t)
	d := New(screen, blinker(5, 5), time.Second)
	d.Draw()

	if got := rowText(screen, 0); !strings.HasPrefix(got, "  ██      ") {
		t.Fatalf("row 0 = %q, expected live cell at column 1", got)
	}
	if got := rowText(screen, 5); !strings.HasPrefix(got, "gen 0  pop 3  running") {
		t.Fatalf("status = %q", got)
	}
}

func TestHandleKeys(t *testing.T) {
	screen := newScreen(t)
	s := blinker(5, 5)
	d := New(screen, s, time.Second)

	if d.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !s.Paused() {
		t.Fatal("space should pause")
	}
	d.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if s.Paused() {
		t.Fatal("enter should resume")
	}
	d.Handle(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if s.Engine().Population() != 0 {
		t.Fatal("c should clear the grid")
	}
	if !d.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !d.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestHandleMouseTogglesOnPress(t *testing.T) {
	screen := newScreen(t)
	s := app.NewSession(life.New(life.Config{Rows: 5, Columns: 5}), 1)
	d := New(screen, s, time.Second)

	// Column 7 is the right half of cell column 3.
	d.Handle(tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone))
	d.Handle(tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone))
	if s.Engine().At(life.Position{Row: 2, Col: 3}) != life.Alive {
		t.Fatal("press should toggle the cell once")
	}
	d.Handle(tcell.NewEventMouse(7, 2, tcell.ButtonNone, tcell.ModNone))
	d.Handle(tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone))
	if s.Engine().At(life.Position{Row: 2, Col: 3}) != life.Dead {
		t.Fatal("second press should toggle the cell back")
	}

	d.Handle(tcell.NewEventMouse(0, 9, tcell.ButtonNone, tcell.ModNone))
	d.Handle(tcell.NewEventMouse(0, 9, tcell.Button1, tcell.ModNone))
	if s.Engine().Population() != 0 {
		t.Fatal("click on the status line should not change the grid")
	}
}

func TestRunStepsAndQuits(t *testing.T) {
	screen := newScreen(t)
	s := blinker(5, 5)
	d := New(screen, s, 5*time.Millisecond)

	// The screen is only read after Run returns; until then frames are
	// observed through the draw hook, which runs on the driver goroutine.
	stepped := make(chan struct{})
	d.onDraw = func(generation int) {
		if generation > 0 {
			select {
			case <-stepped:
			default:
				close(stepped)
			}
		}
	}

	errc := make(chan error, 1)
	go func() { errc <- d.Run(context.Background()) }()

	select {
	case <-stepped:
	case err := <-errc:
		t.Fatalf("Run returned early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not advance")
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}

	status := rowText(screen, 5)
	if !strings.HasPrefix(status, "gen ") || strings.HasPrefix(status, "gen 0 ") {
		t.Fatalf("status after run = %q, expected a later generation", status)
	}
	if s.Generation() == 0 {
		t.Fatal("generation counter did not advance")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	d := New(screen, blinker(5, 5), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- d.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
