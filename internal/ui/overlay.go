//go:build ebiten

package ui

import (
	"image/color"

	"conway-ca/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws cell boundaries on top of the grid view.
type Overlay struct {
	size    life.Size
	scale   int
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay for a grid drawn at scale.
func NewOverlay(size life.Size, scale int) *Overlay {
	o := &Overlay{size: size, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetVisible shows or hides the grid lines.
func (o *Overlay) SetVisible(v bool) { o.visible = v }

// Draw renders the overlay when visible. Lines are skipped below a scale of 4
// where they would cover the cells.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.scale < 4 {
		return
	}
	w := float64(o.size.Columns * o.scale)
	h := float64(o.size.Rows * o.scale)
	for c := 1; c < o.size.Columns; c++ {
		o.line(screen, float64(c*o.scale), 0, 1, h)
	}
	for r := 1; r < o.size.Rows; r++ {
		o.line(screen, 0, float64(r*o.scale), w, 1)
	}
}

func (o *Overlay) line(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(0.25, 0.25, 0.3, 1)
	screen.DrawImage(o.pixel, op)
}
