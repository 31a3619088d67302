//go:build ebiten

package ui

import (
	"image/color"

	"conway-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

var keyHelp = []string{
	"space  pause/resume",
	"n      single step",
	"click  toggle cell",
	"c      clear",
	"r      reseed",
	"s      random seed",
	"g      grid lines",
	"q      quit",
}

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	title      string
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
}

// NewHUD constructs a HUD with the given title and panel width.
func NewHUD(title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{title: title, width: width}
}

// Update replaces the values shown on the next Draw.
func (h *HUD) Update(snapshot core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.snapshot = snapshot
}

// Draw paints the panel at offsetX, stretched to height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawText()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + 12
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight + 4

	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding+8, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-len(p.Value)*7, y, color.RGBA{R: 120, G: 220, B: 140, A: 255})
			y += lineHeight
		}
		y += 4
	}

	y += lineHeight / 2
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 130, G: 130, B: 140, A: 255})
		y += lineHeight
	}
}
