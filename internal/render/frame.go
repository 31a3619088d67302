package render

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"conway-ca/pkg/sims/life"

	"github.com/gogpu/gg"
)

// Frame describes how a grid is drawn to a still image.
type Frame struct {
	Scale int
	On    color.Color
	Off   color.Color
}

// DefaultFrame draws white cells on black at 16 pixels per cell, the cell
// size of the windowed driver.
func DefaultFrame() Frame {
	return Frame{Scale: 16, On: color.White, Off: color.Black}
}

// Draw renders the grid into a new drawing context.
func (f Frame) Draw(g life.Grid) (*gg.Context, error) {
	scale := f.Scale
	if scale <= 0 {
		scale = 1
	}
	size := g.Size()
	dc := gg.NewContext(size.Columns*scale, size.Rows*scale)
	dc.ClearWithColor(gg.FromColor(f.Off))
	dc.SetColor(f.On)
	for _, p := range g.Alive() {
		dc.DrawRectangle(float64(p.Col*scale), float64(p.Row*scale), float64(scale), float64(scale))
	}
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("fill cells: %w", err)
	}
	return dc, nil
}

// WritePNG encodes the grid as a PNG image to w.
func (f Frame) WritePNG(w io.Writer, g life.Grid) error {
	dc, err := f.Draw(g)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the grid as a PNG file at path.
func (f Frame) SavePNG(path string, g life.Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := f.WritePNG(file, g); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
