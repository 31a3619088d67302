package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"conway-ca/pkg/sims/life"
)

func luminance(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r + g + b) / 3
}

func TestFrameWritePNG(t *testing.T) {
	engine := life.FromCells(life.Config{Rows: 3, Columns: 4}, []life.Position{{Row: 1, Col: 2}})
	frame := Frame{Scale: 4, On: color.White, Off: color.Black}

	var buf bytes.Buffer
	if err := frame.WritePNG(&buf, engine.Snapshot()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Fatalf("image is %dx%d, expected 16x12", b.Dx(), b.Dy())
	}

	// Sample pixel centres to stay clear of anti-aliased edges.
	if l := luminance(img.At(2*4+2, 1*4+2)); l < 0xe000 {
		t.Fatalf("live cell luminance %#x, expected white", l)
	}
	for _, p := range [][2]int{{2, 2}, {14, 10}, {6, 6}} {
		if l := luminance(img.At(p[0], p[1])); l > 0x2000 {
			t.Fatalf("dead pixel %v luminance %#x, expected black", p, l)
		}
	}
}

func TestFrameSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	engine := life.New(life.Config{Rows: 2, Columns: 2})
	if err := DefaultFrame().SavePNG(path, engine.Snapshot()); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := DefaultFrame().SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), engine.Snapshot()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
