package render

import (
	"image/color"

	"conway-ca/pkg/sims/life"
)

// fillBinaryRGBA converts cell states into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []life.CellState, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == life.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a pixel coordinate on a view drawn at the given scale to the
// cell underneath it. Columns run along x and rows along y. Negative pixels
// map to negative positions, which the engine ignores.
func CellAt(x, y, scale int) life.Position {
	if scale <= 0 {
		scale = 1
	}
	return life.Position{Row: floorDiv(y, scale), Col: floorDiv(x, scale)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}
