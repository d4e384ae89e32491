package tui

// brailleBits maps a micro-pixel (column, row) inside a cell to its dot.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

const noOwner = -1

// brailleBuf is a w x h cell canvas with 2x4 micro-pixels per cell. Each cell
// remembers which series touched it last so it can be coloured.
type brailleBuf struct {
	w, h  int
	m     [][]uint8
	owner [][]int
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	owner := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		owner[i] = make([]int, w)
		for j := range owner[i] {
			owner[i][j] = noOwner
		}
	}
	return &brailleBuf{w: w, h: h, m: m, owner: owner}
}

// setPixel sets the micro-pixel at (mx, my) for series id.
func (b *brailleBuf) setPixel(mx, my, id int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
	b.owner[cy][cx] = id
}

// drawLineMicro draws a Bresenham line on the micro grid.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1, id int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, id)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cell returns the glyph at (x, y) and the series that owns it.
func (b *brailleBuf) cell(x, y int) (rune, int) {
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', noOwner
	}
	return rune(0x2800 + int(mask)), b.owner[y][x]
}
