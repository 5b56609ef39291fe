// Package ui draws the overlay (status band and minimap) straight into the
// rendered RGBA frame, after the projector and before presentation.
package ui

// RGBA is a colour as it is laid out in the frame buffer.
type RGBA [4]byte

// Hex converts an RRGGBBAA value.
func Hex(v uint32) RGBA {
	return RGBA{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Canvas is a view over a row-major RGBA frame.
type Canvas struct {
	Pix    []byte
	Width  int
	Height int
}

// Set writes one pixel. Out-of-frame pixels are dropped.
func (c Canvas) Set(x, y int, col RGBA) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	i := (y*c.Width + x) * 4
	copy(c.Pix[i:i+4], col[:])
}

// At reads one pixel.
func (c Canvas) At(x, y int) RGBA {
	i := (y*c.Width + x) * 4
	return RGBA{c.Pix[i], c.Pix[i+1], c.Pix[i+2], c.Pix[i+3]}
}

// FillRect fills [x, x+w) x [y, y+h), clipped to the frame.
func (c Canvas) FillRect(x, y, w, h int, col RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.Width), min(y+h, c.Height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.Set(px, py, col)
		}
	}
}

// StrokeRect draws a one pixel outline.
func (c Canvas) StrokeRect(x, y, w, h int, col RGBA) {
	c.FillRect(x, y, w, 1, col)
	c.FillRect(x, y+h-1, w, 1, col)
	c.FillRect(x, y, 1, h, col)
	c.FillRect(x+w-1, y, 1, h, col)
}

// Line draws a line with Bresenham's algorithm.
func (c Canvas) Line(x0, y0, x1, y1 int, col RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
