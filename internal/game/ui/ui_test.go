package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/raycaster/internal/raycast"
	"github.com/Faultbox/raycaster/pkg/math"
)

func newCanvas(w, h int) Canvas {
	return Canvas{Pix: make([]byte, w*h*4), Width: w, Height: h}
}

func TestCanvasClipping(t *testing.T) {
	c := newCanvas(4, 4)
	red := Hex(0xff0000ff)

	c.FillRect(-2, -2, 4, 4, red)
	assert.Equal(t, red, c.At(0, 0))
	assert.Equal(t, red, c.At(1, 1))
	assert.Equal(t, RGBA{}, c.At(2, 2))

	c.Set(10, 10, red)
	c.Line(-5, 0, 10, 0, red)
	assert.Equal(t, red, c.At(3, 0))
}

func TestCanvasLine(t *testing.T) {
	c := newCanvas(5, 5)
	white := Hex(0xffffffff)
	c.Line(0, 0, 4, 4, white)
	for i := 0; i < 5; i++ {
		assert.Equal(t, white, c.At(i, i), "pixel %d", i)
	}
	assert.Equal(t, RGBA{}, c.At(4, 0))
}

func TestBand(t *testing.T) {
	c := newCanvas(3, 10)
	Band{Height: 4}.Draw(c)

	// Rows strictly below 10-4 = 6 are painted.
	for y := 0; y < 10; y++ {
		want := RGBA{}
		if y > 6 {
			want = ColorBand
		}
		assert.Equal(t, want, c.At(1, y), "row %d", y)
	}
}

func TestBandTallerThanFrame(t *testing.T) {
	c := newCanvas(2, 3)
	Band{Height: 50}.Draw(c)
	for y := 0; y < 3; y++ {
		assert.Equal(t, ColorBand, c.At(0, y))
	}
}

func TestMinimap(t *testing.T) {
	cells := make([]uint32, 9)
	for i := range cells {
		if i != 4 {
			cells[i] = 0x808080ff
		}
	}
	world, err := raycast.NewWorldMap(cells, 3, 3)
	require.NoError(t, err)

	m := NewMinimap(world, 2)
	w, h := m.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)

	c := newCanvas(20, 20)
	view := raycast.View{
		Position:  math.Vec2{X: 1.5, Y: 1.5},
		Direction: math.Vec2{X: -1, Y: 0},
		Plane:     math.Vec2{X: 0, Y: 0.66},
	}
	m.Draw(c, view)

	// Outline at the margin, wall cell inside it.
	assert.Equal(t, ColorMinimapBorder, c.At(2, 2))
	assert.Equal(t, Hex(0x808080ff), c.At(3, 3))
	// Camera at map (1.5, 1.5) -> 2 + 1 + 3 = pixel (6, 6).
	assert.Equal(t, ColorPlayer, c.At(6, 6))
	// Facing west: the line runs left of the camera.
	assert.Equal(t, ColorFacing, c.At(5, 6))
}
