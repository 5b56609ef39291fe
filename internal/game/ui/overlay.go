package ui

import (
	gomath "math"

	"github.com/Faultbox/raycaster/internal/raycast"
)

// Overlay colours.
var (
	ColorBand          = Hex(0x4f546bff)
	ColorMinimapFloor  = Hex(0x1a1a22ff)
	ColorMinimapBorder = Hex(0x808080ff)
	ColorPlayer        = Hex(0xffff00ff)
	ColorFacing        = Hex(0xffffffff)
)

// Band paints a status band over the bottom rows of the frame: every row
// strictly below Height-BandHeight.
type Band struct {
	Height int
}

// Draw paints the band.
func (b Band) Draw(c Canvas) {
	from := max(c.Height-b.Height+1, 0)
	c.FillRect(0, from, c.Width, c.Height-from, ColorBand)
}

// Minimap draws the world map in the top-left corner with the camera on it.
type Minimap struct {
	world  *raycast.WorldMap
	Cell   int // screen pixels per map cell
	Margin int
}

// NewMinimap creates a minimap for a world.
func NewMinimap(world *raycast.WorldMap, cell int) *Minimap {
	return &Minimap{
		world:  world,
		Cell:   max(cell, 1),
		Margin: 2,
	}
}

// Size returns the drawn size in pixels, including the outline.
func (m *Minimap) Size() (width, height int) {
	return m.world.Width()*m.Cell + 2, m.world.Height()*m.Cell + 2
}

// Draw renders the map cells, the camera position and a short facing line.
func (m *Minimap) Draw(c Canvas, view raycast.View) {
	w, h := m.Size()
	ox, oy := m.Margin, m.Margin
	c.StrokeRect(ox, oy, w, h, ColorMinimapBorder)

	for y := 0; y < m.world.Height(); y++ {
		for x := 0; x < m.world.Width(); x++ {
			col := ColorMinimapFloor
			if v, ok := m.world.Cell(x, y); ok && v != 0 {
				col = Hex(v)
				col[3] = 0xff
			}
			c.FillRect(ox+1+x*m.Cell, oy+1+y*m.Cell, m.Cell, m.Cell, col)
		}
	}

	scale := float64(m.Cell)
	px := ox + 1 + int(gomath.Floor(view.Position.X*scale))
	py := oy + 1 + int(gomath.Floor(view.Position.Y*scale))
	reach := 3 * scale
	fx := px + int(gomath.Round(view.Direction.X*reach))
	fy := py + int(gomath.Round(view.Direction.Y*reach))
	c.Line(px, py, fx, fy, ColorFacing)
	c.Set(px, py, ColorPlayer)
}
