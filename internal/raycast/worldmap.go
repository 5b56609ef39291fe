// Package raycast implements the grid raycasting core: the tile map, the
// camera model and the per-column DDA projector that rasterizes a frame into
// a caller-owned RGBA buffer.
package raycast

import (
	"errors"
	"fmt"
)

// World map errors.
var (
	ErrMapSize       = errors.New("invalid map size")
	ErrUnenclosedMap = errors.New("map border is not enclosed by solid cells")
)

// WorldMap is an immutable grid of cell codes. A zero cell is empty, any other
// value is a solid wall whose bytes are RRGGBBAA.
//
// Cells are stored flat and addressed as x + y*height. Maps where height
// exceeds width cannot address their last rows under this layout; Validate
// rejects them.
type WorldMap struct {
	cells  []uint32
	width  int
	height int
}

// NewWorldMap wraps cells as a width x height map. The slice is not copied
// and must not be modified afterwards.
func NewWorldMap(cells []uint32, width, height int) (*WorldMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMapSize, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d cells, got %d",
			ErrMapSize, width, height, width*height, len(cells))
	}
	return &WorldMap{
		cells:  cells,
		width:  width,
		height: height,
	}, nil
}

// Width returns the map width in cells.
func (m *WorldMap) Width() int {
	return m.width
}

// Height returns the map height in cells.
func (m *WorldMap) Height() int {
	return m.height
}

// index is the single place that knows the x + y*height layout.
func (m *WorldMap) index(x, y int) int {
	return x + y*m.height
}

// Cell returns the cell at (x, y). ok is false when the coordinate lies
// outside the map or its flat index falls outside the cell slice.
func (m *WorldMap) Cell(x, y int) (value uint32, ok bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0, false
	}
	i := m.index(x, y)
	if i >= len(m.cells) {
		return 0, false
	}
	return m.cells[i], true
}

// Solid reports whether (x, y) holds a wall. Cells outside the map are not solid.
func (m *WorldMap) Solid(x, y int) bool {
	v, ok := m.Cell(x, y)
	return ok && v != 0
}

// ClampedCell clamps (x, y) into the map before reading it.
func (m *WorldMap) ClampedCell(x, y int) uint32 {
	x = min(max(x, 0), m.width-1)
	y = min(max(y, 0), m.height-1)
	v, _ := m.Cell(x, y)
	return v
}

// Validate checks that every border cell is addressable and solid, which is
// what guarantees that a ray cast from inside the map hits a wall.
func (m *WorldMap) Validate() error {
	check := func(x, y int) error {
		v, ok := m.Cell(x, y)
		if !ok {
			return fmt.Errorf("%w: cell (%d,%d) not addressable in %dx%d map",
				ErrUnenclosedMap, x, y, m.width, m.height)
		}
		if v == 0 {
			return fmt.Errorf("%w: gap at (%d,%d)", ErrUnenclosedMap, x, y)
		}
		return nil
	}

	for x := 0; x < m.width; x++ {
		if err := check(x, 0); err != nil {
			return err
		}
		if err := check(x, m.height-1); err != nil {
			return err
		}
	}
	for y := 0; y < m.height; y++ {
		if err := check(0, y); err != nil {
			return err
		}
		if err := check(m.width-1, y); err != nil {
			return err
		}
	}
	return nil
}
