package raycast

import (
	"errors"
	"fmt"
	gomath "math"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/raycaster/pkg/math"
)

// Projector errors.
var (
	ErrRayEscaped = errors.New("ray escaped map bounds")
	ErrFrameSize  = errors.New("frame buffer size mismatch")
	ErrViewSize   = errors.New("invalid view size")
)

// DefaultBackground is the floor/ceiling colour (RRGGBBAA).
const DefaultBackground uint32 = 0x302c2eff

// Side is the grid axis the ray crossed last before hitting a wall.
type Side uint8

const (
	SideX Side = iota // crossed a vertical grid line (wall faces east/west)
	SideY             // crossed a horizontal grid line (wall faces north/south)
)

// Slice is the wall segment computed for one screen column.
type Slice struct {
	Color    [4]byte
	Start    int
	End      int
	Side     Side
	Distance float64
	MapX     int
	MapY     int
	Escaped  bool
}

// Options configures a Projector.
type Options struct {
	Width      int    // logical screen width (columns)
	Height     int    // logical screen height (rows)
	Background uint32 // RRGGBBAA; zero selects DefaultBackground
	MaxSteps   int    // DDA step bound; zero derives it from the map size
	Workers    int    // column-casting goroutines; <= 1 casts sequentially
}

// Projector casts one ray per screen column and rasterizes the result.
type Projector struct {
	world      *WorldMap
	width      int
	height     int
	background [4]byte
	maxSteps   int
	workers    int
	slices     []Slice
}

// NewProjector creates a projector for the given map and view size.
func NewProjector(world *WorldMap, opts Options) (*Projector, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrViewSize, opts.Width, opts.Height)
	}
	bg := opts.Background
	if bg == 0 {
		bg = DefaultBackground
	}
	steps := opts.MaxSteps
	if steps <= 0 {
		steps = 2*(world.Width()+world.Height()) + 2
	}
	return &Projector{
		world:      world,
		width:      opts.Width,
		height:     opts.Height,
		background: splitRGBA(bg),
		maxSteps:   steps,
		workers:    max(opts.Workers, 1),
		slices:     make([]Slice, opts.Width),
	}, nil
}

// Size returns the logical frame size.
func (p *Projector) Size() (width, height int) {
	return p.width, p.height
}

// FrameLen returns the byte length of a frame buffer for this projector.
func (p *Projector) FrameLen() int {
	return p.width * p.height * 4
}

// Slices returns the slices of the last rendered frame. The slice is reused
// by the next Render call.
func (p *Projector) Slices() []Slice {
	return p.slices
}

// CastColumn casts the ray for one screen column.
func (p *Projector) CastColumn(view View, column int) (Slice, error) {
	camX := 2*float64(column)/float64(p.width) - 1
	ray := view.Direction.Add(view.Plane.Scale(camX))
	pos := view.Position

	mapX, mapY := int(pos.X), int(pos.Y)

	// A zero ray component yields +Inf here, which keeps that axis from
	// ever winning the comparison below.
	delta := math.Vec2{X: gomath.Abs(1 / ray.X), Y: gomath.Abs(1 / ray.Y)}

	var stepX, stepY int
	var side math.Vec2
	if ray.X < 0 {
		stepX = -1
		side.X = (pos.X - float64(mapX)) * delta.X
	} else {
		stepX = 1
		side.X = (float64(mapX) + 1 - pos.X) * delta.X
	}
	if ray.Y < 0 {
		stepY = -1
		side.Y = (pos.Y - float64(mapY)) * delta.Y
	} else {
		stepY = 1
		side.Y = (float64(mapY) + 1 - pos.Y) * delta.Y
	}

	var hitSide Side
	for steps := 0; ; steps++ {
		if steps >= p.maxSteps {
			return p.escaped(), fmt.Errorf("column %d: %w after %d steps", column, ErrRayEscaped, steps)
		}
		if side.X < side.Y {
			side.X += delta.X
			mapX += stepX
			hitSide = SideX
		} else {
			side.Y += delta.Y
			mapY += stepY
			hitSide = SideY
		}
		v, ok := p.world.Cell(mapX, mapY)
		if !ok {
			return p.escaped(), fmt.Errorf("column %d: %w at (%d,%d)", column, ErrRayEscaped, mapX, mapY)
		}
		if v != 0 {
			break
		}
	}

	// Subtracting the last increment gives the distance perpendicular to the
	// camera plane rather than the euclidean ray length.
	var dist float64
	if hitSide == SideX {
		dist = side.X - delta.X
	} else {
		dist = side.Y - delta.Y
	}

	lineHeight := p.lineHeight(dist)
	start := max(p.height/2-lineHeight/2, 0)
	end := min(lineHeight/2+p.height/2, p.height-1)

	return Slice{
		Color:    shade(p.world.ClampedCell(mapX, mapY), hitSide),
		Start:    start,
		End:      end,
		Side:     hitSide,
		Distance: dist,
		MapX:     mapX,
		MapY:     mapY,
	}, nil
}

// lineHeight projects a wall distance to a column height in rows. Heights
// beyond twice the screen are saturated since they clamp identically.
func (p *Projector) lineHeight(dist float64) int {
	h := float64(p.height) / dist
	limit := float64(2 * p.height)
	switch {
	case gomath.IsNaN(h) || h < 0:
		return 0
	case h > limit:
		return 2 * p.height
	}
	return int(h)
}

// escaped is the slice for a column whose ray never hit a wall. Its empty
// span rasterizes as background only.
func (p *Projector) escaped() Slice {
	return Slice{Escaped: true}
}

// Render casts every column for view and rasterizes the frame into frame,
// which must hold Width*Height RGBA pixels. The frame is always fully written;
// a non-nil error wrapping ErrRayEscaped reports columns that left the map.
func (p *Projector) Render(frame []byte, view View) error {
	if len(frame) != p.FrameLen() {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrFrameSize, p.FrameLen(), len(frame))
	}

	escaped := p.castAll(view)
	p.rasterize(frame)

	if escaped > 0 {
		return fmt.Errorf("%d of %d columns: %w", escaped, p.width, ErrRayEscaped)
	}
	return nil
}

// castAll fills p.slices and returns the number of escaped columns.
func (p *Projector) castAll(view View) int {
	if p.workers == 1 {
		p.castRange(view, 0, p.width)
	} else {
		var g errgroup.Group
		g.SetLimit(p.workers)
		band := (p.width + p.workers - 1) / p.workers
		for from := 0; from < p.width; from += band {
			from := from
			to := min(from+band, p.width)
			g.Go(func() error {
				p.castRange(view, from, to)
				return nil
			})
		}
		_ = g.Wait()
	}

	escaped := 0
	for i := range p.slices {
		if p.slices[i].Escaped {
			escaped++
		}
	}
	return escaped
}

func (p *Projector) castRange(view View, from, to int) {
	for x := from; x < to; x++ {
		s, _ := p.CastColumn(view, x)
		p.slices[x] = s
	}
}

// shade splits a cell into RGBA and darkens Y-side walls by half.
func shade(cell uint32, side Side) [4]byte {
	c := splitRGBA(cell)
	div := byte(side) + 1
	return [4]byte{c[0] / div, c[1] / div, c[2] / div, c[3]}
}

func splitRGBA(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}
