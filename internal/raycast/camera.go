package raycast

import (
	"github.com/Faultbox/raycaster/pkg/math"
)

// Default camera basis: facing -X with a 0.66 camera plane (about 66 degrees FOV).
var (
	DefaultPosition  = math.Vec2{X: 2, Y: 2}
	DefaultDirection = math.Vec2{X: -1, Y: 0}
	DefaultPlane     = math.Vec2{X: 0, Y: 0.66}
)

// View is an immutable snapshot of the camera basis used to render one frame.
type View struct {
	Position  math.Vec2
	Direction math.Vec2
	Plane     math.Vec2
}

// Camera holds the player's position and facing inside a map of fixed bounds.
type Camera struct {
	view   View
	bounds math.Vec2
}

// NewCamera creates a camera confined to [0, width] x [0, height].
// The start position is clamped like any other position update.
func NewCamera(width, height int, start View) *Camera {
	c := &Camera{
		bounds: math.Vec2{X: float64(width), Y: float64(height)},
		view:   start,
	}
	c.SetPosition(start.Position)
	return c
}

// NewDefaultCamera creates a camera with the default basis for the given map.
func NewDefaultCamera(m *WorldMap) *Camera {
	return NewCamera(m.Width(), m.Height(), View{
		Position:  DefaultPosition,
		Direction: DefaultDirection,
		Plane:     DefaultPlane,
	})
}

// View returns a snapshot of the current camera basis.
func (c *Camera) View() View {
	return c.view
}

// Position returns the camera position.
func (c *Camera) Position() math.Vec2 {
	return c.view.Position
}

// Direction returns the facing vector.
func (c *Camera) Direction() math.Vec2 {
	return c.view.Direction
}

// Plane returns the camera plane vector.
func (c *Camera) Plane() math.Vec2 {
	return c.view.Plane
}

// SetPosition clamps each axis to the map bounds and commits the position.
func (c *Camera) SetPosition(p math.Vec2) {
	c.view.Position = p.Clamp(math.Vec2{}, c.bounds)
}

// AddPosition moves along the facing direction. Negative speed moves backward.
func (c *Camera) AddPosition(speed float64) {
	c.SetPosition(c.view.Position.Add(c.view.Direction.Scale(speed)))
}

// AddRotation rotates the facing and the camera plane together by angle
// radians, counter-clockwise for positive angles.
func (c *Camera) AddRotation(angle float64) {
	old := c.view
	c.view = View{
		Position:  old.Position,
		Direction: old.Direction.Rotate(angle),
		Plane:     old.Plane.Rotate(angle),
	}
}
