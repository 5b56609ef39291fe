// Package controls maps held keys to camera movement commands.
package controls

// Command is a set of movement commands active during one logic tick.
type Command uint8

const (
	MoveForward Command = 1 << iota
	MoveBackward
	RotateLeft
	RotateRight
)

// Has reports whether every command in other is set.
func (c Command) Has(other Command) bool {
	return c&other == other
}

// String returns a compact form such as "F+L".
func (c Command) String() string {
	if c == 0 {
		return "-"
	}
	names := []struct {
		cmd  Command
		name string
	}{
		{MoveForward, "F"},
		{MoveBackward, "B"},
		{RotateLeft, "L"},
		{RotateRight, "R"},
	}
	s := ""
	for _, n := range names {
		if c.Has(n.cmd) {
			if s != "" {
				s += "+"
			}
			s += n.name
		}
	}
	return s
}

// Mover is the camera surface the commands drive.
type Mover interface {
	AddPosition(speed float64)
	AddRotation(angle float64)
}

// Controls holds per-tick step sizes.
type Controls struct {
	MoveSpeed   float64 // map units per tick
	RotateSpeed float64 // radians per tick
}

// Default returns the standard step sizes.
func Default() Controls {
	return Controls{MoveSpeed: 0.08, RotateSpeed: 0.05}
}

// Apply issues one camera call per active command, in the order forward,
// backward, left, right. Left is a positive (counter-clockwise) rotation.
func (c Controls) Apply(m Mover, cmd Command) {
	if cmd.Has(MoveForward) {
		m.AddPosition(c.MoveSpeed)
	}
	if cmd.Has(MoveBackward) {
		m.AddPosition(-c.MoveSpeed)
	}
	if cmd.Has(RotateLeft) {
		m.AddRotation(c.RotateSpeed)
	}
	if cmd.Has(RotateRight) {
		m.AddRotation(-c.RotateSpeed)
	}
}

// Bindings maps each command to the scancodes that trigger it.
type Bindings map[Command][]int

// FromKeyState returns the commands whose bound scancodes are held in state,
// a keyboard snapshot indexed by scancode (1 = held).
func (b Bindings) FromKeyState(state []uint8) Command {
	var cmd Command
	for c, codes := range b {
		for _, code := range codes {
			if code >= 0 && code < len(state) && state[code] != 0 {
				cmd |= c
				break
			}
		}
	}
	return cmd
}
