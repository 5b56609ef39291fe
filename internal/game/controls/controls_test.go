package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type call struct {
	op    string
	value float64
}

type recorder struct {
	calls []call
}

func (r *recorder) AddPosition(speed float64) { r.calls = append(r.calls, call{"move", speed}) }
func (r *recorder) AddRotation(angle float64) { r.calls = append(r.calls, call{"rotate", angle}) }

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want []call
	}{
		{"none", 0, nil},
		{"forward", MoveForward, []call{{"move", 0.08}}},
		{"backward", MoveBackward, []call{{"move", -0.08}}},
		{"left", RotateLeft, []call{{"rotate", 0.05}}},
		{"right", RotateRight, []call{{"rotate", -0.05}}},
		{"forward and left", MoveForward | RotateLeft, []call{{"move", 0.08}, {"rotate", 0.05}}},
		{"all", MoveForward | MoveBackward | RotateLeft | RotateRight, []call{
			{"move", 0.08}, {"move", -0.08}, {"rotate", 0.05}, {"rotate", -0.05},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			Default().Apply(r, tt.cmd)
			assert.Equal(t, tt.want, r.calls)
		})
	}
}

func TestFromKeyState(t *testing.T) {
	const (
		keyW = 26
		keyS = 22
		keyA = 4
		keyD = 7
		up   = 82
	)
	b := Bindings{
		MoveForward:  {keyW, up},
		MoveBackward: {keyS},
		RotateLeft:   {keyA},
		RotateRight:  {keyD},
	}

	state := make([]uint8, 128)
	assert.Equal(t, Command(0), b.FromKeyState(state))

	state[up] = 1
	state[keyA] = 1
	assert.Equal(t, MoveForward|RotateLeft, b.FromKeyState(state))

	// Scancodes beyond the snapshot are ignored.
	short := Bindings{RotateRight: {500}}
	assert.Equal(t, Command(0), short.FromKeyState(state))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "-", Command(0).String())
	assert.Equal(t, "F+L", (MoveForward | RotateLeft).String())
	assert.Equal(t, "B+R", (RotateRight | MoveBackward).String())
}
