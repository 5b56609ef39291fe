package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickClock(t *testing.T) {
	tests := []struct {
		name   string
		frames []time.Duration
		want   []int
	}{
		{
			name:   "one tick per 60hz frame",
			frames: []time.Duration{time.Second / 60, time.Second / 60, time.Second / 60},
			want:   []int{1, 1, 1},
		},
		{
			name:   "fast frames accumulate",
			frames: []time.Duration{5 * time.Millisecond, 5 * time.Millisecond, 5 * time.Millisecond, 5 * time.Millisecond},
			want:   []int{0, 0, 0, 1},
		},
		{
			name:   "slow frame runs several ticks",
			frames: []time.Duration{50 * time.Millisecond},
			want:   []int{3},
		},
		{
			name:   "stall is clamped to max frame",
			frames: []time.Duration{5 * time.Second},
			want:   []int{6},
		},
		{
			name:   "negative elapsed ignored",
			frames: []time.Duration{-time.Second},
			want:   []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTickClock(60, 0.1)
			got := make([]int, 0, len(tt.frames))
			for _, f := range tt.frames {
				got = append(got, c.Advance(f))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTickClockKeepsRemainder(t *testing.T) {
	c := newTickClock(10, 1)
	total := 0
	for range 30 {
		total += c.Advance(35 * time.Millisecond)
	}
	// 30 * 35ms = 1.05s at 10 ticks/s.
	assert.Equal(t, 10, total)
}

func TestFrameCounter(t *testing.T) {
	start := time.Unix(0, 0)
	f := newFrameCounter(start, time.Second)

	for i := 1; i < 30; i++ {
		_, ok := f.Frame(start.Add(time.Duration(i) * 10 * time.Millisecond))
		assert.False(t, ok)
	}

	fps, ok := f.Frame(start.Add(1500 * time.Millisecond))
	assert.True(t, ok)
	assert.InDelta(t, 20.0, fps, 1e-9)

	_, ok = f.Frame(start.Add(1600 * time.Millisecond))
	assert.False(t, ok)
}
