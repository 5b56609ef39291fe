package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/raycaster/internal/mapload"
)

func TestGenerateLayout(t *testing.T) {
	img, err := generate(layout{Width: 16, Height: 16, Pillars: true, Checker: true})
	require.NoError(t, err)

	cells, w, h := mapload.Flatten(img, 0)
	require.Equal(t, 16, w)
	require.Equal(t, 16, h)
	at := func(x, y int) uint32 { return cells[x+y*w] }

	assert.Equal(t, colorBorder, at(0, 0))
	assert.Equal(t, colorBorder, at(15, 7))
	assert.Equal(t, uint32(0), at(2, 2), "default start cell is floor")
	assert.Equal(t, colorPillar, at(4, 4))
	assert.Equal(t, colorPillar, at(8, 4))
	assert.Equal(t, colorCheckA, at(12, 12))
	assert.Equal(t, colorCheckB, at(13, 12))
	assert.Equal(t, uint32(0), at(14, 14), "gap between block and wall")
}

func TestGenerateWithoutFeatures(t *testing.T) {
	img, err := generate(layout{Width: 10, Height: 10})
	require.NoError(t, err)

	cells, w, _ := mapload.Flatten(img, 0)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			assert.Zero(t, cells[x+y*w], "cell (%d,%d)", x, y)
		}
	}
}

func TestGenerateRejectsBadLayout(t *testing.T) {
	tests := []struct {
		name string
		l    layout
	}{
		{"too small", layout{Width: 4, Height: 4}},
		{"taller than wide", layout{Width: 10, Height: 12}},
		{"wider than tall", layout{Width: 12, Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generate(tt.l)
			assert.ErrorIs(t, err, errLayout)
		})
	}
}

func TestWriteLoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps", "room.png")
	require.NoError(t, write(path, layout{Width: 24, Height: 24, Pillars: true, Checker: true}))

	world, err := mapload.Load(path, mapload.Options{})
	require.NoError(t, err)
	assert.Equal(t, 24, world.Width())
	assert.True(t, world.Solid(4, 4))
	assert.False(t, world.Solid(2, 2))
}
