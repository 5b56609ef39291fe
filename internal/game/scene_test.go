package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/raycaster/internal/config"
	"github.com/Faultbox/raycaster/internal/game/controls"
	"github.com/Faultbox/raycaster/internal/game/ui"
	"github.com/Faultbox/raycaster/internal/raycast"
)

const wall = 0xc04040ff

func room(t *testing.T, size int) *raycast.WorldMap {
	t.Helper()
	cells := make([]uint32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				cells[x+y*size] = wall
			}
		}
	}
	m, err := raycast.NewWorldMap(cells, size, size)
	require.NoError(t, err)
	return m
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Graphics.Width = 32
	cfg.Graphics.Height = 24
	cfg.Graphics.Scale = 1
	cfg.UI.BandHeight = 5
	return cfg
}

func pixel(s *scene, x, y int) ui.RGBA {
	w, h := s.projector.Size()
	return ui.Canvas{Pix: s.frame, Width: w, Height: h}.At(x, y)
}

func TestSceneUsesConfiguredStart(t *testing.T) {
	cfg := testConfig()
	cfg.World.StartPosition = [2]float64{2.5, 1.5}

	s, err := newScene(cfg, room(t, 5))
	require.NoError(t, err)

	v := s.camera.View()
	assert.InDelta(t, 2.5, v.Position.X, 1e-12)
	assert.InDelta(t, 1.5, v.Position.Y, 1e-12)
	assert.InDelta(t, -1.0, v.Direction.X, 1e-12)
	assert.InDelta(t, 0.66, v.Plane.Y, 1e-12)
	assert.Len(t, s.frame, 32*24*4)
}

func TestSceneTickMovesCamera(t *testing.T) {
	s, err := newScene(testConfig(), room(t, 5))
	require.NoError(t, err)

	s.tick(controls.MoveForward)
	assert.InDelta(t, 2-0.08, s.camera.Position().X, 1e-12)

	s.tick(controls.MoveBackward)
	assert.InDelta(t, 2.0, s.camera.Position().X, 1e-12)

	s.tick(0)
	assert.InDelta(t, 2.0, s.camera.Position().X, 1e-12)
}

func TestSceneDraw(t *testing.T) {
	s, err := newScene(testConfig(), room(t, 5))
	require.NoError(t, err)

	require.NoError(t, s.draw())
	assert.False(t, s.escaped)

	bg := ui.Hex(raycast.DefaultBackground)
	assert.Equal(t, bg, pixel(s, 16, 0), "top row is outside the slice")
	assert.Equal(t, bg, pixel(s, 16, 23), "bottom row is outside the slice")
	assert.NotEqual(t, bg, pixel(s, 16, 12), "centre row is wall")
}

func TestSceneOverlayToggles(t *testing.T) {
	s, err := newScene(testConfig(), room(t, 5))
	require.NoError(t, err)

	s.showBand = true
	require.NoError(t, s.draw())
	assert.Equal(t, ui.ColorBand, pixel(s, 0, 23))
	assert.Equal(t, ui.ColorBand, pixel(s, 0, 20))
	assert.NotEqual(t, ui.ColorBand, pixel(s, 0, 19), "band starts below height-bandHeight")

	s.showBand = false
	s.showMinimap = true
	require.NoError(t, s.draw())
	assert.NotEqual(t, ui.ColorBand, pixel(s, 0, 23))
	assert.Equal(t, ui.ColorMinimapBorder, pixel(s, 2, 2))
}

func TestSceneEscapedRaysAreNotFatal(t *testing.T) {
	cells := make([]uint32, 9)
	open, err := raycast.NewWorldMap(cells, 3, 3)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.World.StartPosition = [2]float64{1.5, 1.5}
	s, err := newScene(cfg, open)
	require.NoError(t, err)

	require.NoError(t, s.draw())
	assert.True(t, s.escaped)
	assert.Equal(t, ui.Hex(raycast.DefaultBackground), pixel(s, 16, 12))
}
