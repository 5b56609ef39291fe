package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/config"
	"github.com/Faultbox/raycaster/internal/game/controls"
	"github.com/Faultbox/raycaster/internal/game/ui"
	"github.com/Faultbox/raycaster/internal/logger"
	"github.com/Faultbox/raycaster/internal/raycast"
	"github.com/Faultbox/raycaster/pkg/math"
)

// scene is the platform-independent part of the game: world, camera,
// projector and overlay, drawing into a CPU frame.
type scene struct {
	world     *raycast.WorldMap
	camera    *raycast.Camera
	projector *raycast.Projector
	controls  controls.Controls

	band        ui.Band
	minimap     *ui.Minimap
	showBand    bool
	showMinimap bool

	frame   []byte
	escaped bool
}

func newScene(cfg *config.Config, world *raycast.WorldMap) (*scene, error) {
	width, height := cfg.Logical()

	projector, err := raycast.NewProjector(world, raycast.Options{
		Width:      width,
		Height:     height,
		Background: cfg.Render.Background,
		MaxSteps:   cfg.Render.MaxSteps,
		Workers:    cfg.Render.Workers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create projector: %w", err)
	}

	start := raycast.View{
		Position:  vec(cfg.World.StartPosition),
		Direction: vec(cfg.World.StartDirection),
		Plane:     vec(cfg.World.StartPlane),
	}

	return &scene{
		world:     world,
		camera:    raycast.NewCamera(world.Width(), world.Height(), start),
		projector: projector,
		controls: controls.Controls{
			MoveSpeed:   cfg.Controls.MoveSpeed,
			RotateSpeed: cfg.Controls.RotateSpeed,
		},
		band:        ui.Band{Height: cfg.UI.BandHeight},
		minimap:     ui.NewMinimap(world, cfg.UI.MinimapCell),
		showBand:    cfg.UI.ShowBand,
		showMinimap: cfg.UI.ShowMinimap,
		frame:       make([]byte, projector.FrameLen()),
	}, nil
}

func vec(v [2]float64) math.Vec2 {
	return math.Vec2{X: v[0], Y: v[1]}
}

// tick applies one logic tick of movement.
func (s *scene) tick(cmd controls.Command) {
	s.controls.Apply(s.camera, cmd)
}

// draw renders the current view and overlay into the frame. Escaped rays
// are not fatal: the frame is complete and the condition is logged when it
// starts and when it clears.
func (s *scene) draw() error {
	err := s.projector.Render(s.frame, s.camera.View())
	switch {
	case errors.Is(err, raycast.ErrRayEscaped):
		if !s.escaped {
			logger.Warn("rays escaped the map",
				zap.Error(err),
				zap.Stringer("position", s.camera.Position()),
			)
		}
		s.escaped = true
	case err != nil:
		return err
	default:
		if s.escaped {
			logger.Info("rays back inside the map")
		}
		s.escaped = false
	}

	width, height := s.projector.Size()
	canvas := ui.Canvas{Pix: s.frame, Width: width, Height: height}
	if s.showBand {
		s.band.Draw(canvas)
	}
	if s.showMinimap {
		s.minimap.Draw(canvas, s.camera.View())
	}
	return nil
}
