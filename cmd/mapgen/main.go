// Command mapgen writes an enclosed map image the raycaster can load: a
// walled room with a grid of pillars and a checkerboard block.
//
// Usage:
//
//	mapgen -o assets/map.png -width 24 -height 24
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/logger"
	"github.com/Faultbox/raycaster/internal/mapload"
	"github.com/Faultbox/raycaster/internal/raycast"
)

// Cell colours (RRGGBBAA).
const (
	colorBorder  uint32 = 0x8c8c8cff
	colorPillar  uint32 = 0x4060c0ff
	colorCheckA  uint32 = 0xc04040ff
	colorCheckB  uint32 = 0x40c040ff
	pillarSpace         = 4
	minimumSide         = 8
)

var errLayout = errors.New("invalid layout")

// layout describes what to generate.
type layout struct {
	Width   int
	Height  int
	Pillars bool
	Checker bool
}

func main() {
	out := flag.String("o", "assets/map.png", "Output PNG path")
	width := flag.Int("width", 24, "Map width in cells")
	height := flag.Int("height", 24, "Map height in cells (must equal width)")
	pillars := flag.Bool("pillars", true, "Place a grid of pillars")
	checker := flag.Bool("checker", true, "Place a checkerboard block")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	l := layout{Width: *width, Height: *height, Pillars: *pillars, Checker: *checker}
	if err := write(*out, l); err != nil {
		logger.Error("mapgen failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("map written",
		zap.String("path", *out),
		zap.Int("width", l.Width),
		zap.Int("height", l.Height),
	)
}

// write generates the map, checks it loads as an enclosed world and saves it.
func write(path string, l layout) error {
	img, err := generate(l)
	if err != nil {
		return err
	}

	cells, w, h := mapload.Flatten(img, 0)
	world, err := raycast.NewWorldMap(cells, w, h)
	if err != nil {
		return fmt.Errorf("generated map: %w", err)
	}
	if err := world.Validate(); err != nil {
		return fmt.Errorf("generated map: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return f.Close()
}

// generate paints the layout. Every pixel is either transparent black
// (floor) or an opaque wall colour.
func generate(l layout) (*image.NRGBA, error) {
	if l.Width < minimumSide || l.Height < minimumSide {
		return nil, fmt.Errorf("%w: %dx%d is smaller than %dx%d",
			errLayout, l.Width, l.Height, minimumSide, minimumSide)
	}
	// World cells are addressed as x + y*height, which only lines up with
	// image rows when the map is square.
	if l.Height != l.Width {
		return nil, fmt.Errorf("%w: %dx%d is not square", errLayout, l.Width, l.Height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, l.Width, l.Height))
	set := func(x, y int, v uint32) {
		img.SetNRGBA(x, y, color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)})
	}

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if x == 0 || y == 0 || x == l.Width-1 || y == l.Height-1 {
				set(x, y, colorBorder)
			}
		}
	}

	// Checker block fills the bottom-right quarter, one cell in from the wall.
	checkX, checkY := l.Width*3/4, l.Height*3/4
	inChecker := func(x, y int) bool {
		return l.Checker && x >= checkX && y >= checkY && x < l.Width-2 && y < l.Height-2
	}

	if l.Pillars {
		for y := pillarSpace; y < l.Height-2; y += pillarSpace {
			for x := pillarSpace; x < l.Width-2; x += pillarSpace {
				if !inChecker(x, y) {
					set(x, y, colorPillar)
				}
			}
		}
	}

	if l.Checker {
		for y := checkY; y < l.Height-2; y++ {
			for x := checkX; x < l.Width-2; x++ {
				if (x+y)%2 == 0 {
					set(x, y, colorCheckA)
				} else {
					set(x, y, colorCheckB)
				}
			}
		}
	}

	return img, nil
}
