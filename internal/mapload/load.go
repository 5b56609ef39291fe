// Package mapload turns image files into raycaster world maps. Each pixel
// becomes one cell holding its big-endian RRGGBBAA value.
package mapload

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/logger"
	"github.com/Faultbox/raycaster/internal/raycast"
)

// Options controls how pixels are turned into cells.
type Options struct {
	// EmptyKey is a pixel value (RRGGBBAA) treated as empty floor, for image
	// formats that cannot store a fully transparent black pixel. Zero disables it.
	EmptyKey uint32

	// AllowUnenclosed skips the border check. Rays that leave such a map
	// render as background and are reported by the projector.
	AllowUnenclosed bool
}

// Load reads and decodes the map image at path.
func Load(path string, opts Options) (*raycast.WorldMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}
	m, err := Decode(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return m, nil
}

// Decode decodes a map image from r.
func Decode(r io.Reader, opts Options) (*raycast.WorldMap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	cells, width, height := Flatten(img, opts.EmptyKey)
	m, err := raycast.NewWorldMap(cells, width, height)
	if err != nil {
		return nil, err
	}

	if !opts.AllowUnenclosed {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	logger.Debug("map decoded",
		zap.String("format", format),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("solid", countSolid(cells)),
	)
	return m, nil
}

// Flatten converts img to cells in row-major order of the image's own width.
// Pixels equal to emptyKey (when non-zero) become empty cells.
func Flatten(img image.Image, emptyKey uint32) (cells []uint32, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	cells = make([]uint32, 0, width*height)

	nrgba, fast := img.(*image.NRGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var c color.NRGBA
			if fast {
				i := nrgba.PixOffset(x, y)
				c = color.NRGBA{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2], A: nrgba.Pix[i+3]}
			} else {
				c = color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			}
			v := uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
			if emptyKey != 0 && v == emptyKey {
				v = 0
			}
			cells = append(cells, v)
		}
	}
	return cells, width, height
}

func countSolid(cells []uint32) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}
