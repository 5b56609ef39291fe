package mapload

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// TGA image type constants.
const (
	tgaTypeUncompressed = 2  // Uncompressed true-color
	tgaTypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("TGA data truncated")

func init() {
	// TGA has no magic number; match on "no colour map" plus a true-colour type.
	image.RegisterFormat("tga", "?\x00\x02", decodeTGA, decodeTGAConfig)
	image.RegisterFormat("tga", "?\x00\x0a", decodeTGA, decodeTGAConfig)
}

type tgaHeader struct {
	idLength    int
	imageType   byte
	width       int
	height      int
	bpp         int
	topToBottom bool
}

func readTGAHeader(r io.Reader) (tgaHeader, error) {
	var b [tgaHeaderSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return tgaHeader{}, fmt.Errorf("TGA header: %w", err)
	}
	h := tgaHeader{
		idLength:  int(b[0]),
		imageType: b[2],
		width:     int(b[12]) | int(b[13])<<8,
		height:    int(b[14]) | int(b[15])<<8,
		bpp:       int(b[16]),
		// Bit 5 of the descriptor selects top-to-bottom row order.
		topToBottom: b[17]&0x20 != 0,
	}
	if b[1] != 0 {
		return h, fmt.Errorf("color-mapped TGA not supported")
	}
	if h.imageType != tgaTypeUncompressed && h.imageType != tgaTypeRLE {
		return h, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", h.imageType)
	}
	if h.bpp != 24 && h.bpp != 32 {
		return h, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", h.bpp)
	}
	return h, nil
}

func decodeTGAConfig(r io.Reader) (image.Config, error) {
	h, err := readTGAHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: h.width, Height: h.height}, nil
}

// decodeTGA decodes a true-colour TGA into a non-premultiplied image, so the
// authored alpha byte reaches the map unchanged.
func decodeTGA(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	h, err := readTGAHeader(br)
	if err != nil {
		return nil, err
	}
	if _, err := br.Discard(h.idLength); err != nil {
		return nil, errTGATruncated
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))
	bytesPerPixel := h.bpp / 8
	pixelCount := h.width * h.height

	put := func(i int, px []byte) {
		x := i % h.width
		y := i / h.width
		if !h.topToBottom {
			y = h.height - 1 - y
		}
		a := uint8(255)
		if bytesPerPixel == 4 {
			a = px[3]
		}
		// Stored as BGR(A).
		img.SetNRGBA(x, y, color.NRGBA{R: px[2], G: px[1], B: px[0], A: a})
	}

	px := make([]byte, bytesPerPixel)
	if h.imageType == tgaTypeUncompressed {
		for i := 0; i < pixelCount; i++ {
			if _, err := io.ReadFull(br, px); err != nil {
				return nil, errTGATruncated
			}
			put(i, px)
		}
		return img, nil
	}

	for i := 0; i < pixelCount; {
		packet, err := br.ReadByte()
		if err != nil {
			return nil, errTGATruncated
		}
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run-length packet: one pixel repeated count times.
			if _, err := io.ReadFull(br, px); err != nil {
				return nil, errTGATruncated
			}
			for n := 0; n < count && i < pixelCount; n++ {
				put(i, px)
				i++
			}
			continue
		}

		for n := 0; n < count && i < pixelCount; n++ {
			if _, err := io.ReadFull(br, px); err != nil {
				return nil, errTGATruncated
			}
			put(i, px)
			i++
		}
	}
	return img, nil
}
