// Package renderer presents the CPU-rendered frame through OpenGL: the frame
// is uploaded into a texture and drawn as one full-screen triangle, upscaled
// by a whole factor with nearest filtering.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/engine/shader"
	"github.com/Faultbox/raycaster/internal/logger"
	"github.com/Faultbox/raycaster/pkg/math"
)

// ErrFrameSize is returned when Present receives a buffer of the wrong size.
var ErrFrameSize = errors.New("frame size mismatch")

// Config holds renderer configuration.
type Config struct {
	FrameWidth     int // logical frame size
	FrameHeight    int
	DrawableWidth  int // GL drawable size in pixels
	DrawableHeight int
}

// Renderer owns the texture the frame is streamed into.
type Renderer struct {
	config   Config
	program  uint32
	vao      uint32
	texture  uint32
	viewport math.Rect
}

const vertexShader = `
#version 410 core
out vec2 vUV;
void main() {
	// Full-screen triangle from the vertex index; v is flipped because
	// frame row 0 is the top of the screen.
	vec2 p = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	vUV = vec2(p.x, 1.0 - p.y);
	gl_Position = vec4(p * 2.0 - 1.0, 0.0, 1.0);
}
`

const fragmentShader = `
#version 410 core
in vec2 vUV;
uniform sampler2D uFrame;
out vec4 FragColor;
void main() {
	FragColor = texture(uFrame, vUV);
}
`

// New creates the renderer. It must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{config: cfg}

	var err error
	r.program, err = shader.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(shader.Uniform(r.program, "uFrame"), 0)

	// Core profile refuses to draw without a bound VAO, even an empty one.
	gl.GenVertexArrays(1, &r.vao)

	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(cfg.FrameWidth), int32(cfg.FrameHeight), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)

	r.Resize(cfg.DrawableWidth, cfg.DrawableHeight)
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
		r.texture = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize recomputes the letterboxed viewport for a new drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.DrawableWidth = width
	r.config.DrawableHeight = height
	r.viewport = math.FitInteger(width, height, r.config.FrameWidth, r.config.FrameHeight)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("scale", r.viewport.W/r.config.FrameWidth),
	)
}

// Present uploads frame and draws it. The caller swaps buffers afterwards.
func (r *Renderer) Present(frame []byte) error {
	want := r.config.FrameWidth * r.config.FrameHeight * 4
	if len(frame) != want {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrFrameSize, want, len(frame))
	}

	gl.Viewport(0, 0, int32(r.config.DrawableWidth), int32(r.config.DrawableHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(r.config.FrameWidth), int32(r.config.FrameHeight),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame))

	v := r.viewport
	gl.Viewport(int32(v.X), int32(v.Y), int32(v.W), int32(v.H))
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("GL error 0x%x", code)
	}
	return nil
}
