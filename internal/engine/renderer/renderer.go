// Package renderer draws the controlled character as a marker on a ground
// grid using OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/locomotion/internal/logger"
	"github.com/Faultbox/locomotion/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// GridExtent is the number of grid cells on each side of the origin.
	// Zero disables the grid.
	GridExtent int
	GridY      float32
}

// mesh is an uploaded vertex buffer and its draw mode.
type mesh struct {
	vao, vbo uint32
	count    int32
	mode     uint32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	prog   *program

	marker mesh
	grid   mesh

	view math.Mat4
	proj math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.prog, err = newProgram(markerVertexShader, markerFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.marker = upload(markerVertices(), gl.TRIANGLES)
	if cfg.GridExtent > 0 {
		r.grid = upload(gridVertices(cfg.GridExtent, 1, cfg.GridY), gl.LINES)
	}

	r.view = math.LookAt(math.Vec3{Y: 3, Z: -5}, math.Vec3{}, math.Vec3{Y: 1})
	r.Resize(cfg.Width, cfg.Height)

	logger.Debug("renderer ready",
		zap.Uint32("program", r.prog.id),
		zap.Int32("marker_vertices", r.marker.count),
		zap.Int32("grid_vertices", r.grid.count),
	)
	return r, nil
}

func upload(vertices []float32, mode uint32) mesh {
	m := mesh{mode: mode, count: int32(len(vertices) / vertexStride)}
	if m.count == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *mesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.marker.delete()
	r.grid.delete()
	r.prog.delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.proj = math.Perspective(math.Radians(45), float32(width)/float32(height), 0.1, 100)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame and draws the ground grid.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.prog.id)
	if r.grid.count > 0 {
		r.draw(r.grid, math.Identity(), Tint{1, 1, 1})
	}
}

// DrawMarker draws the character marker with the given model transform.
func (r *Renderer) DrawMarker(model math.Mat4, tint Tint) {
	r.draw(r.marker, model, tint)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *Renderer) draw(m mesh, model math.Mat4, tint Tint) {
	mvp := r.proj.Mul(r.view).Mul(model)
	gl.UniformMatrix4fv(r.prog.mvp, 1, false, mvp.Ptr())
	gl.Uniform3f(r.prog.tint, tint[0], tint[1], tint[2])
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, 0, m.count)
}
