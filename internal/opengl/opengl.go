package opengl

import (
	"fmt"

	"github.com/ThatOtherAndrew/Morphfield/internal/geometry"
	"github.com/ThatOtherAndrew/Morphfield/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the GL entry points for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialise OpenGL: %w", err)
	}
	return nil
}

// Resources is the GPU side of one particle set: the linked particle program, a vertex
// array and one static buffer per shape.
type Resources struct {
	Program uint32
	Vao     uint32
	Vbos    [geometry.ShapeCount]uint32
	Count   int32
}

// Build links the particle program and uploads every shape of set to its own attribute
// location, cube at 0 through torus knot at 4.
func Build(set *geometry.ParticleSet) (*Resources, error) {
	program, err := LinkProgram(shaders.ParticleVertex, shaders.ParticleFragment)
	if err != nil {
		return nil, fmt.Errorf("particle program: %w", err)
	}

	r := &Resources{Program: program, Count: int32(set.Count)}

	gl.GenVertexArrays(1, &r.Vao)
	gl.GenBuffers(int32(len(r.Vbos)), &r.Vbos[0])

	gl.BindVertexArray(r.Vao)
	for _, shape := range geometry.Shapes() {
		vertices := set.Flat(shape)
		loc := uint32(shape)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.Vbos[shape])
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
		gl.VertexAttribPointer(loc, 3, gl.FLOAT, false, 3*4, nil)
		gl.EnableVertexAttribArray(loc)
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Disable(gl.DEPTH_TEST)

	return r, nil
}

func (r *Resources) Release() {
	if r == nil {
		return
	}
	gl.DeleteBuffers(int32(len(r.Vbos)), &r.Vbos[0])
	gl.DeleteVertexArrays(1, &r.Vao)
	gl.DeleteProgram(r.Program)
	*r = Resources{}
}
