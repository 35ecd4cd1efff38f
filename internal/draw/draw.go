// Package draw renders a mounted view through OpenGL.
package draw

import (
	"errors"

	"github.com/ThatOtherAndrew/Morphfield/internal/geometry"
	"github.com/ThatOtherAndrew/Morphfield/internal/logging"
	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/ThatOtherAndrew/Morphfield/internal/opengl"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Background is the clear colour behind the particles.
var Background = models.Color{R: 0x1f / 255.0, G: 0x29 / 255.0, B: 0x37 / 255.0}

var uniformNames = []string{
	"modelViewMatrix",
	"projectionMatrix",
	"particleSize",
	"pixelRatio",
	"time",
	"transparencyState",
	"randomState",
	"state1",
	"state2",
	"state3",
	"color",
}

// Renderer draws particles with the GL context that is current on the calling thread.
type Renderer struct {
	Background models.Color

	res         *opengl.Resources
	locations   map[string]int32
	materialKey string
	log         logging.Logger
}

func New(background models.Color, log logging.Logger) *Renderer {
	return &Renderer{Background: background, log: logging.OrNop(log)}
}

func (r *Renderer) Upload(set *geometry.ParticleSet, materialKey string) error {
	if r.res != nil {
		r.Release()
	}
	res, err := opengl.Build(set)
	if err != nil {
		return err
	}
	r.res = res
	r.materialKey = materialKey
	r.locations = make(map[string]int32, len(uniformNames))
	for _, name := range uniformNames {
		loc := gl.GetUniformLocation(res.Program, gl.Str(name+"\x00"))
		if loc < 0 {
			r.log.Debugf("material %s: uniform %s is not active", materialKey, name)
		}
		r.locations[name] = loc
	}
	r.log.Debugf("material %s: program %d, %d particles per shape", materialKey, res.Program, res.Count)
	return nil
}

func (r *Renderer) Render(frame models.Frame) error {
	if r.res == nil {
		return errors.New("no particle set uploaded")
	}

	gl.Viewport(0, 0, int32(frame.Width), int32(frame.Height))
	gl.ClearColor(r.Background.R, r.Background.G, r.Background.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	u := frame.Uniforms
	modelView := frame.ModelView()

	gl.UseProgram(r.res.Program)
	gl.UniformMatrix4fv(r.locations["modelViewMatrix"], 1, false, &modelView[0])
	gl.UniformMatrix4fv(r.locations["projectionMatrix"], 1, false, &frame.Projection[0])
	gl.Uniform1f(r.locations["particleSize"], u.ParticleSize)
	gl.Uniform1f(r.locations["pixelRatio"], u.PixelRatio)
	gl.Uniform1f(r.locations["time"], u.Time)
	gl.Uniform1f(r.locations["transparencyState"], u.TransparencyState)
	gl.Uniform1f(r.locations["randomState"], u.RandomState)
	gl.Uniform1f(r.locations["state1"], u.State1)
	gl.Uniform1f(r.locations["state2"], u.State2)
	gl.Uniform1f(r.locations["state3"], u.State3)
	gl.Uniform3f(r.locations["color"], u.Color.R, u.Color.G, u.Color.B)

	gl.BindVertexArray(r.res.Vao)
	gl.DrawArrays(gl.POINTS, 0, r.res.Count)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		r.log.Warnf("material %s: GL error 0x%x", r.materialKey, code)
	}
	return nil
}

func (r *Renderer) Release() {
	if r.res == nil {
		return
	}
	r.log.Debugf("material %s: released", r.materialKey)
	r.res.Release()
	r.res = nil
	r.locations = nil
}
