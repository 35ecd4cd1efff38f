// Package blend evaluates the particle program on the CPU with the same arithmetic as
// particle.vert.glsl. It backs the software renderer and pins the shader contract in tests.
package blend

import (
	"github.com/ThatOtherAndrew/Morphfield/internal/geometry"
	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	driftAmplitude  = 0.08
	driftSpeed      = 0.6
	alphaSpeed      = 0.8
	alphaPhase      = 0.37
	sizeAttenuation = 3.0
)

var driftPhase = mgl32.Vec3{0.13, 0.29, 0.47}

// Shaped mixes the cube with the three named shapes. The state weights share one unit with
// the cube until their sum exceeds one, after which they are normalised.
func Shaped(cube, dodeca, torus, knot mgl32.Vec3, u models.Uniforms) mgl32.Vec3 {
	w := u.State1 + u.State2 + u.State3
	targets := dodeca.Mul(u.State1).Add(torus.Mul(u.State2)).Add(knot.Mul(u.State3))
	if w <= 1 {
		return cube.Mul(1 - w).Add(targets)
	}
	return targets.Mul(1 / w)
}

// Position returns the blended object-space position of vertex i.
func Position(set *geometry.ParticleSet, i int, u models.Uniforms) mgl32.Vec3 {
	shaped := Shaped(
		set.Vertex(geometry.Cube, i),
		set.Vertex(geometry.Dodecahedron, i),
		set.Vertex(geometry.Torus, i),
		set.Vertex(geometry.TorusKnot, i),
		u,
	)

	id := float32(i)
	var drift mgl32.Vec3
	for axis := range 3 {
		drift[axis] = u.RandomState * driftAmplitude * math32.Sin(u.Time*driftSpeed+id*driftPhase[axis])
	}
	random := set.Vertex(geometry.Random, i).Add(drift)

	return mix(shaped, random, u.RandomState)
}

// Alpha returns the vertex alpha, always within [0.5, 1] * TransparencyState.
func Alpha(i int, u models.Uniforms) float32 {
	return u.TransparencyState * (0.75 + 0.25*math32.Sin(u.Time*alphaSpeed+float32(i)*alphaPhase))
}

// PointSize returns the sprite diameter in pixels for a vertex at view-space depth z (negative
// in front of the camera).
func PointSize(u models.Uniforms, viewZ float32) float32 {
	if viewZ >= 0 {
		return 0
	}
	return u.ParticleSize * u.PixelRatio * (sizeAttenuation / -viewZ)
}

// SpriteFalloff is the fragment-stage coverage at distance d from the sprite centre,
// measured in sprite diameters.
func SpriteFalloff(d float32) float32 {
	if d > 0.5 {
		return 0
	}
	return 1 - smoothstep(0.25, 0.5, d)
}

func mix(x, y mgl32.Vec3, a float32) mgl32.Vec3 {
	return x.Mul(1 - a).Add(y.Mul(a))
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := mgl32.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
