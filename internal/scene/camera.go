package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Fov      float32 // vertical, degrees
	Aspect   float32
	Near     float32
	Far      float32
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Object is a transform node. Rotation is Euler XYZ in radians.
type Object struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
}

func (o *Object) Model() mgl32.Mat4 {
	r := mgl32.HomogRotate3DX(o.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(o.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(o.Rotation[2]))
	return mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]).Mul4(r)
}
