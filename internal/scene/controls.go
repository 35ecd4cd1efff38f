package scene

import (
	"math"

	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TiltRig eases an object's rotation toward the pointer every frame.
type TiltRig struct {
	Object *Object
	Ease   float32
	Reach  float32
	Offset float32
}

func NewTiltRig(obj *Object) *TiltRig {
	obj.Rotation[0] = 0.5
	obj.Rotation[1] = 0.5
	return &TiltRig{Object: obj, Ease: 0.02, Reach: 0.25, Offset: 0.25}
}

func (r *TiltRig) Update(in models.Input) {
	rot := &r.Object.Rotation
	rot[0] += r.Ease * (-in.PointerY*r.Reach - rot[0] + r.Offset)
	rot[1] += r.Ease * (in.PointerX*r.Reach - rot[1] + r.Offset)
}

// OrbitControls keeps a camera on a sphere around its target. Drag deltas are fractions
// of the window size, scroll is in wheel notches.
type OrbitControls struct {
	Camera      *Camera
	Damping     float32
	RotateSpeed float32
	ZoomSpeed   float32
	MinDistance float32
	MaxDistance float32

	azimuth, polar, distance float32
	dAzimuth, dPolar         float32
}

const polarMargin = 0.01

func NewOrbitControls(cam *Camera) *OrbitControls {
	o := &OrbitControls{
		Camera:      cam,
		Damping:     0.05,
		RotateSpeed: math.Pi,
		ZoomSpeed:   0.95,
		MinDistance: 0.5,
		MaxDistance: 20,
	}
	o.sync()
	return o
}

// sync reads the spherical coordinates back from the camera position.
func (o *OrbitControls) sync() {
	offset := o.Camera.Position.Sub(o.Camera.Target)
	o.distance = offset.Len()
	if o.distance == 0 {
		o.distance = 1
		offset = mgl32.Vec3{0, 0, 1}
	}
	o.azimuth = math32.Atan2(offset[0], offset[2])
	o.polar = math32.Acos(mgl32.Clamp(offset[1]/o.distance, -1, 1))
}

func (o *OrbitControls) Distance() float32 { return o.distance }
func (o *OrbitControls) Polar() float32    { return o.polar }
func (o *OrbitControls) Azimuth() float32  { return o.azimuth }

func (o *OrbitControls) Update(in models.Input) {
	o.dAzimuth -= in.DragDX * o.RotateSpeed
	o.dPolar += in.DragDY * o.RotateSpeed

	if in.Scroll > 0 {
		o.distance *= math32.Pow(o.ZoomSpeed, in.Scroll)
	} else if in.Scroll < 0 {
		o.distance /= math32.Pow(o.ZoomSpeed, -in.Scroll)
	}
	o.distance = mgl32.Clamp(o.distance, o.MinDistance, o.MaxDistance)

	o.azimuth += o.dAzimuth * o.Damping
	o.polar = mgl32.Clamp(o.polar+o.dPolar*o.Damping, polarMargin, math.Pi-polarMargin)
	o.dAzimuth *= 1 - o.Damping
	o.dPolar *= 1 - o.Damping

	sinPolar := math32.Sin(o.polar)
	offset := mgl32.Vec3{
		o.distance * sinPolar * math32.Sin(o.azimuth),
		o.distance * math32.Cos(o.polar),
		o.distance * sinPolar * math32.Cos(o.azimuth),
	}
	o.Camera.Position = o.Camera.Target.Add(offset)
}
