package models

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type RenderMode int

const (
	// Manual drives the frame explicitly and tilts the object toward the pointer.
	Manual RenderMode = iota
	// Declarative runs the frame through scene hooks with orbit controls.
	Declarative
)

func (m RenderMode) String() string {
	switch m {
	case Manual:
		return "manual"
	case Declarative:
		return "declarative"
	}
	return "unknown"
}

type IntroStates int

const (
	// IntroHold keeps state1..3 at 1 for the duration of their tween.
	IntroHold IntroStates = iota
	// IntroRamp ramps state1..3 from 0 to 1.
	IntroRamp
)

func (s IntroStates) String() string {
	if s == IntroRamp {
		return "ramp"
	}
	return "hold"
}

type Variant struct {
	Name                 string
	HasPanel             bool
	HasEntranceAnimation bool
	RenderMode           RenderMode
	IntroStates          IntroStates
}

type Color struct {
	R, G, B float32
}

func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// Parameters is the single owned copy of every user-tunable shader value.
// The panel, the entrance timeline and the frame update all hold the same pointer.
type Parameters struct {
	Color             Color
	ParticleSize      float32
	TransparencyState float32
	RandomState       float32
	State1            float32
	State2            float32
	State3            float32
}

// DefaultParameters renders the assembled cube, fully opaque.
func DefaultParameters() Parameters {
	return Parameters{
		Color:             Color{R: 0xf8 / 255.0, G: 0x66 / 255.0, B: 0x5d / 255.0},
		ParticleSize:      2,
		TransparencyState: 1,
		RandomState:       0,
		State1:            0,
		State2:            0,
		State3:            0,
	}
}

type Uniforms struct {
	ParticleSize      float32
	Color             Color
	Time              float32
	TransparencyState float32
	RandomState       float32
	State1            float32
	State2            float32
	State3            float32
	PixelRatio        float32
}

type Frame struct {
	Uniforms   Uniforms
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Width      int
	Height     int
}

func (f Frame) ModelView() mgl32.Mat4 {
	return f.View.Mul4(f.Model)
}

type Input struct {
	// Pointer is the cursor in normalised device coordinates, y up.
	PointerX, PointerY float32
	DragDX, DragDY     float32
	Scroll             float32
}

type App struct {
	Variant    Variant
	Params     *Parameters
	Uniforms   Uniforms
	StartTime  time.Time
	LastFrame  time.Time
	Width      int
	Height     int
	PixelRatio float32
}
