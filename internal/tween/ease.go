package tween

import "math"

// Ease maps linear progress in [0,1] onto eased progress.
type Ease func(p float64) float64

func Linear(p float64) float64 {
	return p
}

// CircOut starts fast and decelerates along a quarter circle.
func CircOut(p float64) float64 {
	q := p - 1
	return math.Sqrt(1 - q*q)
}

func CubicOut(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

func SineInOut(p float64) float64 {
	return -(math.Cos(math.Pi*p) - 1) / 2
}

var eases = map[string]Ease{
	"linear":     Linear,
	"circ.out":   CircOut,
	"cubic.out":  CubicOut,
	"sine.inOut": SineInOut,
}

// EaseByName resolves the names used in settings files.
func EaseByName(name string) (Ease, bool) {
	e, ok := eases[name]
	return e, ok
}
