package geometry

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

type Shape int

const (
	Cube Shape = iota
	Random
	Dodecahedron
	Torus
	TorusKnot

	ShapeCount = 5
)

var shapeNames = [ShapeCount]string{"cube", "random", "dodecahedron", "torus", "torus-knot"}

func (s Shape) String() string {
	if s < 0 || s >= ShapeCount {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Shapes lists every shape in attribute order.
func Shapes() []Shape {
	return []Shape{Cube, Random, Dodecahedron, Torus, TorusKnot}
}

const (
	cubeSegments = 16
	randomExtent = 10
	shapeRadius  = 0.65
	tubeRadius   = 0.2
	dodecaDetail = 3
	torusRadial  = 16
	torusTubular = 100
	knotTubular  = 100
	knotRadial   = 16
	knotP        = 2
	knotQ        = 3

	// surfaceGap is the longest step between consecutive vertices that is still treated
	// as lying on the surface. A chord this long sags about 2% of shapeRadius.
	surfaceGap = 0.4 * shapeRadius
)

// ParticleSet holds the five blend targets. Every shape has exactly Count vertices.
type ParticleSet struct {
	Count     int
	positions [ShapeCount][]mgl32.Vec3
}

// NewParticleSet generates all five shapes. The cube fixes the vertex count; the random
// cloud is drawn at that count and the remaining shapes are resampled to it.
func NewParticleSet(seed uint64) *ParticleSet {
	cube := BoxVertices(1, 1, 1, cubeSegments, cubeSegments, cubeSegments)
	n := len(cube)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	s := &ParticleSet{Count: n}
	s.positions[Cube] = cube
	s.positions[Random] = RandomCloud(rng, n, randomExtent)
	s.positions[Dodecahedron] = ResampleWithin(DodecahedronVertices(shapeRadius, dodecaDetail), n, surfaceGap)
	s.positions[Torus] = ResampleWithin(TorusVertices(shapeRadius, tubeRadius, torusRadial, torusTubular, twoPi), n, surfaceGap)
	s.positions[TorusKnot] = ResampleWithin(TorusKnotVertices(shapeRadius, tubeRadius, knotTubular, knotRadial, knotP, knotQ), n, surfaceGap)
	return s
}

// RandomCloud draws n points with every coordinate uniform in [-extent/2, extent/2].
func RandomCloud(rng *rand.Rand, n int, extent float32) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, n)
	for i := range out {
		for axis := range 3 {
			out[i][axis] = (rng.Float32() - 0.5) * extent
		}
	}
	return out
}

// Positions returns the shape's vertices. Callers must not modify the slice.
func (s *ParticleSet) Positions(shape Shape) []mgl32.Vec3 {
	return s.positions[shape]
}

func (s *ParticleSet) Vertex(shape Shape, i int) mgl32.Vec3 {
	return s.positions[shape][i]
}

// Flat returns a tightly packed xyz float slice for buffer upload.
func (s *ParticleSet) Flat(shape Shape) []float32 {
	pts := s.positions[shape]
	out := make([]float32, 0, len(pts)*3)
	for _, p := range pts {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// Bounds returns the axis-aligned min and max corners of a shape.
func (s *ParticleSet) Bounds(shape Shape) (lo, hi mgl32.Vec3) {
	pts := s.positions[shape]
	if len(pts) == 0 {
		return lo, hi
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		for axis := range 3 {
			lo[axis] = min(lo[axis], p[axis])
			hi[axis] = max(hi[axis], p[axis])
		}
	}
	return lo, hi
}
