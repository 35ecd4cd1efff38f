package geometry

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalVertexCounts(t *testing.T) {
	tests := []struct {
		name string
		pts  []mgl32.Vec3
		want int
	}{
		{"box", BoxVertices(1, 1, 1, 16, 16, 16), 6 * 17 * 17},
		{"box uneven", BoxVertices(1, 2, 3, 1, 2, 3), 2 * (4*3 + 2*4 + 2*3)},
		{"dodecahedron", DodecahedronVertices(0.65, 3), 36 * 16 * 3},
		{"dodecahedron flat", DodecahedronVertices(1, 0), 36 * 3},
		{"torus", TorusVertices(0.65, 0.2, 16, 100, twoPi), 17 * 101},
		{"torus knot", TorusKnotVertices(0.65, 0.2, 100, 16, 2, 3), 101 * 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.pts, tt.want)
		})
	}
}

func TestParticleSetEqualCounts(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 1 << 40} {
		s := NewParticleSet(seed)
		require.Equal(t, 1734, s.Count)
		for _, shape := range Shapes() {
			assert.Len(t, s.Positions(shape), s.Count, "shape %s", shape)
			assert.Len(t, s.Flat(shape), s.Count*3, "flat %s", shape)
		}
	}
}

func TestRandomCloudWithinExtent(t *testing.T) {
	for seed := range uint64(20) {
		s := NewParticleSet(seed)
		for i, p := range s.Positions(Random) {
			for axis := range 3 {
				if p[axis] < -5 || p[axis] > 5 {
					t.Fatalf("seed %d vertex %d axis %d out of range: %v", seed, i, axis, p[axis])
				}
			}
		}
	}
}

func TestRandomCloudSpreads(t *testing.T) {
	pts := RandomCloud(rand.New(rand.NewPCG(7, 7)), 5000, 10)
	var sum mgl32.Vec3
	lo, hi := pts[0], pts[0]
	for _, p := range pts {
		sum = sum.Add(p)
		for axis := range 3 {
			lo[axis] = min(lo[axis], p[axis])
			hi[axis] = max(hi[axis], p[axis])
		}
	}
	mean := sum.Mul(1 / float32(len(pts)))
	for axis := range 3 {
		assert.InDelta(t, 0, mean[axis], 0.25)
		assert.Less(t, lo[axis], float32(-4.5))
		assert.Greater(t, hi[axis], float32(4.5))
	}
}

func TestRandomCloudDeterministicPerSeed(t *testing.T) {
	a := NewParticleSet(99)
	b := NewParticleSet(99)
	c := NewParticleSet(100)
	assert.Equal(t, a.Positions(Random), b.Positions(Random))
	assert.NotEqual(t, a.Positions(Random), c.Positions(Random))
}

func TestCubeBounds(t *testing.T) {
	s := NewParticleSet(0)
	lo, hi := s.Bounds(Cube)
	for axis := range 3 {
		assert.InDelta(t, -0.5, lo[axis], 1e-6)
		assert.InDelta(t, 0.5, hi[axis], 1e-6)
	}
	for _, p := range s.Positions(Cube) {
		onFace := false
		for axis := range 3 {
			if mgl32.Abs(mgl32.Abs(p[axis])-0.5) < 1e-6 {
				onFace = true
			}
		}
		require.True(t, onFace, "vertex %v not on cube surface", p)
	}
}

func TestDodecahedronOnSphere(t *testing.T) {
	for _, p := range DodecahedronVertices(0.65, 3) {
		assert.InDelta(t, 0.65, p.Len(), 1e-5)
	}
}

func TestTorusDistanceFromRing(t *testing.T) {
	for _, p := range TorusVertices(0.65, 0.2, 16, 100, twoPi) {
		ring := mgl32.Vec2{p[0], p[1]}.Len() - 0.65
		tube := mgl32.Vec2{ring, p[2]}.Len()
		assert.InDelta(t, 0.2, tube, 1e-5)
	}
}

func TestResampledDodecahedronStaysOnSurface(t *testing.T) {
	for _, seed := range []uint64{1, 7} {
		for _, p := range NewParticleSet(seed).Positions(Dodecahedron) {
			r := p.Len()
			require.GreaterOrEqual(t, r, float32(0.95*0.65), "point %v inside the solid", p)
			require.LessOrEqual(t, r, float32(0.65+1e-5))
		}
	}
}

func TestResampledTorusStaysOnTube(t *testing.T) {
	for _, p := range NewParticleSet(1).Positions(Torus) {
		ring := mgl32.Vec2{p[0], p[1]}.Len() - 0.65
		tube := mgl32.Vec2{ring, p[2]}.Len()
		require.InDelta(t, 0.2, tube, 0.01)
	}
}

func TestResampledShapesStayNearSourceVertices(t *testing.T) {
	sources := map[Shape][]mgl32.Vec3{
		Dodecahedron: DodecahedronVertices(0.65, 3),
		Torus:        TorusVertices(0.65, 0.2, 16, 100, twoPi),
		TorusKnot:    TorusKnotVertices(0.65, 0.2, 100, 16, 2, 3),
	}
	s := NewParticleSet(1)
	for shape, raw := range sources {
		for _, p := range s.Positions(shape) {
			nearest := float32(math.MaxFloat32)
			for _, q := range raw {
				nearest = min(nearest, p.Sub(q).Len())
			}
			require.LessOrEqual(t, nearest, float32(surfaceGap/2+1e-5), "%s point %v", shape, p)
		}
	}
}

func TestResampleWithinSkipsJumps(t *testing.T) {
	// Two unit segments separated by a jump of 10.
	pts := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {11, 0, 0}, {12, 0, 0}}
	out := ResampleWithin(pts, 5, 2)
	require.Len(t, out, 5)
	for _, p := range out {
		onSegment := (p[0] >= 0 && p[0] <= 1) || (p[0] >= 11 && p[0] <= 12)
		assert.True(t, onSegment, "%v lies on the jump", p)
	}
	assert.Equal(t, pts[0], out[0])

	// Without a limit the same input spreads across the jump.
	crossed := 0
	for _, p := range Resample(pts, 5) {
		if p[0] > 1 && p[0] < 11 {
			crossed++
		}
	}
	assert.Positive(t, crossed)
}

func TestShapesStayNearOrigin(t *testing.T) {
	s := NewParticleSet(3)
	for _, shape := range []Shape{Dodecahedron, Torus, TorusKnot} {
		lo, hi := s.Bounds(shape)
		for axis := range 3 {
			assert.GreaterOrEqual(t, lo[axis], float32(-1.25), "%s", shape)
			assert.LessOrEqual(t, hi[axis], float32(1.25), "%s", shape)
		}
	}
}

func TestResample(t *testing.T) {
	line := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {4, 0, 0}}

	out := Resample(line, 5)
	require.Len(t, out, 5)
	for i, p := range out {
		assert.InDelta(t, float32(i), p[0], 1e-5)
	}

	assert.Nil(t, Resample(line, 0))
	assert.Nil(t, Resample(nil, 3))
	assert.Equal(t, line, Resample(line, 3))

	same := Resample([]mgl32.Vec3{{1, 2, 3}, {1, 2, 3}}, 4)
	require.Len(t, same, 4)
	for _, p := range same {
		assert.Equal(t, mgl32.Vec3{1, 2, 3}, p)
	}
}

func TestResampleDoesNotAlias(t *testing.T) {
	in := []mgl32.Vec3{{0, 0, 0}, {1, 1, 1}}
	out := Resample(in, 2)
	out[0] = mgl32.Vec3{9, 9, 9}
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, in[0])
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "torus-knot", TorusKnot.String())
	assert.Equal(t, "Shape(9)", Shape(9).String())
}
