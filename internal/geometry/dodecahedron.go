package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	phi    = float32((1 + math.Sqrt(5)) / 2)
	invPhi = 1 / phi

	dodecahedronVertices = []mgl32.Vec3{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
		{0, -invPhi, -phi}, {0, -invPhi, phi}, {0, invPhi, -phi}, {0, invPhi, phi},
		{-invPhi, -phi, 0}, {-invPhi, phi, 0}, {invPhi, -phi, 0}, {invPhi, phi, 0},
		{-phi, 0, -invPhi}, {phi, 0, -invPhi}, {-phi, 0, invPhi}, {phi, 0, invPhi},
	}

	// Twelve pentagons fanned into three triangles each.
	dodecahedronFaces = [][3]int{
		{3, 11, 7}, {3, 7, 15}, {3, 15, 13},
		{7, 19, 17}, {7, 17, 6}, {7, 6, 15},
		{17, 4, 8}, {17, 8, 10}, {17, 10, 6},
		{8, 0, 16}, {8, 16, 2}, {8, 2, 10},
		{0, 12, 1}, {0, 1, 18}, {0, 18, 16},
		{6, 10, 2}, {6, 2, 13}, {6, 13, 15},
		{2, 16, 18}, {2, 18, 3}, {2, 3, 13},
		{18, 1, 9}, {18, 9, 11}, {18, 11, 3},
		{4, 14, 12}, {4, 12, 0}, {4, 0, 8},
		{11, 9, 5}, {11, 5, 19}, {11, 19, 7},
		{19, 5, 14}, {19, 14, 4}, {19, 4, 17},
		{1, 12, 14}, {1, 14, 5}, {1, 5, 9},
	}
)

// DodecahedronVertices returns non-indexed triangle vertices of a dodecahedron whose faces are
// subdivided detail times and pushed onto the sphere of the given radius.
// The result has 36*(detail+1)^2*3 vertices.
func DodecahedronVertices(radius float32, detail int) []mgl32.Vec3 {
	detail = max(detail, 0)
	cols := detail + 1
	out := make([]mgl32.Vec3, 0, len(dodecahedronFaces)*cols*cols*3)

	for _, f := range dodecahedronFaces {
		out = subdivideFace(out, dodecahedronVertices[f[0]], dodecahedronVertices[f[1]], dodecahedronVertices[f[2]], cols)
	}

	for i := range out {
		out[i] = out[i].Normalize().Mul(radius)
	}
	return out
}

func subdivideFace(out []mgl32.Vec3, a, b, c mgl32.Vec3, cols int) []mgl32.Vec3 {
	grid := make([][]mgl32.Vec3, cols+1)
	for i := 0; i <= cols; i++ {
		t := float32(i) / float32(cols)
		aj := lerp(a, c, t)
		bj := lerp(b, c, t)
		rows := cols - i

		grid[i] = make([]mgl32.Vec3, rows+1)
		for j := 0; j <= rows; j++ {
			if j == 0 && i == cols {
				grid[i][j] = aj
			} else {
				grid[i][j] = lerp(aj, bj, float32(j)/float32(rows))
			}
		}
	}

	for i := 0; i < cols; i++ {
		for j := 0; j < 2*(cols-i)-1; j++ {
			k := j / 2
			if j%2 == 0 {
				out = append(out, grid[i][k+1], grid[i+1][k], grid[i][k])
			} else {
				out = append(out, grid[i][k+1], grid[i+1][k+1], grid[i+1][k])
			}
		}
	}
	return out
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
