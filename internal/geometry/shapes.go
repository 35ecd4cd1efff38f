package geometry

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const twoPi = float32(2 * math.Pi)

// BoxVertices returns the surface vertices of a width x height x depth box, each face split into
// segments. Faces are emitted +x, -x, +y, -y, +z, -z with (segs+1)^2 vertices per face.
func BoxVertices(width, height, depth float32, segX, segY, segZ int) []mgl32.Vec3 {
	segX, segY, segZ = max(segX, 1), max(segY, 1), max(segZ, 1)
	n := 2 * ((segZ+1)*(segY+1) + (segX+1)*(segZ+1) + (segX+1)*(segY+1))
	out := make([]mgl32.Vec3, 0, n)

	out = boxPlane(out, 2, 1, 0, -1, -1, depth, height, width, segZ, segY)  // px
	out = boxPlane(out, 2, 1, 0, 1, -1, depth, height, -width, segZ, segY)  // nx
	out = boxPlane(out, 0, 2, 1, 1, 1, width, depth, height, segX, segZ)    // py
	out = boxPlane(out, 0, 2, 1, 1, -1, width, depth, -height, segX, segZ)  // ny
	out = boxPlane(out, 0, 1, 2, 1, -1, width, height, depth, segX, segY)   // pz
	out = boxPlane(out, 0, 1, 2, -1, -1, width, height, -depth, segX, segY) // nz
	return out
}

func boxPlane(out []mgl32.Vec3, u, v, w int, uDir, vDir float32, width, height, depth float32, gridX, gridY int) []mgl32.Vec3 {
	segW := width / float32(gridX)
	segH := height / float32(gridY)
	halfW, halfH, halfD := width/2, height/2, depth/2

	for iy := 0; iy <= gridY; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix <= gridX; ix++ {
			x := float32(ix)*segW - halfW
			var p mgl32.Vec3
			p[u] = x * uDir
			p[v] = y * vDir
			p[w] = halfD
			out = append(out, p)
		}
	}
	return out
}

// TorusVertices returns (radialSegs+1)*(tubularSegs+1) vertices of a ring of the given radius
// with a tube of tubeRadius, sweeping arc radians around z.
func TorusVertices(radius, tubeRadius float32, radialSegs, tubularSegs int, arc float32) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, (radialSegs+1)*(tubularSegs+1))
	for j := 0; j <= radialSegs; j++ {
		for i := 0; i <= tubularSegs; i++ {
			u := float32(i) / float32(tubularSegs) * arc
			v := float32(j) / float32(radialSegs) * twoPi

			ring := radius + tubeRadius*math32.Cos(v)
			out = append(out, mgl32.Vec3{
				ring * math32.Cos(u),
				ring * math32.Sin(u),
				tubeRadius * math32.Sin(v),
			})
		}
	}
	return out
}

// TorusKnotVertices returns (tubularSegs+1)*(radialSegs+1) vertices of a (p,q) torus knot tube.
func TorusKnotVertices(radius, tubeRadius float32, tubularSegs, radialSegs, p, q int) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, (tubularSegs+1)*(radialSegs+1))
	for i := 0; i <= tubularSegs; i++ {
		u := float32(i) / float32(tubularSegs) * float32(p) * twoPi

		p1 := knotCurve(u, p, q, radius)
		p2 := knotCurve(u+0.01, p, q, radius)

		tangent := p2.Sub(p1)
		normal := p2.Add(p1)
		binormal := tangent.Cross(normal)
		normal = binormal.Cross(tangent)
		binormal = binormal.Normalize()
		normal = normal.Normalize()

		for j := 0; j <= radialSegs; j++ {
			v := float32(j) / float32(radialSegs) * twoPi
			cx := -tubeRadius * math32.Cos(v)
			cy := tubeRadius * math32.Sin(v)
			out = append(out, p1.Add(normal.Mul(cx)).Add(binormal.Mul(cy)))
		}
	}
	return out
}

func knotCurve(u float32, p, q int, radius float32) mgl32.Vec3 {
	cu := math32.Cos(u)
	su := math32.Sin(u)
	quOverP := float32(q) / float32(p) * u
	cs := math32.Cos(quOverP)

	return mgl32.Vec3{
		radius * (2 + cs) * 0.5 * cu,
		radius * (2 + cs) * su * 0.5,
		radius * math32.Sin(quOverP) * 0.5,
	}
}
