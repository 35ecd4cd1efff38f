package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Resample walks the vertex sequence as a polyline and returns n points spaced evenly
// along its length. The first point is kept; short results are padded with the last point.
func Resample(points []mgl32.Vec3, n int) []mgl32.Vec3 {
	return ResampleWithin(points, n, math.MaxFloat32)
}

// ResampleWithin is Resample for vertex lists that are not one continuous path, such as
// non-indexed triangle lists. Segments longer than maxGap are jumps: they add no length
// and no point is ever placed on them, so every result lies on a short segment between
// two neighbouring vertices.
func ResampleWithin(points []mgl32.Vec3, n int, maxGap float32) []mgl32.Vec3 {
	if n <= 0 || len(points) == 0 {
		return nil
	}
	if len(points) == n {
		return append([]mgl32.Vec3(nil), points...)
	}

	out := make([]mgl32.Vec3, 0, n)
	out = append(out, points[0])

	total := pathLength(points, maxGap)
	if total == 0 || n == 1 {
		for len(out) < n {
			out = append(out, points[0])
		}
		return out
	}

	interval := total / float32(n-1)
	var acc float32
	prev := points[0]
	for i := 1; i < len(points) && len(out) < n; {
		cur := points[i]
		d := prev.Sub(cur).Len()
		if d > maxGap {
			prev = cur
			i++
			continue
		}
		if d > 0 && acc+d >= interval {
			q := lerp(prev, cur, (interval-acc)/d)
			out = append(out, q)
			prev = q
			acc = 0
			continue
		}
		acc += d
		prev = cur
		i++
	}

	last := points[len(points)-1]
	for len(out) < n {
		out = append(out, last)
	}
	return out
}

func pathLength(points []mgl32.Vec3, maxGap float32) float32 {
	var total float32
	for i := 1; i < len(points); i++ {
		if d := points[i-1].Sub(points[i]).Len(); d <= maxGap {
			total += d
		}
	}
	return total
}
