package renderer

import (
	"github.com/Faultbox/locomotion/pkg/math"
)

// Vertices are interleaved position (x, y, z) and color (r, g, b).
const vertexStride = 6

// markerVertices builds the character marker in model space: a flat arrow
// on the XZ plane pointing down +Z, which is the facing-zero direction.
// Returned as a TRIANGLES list.
func markerVertices() []float32 {
	body := [3]float32{0.85, 0.85, 0.85}
	tip := [3]float32{1.0, 1.0, 1.0}

	tri := func(out []float32, a, b, c math.Vec3, col [3]float32) []float32 {
		for _, p := range []math.Vec3{a, b, c} {
			out = append(out, p.X, p.Y, p.Z, col[0], col[1], col[2])
		}
		return out
	}

	var v []float32
	// shaft
	v = tri(v, math.Vec3{X: -0.2, Z: -0.6}, math.Vec3{X: 0.2, Z: -0.6}, math.Vec3{X: 0.2, Z: 0.2}, body)
	v = tri(v, math.Vec3{X: -0.2, Z: -0.6}, math.Vec3{X: 0.2, Z: 0.2}, math.Vec3{X: -0.2, Z: 0.2}, body)
	// head
	v = tri(v, math.Vec3{X: -0.5, Z: 0.2}, math.Vec3{X: 0.5, Z: 0.2}, math.Vec3{Z: 0.9}, tip)
	return v
}

// gridVertices builds a square ground grid of lines centred on the origin,
// half extent cells to a side, at height y. Returned as a LINES list.
func gridVertices(extent int, spacing, y float32) []float32 {
	if extent <= 0 || spacing <= 0 {
		return nil
	}
	col := [3]float32{0.3, 0.3, 0.35}
	lim := float32(extent) * spacing

	v := make([]float32, 0, (2*extent+1)*4*vertexStride)
	for i := -extent; i <= extent; i++ {
		p := float32(i) * spacing
		v = append(v,
			p, y, -lim, col[0], col[1], col[2],
			p, y, lim, col[0], col[1], col[2],
			-lim, y, p, col[0], col[1], col[2],
			lim, y, p, col[0], col[1], col[2],
		)
	}
	return v
}
