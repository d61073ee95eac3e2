// Package planar builds an orthonormal frame for a cut-plane boundary and
// projects it into 2D for triangulation, then lifts the result back into
// the plane. The frame construction mirrors CreatePlaneRotationMatrix in
// the reference implementation, and the tangent/bitangent bookkeeping
// follows the same shape as the teacher's epa/manifold.go, which builds a
// contact tangent basis from a single normal the same way.
package planar

import (
	"math"

	"github.com/kaelbrook/meshclip/geom"
)

const collinearTolerance = 1e-6

// Frame is an orthonormal basis (U, V, N) anchored at T, used to project a
// set of coplanar 3D points into 2D and back. N is kept aligned with the
// plane's own normal; U and V span the plane.
type Frame struct {
	U, V, N geom.Vec3
	T       geom.Vec3
}

// NewFrame builds a frame for the given plane from three of its boundary
// points. It picks border[0] as the anchor, scans forward for a point far
// enough away to fix U, then scans for a third point that isn't collinear
// with the first two to fix the tentative normal, flipping the basis if
// that normal opposes the plane's own.
func NewFrame(border []geom.Vec3, plane geom.Plane) (Frame, bool) {
	if len(border) < 3 {
		return Frame{}, false
	}

	t := border[0]

	uIdx := -1
	for i := 1; i < len(border); i++ {
		if border[i].Sub(t).Len() > collinearTolerance {
			uIdx = i
			break
		}
	}
	if uIdx < 0 {
		return Frame{}, false
	}
	u := border[uIdx].Sub(t).Normalize()

	wIdx := -1
	for i := 1; i < len(border); i++ {
		if i == uIdx {
			continue
		}
		d := border[i].Sub(t)
		if d.Len() <= collinearTolerance {
			continue
		}
		w := d.Normalize()
		cos := math.Abs(u.Dot(w))
		if cos < 1-collinearTolerance {
			wIdx = i
			break
		}
	}
	if wIdx < 0 {
		return Frame{}, false
	}

	n := u.Cross(border[wIdx].Sub(t)).Normalize()
	if n.Dot(plane.Normal()) < 0 {
		n = n.Mul(-1)
		u = u.Mul(-1)
	}
	v := n.Cross(u).Normalize()

	return Frame{U: u, V: v, N: n, T: t}, true
}

// Project maps a 3D point lying on the frame's plane into 2D coordinates.
func (f Frame) Project(p geom.Vec3) geom.Vec2 {
	d := p.Sub(f.T)
	return geom.Vec2{f.U.Dot(d), f.V.Dot(d)}
}

// Lift maps a 2D point, including a Steiner point introduced by
// triangulation, back onto the frame's plane in 3D.
func (f Frame) Lift(p geom.Vec2) geom.Vec3 {
	return f.T.Add(f.U.Mul(p.X())).Add(f.V.Mul(p.Y()))
}

// ProjectAll projects every point of border into 2D, in order.
func ProjectAll(f Frame, border []geom.Vec3) []geom.Vec2 {
	out := make([]geom.Vec2, len(border))
	for i, p := range border {
		out[i] = f.Project(p)
	}
	return out
}
