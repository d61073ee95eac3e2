// Package geom holds the value types shared by every stage of the clip
// pipeline: points, planes and the small set of predicates built on them.
// Nothing here owns a mesh or a triangulation; those live in the packages
// that consume geom.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or direction in 3D space, IEEE-754 double precision.
type Vec3 = mgl64.Vec3

// Vec2 is a point in the plane used by the planar remap and triangulation
// stages.
type Vec2 = mgl64.Vec2

// SamePoint reports whether p and q coincide within eps on every axis.
func SamePoint(p, q Vec3, eps float64) bool {
	d := p.Sub(q)
	return math.Abs(d.X()) < eps && math.Abs(d.Y()) < eps && math.Abs(d.Z()) < eps
}

// FaceNormal returns the (unnormalised) normal of triangle p0,p1,p2 following
// the right-hand rule.
func FaceNormal(p0, p1, p2 Vec3) Vec3 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// CompareLex orders two points lexicographically by X, then Y, then Z. It
// gives every dedup step in the pipeline a total order to sort by, the same
// role compareVec3 plays in the teacher's polytope merge step.
func CompareLex(a, b Vec3) int {
	for i := 0; i < 3; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
