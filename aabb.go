package meshclip

import "math"

// AABB is an axis-aligned bounding box, adapted from the teacher's
// actor.AABB for a single purpose here: letting Clip skip the full triangle
// scan when a plane misses a mesh entirely.
type AABB struct {
	Min, Max Vec3
}

func newAABB(vertices []Vec3) AABB {
	if len(vertices) == 0 {
		return AABB{
			Min: Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
			Max: Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
		}
	}
	min, max := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return AABB{Min: min, Max: max}
}

// corners returns the 8 corners of the box.
func (a AABB) corners() [8]Vec3 {
	return [8]Vec3{
		{a.Min.X(), a.Min.Y(), a.Min.Z()},
		{a.Max.X(), a.Min.Y(), a.Min.Z()},
		{a.Min.X(), a.Max.Y(), a.Min.Z()},
		{a.Max.X(), a.Max.Y(), a.Min.Z()},
		{a.Min.X(), a.Min.Y(), a.Max.Z()},
		{a.Max.X(), a.Min.Y(), a.Max.Z()},
		{a.Min.X(), a.Max.Y(), a.Max.Z()},
		{a.Max.X(), a.Max.Y(), a.Max.Z()},
	}
}

// wholeSide reports the side every corner of the box classifies on, and
// whether all corners agree. A plane that leaves a mesh's bounding box
// entirely on one side can't intersect the mesh itself.
func (a AABB) wholeSide(plane Plane, eps float64) (side int, uniform bool) {
	corners := a.corners()
	side = plane.Side(corners[0], eps)
	for _, c := range corners[1:] {
		if plane.Side(c, eps) != side {
			return 0, false
		}
	}
	return side, true
}
