// Package meshclip clips a triangle mesh against one or more planes,
// reconstructing the cut boundary, re-triangulating it, and stitching the
// resulting cap back into both halves. See SPEC_FULL.md for the full
// component breakdown.
package meshclip

import "github.com/kaelbrook/meshclip/geom"

// Vec3 is a point or direction in 3D space.
type Vec3 = geom.Vec3

// Plane is the cutting surface a mesh is classified against.
type Plane = geom.Plane

// NewPlane builds a unit-normal plane from raw coefficients.
func NewPlane(a, b, c, d float64) Plane { return geom.NewPlane(a, b, c, d) }

// NewPlaneFromPoints builds the plane through three non-collinear points.
func NewPlaneFromPoints(p0, p1, p2 Vec3) Plane { return geom.NewPlaneFromPoints(p0, p1, p2) }

// Triangle is three flat, non-negative indices into a Mesh's Vertices.
type Triangle [3]int

// Mesh is a closed, manifold triangle mesh: a flat vertex list and a list
// of triangles indexing into it. Clip and MultiClip never mutate the mesh
// they're given; every result is a fresh Mesh.
type Mesh struct {
	Vertices  []Vec3
	Triangles []Triangle
}

// MeshList is the result of clipping or multi-clipping a mesh: zero or more
// fragments, one per surviving non-empty half.
type MeshList []Mesh

// Bounds returns the mesh's axis-aligned bounding box. It is empty (Min
// after Max on every axis) for a mesh with no vertices.
func (m Mesh) Bounds() AABB {
	return newAABB(m.Vertices)
}

func toFlat(tris []Triangle) [][3]int {
	out := make([][3]int, len(tris))
	for i, t := range tris {
		out[i] = [3]int(t)
	}
	return out
}

func fromFlat(tris [][3]int) []Triangle {
	out := make([]Triangle, len(tris))
	for i, t := range tris {
		out[i] = Triangle(t)
	}
	return out
}
