package boundary

import "github.com/kaelbrook/meshclip/geom"

// edgeOccurrence counts how many cap triangles touch an undirected edge,
// mirroring the teacher's EPA polytope merge step (epa/polytope.go), which
// tells a silhouette edge from an interior one the same way: by occurrence
// count rather than by walking a half-edge structure.
type edgeOccurrence struct {
	a, b geom.Vec3
	n    int
}

func edgeKeyOf(a, b geom.Vec3) (geom.Vec3, geom.Vec3) {
	if geom.CompareLex(a, b) > 0 {
		return b, a
	}
	return a, b
}

// PruneOutliers discards cap triangles that are disconnected from the main
// boundary loop or that merely retrace a face already present in the
// original mesh (the coplanar "overlap" set). It ports
// RemoveOutlierTriangles from the reference implementation, whose own call
// site leaves it disabled; Config.PruneCapOutliers carries that default
// forward (see DESIGN.md).
//
// triangles are cap triangles already resolved to flat vertex coordinates
// (not transient refs); eps is the point-equality tolerance used to compare
// a triangle's corners against the overlap set.
func PruneOutliers(vertices []geom.Vec3, triangles [][3]int, overlap []geom.Vec3, eps float64) [][3]int {
	if len(triangles) == 0 {
		return triangles
	}

	adjacency := make(map[[2]geom.Vec3][]int, len(triangles)*3)
	for ti, tri := range triangles {
		corners := [3]geom.Vec3{vertices[tri[0]], vertices[tri[1]], vertices[tri[2]]}
		for e := 0; e < 3; e++ {
			a, b := edgeKeyOf(corners[e], corners[(e+1)%3])
			key := [2]geom.Vec3{a, b}
			adjacency[key] = append(adjacency[key], ti)
		}
	}

	// A seam edge is shared by two cap triangles; a boundary edge belongs to
	// exactly one. Triangles reachable from any triangle that has at least
	// one true boundary edge survive, except those wholly contained in the
	// coplanar overlap set, which are dropped and not walked through.
	isOverlap := func(corners [3]geom.Vec3) bool {
		for _, c := range corners {
			found := false
			for i := 0; i+2 < len(overlap); i += 3 {
				if geom.SamePoint(c, overlap[i], eps) || geom.SamePoint(c, overlap[i+1], eps) || geom.SamePoint(c, overlap[i+2], eps) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}

	visited := make([]bool, len(triangles))
	keep := make([]bool, len(triangles))

	var queue []int
	for ti, tri := range triangles {
		corners := [3]geom.Vec3{vertices[tri[0]], vertices[tri[1]], vertices[tri[2]]}
		if isOverlap(corners) {
			continue
		}
		for e := 0; e < 3; e++ {
			a, b := edgeKeyOf(corners[e], corners[(e+1)%3])
			if len(adjacency[[2]geom.Vec3{a, b}]) == 1 {
				queue = append(queue, ti)
				break
			}
		}
	}

	for len(queue) > 0 {
		ti := queue[0]
		queue = queue[1:]
		if visited[ti] {
			continue
		}
		visited[ti] = true

		tri := triangles[ti]
		corners := [3]geom.Vec3{vertices[tri[0]], vertices[tri[1]], vertices[tri[2]]}
		if isOverlap(corners) {
			continue
		}
		keep[ti] = true
		for e := 0; e < 3; e++ {
			a, b := edgeKeyOf(corners[e], corners[(e+1)%3])
			for _, nb := range adjacency[[2]geom.Vec3{a, b}] {
				if !visited[nb] {
					queue = append(queue, nb)
				}
			}
		}
	}

	out := make([][3]int, 0, len(triangles))
	for ti, tri := range triangles {
		if keep[ti] {
			out = append(out, tri)
		}
	}
	return out
}
