package meshclip

import (
	"fmt"

	"github.com/kaelbrook/meshclip/boundary"
	"github.com/kaelbrook/meshclip/geom"
	"github.com/kaelbrook/meshclip/planar"
	"github.com/kaelbrook/meshclip/stitch"
	"github.com/kaelbrook/meshclip/triangulate"
)

// ClipDefault clips mesh against plane using DefaultConfig.
func ClipDefault(mesh Mesh, plane Plane) (MeshList, ClipStats) {
	return Clip(mesh, plane, DefaultConfig())
}

// Clip classifies every triangle of mesh against plane, reconstructs the
// cut boundary, re-triangulates it, and stitches the cap back into both
// halves. It never mutates mesh. The returned MeshList holds only the
// non-empty halves: a plane that misses the mesh entirely returns a
// single-element list containing mesh unchanged.
func Clip(mesh Mesh, plane Plane, cfg Config) (MeshList, ClipStats) {
	stats := ClipStats{InputTriangles: len(mesh.Triangles)}

	if len(mesh.Triangles) == 0 {
		return nil, stats
	}

	if side, uniform := mesh.Bounds().wholeSide(plane, cfg.SideEpsilon); uniform && side != 0 {
		stats.PositiveTriangles = len(mesh.Triangles)
		stats.NegativeTriangles = 0
		if side < 0 {
			stats.PositiveTriangles, stats.NegativeTriangles = 0, len(mesh.Triangles)
		}
		return MeshList{mesh}, stats
	}

	res := boundary.Classify(mesh.Vertices, toFlat(mesh.Triangles), plane, cfg.SideEpsilon)
	stats.DegenerateDropped = res.Defects

	// A plane that only touches the mesh (every triangle on one side or in
	// the plane) separates nothing: no boundary is reported and no cap is
	// built.
	touchesOnly := len(res.Positive) == 0 || len(res.Negative) == 0
	if !touchesOnly {
		stats.BorderPoints = len(res.State.Border)
	}

	var capTriangles [][3]int
	combinedBorder := res.State.Border

	if len(res.State.Border) > 0 && !touchesOnly {
		var err error
		capTriangles, combinedBorder, err = buildCap(plane, res.State, cfg)
		if err != nil {
			stats.Unsealed = true
			capTriangles = nil
			combinedBorder = res.State.Border
		}
	}

	if cfg.PruneCapOutliers && len(capTriangles) > 0 {
		capTriangles = boundary.PruneOutliers(combinedBorder, capTriangles, res.State.Overlap, cfg.PointEpsilon)
	}
	stats.CapTriangles = len(capTriangles)

	pos, neg := stitch.Stitch(mesh.Vertices, combinedBorder, res.Positive, res.Negative, capTriangles)
	stats.PositiveTriangles = len(pos.Triangles)
	stats.NegativeTriangles = len(neg.Triangles)

	var out MeshList
	if len(pos.Triangles) > 0 {
		out = append(out, Mesh{Vertices: pos.Vertices, Triangles: fromFlat(pos.Triangles)})
	}
	if len(neg.Triangles) > 0 {
		out = append(out, Mesh{Vertices: neg.Vertices, Triangles: fromFlat(neg.Triangles)})
	}
	return out, stats
}

// buildCap builds an orthonormal frame for the boundary, projects it to 2D,
// triangulates it, and lifts the result (including any Steiner points the
// triangulator introduced) back into 3D. It returns the cap's triangles
// indexed into an extension of state.Border that includes those Steiner
// points, wound so the lifted face normal follows plane's own normal.
func buildCap(plane Plane, state *boundary.State, cfg Config) (cap [][3]int, combinedBorder []Vec3, err error) {
	frame, ok := planar.NewFrame(state.Border, plane)
	if !ok {
		return nil, nil, fmt.Errorf("%w", ErrCollinearBoundary)
	}

	projected := planar.ProjectAll(frame, state.Border)
	edges := make([][2]int, len(state.BorderEdges))
	for i, e := range state.BorderEdges {
		edges[i] = [2]int{e[0] - 1, e[1] - 1}
	}

	result, terr := triangulate.Triangulate(projected, edges)
	if terr != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTriangulationFailure, terr)
	}

	combinedBorder = append([]Vec3(nil), state.Border...)
	indexMap := make([]int, len(result.Points))
	for i, pt := range result.Points {
		matched := -1
		for j, orig := range projected {
			if approxEqualVec2(pt, orig, cfg.PointEpsilon) {
				matched = j
				break
			}
		}
		if matched >= 0 {
			indexMap[i] = matched
			continue
		}
		indexMap[i] = len(combinedBorder)
		combinedBorder = append(combinedBorder, frame.Lift(pt))
	}

	cap = make([][3]int, len(result.Triangles))
	for i, t := range result.Triangles {
		cap[i] = [3]int{indexMap[t[0]], indexMap[t[1]], indexMap[t[2]]}
	}
	return cap, combinedBorder, nil
}

func approxEqualVec2(a, b geom.Vec2, eps float64) bool {
	return absf(a.X()-b.X()) < eps && absf(a.Y()-b.Y()) < eps
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
