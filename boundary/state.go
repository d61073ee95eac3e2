// Package boundary reconstructs the cut-plane boundary while a clip scans a
// mesh's triangles, classifying each one against the plane and accumulating
// the loop of points the planar stage will re-triangulate. It plays the role
// the teacher's gjk package plays for EPA: it consumes raw geometry and
// produces the structure the next stage expands on.
package boundary

import "github.com/kaelbrook/meshclip/geom"

// VertexRef names one corner of a transient triangle produced while
// classifying: either an index into the original mesh's vertex list, or an
// index into State.Border. Keeping the two spaces separate, rather than
// encoding the second as a negative offset of the first, is a deliberate
// departure from the reference implementation (see DESIGN.md).
type VertexRef struct {
	FromBorder bool
	Index      int
}

// Orig builds a reference to original mesh vertex id.
func Orig(id int) VertexRef { return VertexRef{Index: id} }

// Border builds a reference to border point idx.
func Border(idx int) VertexRef { return VertexRef{FromBorder: true, Index: idx} }

// RawTriangle is a triangle whose corners may reference either space. The
// stitch package resolves every RawTriangle into flat mesh indices once the
// border has been re-triangulated.
type RawTriangle [3]VertexRef

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// State accumulates the boundary loop while a single Classify call scans a
// mesh. It is created fresh per clip and discarded once the cap has been
// stitched back in.
type State struct {
	Border      []geom.Vec3
	Overlap     []geom.Vec3 // corners of coplanar triangles, used by cap pruning
	BorderEdges [][2]int    // 1-indexed into Border, CCW around the positive half

	vertexMap map[int]int
	edgeMap   map[edgeKey]int
}

// NewState returns an empty boundary accumulator.
func NewState() *State {
	return &State{
		vertexMap: make(map[int]int),
		edgeMap:   make(map[edgeKey]int),
	}
}

// InternVertex returns the border index standing in for original vertex id,
// creating one the first time id is seen on the plane.
func (s *State) InternVertex(id int, p geom.Vec3) int {
	if idx, ok := s.vertexMap[id]; ok {
		return idx
	}
	idx := len(s.Border)
	s.Border = append(s.Border, p)
	s.vertexMap[id] = idx
	return idx
}

// InternEdge returns the border index for the point where original edge
// (a,b) crosses the plane, creating one the first time the unordered pair is
// seen.
func (s *State) InternEdge(a, b int, p geom.Vec3) int {
	key := makeEdgeKey(a, b)
	if idx, ok := s.edgeMap[key]; ok {
		return idx
	}
	idx := len(s.Border)
	s.Border = append(s.Border, p)
	s.edgeMap[key] = idx
	return idx
}

// BindEdge aliases edge (a,b) to an already-interned border index, used when
// a straddling triangle's intersection collapses onto a point already found
// another way.
func (s *State) BindEdge(a, b, idx int) {
	s.edgeMap[makeEdgeKey(a, b)] = idx
}

// AddBorderEdge records a directed boundary segment between two border
// indices, dropping degenerate self-edges.
func (s *State) AddBorderEdge(u, v int) {
	if u == v {
		return
	}
	s.BorderEdges = append(s.BorderEdges, [2]int{u + 1, v + 1})
}

// RecordOverlap stores the corners of a fully coplanar triangle, consulted
// later by cap pruning to tell a genuine boundary triangle from one that
// merely retraces a face already in the mesh.
func (s *State) RecordOverlap(p0, p1, p2 geom.Vec3) {
	s.Overlap = append(s.Overlap, p0, p1, p2)
}
