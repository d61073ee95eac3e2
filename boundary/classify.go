package boundary

import "github.com/kaelbrook/meshclip/geom"

// Result is the outcome of classifying every triangle of a mesh against a
// single plane: the two half-mesh triangle lists in transient form, the
// accumulated boundary, and the set of original vertex ids each half
// actually references.
type Result struct {
	Positive []RawTriangle
	Negative []RawTriangle

	PosLive map[int]bool
	NegLive map[int]bool

	State *State

	// Defects counts triangles dropped because the plane intersection
	// produced a configuration Classify could not reconstruct a cap corner
	// from (spec's DegenerateTriangle kind).
	Defects int
}

func newResult() Result {
	return Result{
		PosLive: make(map[int]bool),
		NegLive: make(map[int]bool),
		State:   NewState(),
	}
}

func (r *Result) emit(positive bool, tri RawTriangle) {
	for _, c := range tri {
		if c.FromBorder {
			continue
		}
		if positive {
			r.PosLive[c.Index] = true
		} else {
			r.NegLive[c.Index] = true
		}
	}
	if positive {
		r.Positive = append(r.Positive, tri)
	} else {
		r.Negative = append(r.Negative, tri)
	}
}

func countNonZero(s0, s1, s2 int) int {
	n := 0
	if s0 != 0 {
		n++
	}
	if s1 != 0 {
		n++
	}
	if s2 != 0 {
		n++
	}
	return n
}

// Classify scans every triangle of a mesh (given as a flat vertex list plus
// index triples) against plane, producing the two half-mesh triangle lists
// and the boundary loop between them.
func Classify(vertices []geom.Vec3, triangles [][3]int, plane geom.Plane, eps float64) Result {
	res := newResult()
	st := res.State

	for _, tri := range triangles {
		id := [3]int{tri[0], tri[1], tri[2]}
		p := [3]geom.Vec3{vertices[id[0]], vertices[id[1]], vertices[id[2]]}
		s := [3]int{plane.Side(p[0], eps), plane.Side(p[1], eps), plane.Side(p[2], eps)}

		if s[0] == 0 && s[1] == 0 && s[2] == 0 {
			cut := plane.CutSide(p[0], p[1], p[2])
			s = [3]int{cut, cut, cut}
			st.RecordOverlap(p[0], p[1], p[2])
		}

		sum := s[0] + s[1] + s[2]
		nz := countNonZero(s[0], s[1], s[2])

		switch {
		case sum >= 2, sum == 1 && nz == 1:
			res.emit(true, RawTriangle{Orig(id[0]), Orig(id[1]), Orig(id[2])})
			if sum == 1 {
				res.emitOnPlaneEdge(st, id, p, s)
			}
		case sum <= -2, sum == -1 && nz == 1:
			res.emit(false, RawTriangle{Orig(id[0]), Orig(id[1]), Orig(id[2])})
			if sum == -1 {
				res.emitOnPlaneEdge(st, id, p, s)
			}
		default:
			res.classifyStraddle(st, id, p, s, plane, eps)
		}
	}

	return res
}

// emitOnPlaneEdge handles the configuration where exactly one corner is
// strictly off the plane and the other two lie on it, so the whole triangle
// stays on one side but one of its edges is also a boundary edge.
func (r *Result) emitOnPlaneEdge(st *State, id [3]int, p [3]geom.Vec3, s [3]int) {
	var a, b int
	var pa, pb geom.Vec3
	var sign int
	switch {
	case s[0] != 0:
		a, b, pa, pb, sign = id[1], id[2], p[1], p[2], s[0]
	case s[1] != 0:
		a, b, pa, pb, sign = id[2], id[0], p[2], p[0], s[1]
	default:
		a, b, pa, pb, sign = id[0], id[1], p[0], p[1], s[2]
	}
	ia := st.InternVertex(a, pa)
	ib := st.InternVertex(b, pb)
	if sign > 0 {
		st.AddBorderEdge(ia, ib)
	} else {
		st.AddBorderEdge(ib, ia)
	}
}

// classifyStraddle handles every triangle that genuinely straddles the
// plane: either two of its edges cross it (the common case) or one of its
// corners lies exactly on the plane and the opposite edge crosses it.
func (r *Result) classifyStraddle(st *State, id [3]int, p [3]geom.Vec3, s [3]int, plane geom.Plane, eps float64) {
	var hitPt [3]geom.Vec3
	var hitOK [3]bool
	for e := 0; e < 3; e++ {
		hitPt[e], hitOK[e] = plane.IntersectSegment(p[e], p[(e+1)%3], eps)
	}

	trueCount, missing := 0, -1
	for e := 0; e < 3; e++ {
		if hitOK[e] {
			trueCount++
		} else {
			missing = e
		}
	}

	switch trueCount {
	case 2:
		r.twoHitCase(st, id, p, s, missing, hitPt, eps)
	case 3:
		onPlane := -1
		for k := 0; k < 3; k++ {
			if s[k] == 0 {
				onPlane = k
			}
		}
		if onPlane >= 0 {
			r.vertexOnPlaneCase(st, id, p, s, onPlane, hitPt)
			return
		}
		r.degenerateSliverCase(st, id, p, s, hitPt, eps)
	default:
		r.Defects++
	}
}

// twoHitCase handles the ordinary straddle: two edges cross the plane, the
// third (opposite the minority corner) does not. mc is the minority corner
// that ends up alone on its side of the cut; the other two corners share the
// majority side.
func (r *Result) twoHitCase(st *State, id [3]int, p [3]geom.Vec3, s [3]int, missing int, hitPt [3]geom.Vec3, eps float64) {
	mc := (missing + 2) % 3
	before := (mc + 2) % 3 // corner on the first crossing edge (before, mc)
	after := (mc + 1) % 3  // corner on the second crossing edge (mc, after)

	// The two edges that actually cross are the ones touching mc: edge
	// `before` (connecting corners before and mc) and edge `mc` itself
	// (connecting corners mc and after). `missing` never crosses.
	ptBefore, ptAfter := hitPt[before], hitPt[mc]
	if geom.SamePoint(ptBefore, ptAfter, eps) {
		idx := st.InternEdge(id[before], id[(before+1)%3], ptBefore)
		st.BindEdge(id[mc], id[after], idx)
		majority := s[before] > 0
		r.emit(majority, RawTriangle{Orig(id[before]), Border(idx), Orig(id[after])})
		return
	}

	idxBefore := st.InternEdge(id[before], id[(before+1)%3], ptBefore)
	idxAfter := st.InternEdge(id[mc], id[after], ptAfter)

	minorityPositive := s[mc] > 0
	r.emit(minorityPositive, RawTriangle{Orig(id[mc]), Border(idxAfter), Border(idxBefore)})
	r.emit(!minorityPositive, RawTriangle{Orig(id[before]), Border(idxBefore), Border(idxAfter)})
	r.emit(!minorityPositive, RawTriangle{Border(idxAfter), Orig(id[after]), Orig(id[before])})

	if minorityPositive {
		st.AddBorderEdge(idxAfter, idxBefore)
	} else {
		st.AddBorderEdge(idxBefore, idxAfter)
	}
}

// vertexOnPlaneCase handles a triangle with one corner exactly on the plane
// and the opposite edge crossing it: the on-plane corner is reused as a
// border point and the triangle splits into two, one per side.
func (r *Result) vertexOnPlaneCase(st *State, id [3]int, p [3]geom.Vec3, s [3]int, k int, hitPt [3]geom.Vec3) {
	after := (k + 1) % 3
	before := (k + 2) % 3

	v0 := st.InternVertex(id[k], p[k])
	// The on-plane vertex sits on every edge touching it.
	st.BindEdge(id[k], id[after], v0)
	st.BindEdge(id[k], id[before], v0)

	// Edge index "after" connects corner(after) to corner(before): that is
	// the edge opposite k, indexed by (after) since edge e connects corners
	// e and e+1.
	eIdx := st.InternEdge(id[after], id[before], hitPt[after])

	r.emit(s[after] > 0, RawTriangle{Orig(id[after]), Border(eIdx), Border(v0)})
	r.emit(s[after] <= 0, RawTriangle{Orig(id[before]), Border(v0), Border(eIdx)})

	if s[after] > 0 {
		st.AddBorderEdge(eIdx, v0)
	} else {
		st.AddBorderEdge(v0, eIdx)
	}
}

// degenerateSliverCase handles the rare numerical case where all three
// edges report a hit but no corner classifies as exactly on the plane: two
// of the hits land on (nearly) the same point, meaning the crossing really
// happens at the corner the two edges share. Treat that corner as if it were
// exactly on the plane and fall back to vertexOnPlaneCase.
func (r *Result) degenerateSliverCase(st *State, id [3]int, p [3]geom.Vec3, s [3]int, hitPt [3]geom.Vec3, eps float64) {
	for e := 0; e < 3; e++ {
		f := (e + 1) % 3
		if !geom.SamePoint(hitPt[e], hitPt[f], eps) {
			continue
		}
		r.vertexOnPlaneCase(st, id, p, s, f, hitPt)
		return
	}
	r.Defects++
}
