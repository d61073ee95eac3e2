// Package stitch resolves the transient triangle lists produced by boundary
// and the cap produced by triangulate+planar back into two self-contained
// half-meshes, each with its own flat vertex list and winding, ready to
// become the output of a single clip.
package stitch

import (
	"github.com/kaelbrook/meshclip/boundary"
	"github.com/kaelbrook/meshclip/geom"
)

// Half is one side of a finished clip: a flat vertex list and triangles
// indexing into it, with no references back into the original mesh or the
// transient border.
type Half struct {
	Vertices  []geom.Vec3
	Triangles [][3]int
}

// Stitch resolves both halves of a clip. origVertices and border are the
// original mesh's vertex list and the boundary loop built while
// classifying; posRaw/negRaw are the transient triangle lists Classify
// produced; cap is the re-triangulated boundary polygon, indexed into
// border, wound so its lifted face normal points along the cutting plane's
// own normal (the convention planar.Frame produces). That orientation seals
// the negative half correctly as-is; the positive half needs it reversed so
// its cap faces outward from the solid it belongs to.
func Stitch(origVertices, border []geom.Vec3, posRaw, negRaw []boundary.RawTriangle, cap [][3]int) (pos, neg Half) {
	pos = buildHalf(origVertices, border, posRaw, cap, true)
	neg = buildHalf(origVertices, border, negRaw, cap, false)
	return pos, neg
}

// projection resolves transient vertex references to flat indices into a
// single half's vertex list, interning each original or border vertex the
// first time it's referenced. It plays the role of the reference
// implementation's pos_proj/neg_proj tables without the sentinel-zero
// bookkeeping those arrays need in a 1-indexed language.
type projection struct {
	verts       []geom.Vec3
	origIndex   map[int]int
	borderIndex map[int]int
}

func newProjection() *projection {
	return &projection{
		origIndex:   make(map[int]int),
		borderIndex: make(map[int]int),
	}
}

func (p *projection) resolve(origVertices, border []geom.Vec3, ref boundary.VertexRef) int {
	if ref.FromBorder {
		if idx, ok := p.borderIndex[ref.Index]; ok {
			return idx
		}
		idx := len(p.verts)
		p.verts = append(p.verts, border[ref.Index])
		p.borderIndex[ref.Index] = idx
		return idx
	}
	if idx, ok := p.origIndex[ref.Index]; ok {
		return idx
	}
	idx := len(p.verts)
	p.verts = append(p.verts, origVertices[ref.Index])
	p.origIndex[ref.Index] = idx
	return idx
}

func buildHalf(origVertices, border []geom.Vec3, raw []boundary.RawTriangle, cap [][3]int, reverseCapWinding bool) Half {
	proj := newProjection()

	triangles := make([][3]int, 0, len(raw)+len(cap))
	for _, rt := range raw {
		triangles = append(triangles, [3]int{
			proj.resolve(origVertices, border, rt[0]),
			proj.resolve(origVertices, border, rt[1]),
			proj.resolve(origVertices, border, rt[2]),
		})
	}

	for _, c := range cap {
		a := proj.resolve(origVertices, border, boundary.Border(c[0]))
		b := proj.resolve(origVertices, border, boundary.Border(c[1]))
		cc := proj.resolve(origVertices, border, boundary.Border(c[2]))
		if reverseCapWinding {
			triangles = append(triangles, [3]int{a, cc, b})
		} else {
			triangles = append(triangles, [3]int{a, b, cc})
		}
	}

	return Half{Vertices: proj.verts, Triangles: triangles}
}
