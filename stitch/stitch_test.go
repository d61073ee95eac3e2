package stitch

import (
	"testing"

	"github.com/kaelbrook/meshclip/boundary"
	"github.com/kaelbrook/meshclip/geom"
)

func TestStitchResolvesIndicesAndReversesCapWinding(t *testing.T) {
	origVertices := []geom.Vec3{{0, 0, 1}, {1, 0, 1}, {0, 1, -1}}
	border := []geom.Vec3{{0, 0, 0}, {1, 0, 0}}

	posRaw := []boundary.RawTriangle{
		{boundary.Orig(0), boundary.Orig(1), boundary.Border(1)},
	}
	negRaw := []boundary.RawTriangle{
		{boundary.Orig(2), boundary.Border(1), boundary.Border(0)},
	}
	cap := [][3]int{{0, 1, 0}} // degenerate on purpose, just exercises winding

	pos, neg := Stitch(origVertices, border, posRaw, negRaw, cap)

	if len(pos.Vertices) != 4 || len(pos.Triangles) != 2 {
		t.Fatalf("unexpected positive half shape: verts=%d tris=%d", len(pos.Vertices), len(pos.Triangles))
	}
	if len(neg.Vertices) != 3 || len(neg.Triangles) != 2 {
		t.Fatalf("unexpected negative half shape: verts=%d tris=%d", len(neg.Vertices), len(neg.Triangles))
	}

	posCap := pos.Triangles[len(pos.Triangles)-1]
	negCap := neg.Triangles[len(neg.Triangles)-1]
	// Each half numbers its vertices independently, so compare the corners
	// by position rather than by index.
	if pos.Vertices[posCap[1]] != neg.Vertices[negCap[2]] || pos.Vertices[posCap[2]] != neg.Vertices[negCap[1]] {
		t.Errorf("expected the negative half's cap triangle to be wound opposite the positive half's: pos=%v neg=%v", posCap, negCap)
	}

	for _, idx := range pos.Triangles[0] {
		if idx < 0 || idx >= len(pos.Vertices) {
			t.Fatalf("positive triangle index %d out of range (have %d vertices)", idx, len(pos.Vertices))
		}
	}
}
