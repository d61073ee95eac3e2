package boundary

import (
	"testing"

	"github.com/kaelbrook/meshclip/geom"
)

func vec3ApproxEqual(a, b geom.Vec3, eps float64) bool {
	return geom.SamePoint(a, b, eps)
}

func TestClassifySingleStraddlingTriangle(t *testing.T) {
	// Triangle (0,0,-1), (2,0,1), (0,2,1) straddles the plane z=0: corner 0
	// is negative, the other two are positive.
	vertices := []geom.Vec3{
		{0, 0, -1},
		{2, 0, 1},
		{0, 2, 1},
	}
	triangles := [][3]int{{0, 1, 2}}
	plane := geom.NewPlane(0, 0, 1, 0)

	res := Classify(vertices, triangles, plane, 1e-9)

	if res.Defects != 0 {
		t.Fatalf("unexpected defects: %d", res.Defects)
	}
	if len(res.Positive) != 2 {
		t.Fatalf("expected 2 positive triangles, got %d", len(res.Positive))
	}
	if len(res.Negative) != 1 {
		t.Fatalf("expected 1 negative triangle, got %d", len(res.Negative))
	}
	if len(res.State.Border) != 2 {
		t.Fatalf("expected 2 border points, got %d", len(res.State.Border))
	}
	if len(res.State.BorderEdges) != 1 {
		t.Fatalf("expected 1 border edge, got %d", len(res.State.BorderEdges))
	}
	// Edge (2,0) crosses z=0 at (0,1,0); edge (0,1) crosses at (1,0,0). A
	// wrong edge/corner pairing here produces a spurious (0,0,0) point
	// instead of one of these two.
	wantBorder := []geom.Vec3{{0, 1, 0}, {1, 0, 0}}
	for i, want := range wantBorder {
		if !vec3ApproxEqual(res.State.Border[i], want, 1e-9) {
			t.Fatalf("border point %d = %v, want %v", i, res.State.Border[i], want)
		}
	}
}

func TestClassifyOneCornerOnPlane(t *testing.T) {
	// Corner 0 lies exactly on z=0, corners 1 and 2 are on opposite sides.
	vertices := []geom.Vec3{
		{0, 0, 0},
		{1, 0, 1},
		{1, 1, -1},
	}
	triangles := [][3]int{{0, 1, 2}}
	plane := geom.NewPlane(0, 0, 1, 0)

	res := Classify(vertices, triangles, plane, 1e-9)

	if res.Defects != 0 {
		t.Fatalf("unexpected defects: %d", res.Defects)
	}
	if len(res.Positive) != 1 || len(res.Negative) != 1 {
		t.Fatalf("expected one triangle per side, got pos=%d neg=%d", len(res.Positive), len(res.Negative))
	}
	// The on-plane vertex and the opposite-edge crossing become the two
	// border points.
	if len(res.State.Border) != 2 {
		t.Fatalf("expected 2 border points, got %d", len(res.State.Border))
	}
}

func TestClassifySameSideTrianglesStayWhole(t *testing.T) {
	vertices := []geom.Vec3{
		{0, 0, 1},
		{1, 0, 1},
		{0, 1, 1},
		{0, 0, -1},
		{1, 0, -1},
		{0, 1, -1},
	}
	triangles := [][3]int{{0, 1, 2}, {3, 4, 5}}
	plane := geom.NewPlane(0, 0, 1, 0)

	res := Classify(vertices, triangles, plane, 1e-9)

	if len(res.Positive) != 1 || len(res.Negative) != 1 {
		t.Fatalf("expected one triangle per side untouched, got pos=%d neg=%d", len(res.Positive), len(res.Negative))
	}
	if len(res.State.Border) != 0 {
		t.Fatalf("expected no boundary for fully separated mesh, got %d points", len(res.State.Border))
	}
}

func TestClassifyEdgeOnPlaneCase(t *testing.T) {
	// Corners 1 and 2 lie on the plane, corner 0 is strictly positive: the
	// whole triangle is positive but contributes a boundary edge.
	vertices := []geom.Vec3{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
	}
	triangles := [][3]int{{0, 1, 2}}
	plane := geom.NewPlane(0, 0, 1, 0)

	res := Classify(vertices, triangles, plane, 1e-9)

	if len(res.Positive) != 1 || len(res.Negative) != 0 {
		t.Fatalf("expected the triangle to stay whole on the positive side, got pos=%d neg=%d", len(res.Positive), len(res.Negative))
	}
	if len(res.State.BorderEdges) != 1 {
		t.Fatalf("expected 1 boundary edge, got %d", len(res.State.BorderEdges))
	}
}
