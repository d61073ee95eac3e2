package planar

import (
	"testing"

	"github.com/kaelbrook/meshclip/geom"
)

func TestNewFrameRoundTrip(t *testing.T) {
	border := []geom.Vec3{
		{0, 0, 2},
		{1, 0, 2},
		{0, 1, 2},
		{1, 1, 2},
	}
	plane := geom.NewPlane(0, 0, 1, -2)

	frame, ok := NewFrame(border, plane)
	if !ok {
		t.Fatalf("expected a valid frame")
	}

	for _, p := range border {
		back := frame.Lift(frame.Project(p))
		if !geom.SamePoint(p, back, 1e-9) {
			t.Errorf("round trip mismatch: %v -> %v", p, back)
		}
	}

	if frame.N.Dot(plane.Normal()) <= 0 {
		t.Errorf("frame normal should agree with plane normal, got %v vs %v", frame.N, plane.Normal())
	}
}

func TestNewFrameRejectsDegenerateBorder(t *testing.T) {
	border := []geom.Vec3{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	plane := geom.NewPlane(0, 0, 1, 0)

	if _, ok := NewFrame(border, plane); ok {
		t.Fatalf("expected NewFrame to reject a collapsed border")
	}
}
