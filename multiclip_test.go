package meshclip

import "testing"

type spySink struct {
	records []ClipStats
}

func (s *spySink) Record(c ClipStats) { s.records = append(s.records, c) }

func TestMultiClipThreeOrthogonalPlanes(t *testing.T) {
	mesh := unitCube()
	planes := []Plane{
		NewPlane(1, 0, 0, -0.5),
		NewPlane(0, 1, 0, -0.5),
		NewPlane(0, 0, 1, -0.5),
	}
	sink := &spySink{}

	out := MultiClip(mesh, planes, DefaultConfig(), sink)

	if len(out) != 8 {
		t.Fatalf("expected 8 octants, got %d", len(out))
	}
	if len(sink.records) == 0 {
		t.Fatalf("expected stats to be recorded for each clip")
	}
	for i, frag := range out {
		if len(frag.Triangles) == 0 {
			t.Errorf("octant %d has no triangles", i)
		}
	}
}

func TestMultiClipDropsEmptyFragments(t *testing.T) {
	mesh := unitCube()
	// A plane far outside the cube leaves one side with the whole mesh and
	// the other with nothing; the empty side must not survive into the
	// next round.
	planes := []Plane{NewPlane(0, 0, 1, -10)}

	out := MultiClip(mesh, planes, DefaultConfig(), nil)
	if len(out) != 1 {
		t.Fatalf("expected 1 surviving fragment, got %d", len(out))
	}
}

func TestMultiClipAppliesPreprocessor(t *testing.T) {
	mesh := unitCube()
	planes := []Plane{NewPlane(0, 0, 1, -0.5)}

	calls := 0
	cfg := DefaultConfig()
	cfg.Preprocessor = func(m *Mesh) *Mesh {
		calls++
		return m
	}

	out := MultiClip(mesh, planes, cfg, nil)
	if len(out) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(out))
	}
	if calls != 2 {
		t.Errorf("expected the preprocessor to run once per surviving fragment, got %d calls", calls)
	}
}

func TestProcessConvertsPointsToPlanes(t *testing.T) {
	mesh := unitCube()
	cutPoints := []Vec3{{0, 0, 0.5}} // one point, interpreted by the builder below

	builder := func(pts []Vec3) ([]Plane, error) {
		out := make([]Plane, len(pts))
		for i, p := range pts {
			out[i] = NewPlane(0, 0, 1, -p.Z())
		}
		return out, nil
	}

	out, err := Process(mesh, cutPoints, builder, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(out))
	}
}
