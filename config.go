package meshclip

// Config groups the tunables a clip needs, the same shape the
// gomesh/cdt collaborator exposes through BuildOptions/DefaultBuildOptions.
// The zero value is not valid; use DefaultConfig.
type Config struct {
	// SideEpsilon is the tolerance Plane.Side uses to call a point "on" the
	// plane rather than strictly to one side of it.
	SideEpsilon float64

	// PointEpsilon is the tolerance used to match the triangulator's output
	// points back to border points and, in cap pruning, to compare cap
	// corners against the overlap set. Classify's check for two coincident
	// edge intersections uses SideEpsilon, not this value.
	PointEpsilon float64

	// PruneCapOutliers enables boundary.PruneOutliers after the cap is
	// triangulated. Off by default, matching the reference implementation's
	// own disabled call site (see DESIGN.md).
	PruneCapOutliers bool

	// Workers bounds how many fragments MultiClip processes concurrently.
	// 1 (the default) keeps the driver fully serial; values above 1 shard
	// independent fragments across goroutines the way the teacher's
	// World.Step shards independent rigid bodies.
	Workers int

	// Preprocessor, if set, is applied to every surviving fragment before
	// MultiClip folds it back into the working list — the Go shape of the
	// reference implementation's disabled manifold_preprocess call.
	Preprocessor func(*Mesh) *Mesh
}

// DefaultConfig returns the tolerances and settings used when a caller has
// no reason to tune them.
func DefaultConfig() Config {
	return Config{
		SideEpsilon:      1e-6,
		PointEpsilon:     1e-6,
		PruneCapOutliers: false,
		Workers:          1,
	}
}
