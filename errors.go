package meshclip

import "errors"

// Error kinds a clip can recover from locally, per spec.md §7. None of
// these ever abort MultiClip's driving loop; they're surfaced through
// ClipStats so a caller can decide whether the defect rate is acceptable.
var (
	// ErrCollinearBoundary means the boundary loop degenerated to fewer
	// than 3 distinct, non-collinear points and couldn't seed a frame.
	ErrCollinearBoundary = errors.New("meshclip: boundary collapsed to a line or point")

	// ErrTriangulationFailure means the external CDT collaborator rejected
	// the boundary (self-intersecting loop, inconsistent winding, ...).
	ErrTriangulationFailure = errors.New("meshclip: boundary triangulation failed")

	// ErrDegenerateTriangle is recorded, not returned, when a single
	// straddling triangle couldn't be reconstructed; the triangle is
	// dropped and the clip continues.
	ErrDegenerateTriangle = errors.New("meshclip: straddling triangle was degenerate")
)
