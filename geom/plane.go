package geom

import "math"

// Side classification of a point against a plane.
const (
	SideNegative = -1
	SideOn       = 0
	SidePositive = 1
)

// Plane is the implicit surface a·x + b·y + c·z + d = 0, with (a,b,c) kept
// unit length. P0, P1 and P2 are the three points the plane was anchored on,
// if any; HasAnchors reports whether they are set.
type Plane struct {
	A, B, C, D float64
	P0, P1, P2 Vec3
	HasAnchors bool
}

// NewPlane builds a plane from raw coefficients, normalising (a,b,c) to unit
// length. It panics if (a,b,c) is the zero vector, the same contract the
// teacher's Quat/Vec constructors place on their callers.
func NewPlane(a, b, c, d float64) Plane {
	n := Vec3{a, b, c}
	l := n.Len()
	if l == 0 {
		panic("geom: degenerate plane normal")
	}
	n = n.Mul(1 / l)
	return Plane{A: n.X(), B: n.Y(), C: n.Z(), D: d / l}
}

// NewPlaneFromPoints builds the plane through three non-collinear points,
// oriented by the right-hand rule of (p1-p0)x(p2-p0).
func NewPlaneFromPoints(p0, p1, p2 Vec3) Plane {
	n := FaceNormal(p0, p1, p2)
	l := n.Len()
	if l == 0 {
		panic("geom: collinear plane anchors")
	}
	n = n.Mul(1 / l)
	d := -n.Dot(p0)
	return Plane{A: n.X(), B: n.Y(), C: n.Z(), D: d, P0: p0, P1: p1, P2: p2, HasAnchors: true}
}

// Normal returns the plane's unit normal.
func (p Plane) Normal() Vec3 { return Vec3{p.A, p.B, p.C} }

// eval returns the signed distance of pt from the plane, scaled by the unit
// normal (so its magnitude is a true distance).
func (p Plane) eval(pt Vec3) float64 {
	return p.A*pt.X() + p.B*pt.Y() + p.C*pt.Z() + p.D
}

// Side classifies pt as SideNegative, SideOn or SidePositive, treating
// anything within eps of the plane as on it.
func (p Plane) Side(pt Vec3, eps float64) int {
	d := p.eval(pt)
	switch {
	case d > eps:
		return SidePositive
	case d < -eps:
		return SideNegative
	default:
		return SideOn
	}
}

// IntersectSegment computes where segment a->b crosses the plane. It
// declines only when both endpoints classify strictly on the same nonzero
// side; an endpoint lying on the plane still produces a hit, landing exactly
// on that endpoint once t is clamped to [0,1].
func (p Plane) IntersectSegment(a, b Vec3, eps float64) (Vec3, bool) {
	sa, sb := p.Side(a, eps), p.Side(b, eps)
	if sa != SideOn && sb != SideOn && sa == sb {
		return Vec3{}, false
	}

	da, db := p.eval(a), p.eval(b)
	denom := da - db
	t := 0.0
	if math.Abs(denom) >= 1e-15 {
		t = da / denom
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(b.Sub(a).Mul(t)), true
}

// CutSide disambiguates a fully coplanar triangle. By convention such
// triangles are assigned to the positive half.
func (p Plane) CutSide(Vec3, Vec3, Vec3) int {
	return SidePositive
}
