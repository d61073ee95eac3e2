package meshclip

import "github.com/go-gl/mathgl/mgl64"

// Placement positions a Mesh's local coordinate space within a larger world,
// the way the reference engine's actor.Transform locates a rigid body. Clip
// and MultiClip work in whatever space the caller's mesh and plane already
// share; Placement exists for the common case of a mesh authored once in
// local space and clipped repeatedly against world-space planes from
// different instances of it.
type Placement struct {
	Position        Vec3
	Rotation        mgl64.Quat
	InverseRotation mgl64.Quat
}

// IdentityPlacement returns a Placement with no translation or rotation.
func IdentityPlacement() Placement {
	return Placement{
		Position: Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// NewPlacement builds a Placement from a position and rotation, precomputing
// the inverse rotation once so ToLocalPlane doesn't pay for it on every
// call.
func NewPlacement(position Vec3, rotation mgl64.Quat) Placement {
	return Placement{
		Position:        position,
		Rotation:        rotation,
		InverseRotation: rotation.Inverse(),
	}
}

// ToLocalPlane expresses a world-space plane in the placement's local space,
// so it can be passed to Clip alongside a mesh authored in that local space.
func (p Placement) ToLocalPlane(world Plane) Plane {
	n := p.InverseRotation.Rotate(world.Normal())
	onPlane := world.Normal().Mul(-world.D)
	pt := p.InverseRotation.Rotate(onPlane.Sub(p.Position))
	return NewPlane(n.X(), n.Y(), n.Z(), -n.Dot(pt))
}

// ToWorld maps a local-space point into world space under this placement.
func (p Placement) ToWorld(local Vec3) Vec3 {
	return p.Rotation.Rotate(local).Add(p.Position)
}

// ClipInWorld clips a locally-authored mesh against a world-space plane,
// translating the plane into the mesh's local space via placement. The
// returned fragments remain in local space, matching mesh's own frame.
func ClipInWorld(mesh Mesh, placement Placement, worldPlane Plane, cfg Config) (MeshList, ClipStats) {
	return Clip(mesh, placement.ToLocalPlane(worldPlane), cfg)
}
