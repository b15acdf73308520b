package physics

import "github.com/go-gl/mathgl/mgl32"

// Tuning shared by the resolver, the ray caster and the player's
// movement. Distances are in blocks, speeds in blocks per tick.
const (
	Gravity   = 0.01
	JumpSpeed = 0.2
	MoveSpeed = 0.1

	// Damping bleeds horizontal velocity every tick; below RestThreshold
	// it snaps to zero so the player does not drift forever.
	Damping       = 0.8
	RestThreshold = 0.01

	PlayerHalfWidth = 0.3
	PlayerHeight    = 1.8
	EyeHeight       = 1.7

	// ContactBand is how deep into a face a body may sink and still be
	// pushed back out by the resolver.
	ContactBand = 0.1

	// Fall past KillPlaneY and the resolver teleports the body to Spawn.
	KillPlaneY = -10

	// Reach bounds ray queries; the ray is sampled every RayStep blocks.
	Reach   = 5
	RayStep = 0.1

	// FaceEpsilon decides how close to a cube face a ray hit must land
	// to identify that face for placement.
	FaceEpsilon = 0.01
)

// Spawn is where new and respawned players stand.
var Spawn = mgl32.Vec3{0, 2, 0}
