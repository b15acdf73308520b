package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"VoxelGolang/physics"
	"VoxelGolang/world"
)

// Player is the first-person actor: a physics body plus where it looks
// and what it would place. Yaw and Pitch are degrees; yaw 0 faces +x
// and pitch is clamped so the view never flips over the vertical.
type Player struct {
	physics.Body
	Yaw      float64
	Pitch    float64
	Selected world.BlockType
}

// New returns a player standing at the spawn point, looking level along
// +x, with dirt selected.
func New() *Player {
	return &Player{
		Body:     physics.Body{Position: physics.Spawn},
		Selected: world.Dirt,
	}
}

// Look turns the view by the given yaw and pitch deltas in degrees.
func (p *Player) Look(dyaw, dpitch float64) {
	p.Yaw += dyaw
	p.Pitch += dpitch
	if p.Pitch > 90 {
		p.Pitch = 90
	}
	if p.Pitch < -90 {
		p.Pitch = -90
	}
}

// ViewDir returns the unit vector the player is looking along.
func (p *Player) ViewDir() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(float32(p.Yaw)))
	pitch := float64(mgl32.DegToRad(float32(p.Pitch)))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
}

// Forward returns the walking direction: the view direction flattened
// onto the ground plane.
func (p *Player) Forward() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(float32(p.Yaw)))
	return mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(math.Sin(yaw))}
}

// Right returns the strafing direction, perpendicular to Forward on the
// ground plane.
func (p *Player) Right() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(float32(p.Yaw + 90)))
	return mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(math.Sin(yaw))}
}

// Eye returns the camera position, EyeHeight above the feet.
func (p *Player) Eye() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, physics.EyeHeight, 0})
}

// Move adds one tick of walking impulse. forward and strafe are signed
// intent along the Forward and Right bases; damping in the resolver
// keeps the resulting speed bounded.
func (p *Player) Move(forward, strafe float32) {
	impulse := p.Forward().Mul(forward * physics.MoveSpeed).
		Add(p.Right().Mul(strafe * physics.MoveSpeed))
	p.Velocity[0] += impulse.X()
	p.Velocity[2] += impulse.Z()
}

// Jump kicks the player upward. Only honored while standing on ground,
// so holding the key in the air does nothing.
func (p *Player) Jump() {
	if !p.OnGround {
		return
	}
	p.Velocity[1] = physics.JumpSpeed
}

// Integrate advances the position by one tick of velocity. Corrections
// happen afterwards in the resolver.
func (p *Player) Integrate() {
	p.Position = p.Position.Add(p.Velocity)
}
