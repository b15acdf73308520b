package player

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"VoxelGolang/physics"
	"VoxelGolang/world"
)

func TestNewPlayer(t *testing.T) {
	p := New()
	assert.Equal(t, physics.Spawn, p.Position)
	assert.Equal(t, world.Dirt, p.Selected)
	assert.Zero(t, p.Yaw)
	assert.Zero(t, p.Pitch)
	assert.False(t, p.OnGround)
}

func TestLookClampsPitch(t *testing.T) {
	p := New()

	p.Look(10, 120)
	assert.Equal(t, float64(90), p.Pitch)

	p.Look(0, -300)
	assert.Equal(t, float64(-90), p.Pitch)

	p.Look(0, 45)
	assert.Equal(t, float64(-45), p.Pitch)
	assert.Equal(t, float64(10), p.Yaw, "yaw is never clamped")
}

func TestViewDir(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		want       mgl32.Vec3
	}{
		{"level along +x", 0, 0, mgl32.Vec3{1, 0, 0}},
		{"level along +z", 90, 0, mgl32.Vec3{0, 0, 1}},
		{"level along -x", 180, 0, mgl32.Vec3{-1, 0, 0}},
		{"straight up", 0, 90, mgl32.Vec3{0, 1, 0}},
		{"straight down", 0, -90, mgl32.Vec3{0, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.Yaw, p.Pitch = tt.yaw, tt.pitch
			dir := p.ViewDir()
			assert.InDelta(t, tt.want.X(), dir.X(), 1e-6)
			assert.InDelta(t, tt.want.Y(), dir.Y(), 1e-6)
			assert.InDelta(t, tt.want.Z(), dir.Z(), 1e-6)
		})
	}
}

func TestForwardRightBasis(t *testing.T) {
	p := New()
	p.Yaw = 37

	fwd, right := p.Forward(), p.Right()
	assert.InDelta(t, 1.0, float64(fwd.Len()), 1e-6)
	assert.InDelta(t, 1.0, float64(right.Len()), 1e-6)
	assert.InDelta(t, 0.0, float64(fwd.Dot(right)), 1e-6, "walking bases stay perpendicular")
	assert.Zero(t, fwd.Y(), "walking never points out of the ground plane")
	assert.Zero(t, right.Y())
}

func TestForwardIgnoresPitch(t *testing.T) {
	p := New()
	p.Pitch = -60

	fwd := p.Forward()
	assert.InDelta(t, 1.0, fwd.X(), 1e-6)
	assert.Zero(t, fwd.Y())
}

func TestEyeOffset(t *testing.T) {
	p := New()
	p.Position = mgl32.Vec3{1, 2, 3}

	eye := p.Eye()
	assert.Equal(t, float32(1), eye.X())
	assert.InDelta(t, 2+physics.EyeHeight, eye.Y(), 1e-6)
	assert.Equal(t, float32(3), eye.Z())
}

func TestMoveAccumulatesVelocity(t *testing.T) {
	p := New()

	p.Move(1, 0)
	assert.InDelta(t, physics.MoveSpeed, p.Velocity.X(), 1e-6)
	assert.InDelta(t, 0, p.Velocity.Z(), 1e-6)

	p.Move(1, 0)
	assert.InDelta(t, 2*physics.MoveSpeed, p.Velocity.X(), 1e-6, "held keys keep pushing")

	p.Velocity = mgl32.Vec3{}
	p.Move(0, 1)
	assert.InDelta(t, 0, p.Velocity.X(), 1e-6)
	assert.InDelta(t, physics.MoveSpeed, p.Velocity.Z(), 1e-6, "strafe right at yaw 0 is +z")

	p.Velocity = mgl32.Vec3{}
	p.Move(-1, 0)
	assert.InDelta(t, -physics.MoveSpeed, p.Velocity.X(), 1e-6)
	assert.Zero(t, p.Velocity.Y(), "walking never touches vertical speed")
}

func TestJumpRequiresGround(t *testing.T) {
	p := New()
	p.Jump()
	assert.Zero(t, p.Velocity.Y(), "airborne jumps are ignored")

	p.OnGround = true
	p.Jump()
	assert.Equal(t, float32(physics.JumpSpeed), p.Velocity.Y())
}

func TestIntegrate(t *testing.T) {
	p := New()
	p.Position = mgl32.Vec3{1, 1, 1}
	p.Velocity = mgl32.Vec3{0.1, -0.2, 0}

	p.Integrate()

	assert.InDelta(t, 1.1, p.Position.X(), 1e-6)
	assert.InDelta(t, 0.8, p.Position.Y(), 1e-6)
	assert.InDelta(t, 1.0, p.Position.Z(), 1e-6)
}
