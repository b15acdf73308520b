package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"VoxelGolang/world"
)

// Body is the state the resolver advances each tick. Position is the
// feet-center of the player's box; OnGround holds whether the previous
// resolution ended standing on something.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	OnGround bool
}

// Resolver pushes a body back out of the world after integration. It
// owns gravity, the contact corrections, the runaway-fall safety net
// and horizontal damping; it never fails, it only corrects.
type Resolver struct {
	Gravity       float32
	Damping       float32
	RestThreshold float32
	KillPlaneY    float32
	Spawn         mgl32.Vec3
}

// NewResolver returns a resolver with the standard tuning.
func NewResolver() Resolver {
	return Resolver{
		Gravity:       Gravity,
		Damping:       Damping,
		RestThreshold: RestThreshold,
		KillPlaneY:    KillPlaneY,
		Spawn:         Spawn,
	}
}

// Resolve runs one correction pass: gravity while airborne, then
// contact corrections against every nearby block, then the fall safety
// net, then damping. Grounded state is recomputed from scratch, so a
// body that walked off an edge reads airborne on the next pass.
func (r Resolver) Resolve(b *Body, s *world.Store) {
	if !b.OnGround {
		b.Velocity[1] -= r.Gravity
	}
	b.OnGround = false

	// Corrections are at most ContactBand deep, so a candidate window
	// around the pre-correction position covers every reachable block.
	minX := floorInt(b.Position.X()) - 2
	minY := floorInt(b.Position.Y()) - 2
	minZ := floorInt(b.Position.Z()) - 2
	for x := minX; x <= minX+3; x++ {
		for y := minY; y <= minY+4; y++ {
			for z := minZ; z <= minZ+3; z++ {
				c := world.Coordinate{X: x, Y: y, Z: z}
				if s.Solid(c) {
					r.collideBlock(b, c)
				}
			}
		}
	}

	if b.Position.Y() < r.KillPlaneY {
		b.Position = r.Spawn
		b.Velocity = mgl32.Vec3{}
	}

	b.Velocity[0] *= r.Damping
	b.Velocity[2] *= r.Damping
	if mgl32.Abs(b.Velocity[0]) < r.RestThreshold {
		b.Velocity[0] = 0
	}
	if mgl32.Abs(b.Velocity[2]) < r.RestThreshold {
		b.Velocity[2] = 0
	}
}

// collideBlock applies the ground, ceiling and lateral corrections for
// one block, in that order. Each reads the position left by the one
// before it.
func (r Resolver) collideBlock(b *Body, c world.Coordinate) {
	bx, by, bz := float32(c.X), float32(c.Y), float32(c.Z)

	// Broad check: the block's footprint has to overlap the player's on
	// x/z before any face can touch.
	if bx > b.Position.X()+PlayerHalfWidth || bx+1 < b.Position.X()-PlayerHalfWidth ||
		bz > b.Position.Z()+PlayerHalfWidth || bz+1 < b.Position.Z()-PlayerHalfWidth {
		return
	}

	// Feet inside the band above the top face: land on it.
	if b.Position.Y() >= by+1 && b.Position.Y() <= by+1+ContactBand {
		b.Position[1] = by + 1
		b.Velocity[1] = 0
		b.OnGround = true
	}

	// Head inside the band below the bottom face: bump it.
	if b.Position.Y()+PlayerHeight >= by && b.Position.Y()+PlayerHeight <= by+ContactBand {
		b.Position[1] = by - PlayerHeight
		b.Velocity[1] = 0
	}

	// Side faces only matter when the body overlaps the block's height
	// beyond the vertical bands.
	if b.Position.Y()+ContactBand < by+1 && b.Position.Y()+PlayerHeight-ContactBand > by {
		if b.Position.X()+PlayerHalfWidth >= bx && b.Position.X()+PlayerHalfWidth <= bx+ContactBand {
			b.Position[0] = bx - PlayerHalfWidth
			b.Velocity[0] = 0
		}
		if b.Position.X()-PlayerHalfWidth <= bx+1 && b.Position.X()-PlayerHalfWidth >= bx+1-ContactBand {
			b.Position[0] = bx + 1 + PlayerHalfWidth
			b.Velocity[0] = 0
		}
		if b.Position.Z()+PlayerHalfWidth >= bz && b.Position.Z()+PlayerHalfWidth <= bz+ContactBand {
			b.Position[2] = bz - PlayerHalfWidth
			b.Velocity[2] = 0
		}
		if b.Position.Z()-PlayerHalfWidth <= bz+1 && b.Position.Z()-PlayerHalfWidth >= bz+1-ContactBand {
			b.Position[2] = bz + 1 + PlayerHalfWidth
			b.Velocity[2] = 0
		}
	}
}

func floorInt(v float32) int {
	return int(math.Floor(float64(v)))
}
