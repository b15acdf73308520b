package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"VoxelGolang/world"
)

// AABB is an axis-aligned box between two corners.
type AABB struct {
	Min, Max mgl32.Vec3
}

// Intersects reports whether the boxes overlap. Shared faces count as
// contact, which is what keeps a block from being placed flush inside
// the player.
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X() <= other.Max.X() && b.Max.X() >= other.Min.X() &&
		b.Min.Y() <= other.Max.Y() && b.Max.Y() >= other.Min.Y() &&
		b.Min.Z() <= other.Max.Z() && b.Max.Z() >= other.Min.Z()
}

// PlayerBox returns the collision volume of a player whose feet stand
// at pos.
func PlayerBox(pos mgl32.Vec3) AABB {
	return AABB{
		Min: mgl32.Vec3{pos.X() - PlayerHalfWidth, pos.Y(), pos.Z() - PlayerHalfWidth},
		Max: mgl32.Vec3{pos.X() + PlayerHalfWidth, pos.Y() + PlayerHeight, pos.Z() + PlayerHalfWidth},
	}
}

// BlockBox returns the unit volume filled by the block at c.
func BlockBox(c world.Coordinate) AABB {
	min := c.Vec3()
	return AABB{Min: min, Max: min.Add(mgl32.Vec3{1, 1, 1})}
}
