package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"VoxelGolang/world"
)

func TestAABBIntersects(t *testing.T) {
	base := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"identical", base, true},
		{"overlapping corner", AABB{Min: mgl32.Vec3{0.5, 0.5, 0.5}, Max: mgl32.Vec3{2, 2, 2}}, true},
		{"contained", AABB{Min: mgl32.Vec3{0.2, 0.2, 0.2}, Max: mgl32.Vec3{0.8, 0.8, 0.8}}, true},
		{"sharing a face", AABB{Min: mgl32.Vec3{1, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}, true},
		{"sharing an edge", AABB{Min: mgl32.Vec3{1, 1, 0}, Max: mgl32.Vec3{2, 2, 1}}, true},
		{"separated on x", AABB{Min: mgl32.Vec3{1.5, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}, false},
		{"separated on y", AABB{Min: mgl32.Vec3{0, -2, 0}, Max: mgl32.Vec3{1, -0.5, 1}}, false},
		{"separated on z", AABB{Min: mgl32.Vec3{0, 0, 4}, Max: mgl32.Vec3{1, 1, 5}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestPlayerBox(t *testing.T) {
	box := PlayerBox(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, mgl32.Vec3{1 - PlayerHalfWidth, 2, 3 - PlayerHalfWidth}, box.Min)
	assert.Equal(t, mgl32.Vec3{1 + PlayerHalfWidth, 2 + PlayerHeight, 3 + PlayerHalfWidth}, box.Max)
}

func TestBlockBox(t *testing.T) {
	box := BlockBox(world.Coordinate{X: -2, Y: 0, Z: 5})
	assert.Equal(t, mgl32.Vec3{-2, 0, 5}, box.Min)
	assert.Equal(t, mgl32.Vec3{-1, 1, 6}, box.Max)
}
