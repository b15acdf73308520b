package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBlockTypeSolid(t *testing.T) {
	assert.False(t, Air.Solid())
	for _, bt := range []BlockType{Dirt, Stone, Wood, Leaves} {
		assert.True(t, bt.Solid(), "%v should be solid", bt)
	}
}

func TestBlockTypeColor(t *testing.T) {
	tests := []struct {
		name  string
		block BlockType
		want  mgl32.Vec3
	}{
		{"dirt", Dirt, mgl32.Vec3{0.5, 0.5, 0.1}},
		{"stone", Stone, mgl32.Vec3{0.7, 0.7, 0.7}},
		{"wood", Wood, mgl32.Vec3{0.6, 0.3, 0.0}},
		{"leaves", Leaves, mgl32.Vec3{0.0, 0.6, 0.0}},
		{"unknown is white", BlockType(99), mgl32.Vec3{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.block.Color())
		})
	}
}

func TestBlockTypeString(t *testing.T) {
	assert.Equal(t, "Air", Air.String())
	assert.Equal(t, "Dirt", Dirt.String())
	assert.Equal(t, "Leaves", Leaves.String())
	assert.Equal(t, "Unknown", BlockType(200).String())
}

func TestCoordinateVec3(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{-3, 1, 2}, Coordinate{-3, 1, 2}.Vec3())
}
