package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VoxelGolang/world"
)

func TestRaycastMiss(t *testing.T) {
	s := world.NewStore()

	_, ok := Raycast(s, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, Reach)
	assert.False(t, ok)
}

func TestRaycastStraightOn(t *testing.T) {
	s := world.NewStore()
	s.Add(world.Coordinate{X: 3, Y: 0, Z: 0}, world.Stone)

	hit, ok := Raycast(s, mgl32.Vec3{0, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, Reach)
	require.True(t, ok)
	assert.Equal(t, world.Coordinate{X: 3, Y: 0, Z: 0}, hit.Coord)
	assert.InDelta(t, 3.0, hit.Distance, 0.11)
	assert.Less(t, hit.Distance, float32(Reach))
	assert.InDelta(t, 0.5, hit.Point.Y(), 1e-6)
	assert.InDelta(t, 0.5, hit.Point.Z(), 1e-6)
}

func TestRaycastNearestBlockWins(t *testing.T) {
	s := world.NewStore()
	s.Add(world.Coordinate{X: 2, Y: 0, Z: 0}, world.Stone)
	s.Add(world.Coordinate{X: 3, Y: 0, Z: 0}, world.Wood)

	hit, ok := Raycast(s, mgl32.Vec3{0, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, Reach)
	require.True(t, ok)
	assert.Equal(t, world.Coordinate{X: 2, Y: 0, Z: 0}, hit.Coord)
}

func TestRaycastOriginInsideBlock(t *testing.T) {
	s := world.NewStore()
	s.Add(world.Coordinate{X: 2, Y: 0, Z: 0}, world.Dirt)

	hit, ok := Raycast(s, mgl32.Vec3{2.5, 0.5, 0.5}, mgl32.Vec3{0, 0, 1}, Reach)
	require.True(t, ok)
	assert.Equal(t, world.Coordinate{X: 2, Y: 0, Z: 0}, hit.Coord)
	assert.Zero(t, hit.Distance)
}

func TestRaycastReachCutsOff(t *testing.T) {
	s := world.NewStore()
	s.Add(world.Coordinate{X: 5, Y: 0, Z: 0}, world.Stone)

	// The nearest face sits exactly at the reach limit; the march stops
	// one step short of it.
	_, ok := Raycast(s, mgl32.Vec3{0, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, Reach)
	assert.False(t, ok)

	// Nudging the origin forward brings the face inside range.
	hit, ok := Raycast(s, mgl32.Vec3{0.15, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, Reach)
	require.True(t, ok)
	assert.Equal(t, world.Coordinate{X: 5, Y: 0, Z: 0}, hit.Coord)
}

func TestRaycastDownOntoFace(t *testing.T) {
	s := world.NewStore()
	s.Add(world.Coordinate{X: 0, Y: 0, Z: 0}, world.Dirt)

	hit, ok := Raycast(s, mgl32.Vec3{0.5, 2.2, 0.5}, mgl32.Vec3{0, -1, 0}, Reach)
	require.True(t, ok)
	assert.Equal(t, world.Coordinate{X: 0, Y: 0, Z: 0}, hit.Coord)
	assert.InDelta(t, 1.0, hit.Point.Y(), 1e-6, "the sample should land on the top face")
}

func TestRaycastDiagonal(t *testing.T) {
	s := world.NewStore()
	s.Add(world.Coordinate{X: 2, Y: 0, Z: 2}, world.Leaves)

	dir := mgl32.Vec3{1, 0, 1}.Normalize()
	hit, ok := Raycast(s, mgl32.Vec3{0.5, 0.5, 0.5}, dir, Reach)
	require.True(t, ok)
	assert.Equal(t, world.Coordinate{X: 2, Y: 0, Z: 2}, hit.Coord)
	assert.InDelta(t, 2.2, hit.Distance, 0.11)
}

func TestSpanCells(t *testing.T) {
	assert.Equal(t, []int{2}, spanCells(2.3))
	assert.Equal(t, []int{-1}, spanCells(-0.5))
	assert.Equal(t, []int{2, 1}, spanCells(2.0), "a seam belongs to both cells, higher first")
	assert.Equal(t, []int{-1, -2}, spanCells(-1.0))
}

func TestAdjacentCoord(t *testing.T) {
	tests := []struct {
		name  string
		hit   Hit
		want  world.Coordinate
		valid bool
	}{
		{
			"low x face wins over low z",
			Hit{Coord: world.Coordinate{X: 0, Y: 0, Z: 0}, Point: mgl32.Vec3{0, 0.5, 0}},
			world.Coordinate{X: -1, Y: 0, Z: 0}, true,
		},
		{
			"high x face",
			Hit{Coord: world.Coordinate{X: 0, Y: 0, Z: 0}, Point: mgl32.Vec3{0.995, 0.5, 0.5}},
			world.Coordinate{X: 1, Y: 0, Z: 0}, true,
		},
		{
			"top face",
			Hit{Coord: world.Coordinate{X: 0, Y: 0, Z: 0}, Point: mgl32.Vec3{0.5, 1.0, 0.5}},
			world.Coordinate{X: 0, Y: 1, Z: 0}, true,
		},
		{
			"bottom face",
			Hit{Coord: world.Coordinate{X: 2, Y: 3, Z: 4}, Point: mgl32.Vec3{2.5, 3.005, 4.5}},
			world.Coordinate{X: 2, Y: 2, Z: 4}, true,
		},
		{
			"low z face",
			Hit{Coord: world.Coordinate{X: 0, Y: 0, Z: 0}, Point: mgl32.Vec3{0.5, 0.5, 0.002}},
			world.Coordinate{X: 0, Y: 0, Z: -1}, true,
		},
		{
			"high z face",
			Hit{Coord: world.Coordinate{X: 0, Y: 0, Z: 0}, Point: mgl32.Vec3{0.5, 0.5, 0.999}},
			world.Coordinate{X: 0, Y: 0, Z: 1}, true,
		},
		{
			"point too deep inside",
			Hit{Coord: world.Coordinate{X: 0, Y: 0, Z: 0}, Point: mgl32.Vec3{0.5, 0.5, 0.5}},
			world.Coordinate{}, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AdjacentCoord(tt.hit)
			require.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
