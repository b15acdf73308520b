package world

import "github.com/go-gl/mathgl/mgl32"

// BlockType identifies the material occupying one grid cell.
type BlockType uint8

const (
	Air BlockType = iota
	Dirt
	Stone
	Wood
	Leaves
)

var blockColors = map[BlockType]mgl32.Vec3{
	Dirt:   {0.5, 0.5, 0.1},
	Stone:  {0.7, 0.7, 0.7},
	Wood:   {0.6, 0.3, 0.0},
	Leaves: {0.0, 0.6, 0.0},
}

// Color returns the flat shade a renderer draws this material with.
// Unknown materials come back white so they stand out instead of vanishing.
func (t BlockType) Color() mgl32.Vec3 {
	if c, ok := blockColors[t]; ok {
		return c
	}
	return mgl32.Vec3{1, 1, 1}
}

// Solid reports whether the material fills its cell. Only Air does not.
func (t BlockType) Solid() bool {
	return t != Air
}

func (t BlockType) String() string {
	switch t {
	case Air:
		return "Air"
	case Dirt:
		return "Dirt"
	case Stone:
		return "Stone"
	case Wood:
		return "Wood"
	case Leaves:
		return "Leaves"
	}
	return "Unknown"
}

// Coordinate addresses one cell of the voxel grid. The cell spans a unit
// cube whose minimum corner sits at (X, Y, Z).
type Coordinate struct {
	X, Y, Z int
}

// Vec3 returns the cell's minimum corner as a vector.
func (c Coordinate) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}
