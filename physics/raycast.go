package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"VoxelGolang/world"
)

// Hit describes the first block a ray ran into.
type Hit struct {
	Coord    world.Coordinate
	Point    mgl32.Vec3
	Distance float32
}

// Raycast marches from origin along dir in RayStep increments and
// returns the first occupied cell a sample point lands in. dir should
// be unit length; maxDistance caps how far the march goes. ok is false
// when nothing was hit within range.
func Raycast(s *world.Store, origin, dir mgl32.Vec3, maxDistance float32) (Hit, bool) {
	const samplesPerUnit = 1 / RayStep
	steps := int(maxDistance * samplesPerUnit)
	for i := 0; i < steps; i++ {
		t := float32(i) * RayStep
		p := origin.Add(dir.Mul(t))
		if c, ok := solidCellAt(s, p); ok {
			return Hit{Coord: c, Point: p, Distance: t}, true
		}
	}
	return Hit{}, false
}

// solidCellAt finds a stored block whose closed unit cube contains p.
// On a cube seam the higher cell is preferred, so results stay
// deterministic.
func solidCellAt(s *world.Store, p mgl32.Vec3) (world.Coordinate, bool) {
	for _, x := range spanCells(p.X()) {
		for _, y := range spanCells(p.Y()) {
			for _, z := range spanCells(p.Z()) {
				c := world.Coordinate{X: x, Y: y, Z: z}
				if s.Solid(c) {
					return c, true
				}
			}
		}
	}
	return world.Coordinate{}, false
}

// spanCells lists the cells whose closed [c, c+1] span contains v: the
// floor cell, plus the one below when v sits exactly on a seam.
func spanCells(v float32) []int {
	f := math.Floor(float64(v))
	cells := []int{int(f)}
	if float64(v) == f {
		cells = append(cells, int(f)-1)
	}
	return cells
}

// AdjacentCoord resolves which face of the hit cube the ray entered and
// returns the cell on the other side of it, where a placement would go.
// Axes are tried in x, y, z order and the first face within FaceEpsilon
// wins. ok is false when the hit point is too deep inside the cube to
// name a face; callers drop the placement.
func AdjacentCoord(h Hit) (world.Coordinate, bool) {
	rel := h.Point.Sub(h.Coord.Vec3())
	c := h.Coord
	switch {
	case rel.X() < FaceEpsilon:
		c.X--
	case rel.X() > 1-FaceEpsilon:
		c.X++
	case rel.Y() < FaceEpsilon:
		c.Y--
	case rel.Y() > 1-FaceEpsilon:
		c.Y++
	case rel.Z() < FaceEpsilon:
		c.Z--
	case rel.Z() > 1-FaceEpsilon:
		c.Z++
	default:
		return world.Coordinate{}, false
	}
	return c, true
}
