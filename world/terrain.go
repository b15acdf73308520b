package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// TerrainMode selects the surface shape the generator produces.
type TerrainMode string

const (
	// TerrainFlat is a level field: two stone layers under one dirt layer.
	TerrainFlat TerrainMode = "flat"
	// TerrainHills drapes the same column profile over fractal noise.
	TerrainHills TerrainMode = "hills"
)

// Fractal parameters for the hills surface.
const (
	hillAmplitude   = 4
	hillOctaves     = 2
	hillLacunarity  = 1.5
	hillPersistence = 0.5
	hillScale       = 24
)

// Fixed tree sites, as (x, z) columns. A tree only grows when its trunk
// column lies inside the generated footprint.
var treeSites = [][2]int{{2, 2}, {-3, -1}}

// Generator produces a bounded starting world. Radius bounds the square
// footprint on x/z as [-Radius, Radius); Seed only matters for
// TerrainHills. The same Generator always produces the same world.
type Generator struct {
	Radius int
	Mode   TerrainMode
	Seed   int64
}

// Generate builds a fresh store. A radius of zero or less yields an
// empty world rather than an error.
func (g Generator) Generate() *Store {
	s := NewStore()
	if g.Radius <= 0 {
		return s
	}
	if g.Mode == TerrainHills {
		g.generateHills(s)
	} else {
		g.generateFlat(s)
	}
	return s
}

func (g Generator) generateFlat(s *Store) {
	for x := -g.Radius; x < g.Radius; x++ {
		for z := -g.Radius; z < g.Radius; z++ {
			for y := -2; y < 0; y++ {
				s.Add(Coordinate{x, y, z}, Stone)
			}
			s.Add(Coordinate{x, 0, z}, Dirt)
		}
	}
	g.plantTrees(s, func(x, z int) int { return 0 })
}

func (g Generator) generateHills(s *Store) {
	noise := opensimplex.New32(g.Seed)
	surface := func(x, z int) int { return surfaceHeight(noise, x, z) }
	for x := -g.Radius; x < g.Radius; x++ {
		for z := -g.Radius; z < g.Radius; z++ {
			top := surface(x, z)
			for y := top - 2; y < top; y++ {
				s.Add(Coordinate{x, y, z}, Stone)
			}
			s.Add(Coordinate{x, top, z}, Dirt)
		}
	}
	g.plantTrees(s, surface)
}

// surfaceHeight folds octaves of simplex noise into a dirt-layer height.
func surfaceHeight(noise opensimplex.Noise32, x, z int) int {
	amplitude := float32(hillAmplitude)
	x1, z1 := float32(x), float32(z)
	var val float32
	for i := 0; i < hillOctaves; i++ {
		val += noise.Eval2(x1/hillScale, z1/hillScale) * amplitude
		x1 *= hillLacunarity
		z1 *= hillLacunarity
		amplitude *= hillPersistence
	}
	return int(math.Floor(float64(val)))
}

// plantTrees grows the fixed trees whose trunk columns fall inside the
// footprint. surface maps a column to the y of its dirt layer; trunks
// root one cell above it.
func (g Generator) plantTrees(s *Store, surface func(x, z int) int) {
	for _, site := range treeSites {
		x, z := site[0], site[1]
		if x < -g.Radius || x >= g.Radius || z < -g.Radius || z >= g.Radius {
			continue
		}
		plantTree(s, Coordinate{x, surface(x, z) + 1, z})
	}
}

// plantTree grows a four-high trunk and a rounded canopy around its top.
// Canopy cells overwrite the trunk cell they share.
func plantTree(s *Store, base Coordinate) {
	for i := 0; i < 4; i++ {
		s.Add(Coordinate{base.X, base.Y + i, base.Z}, Wood)
	}
	for dx := -2; dx <= 2; dx++ {
		for dy := 3; dy <= 5; dy++ {
			for dz := -2; dz <= 2; dz++ {
				if abs(dx) == 2 && abs(dz) == 2 {
					continue // clip the corners
				}
				if dy == 5 && (abs(dx) > 1 || abs(dz) > 1) {
					continue // taper the crown
				}
				s.Add(Coordinate{base.X + dx, base.Y + dy, base.Z + dz}, Leaves)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
