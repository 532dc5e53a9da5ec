package mapdata

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// defaultSeed is used when callers pass Seed == 0.
const defaultSeed int64 = 1

// GenOptions controls Generate.
type GenOptions struct {
	Width, Height int
	// Seed selects the map; equal options always give equal maps. 0 means defaultSeed.
	Seed int64
	// Density is the probability that a random-walk step lays a wall.
	Density float64
	// Clusters is the number of wall walks; 0 derives it from the area.
	Clusters int
	// Steps is the length of each walk; 0 derives it from the perimeter.
	Steps int
	// Terrain adds patches of light, medium and heavy terrain.
	Terrain bool
	// Keep lists cells that must stay Open (typically start and goal).
	Keep []gridgraph.Point
}

// DefaultGenOptions returns a 20×20 map with 30% wall density and terrain patches.
func DefaultGenOptions() GenOptions {
	return GenOptions{Width: 20, Height: 20, Density: 0.3, Terrain: true}
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

var walkSteps = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Generate returns a Height×Width grid of terrain codes. Walls grow as
// clusters of random walks; with Terrain set, fewer and shorter walks paint
// penalty terrain over open cells. Cells in Keep are Open.
//
// Returns ErrBadDimensions or ErrInvalidDensity for bad options.
//
// Complexity: O(W×H + Clusters×Steps).
func Generate(opts GenOptions) ([][]int, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, opts.Width, opts.Height)
	}
	if opts.Density < 0 || opts.Density > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDensity, opts.Density)
	}
	clusters := opts.Clusters
	if clusters <= 0 {
		clusters = max(1, opts.Width*opts.Height/40)
	}
	steps := opts.Steps
	if steps <= 0 {
		steps = opts.Width + opts.Height
	}

	rows := make([][]int, opts.Height)
	for y := range rows {
		rows[y] = make([]int, opts.Width)
	}
	r := rngFromSeed(opts.Seed)

	walk := func(n int, density float64, paint func(x, y int)) {
		x, y := r.Intn(opts.Width), r.Intn(opts.Height)
		for s := 0; s < n; s++ {
			if r.Float64() < density {
				paint(x, y)
			}
			d := walkSteps[r.Intn(len(walkSteps))]
			if nx, ny := x+d[0], y+d[1]; nx >= 0 && nx < opts.Width && ny >= 0 && ny < opts.Height {
				x, y = nx, ny
			}
		}
	}

	for c := 0; c < clusters; c++ {
		walk(steps, opts.Density, func(x, y int) { rows[y][x] = int(gridgraph.Blocked) })
	}
	if opts.Terrain {
		for c := 0; c < max(1, clusters/2); c++ {
			code := int(gridgraph.LightTerrain) + r.Intn(3)
			walk(steps/2, 0.8, func(x, y int) {
				if rows[y][x] == int(gridgraph.Open) {
					rows[y][x] = code
				}
			})
		}
	}

	for _, p := range opts.Keep {
		if p.X >= 0 && p.X < opts.Width && p.Y >= 0 && p.Y < opts.Height {
			rows[p.Y][p.X] = int(gridgraph.Open)
		}
	}
	return rows, nil
}
