package snake

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Spawner picks free cells for food and power-ups.
type Spawner struct {
	grid Grid
	rng  *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(grid Grid, rng *rand.Rand) *Spawner {
	return &Spawner{grid: grid, rng: rng}
}

// ChooseFreeCell returns a uniformly random cell not in forbidden.
// Returns false when every cell is forbidden.
func (sp *Spawner) ChooseFreeCell(forbidden mapset.Set[Point]) (Point, bool) {
	free := make([]Point, 0, sp.grid.Size())
	for x := 0; x < sp.grid.Cols; x++ {
		for y := 0; y < sp.grid.Rows; y++ {
			p := Point{X: x, Y: y}
			if !forbidden.Has(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[sp.rng.Intn(len(free))], true
}
