package snake

import "github.com/zyedidia/generic/mapset"

// Food is the single piece of food on the board.
type Food struct {
	pos Point
}

// Position returns the food cell.
func (f *Food) Position() Point {
	return f.pos
}

// Respawn moves the food to a free cell. On a full board it falls back to
// (0,0) even if that cell is occupied.
func (f *Food) Respawn(sp *Spawner, forbidden mapset.Set[Point]) {
	p, ok := sp.ChooseFreeCell(forbidden)
	if !ok {
		p = Point{}
	}
	f.pos = p
}
