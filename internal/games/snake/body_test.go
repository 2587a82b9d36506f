package snake

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestNewSnakeLayout(t *testing.T) {
	grid := Grid{Cols: 24, Rows: 24}
	s := NewSnake(grid, Point{X: 10, Y: 10}, 3)

	expected := []Point{{10, 10}, {9, 10}, {8, 10}}
	body := s.Body()
	if len(body) != len(expected) {
		t.Fatalf("len(body) = %d, expected %d", len(body), len(expected))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}
	if s.Heading() != DirRight || s.Direction() != DirRight {
		t.Errorf("initial direction = %v/%v, expected right", s.Heading(), s.Direction())
	}
}

func TestMoveEndToEnd(t *testing.T) {
	grid := Grid{Cols: 24, Rows: 24}
	s := NewSnake(grid, Point{X: 10, Y: 10}, 3)

	s.Move()

	expected := []Point{{11, 10}, {10, 10}, {9, 10}}
	body := s.Body()
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}
	if s.Head() == (Point{X: 8, Y: 10}) {
		t.Error("head should have left the old tail cell")
	}
	if s.Occupies(Point{X: 8, Y: 10}) {
		t.Error("old tail should be dropped")
	}
}

func TestMoveWraps(t *testing.T) {
	grid := Grid{Cols: 24, Rows: 20}

	tests := []struct {
		name  string
		start Point
		dir   Direction
		want  Point
	}{
		{"right edge", Point{23, 5}, DirRight, Point{0, 5}},
		{"left edge", Point{0, 5}, DirLeft, Point{23, 5}},
		{"top edge", Point{7, 0}, DirUp, Point{7, 19}},
		{"bottom edge", Point{7, 19}, DirDown, Point{7, 0}},
		{"interior", Point{7, 7}, DirDown, Point{7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(grid, tt.start, 1)
			s.SetDirection(tt.dir)
			s.Move()
			if got := s.Head(); got != tt.want {
				t.Errorf("Head() = %v, expected %v", got, tt.want)
			}
			if !grid.Contains(s.Head()) {
				t.Errorf("head %v left the grid", s.Head())
			}
		})
	}
}

func TestReversalRejected(t *testing.T) {
	grid := Grid{Cols: 24, Rows: 24}
	s := NewSnake(grid, Point{X: 10, Y: 10}, 3)

	s.SetDirection(DirLeft)
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right after reversal request", s.Direction())
	}

	// Turning is fine, and reversal is judged against the applied heading
	s.SetDirection(DirUp)
	s.SetDirection(DirLeft)
	if s.Direction() != DirUp {
		t.Errorf("Direction() = %v, expected up", s.Direction())
	}
	s.Move()
	s.SetDirection(DirLeft)
	if s.Direction() != DirLeft {
		t.Errorf("Direction() = %v, expected left after turning up", s.Direction())
	}
}

func TestReversalAllowedForSingleCell(t *testing.T) {
	s := NewSnake(Grid{Cols: 10, Rows: 10}, Point{X: 5, Y: 5}, 1)
	s.SetDirection(DirLeft)
	if s.Direction() != DirLeft {
		t.Errorf("Direction() = %v, expected left", s.Direction())
	}
}

func TestGrowKeepsTail(t *testing.T) {
	s := NewSnake(Grid{Cols: 24, Rows: 24}, Point{X: 10, Y: 10}, 3)
	s.Grow(2)
	s.Grow(-5) // ignored

	lengths := []int{4, 5, 5, 5}
	for i, want := range lengths {
		s.Move()
		if s.Len() != want {
			t.Errorf("after move %d: Len() = %d, expected %d", i+1, s.Len(), want)
		}
	}
	if s.PendingGrowth() != 0 {
		t.Errorf("PendingGrowth() = %d, expected 0", s.PendingGrowth())
	}
}

func TestShrinkFloor(t *testing.T) {
	tests := []struct {
		length  int
		cut     int
		want    int
		removed int
	}{
		{3, 2, 2, 1},
		{6, 2, 4, 2},
		{2, 2, 2, 0},
		{5, 10, 2, 3},
		{1, 2, 1, 0},
	}

	for _, tt := range tests {
		s := NewSnake(Grid{Cols: 24, Rows: 24}, Point{X: 12, Y: 12}, tt.length)
		removed := s.Shrink(tt.cut)
		if s.Len() != tt.want {
			t.Errorf("len %d Shrink(%d): Len() = %d, expected %d", tt.length, tt.cut, s.Len(), tt.want)
		}
		if removed != tt.removed {
			t.Errorf("len %d Shrink(%d) = %d, expected %d", tt.length, tt.cut, removed, tt.removed)
		}
	}
}

func TestCollidesSelf(t *testing.T) {
	s := NewSnake(Grid{Cols: 24, Rows: 24}, Point{X: 10, Y: 10}, 5)
	if s.CollidesSelf() {
		t.Fatal("fresh snake should not collide")
	}

	// Tight loop: down, left, up runs the head into the body
	s.SetDirection(DirDown)
	s.Move()
	s.SetDirection(DirLeft)
	s.Move()
	if s.CollidesSelf() {
		t.Fatal("should not collide before closing the loop")
	}
	s.SetDirection(DirUp)
	s.Move()
	if !s.CollidesSelf() {
		t.Error("expected self collision")
	}
}

func TestCells(t *testing.T) {
	s := NewSnake(Grid{Cols: 24, Rows: 24}, Point{X: 10, Y: 10}, 4)
	cells := s.Cells()
	if cells.Size() != 4 {
		t.Errorf("Cells().Size() = %d, expected 4", cells.Size())
	}
	for _, p := range s.Body() {
		if !cells.Has(p) {
			t.Errorf("Cells() missing %v", p)
		}
	}
}

func TestChooseFreeCellAvoidsForbidden(t *testing.T) {
	grid := Grid{Cols: 6, Rows: 6}
	rng := rand.New(rand.NewSource(7))
	sp := NewSpawner(grid, rng)

	for i := 0; i < 200; i++ {
		forbidden := mapset.New[Point]()
		for j := 0; j < 30; j++ {
			forbidden.Put(Point{X: rng.Intn(6), Y: rng.Intn(6)})
		}
		p, ok := sp.ChooseFreeCell(forbidden)
		if !ok {
			if forbidden.Size() < grid.Size() {
				t.Fatalf("no cell found with %d forbidden", forbidden.Size())
			}
			continue
		}
		if forbidden.Has(p) {
			t.Fatalf("chose forbidden cell %v", p)
		}
		if !grid.Contains(p) {
			t.Fatalf("chose %v outside the grid", p)
		}
	}
}

func TestChooseFreeCellFullGrid(t *testing.T) {
	grid := Grid{Cols: 2, Rows: 2}
	sp := NewSpawner(grid, rand.New(rand.NewSource(1)))

	forbidden := mapset.New[Point]()
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			forbidden.Put(Point{X: x, Y: y})
		}
	}
	if _, ok := sp.ChooseFreeCell(forbidden); ok {
		t.Error("expected no free cell")
	}

	var f Food
	f.pos = Point{X: 1, Y: 1}
	f.Respawn(sp, forbidden)
	if f.Position() != (Point{}) {
		t.Errorf("food on full grid = %v, expected (0,0)", f.Position())
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{DirRight, DirDown, DirLeft, DirUp} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v delta (%d,%d) not inverse of (%d,%d)", d, dx, dy, ox, oy)
		}
	}
}
