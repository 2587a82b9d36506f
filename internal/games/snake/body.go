package snake

import "github.com/zyedidia/generic/mapset"

// Snake is the player's body on the grid. The head is at index 0.
type Snake struct {
	grid          Grid
	body          []Point
	heading       Direction // Direction of the last move
	next          Direction // Latest accepted request, applied on the next move
	pendingGrowth int       // Moves that keep the tail
}

// NewSnake creates a snake of the given length with its head at head,
// trailing to the left and moving right.
func NewSnake(grid Grid, head Point, length int) *Snake {
	length = max(1, length)
	body := make([]Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, grid.Wrap(Point{X: head.X - i, Y: head.Y}))
	}
	return &Snake{
		grid:    grid,
		body:    body,
		heading: DirRight,
		next:    DirRight,
	}
}

// SetDirection requests a new direction for the next move.
// Reversing onto the current heading is ignored while the snake is longer
// than one cell.
func (s *Snake) SetDirection(d Direction) {
	if len(s.body) > 1 && d == s.heading.Opposite() {
		return
	}
	s.next = d
}

// Direction returns the direction the next move will take.
func (s *Snake) Direction() Direction {
	return s.next
}

// Heading returns the direction of the last move.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Move advances the head one cell, wrapping at the edges. The tail is
// dropped unless growth is pending.
func (s *Snake) Move() {
	s.heading = s.next
	newHead := s.grid.Step(s.body[0], s.heading)

	s.body = append(s.body, Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow schedules n extra cells, one per move. Non-positive n is ignored;
// use Shrink to remove cells.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.pendingGrowth += n
	}
}

// Shrink cuts up to n cells from the tail without going below two cells.
// Returns the number of cells removed.
func (s *Snake) Shrink(n int) int {
	cut := min(len(s.body)-2, n)
	if cut <= 0 {
		return 0
	}
	s.body = s.body[:len(s.body)-cut]
	return cut
}

// CollidesSelf reports whether the head overlaps any other segment.
func (s *Snake) CollidesSelf() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// PendingGrowth returns the number of moves that will keep the tail.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Cells returns the occupied cells as a set, ready to be extended into a
// spawn exclusion set.
func (s *Snake) Cells() mapset.Set[Point] {
	cells := mapset.New[Point]()
	for _, seg := range s.body {
		cells.Put(seg)
	}
	return cells
}
