package snake

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Snake owns the body, facing and move timing.
// Segments are head first: index 0 is always the head.
type Snake struct {
	grid         Grid
	start        core.Point
	segments     []core.Point
	direction    Direction
	lastMove     time.Duration // Timestamp of the last tick that consumed the interval
	moveInterval time.Duration
	maxProbe     int // Tail probe budget for Grow; 0 means one per board cell
}

// NewSnake creates a one-segment snake at start facing nowhere.
func NewSnake(grid Grid, start core.Point, moveInterval time.Duration, maxProbe int) *Snake {
	s := &Snake{
		grid:         grid,
		start:        start,
		moveInterval: moveInterval,
		maxProbe:     maxProbe,
	}
	s.Reset()
	return s
}

// Reset restores the single-segment start state, clears the facing and the move timer.
func (s *Snake) Reset() {
	s.segments = []core.Point{s.start}
	s.direction = DirNone
	s.lastMove = 0
}

// SetDirection changes the facing for the next move.
// Any of the four directions is accepted immediately, including a reversal
// onto the segment behind the head. Anything else is ignored.
func (s *Snake) SetDirection(d Direction) {
	if !d.Valid() {
		return
	}
	s.direction = d
}

// Tick advances the head one cell if more than the move interval has elapsed
// since the last move. A snake facing nowhere consumes the interval without moving.
// Returns true if the head moved.
func (s *Snake) Tick(now time.Duration) bool {
	if now-s.lastMove <= s.moveInterval {
		return false
	}
	s.lastMove = now

	if s.direction == DirNone {
		return false
	}

	dx, dy := s.direction.Delta(s.grid.CellSize())
	head := s.segments[0].Add(dx, dy)

	// Shift the body one slot towards the tail, dropping the last segment.
	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = head
	return true
}

// PeekGrowth returns the cell Grow would append, without changing the snake.
// The new tail extends away from the second-to-last segment; when that cell is
// taken it is pushed right one cell at a time until free or the probe budget runs out.
func (s *Snake) PeekGrowth() (core.Point, bool) {
	tail := s.segments[len(s.segments)-1]
	prev := tail
	if len(s.segments) > 1 {
		prev = s.segments[len(s.segments)-2]
	}

	cs := s.grid.CellSize()
	seg := tail
	switch {
	case tail.X < prev.X:
		seg.X -= cs
	case tail.X > prev.X:
		seg.X += cs
	case tail.Y < prev.Y:
		seg.Y -= cs
	case tail.Y > prev.Y:
		seg.Y += cs
	}

	limit := s.probeLimit()
	for probes := 0; s.Occupies(seg); probes++ {
		if probes >= limit {
			return core.Point{}, false
		}
		seg.X += cs
	}
	return seg, true
}

// Grow appends one tail segment. Returns ErrNoFreeCell, leaving the snake
// unchanged, if no free cell was found within the probe budget.
func (s *Snake) Grow() error {
	seg, ok := s.PeekGrowth()
	if !ok {
		return ErrNoFreeCell
	}
	s.segments = append(s.segments, seg)
	return nil
}

func (s *Snake) probeLimit() int {
	if s.maxProbe > 0 {
		return s.maxProbe
	}
	return s.grid.CellCount()
}

// IsOutOfBounds reports whether the head has left the board.
// x == width or y == height is already outside.
func (s *Snake) IsOutOfBounds() bool {
	return !s.grid.InBounds(s.segments[0])
}

// IsSelfColliding reports whether the head shares a cell with any other segment.
func (s *Snake) IsSelfColliding() bool {
	head := s.segments[0]
	for _, seg := range s.segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.segments[0]
}

// HeadBox returns the head's bounding box.
func (s *Snake) HeadBox() core.Rect {
	return s.grid.CellRect(s.segments[0])
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the current facing.
func (s *Snake) Direction() Direction {
	return s.direction
}

// LastMove returns the timestamp of the last consumed move interval.
func (s *Snake) LastMove() time.Duration {
	return s.lastMove
}

// MoveInterval returns the minimum time between moves.
func (s *Snake) MoveInterval() time.Duration {
	return s.moveInterval
}
