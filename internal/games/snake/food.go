package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Food is the single edible cell. It is never destroyed, only relocated.
type Food struct {
	grid        Grid
	rng         *rand.Rand
	start       core.Point
	pos         core.Point
	width       int
	height      int
	maxAttempts int
}

// NewFood creates food at start. Width and height only affect the overlap test and drawing.
func NewFood(grid Grid, rng *rand.Rand, start core.Point, width, height, maxAttempts int) *Food {
	return &Food{
		grid:        grid,
		rng:         rng,
		start:       start,
		pos:         start,
		width:       width,
		height:      height,
		maxAttempts: maxAttempts,
	}
}

// Reset moves the food back to its start cell.
func (f *Food) Reset() {
	f.pos = f.start
}

// Position returns the food's cell.
func (f *Food) Position() core.Point {
	return f.pos
}

// Box returns the food's bounding box.
func (f *Food) Box() core.Rect {
	return core.RectAt(f.pos, f.width, f.height)
}

// Overlaps reports whether the food's box intersects head.
func (f *Food) Overlaps(head core.Rect) bool {
	return f.Box().Intersects(head)
}

// Relocate moves the food to a uniformly random cell outside forbidden.
// Random sampling is tried maxAttempts times; after that the free cells are
// enumerated and one is picked uniformly. If the board has no free cell the
// food stays where it is and ErrNoFreeCell is returned.
func (f *Food) Relocate(forbidden []core.Point) error {
	taken := make(map[core.Point]struct{}, len(forbidden))
	for _, p := range forbidden {
		taken[p] = struct{}{}
	}

	for i := 0; i < f.maxAttempts; i++ {
		p := f.grid.RandomCell(f.rng)
		if _, ok := taken[p]; !ok {
			f.pos = p
			return nil
		}
	}

	var free []core.Point
	for _, p := range f.grid.Cells() {
		if _, ok := taken[p]; !ok {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return ErrNoFreeCell
	}
	f.pos = free[f.rng.Intn(len(free))]
	return nil
}

// Consume tests the head box against the food. On overlap the food is
// relocated away from forbidden and true is returned so the caller grows the
// snake. The food counts as eaten even when relocation fails.
func (f *Food) Consume(head core.Rect, forbidden []core.Point) (bool, error) {
	if !f.Overlaps(head) {
		return false, nil
	}
	return true, f.Relocate(forbidden)
}
