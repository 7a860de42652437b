package snake

import "errors"

// ErrNoFreeCell is returned when a placement probe exhausts its budget
// without finding a cell that is not occupied by the snake.
var ErrNoFreeCell = errors.New("snake: no free cell")
