package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Direction represents the snake's facing direction.
type Direction int

const (
	DirNone Direction = iota // Stationary; the initial and post-reset facing
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the offset of one step of the given size.
func (d Direction) Delta(step int) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -step
	case DirDown:
		return 0, step
	case DirLeft:
		return -step, 0
	case DirRight:
		return step, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four moving directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromAction maps a directional action to a facing.
// Non-directional actions map to DirNone.
func DirectionFromAction(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}
