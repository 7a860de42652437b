package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Grid is the immutable board geometry. All positions are in board units and
// cells are cellSize*cellSize squares anchored at multiples of cellSize.
type Grid struct {
	width    int
	height   int
	cellSize int
}

// NewGrid creates a board of the given size. Width and height must be positive
// multiples of cellSize.
func NewGrid(width, height, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("snake: cell size must be positive, got %d", cellSize)
	}
	if width <= 0 || height <= 0 || width%cellSize != 0 || height%cellSize != 0 {
		return Grid{}, fmt.Errorf("snake: board %dx%d is not a whole number of %d-unit cells", width, height, cellSize)
	}
	return Grid{width: width, height: height, cellSize: cellSize}, nil
}

// Width returns the board width in units.
func (g Grid) Width() int { return g.width }

// Height returns the board height in units.
func (g Grid) Height() int { return g.height }

// CellSize returns the quantization unit.
func (g Grid) CellSize() int { return g.cellSize }

// Cols returns the number of cell columns.
func (g Grid) Cols() int { return g.width / g.cellSize }

// Rows returns the number of cell rows.
func (g Grid) Rows() int { return g.height / g.cellSize }

// CellCount returns the number of cells on the board.
func (g Grid) CellCount() int { return g.Cols() * g.Rows() }

// Bounds returns the board rectangle.
func (g Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.width, g.height)
}

// InBounds reports whether p lies on the board: 0 <= x < width and 0 <= y < height.
func (g Grid) InBounds(p core.Point) bool {
	return g.Bounds().Contains(p.X, p.Y)
}

// Cell returns the top-left corner of the cell at (col, row).
func (g Grid) Cell(col, row int) core.Point {
	return core.Point{X: col * g.cellSize, Y: row * g.cellSize}
}

// CellRect returns the square occupied by the cell anchored at p.
func (g Grid) CellRect(p core.Point) core.Rect {
	return core.RectAt(p, g.cellSize, g.cellSize)
}

// RandomCell samples a cell uniformly.
func (g Grid) RandomCell(rng *rand.Rand) core.Point {
	return g.Cell(rng.Intn(g.Cols()), rng.Intn(g.Rows()))
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []core.Point {
	cells := make([]core.Point, 0, g.CellCount())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			cells = append(cells, g.Cell(col, row))
		}
	}
	return cells
}
