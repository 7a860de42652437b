package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func newTestGrid(t *testing.T) Grid {
	t.Helper()
	g, err := NewGrid(600, 600, 50)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	return g
}

func TestNewGridRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, cellSize int
	}{
		{"zero cell", 600, 600, 0},
		{"negative cell", 600, 600, -50},
		{"width not multiple", 610, 600, 50},
		{"height not multiple", 600, 590, 50},
		{"empty board", 0, 600, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGrid(tc.width, tc.height, tc.cellSize); err == nil {
				t.Errorf("NewGrid(%d, %d, %d) should fail", tc.width, tc.height, tc.cellSize)
			}
		})
	}
}

func TestGridGeometry(t *testing.T) {
	g := newTestGrid(t)

	if g.Cols() != 12 || g.Rows() != 12 {
		t.Errorf("Cols/Rows = %d/%d, expected 12/12", g.Cols(), g.Rows())
	}
	if g.CellCount() != 144 {
		t.Errorf("CellCount() = %d, expected 144", g.CellCount())
	}
	if p := g.Cell(3, 2); p != (core.Point{X: 150, Y: 100}) {
		t.Errorf("Cell(3, 2) = %v, expected {150 100}", p)
	}
	if r := g.CellRect(core.Point{X: 100, Y: 100}); r != core.NewRect(100, 100, 50, 50) {
		t.Errorf("CellRect() = %+v", r)
	}
	if len(g.Cells()) != g.CellCount() {
		t.Errorf("Cells() has %d entries, expected %d", len(g.Cells()), g.CellCount())
	}
}

func TestGridInBounds(t *testing.T) {
	g := newTestGrid(t)

	tests := []struct {
		name     string
		p        core.Point
		expected bool
	}{
		{"origin", core.Point{X: 0, Y: 0}, true},
		{"last cell", core.Point{X: 550, Y: 550}, true},
		{"x equals width", core.Point{X: 600, Y: 0}, false},
		{"y equals height", core.Point{X: 0, Y: 600}, false},
		{"negative x", core.Point{X: -50, Y: 0}, false},
		{"negative y", core.Point{X: 0, Y: -1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.p); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestGridRandomCellQuantized(t *testing.T) {
	g := newTestGrid(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		p := g.RandomCell(rng)
		if !g.InBounds(p) {
			t.Fatalf("RandomCell() = %v is off the board", p)
		}
		if p.X%g.CellSize() != 0 || p.Y%g.CellSize() != 0 {
			t.Fatalf("RandomCell() = %v is not on a cell corner", p)
		}
	}
}
