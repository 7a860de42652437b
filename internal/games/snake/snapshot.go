package snake

// Snapshot captures the game state for determinism testing and display.
type Snapshot struct {
	ID       string
	Frame    uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    State
	Reason   Reason
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	food := g.food.Position()
	return Snapshot{
		ID:       g.id,
		Frame:    g.frames,
		Score:    g.Score(),
		SnakeLen: g.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.snake.Direction(),
		FoodX:    food.X,
		FoodY:    food.Y,
		State:    g.state,
		Reason:   g.reason,
	}
}
