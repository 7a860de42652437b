package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// FoodImage is the image name emitted for the food.
const FoodImage = "apple"

// GameOverText is shown centered on the board once the game ends.
const GameOverText = "Game Over! Press 'R' to Restart"

const (
	scoreBoxW      = 140
	scoreBoxH      = 40
	scoreBoxMargin = 10
)

func (g *Game) drawBoard(dst core.Surface) {
	dst.Clear()
	dst.FillRect(g.grid.Bounds(), core.ColorGray)
}

func (g *Game) drawSnake(dst core.Surface) {
	for _, seg := range g.snake.segments {
		dst.FillRect(g.grid.CellRect(seg), core.ColorDarkBlue)
	}
}

func (g *Game) drawFood(dst core.Surface) {
	dst.DrawImage(FoodImage, g.food.Box())
}

// drawScore paints the score box in the top-right corner.
func (g *Game) drawScore(dst core.Surface) {
	w := g.grid.Width()
	box := core.NewRect(w-scoreBoxW-scoreBoxMargin, scoreBoxMargin, scoreBoxW, scoreBoxH)
	dst.FillRect(box, core.ColorWhite)
	cx, cy := box.Center()
	dst.DrawText(cx, cy, fmt.Sprintf("Score: %d", g.Score()), core.ColorBlack, core.AlignCenter)
}

// drawGameOver paints the terminal screen: the message and the head greyed out.
func (g *Game) drawGameOver(dst core.Surface) {
	dst.DrawText(g.grid.Width()/2, g.grid.Height()/2, GameOverText, core.ColorWhite, core.AlignCenter)
	dst.FillRect(g.snake.HeadBox(), core.ColorGray)
}
