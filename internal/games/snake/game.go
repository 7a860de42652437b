// Package snake implements the grid snake simulation: board geometry, the
// snake's move/grow state machine, food placement and the frame controller.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// State is the controller's state machine variant.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Reason records why a game ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonOutOfBounds
	ReasonSelfCollision
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out_of_bounds"
	case ReasonSelfCollision:
		return "self_collision"
	default:
		return "none"
	}
}

// Options configures a Game beyond its board config.
type Options struct {
	Seed      int64       // RNG seed for food placement
	Logger    *log.Logger // nil discards logs
	QueueSize int         // Pending input bound; 0 uses core.DefaultQueueSize
}

// Game owns one independent snake session: grid, snake, food, input queue
// and the Playing/GameOver state.
type Game struct {
	id     string
	cfg    config.Config
	grid   Grid
	snake  *Snake
	food   *Food
	input  *core.InputQueue
	logger *log.Logger

	state  State
	reason Reason
	frames uint64
}

// New creates a game in the Playing state.
func New(cfg config.Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Board.Width, cfg.Board.Height, cfg.Board.CellSize)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		id:   id,
		cfg:  cfg,
		grid: grid,
		snake: NewSnake(grid,
			core.Point{X: cfg.Snake.StartX, Y: cfg.Snake.StartY},
			cfg.Snake.MoveInterval(),
			cfg.Growth.MaxProbe,
		),
		food: NewFood(grid, rng,
			core.Point{X: cfg.Food.StartX, Y: cfg.Food.StartY},
			cfg.Food.Width, cfg.Food.Height,
			cfg.Food.MaxAttempts,
		),
		input:  core.NewInputQueue(opts.QueueSize),
		logger: logger.With("game", id),
	}
	return g, nil
}

// ID returns the game instance identifier.
func (g *Game) ID() string {
	return g.id
}

// Grid returns the board geometry.
func (g *Game) Grid() Grid {
	return g.grid
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.Config {
	return g.cfg
}

// State returns the current state machine variant.
func (g *Game) State() State {
	return g.state
}

// Reason returns why the last game ended, or ReasonNone while playing.
func (g *Game) Reason() Reason {
	return g.reason
}

// Score is derived from the body: one point per segment beyond the head.
func (g *Game) Score() int {
	return g.snake.Len() - 1
}

// Submit queues an action for the next frame. Safe to call from any goroutine.
// Returns false if the action was dropped.
func (g *Game) Submit(a core.Action) bool {
	return g.input.Push(a)
}

// Frame runs one scheduled frame at monotonic time now and draws it to dst.
// It reports whether another frame should be scheduled; false means the game
// is over and only Wake with a restart resumes it.
func (g *Game) Frame(now time.Duration, dst core.Surface) bool {
	if g.state == StateGameOver {
		g.drawBoard(dst)
		g.drawGameOver(dst)
		return false
	}

	g.frames++
	g.applyInput()
	g.drawBoard(dst)

	if g.snake.IsOutOfBounds() {
		g.endGame(ReasonOutOfBounds)
		g.drawGameOver(dst)
		return false
	}
	if g.snake.IsSelfColliding() {
		g.endGame(ReasonSelfCollision)
		g.drawGameOver(dst)
		return false
	}

	g.drawSnake(dst)
	g.drawFood(dst)

	if g.consumeFood() {
		g.drawFood(dst)
	}

	g.snake.Tick(now)
	g.drawScore(dst)
	return true
}

// Wake handles input while no frames are scheduled. A queued restart resets
// the game; everything else is discarded. Reports whether frames should resume.
func (g *Game) Wake() bool {
	if g.state != StateGameOver {
		return false
	}
	for _, a := range g.input.Drain() {
		if a == core.ActionRestart {
			g.Reset()
			return true
		}
	}
	return false
}

// Reset restores the snake and food, clears pending input and returns to Playing.
func (g *Game) Reset() {
	g.snake.Reset()
	g.food.Reset()
	g.input.Drain()
	g.state = StatePlaying
	g.reason = ReasonNone
	g.logger.Info("game reset")
}

// Render redraws the current state without advancing the simulation.
func (g *Game) Render(dst core.Surface) {
	g.drawBoard(dst)
	if g.state == StateGameOver {
		g.drawGameOver(dst)
		return
	}
	g.drawSnake(dst)
	g.drawFood(dst)
	g.drawScore(dst)
}

// applyInput drains the queue in arrival order. While playing only
// directions matter; a restart is honoured from GameOver via Wake.
func (g *Game) applyInput() {
	for _, a := range g.input.Drain() {
		if a.IsDirectional() {
			g.snake.SetDirection(DirectionFromAction(a))
		}
	}
}

// consumeFood relocates eaten food and grows the snake. The food is kept off
// the current body and off the cell the new tail is about to take.
func (g *Game) consumeFood() bool {
	forbidden := g.snake.Segments()
	if tail, ok := g.snake.PeekGrowth(); ok {
		forbidden = append(forbidden, tail)
	}

	eaten, err := g.food.Consume(g.snake.HeadBox(), forbidden)
	if !eaten {
		return false
	}
	if err != nil {
		g.logger.Warn("food relocation failed", "error", err, "length", g.snake.Len())
	}
	if err := g.snake.Grow(); err != nil {
		g.logger.Warn("snake growth failed", "error", err, "length", g.snake.Len())
	}
	g.logger.Debug("food eaten", "score", g.Score(), "food", g.food.Position())
	return true
}

func (g *Game) endGame(reason Reason) {
	g.state = StateGameOver
	g.reason = reason
	g.logger.Info("game over", "reason", reason, "score", g.Score(), "frames", g.frames)
	g.logger.Debug("final state\n" + g.DebugState())
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frame: %d, Score: %d, State: %s\n", g.frames, g.Score(), g.state)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", g.snake.Len(), g.snake.Direction())
	head, food := g.snake.Head(), g.food.Position()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, food.X, food.Y)
	return b.String()
}
