package canvas

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

type keyAction struct {
	Key    ebiten.Key
	Action core.Action
}

// keyActions maps window keys to game actions: arrows with WASD aliases.
// Keys pressed in the same tick are queued in this order.
var keyActions = []keyAction{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// pressedActions returns the actions of the keys reported pressed, in keyActions order.
func pressedActions(pressed func(ebiten.Key) bool) []core.Action {
	var out []core.Action
	for _, ka := range keyActions {
		if pressed(ka.Key) {
			out = append(out, ka.Action)
		}
	}
	return out
}

// Window adapts a snake game to ebiten.Game. Frames run on Ebitengine's
// update tick until the game is over; after that only a restart resumes them.
type Window struct {
	game    *snake.Game
	surface *Surface
	logger  *log.Logger
	start   time.Time
	running bool
}

// NewWindow creates a window sized to the game's board.
func NewWindow(game *snake.Game, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := game.Grid()
	w := &Window{
		game:    game,
		surface: NewSurface(g.Width(), g.Height()),
		logger:  logger,
		start:   time.Now(),
		running: true,
	}
	game.Render(w.surface)
	return w
}

// Update polls keys and runs one frame.
func (w *Window) Update() error {
	for _, a := range pressedActions(inpututil.IsKeyJustPressed) {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		w.game.Submit(a)
	}

	if !w.running {
		if w.game.Wake() {
			w.running = true
			w.game.Render(w.surface)
		}
		return nil
	}
	w.running = w.game.Frame(time.Since(w.start), w.surface)
	return nil
}

// Draw presents the last rendered frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.surface.Image(), nil)
}

// Layout keeps the logical screen at board size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	g := w.game.Grid()
	return g.Width(), g.Height()
}

// Run opens the window and blocks until it is closed.
func Run(game *snake.Game, logger *log.Logger) error {
	w := NewWindow(game, logger)
	g := game.Grid()

	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowSize(g.Width(), g.Height())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.Config().Render.FPS)

	w.logger.Info("window opened", "game", game.ID(), "width", g.Width(), "height", g.Height())
	return ebiten.RunGame(w)
}
