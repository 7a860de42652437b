package snake

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.Default(), Options{Seed: seed})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Board.CellSize = 0

	if _, err := New(cfg, Options{}); err == nil {
		t.Error("New() should reject an invalid config")
	}
}

func TestNewRejectsFoodOnSnakeStart(t *testing.T) {
	cfg := config.Default()
	cfg.Food.StartX, cfg.Food.StartY = cfg.Snake.StartX, cfg.Snake.StartY

	if _, err := New(cfg, Options{}); err == nil {
		t.Error("New() should reject food starting under the snake")
	}
}

func TestNewGameStartState(t *testing.T) {
	g := newTestGame(t, 1)

	if g.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", g.State())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	if g.ID() == "" {
		t.Error("ID() should not be empty")
	}
	if other := newTestGame(t, 1); other.ID() == g.ID() {
		t.Error("games should get distinct IDs")
	}
}

func TestFrameAppliesQueuedInputInOrder(t *testing.T) {
	g := newTestGame(t, 1)
	g.Submit(core.ActionDown)
	g.Submit(core.ActionRight)

	g.Frame(ms(201), core.NewDrawList())

	if g.snake.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected the last queued direction", g.snake.Direction())
	}
	if g.snake.Head() != (core.Point{X: 100, Y: 50}) {
		t.Errorf("Head() = %v, expected {100 50}", g.snake.Head())
	}
}

func TestFrameEatsFoodAndGrows(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		g := newTestGame(t, seed)
		g.snake.segments = []core.Point{{X: 100, Y: 100}}

		if !g.Frame(0, core.NewDrawList()) {
			t.Fatalf("seed %d: Frame() ended the game", seed)
		}
		if g.snake.Len() != 2 {
			t.Fatalf("seed %d: Len() = %d, expected 2", seed, g.snake.Len())
		}
		if g.Score() != 1 {
			t.Fatalf("seed %d: Score() = %d, expected 1", seed, g.Score())
		}
		food := g.food.Position()
		if g.snake.Occupies(food) {
			t.Fatalf("seed %d: food relocated onto the snake at %v (body %v)", seed, food, g.snake.Segments())
		}
	}
}

func TestRepeatedConsumptionGrowsByOne(t *testing.T) {
	const n = 8
	g := newTestGame(t, 42)
	dl := core.NewDrawList()

	for i := 0; i < n; i++ {
		g.food.pos = g.snake.Head()
		if !g.Frame(0, dl) {
			t.Fatalf("consumption %d ended the game", i+1)
		}
	}

	if g.snake.Len() != n+1 {
		t.Errorf("Len() = %d after %d consumptions, expected %d", g.snake.Len(), n, n+1)
	}
	if g.snake.IsSelfColliding() {
		t.Errorf("grown snake overlaps itself: %v", g.snake.Segments())
	}
}

func TestFrameOutOfBoundsEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	g.snake.segments = []core.Point{{X: 550, Y: 300}}
	g.Submit(core.ActionRight)

	if !g.Frame(ms(201), core.NewDrawList()) {
		t.Fatal("the frame that moves onto x=width should still complete")
	}
	if g.snake.Head() != (core.Point{X: 600, Y: 300}) {
		t.Fatalf("Head() = %v, expected {600 300}", g.snake.Head())
	}

	dl := core.NewDrawList()
	if g.Frame(ms(250), dl) {
		t.Fatal("Frame() should stop scheduling once the head is off the board")
	}
	if g.State() != StateGameOver || g.Reason() != ReasonOutOfBounds {
		t.Errorf("State()/Reason() = %v/%v, expected game_over/out_of_bounds", g.State(), g.Reason())
	}
	if !slices.Contains(dl.Texts(), GameOverText) {
		t.Errorf("game over frame texts = %v", dl.Texts())
	}
}

func TestReversalIntoBodyEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	g.snake.segments = []core.Point{{X: 150, Y: 50}, {X: 100, Y: 50}, {X: 50, Y: 50}}
	g.snake.SetDirection(DirRight)

	g.Submit(core.ActionLeft)
	g.Frame(ms(201), core.NewDrawList())
	if g.snake.Direction() != DirLeft {
		t.Fatalf("reversal was not accepted, Direction() = %v", g.snake.Direction())
	}

	if g.Frame(ms(202), core.NewDrawList()) {
		t.Fatal("reversing into the neck should end the game")
	}
	if g.Reason() != ReasonSelfCollision {
		t.Errorf("Reason() = %v, expected self_collision", g.Reason())
	}
}

func TestGameOverStopsSimulation(t *testing.T) {
	g := newTestGame(t, 1)
	g.snake.segments = []core.Point{{X: 600, Y: 0}}
	g.Frame(0, core.NewDrawList())
	frames := g.Snapshot().Frame

	g.Submit(core.ActionDown)
	for _, now := range []time.Duration{ms(500), ms(1000)} {
		if g.Frame(now, core.NewDrawList()) {
			t.Fatal("Frame() in game over should not reschedule")
		}
	}
	if g.Snapshot().Frame != frames {
		t.Error("game over frames should not advance the frame counter")
	}
	if g.snake.Head() != (core.Point{X: 600, Y: 0}) {
		t.Error("game over frames should not move the snake")
	}
}

func TestRestartFromGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	g.snake.segments = []core.Point{{X: 600, Y: 0}, {X: 550, Y: 0}, {X: 500, Y: 0}}
	g.snake.SetDirection(DirRight)
	g.food.pos = core.Point{X: 300, Y: 300}
	g.Frame(0, core.NewDrawList())
	if g.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game_over", g.State())
	}

	g.Submit(core.ActionLeft)
	if g.Wake() {
		t.Fatal("Wake() without a restart should not resume")
	}

	g.Submit(core.ActionRestart)
	if !g.Wake() {
		t.Fatal("Wake() with a queued restart should resume")
	}
	if g.State() != StatePlaying || g.Reason() != ReasonNone {
		t.Errorf("State()/Reason() = %v/%v after restart", g.State(), g.Reason())
	}
	if g.snake.Len() != 1 || g.snake.Head() != (core.Point{X: 50, Y: 50}) {
		t.Errorf("snake after restart = %v", g.snake.Segments())
	}
	if g.snake.Direction() != DirNone {
		t.Errorf("Direction() after restart = %v", g.snake.Direction())
	}
	if g.food.Position() != (core.Point{X: 100, Y: 100}) {
		t.Errorf("food after restart = %v", g.food.Position())
	}
	if !g.Frame(ms(10), core.NewDrawList()) {
		t.Error("Frame() after restart should keep scheduling")
	}
}

func TestRestartWhilePlayingIgnored(t *testing.T) {
	g := newTestGame(t, 1)
	g.snake.segments = []core.Point{{X: 150, Y: 50}, {X: 100, Y: 50}}

	if g.Wake() {
		t.Error("Wake() while playing should report false")
	}
	g.Submit(core.ActionRestart)
	g.Frame(0, core.NewDrawList())

	if g.snake.Len() != 2 {
		t.Errorf("restart while playing reset the snake to %v", g.snake.Segments())
	}
}

func TestFrameDrawsScore(t *testing.T) {
	g := newTestGame(t, 1)
	g.snake.segments = []core.Point{{X: 300, Y: 300}, {X: 250, Y: 300}, {X: 200, Y: 300}}
	dl := core.NewDrawList()

	g.Frame(0, dl)

	ops := dl.Ops()
	if len(ops) == 0 || ops[0].Kind != core.OpClear {
		t.Fatal("a frame should start with Clear")
	}
	if !slices.Contains(dl.Texts(), "Score: 2") {
		t.Errorf("texts = %v, expected Score: 2", dl.Texts())
	}
	if dl.Count(core.OpImage) != 1 {
		t.Errorf("expected one food image, got %d", dl.Count(core.OpImage))
	}
	for _, op := range ops {
		if op.Kind == core.OpImage && op.Name != FoodImage {
			t.Errorf("food image name = %q", op.Name)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	script := map[int]core.Action{
		3:  core.ActionRight,
		20: core.ActionDown,
		40: core.ActionLeft,
	}

	for i := 0; i < 60; i++ {
		now := time.Duration(i) * 50 * time.Millisecond
		if a, ok := script[i]; ok {
			g1.Submit(a)
			g2.Submit(a)
		}
		if i%10 == 0 {
			g1.food.pos = g1.snake.Head()
			g2.food.pos = g2.snake.Head()
		}
		g1.Frame(now, core.NewDrawList())
		g2.Frame(now, core.NewDrawList())
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	s1.ID, s2.ID = "", ""
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}
