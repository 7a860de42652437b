package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a >= ActionUp && a <= ActionRight
}

// DefaultQueueSize bounds pending input between two frames.
const DefaultQueueSize = 32

// InputQueue carries actions from event sources to the single frame consumer.
// Push may be called from any goroutine; Drain is called once per frame by the
// owner of the game state, so each action is observed by exactly one frame.
type InputQueue struct {
	ch chan Action
}

// NewInputQueue creates a queue holding at most size pending actions.
func NewInputQueue(size int) *InputQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &InputQueue{ch: make(chan Action, size)}
}

// Push enqueues an action without blocking.
// Returns false if the action was dropped because the queue is full.
func (q *InputQueue) Push(a Action) bool {
	if a == ActionNone {
		return false
	}
	select {
	case q.ch <- a:
		return true
	default:
		return false
	}
}

// Drain removes and returns all pending actions in arrival order.
func (q *InputQueue) Drain() []Action {
	var out []Action
	for {
		select {
		case a := <-q.ch:
			out = append(out, a)
		default:
			return out
		}
	}
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.ch)
}
