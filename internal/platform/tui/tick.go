// Package tui runs the snake game in a terminal through Bubble Tea.
// It schedules frames, maps keys to game actions and rasterizes the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent when the next scheduled frame is due.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that delivers one FrameMsg after a frame period.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
