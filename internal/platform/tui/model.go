package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// FoodSprite is the terminal glyph for the food image.
var FoodSprite = core.Sprite{Rune: '●', Color: core.ColorRed}

// footerLines is the space reserved below the board for help and status.
const footerLines = 1

// Model is the Bubble Tea model for one snake game.
// The game only advances on FrameMsg; once it reports game over no further
// frames are scheduled until a restart key wakes it.
type Model struct {
	game    *snake.Game
	screen  *core.Screen
	raster  *core.Raster
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	fps     int
	start   time.Time
	width   int
	height  int
	ticking bool

	screenshotDir string
	status        string
	quitting      bool
}

// NewModel creates a play model for game on a width*height terminal.
// A nil logger discards logs.
func NewModel(game *snake.Game, width, height int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:          game,
		screen:        core.NewScreen(width, height),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		fps:           game.Config().Render.FPS,
		start:         time.Now(),
		ticking:       true,
		screenshotDir: defaultScreenshotDir(),
	}
	m.layout(width, height)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action. While the game is over nothing is
// scheduled, so the key wakes the game directly.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
		return m, nil
	}

	action := m.keys.ActionFor(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.game.Submit(action)

	if m.game.State() == snake.StateGameOver && m.game.Wake() {
		m.status = ""
		m.game.Render(m.raster)
		if !m.ticking {
			m.ticking = true
			return m, frameCmd(m.fps)
		}
	}
	return m, nil
}

// handleFrame runs one game frame at the message's monotonic offset.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}
	if !m.game.Frame(t.Sub(m.start), m.raster) {
		m.ticking = false
		return m, nil
	}
	return m, frameCmd(m.fps)
}

// layout sizes the screen to the terminal and centers the board on it.
func (m *Model) layout(width, height int) {
	m.width, m.height = width, height
	m.screen.Resize(width, max(height-footerLines, 1))

	bw, bh := m.boardSize()
	offX := max((width-bw)/2, 0)
	offY := max((height-footerLines-bh)/2, 0)

	m.raster = core.NewRaster(m.screen, m.game.Grid().CellSize(), offX, offY)
	m.raster.SetSprite(snake.FoodImage, FoodSprite)
	m.game.Render(m.raster)
}

// boardSize returns the board's size in terminal cells.
func (m Model) boardSize() (int, int) {
	g := m.game.Grid()
	return g.Cols() * core.ColsPerCell, g.Rows()
}

func (m Model) tooSmall() bool {
	bw, bh := m.boardSize()
	return m.width < bw || m.height < bh+footerLines
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		bw, bh := m.boardSize()
		msg := warnStyle.Render("Terminal too small") + "\n" +
			statusStyle.Render(fmt.Sprintf("need %dx%d, have %dx%d", bw, bh+footerLines, m.width, m.height))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Game returns the game driven by the model.
func (m Model) Game() *snake.Game {
	return m.game
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("snake_%s_%s.txt", shortID(m.game.ID()), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return path, nil
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "screenshots")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts a Bubble Tea program for game on the alternate screen.
func Run(game *snake.Game, width, height int, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, width, height, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
