package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binocular-breakout/internal/core"
	"github.com/vovakirdan/binocular-breakout/internal/games/breakout"
	"github.com/vovakirdan/binocular-breakout/internal/render"
)

// Layout constants
const (
	helpHeight       = 1  // Rows reserved for the help footer
	statsWidth       = 30 // Width of the stats sidebar
	minWidthForStats = 80 // Below this the sidebar stays hidden
	statsKeyWidth    = 10
	statsValueWidth  = statsWidth - statsKeyWidth - 4
)

// fpsSmoothing is the weight of the newest sample in the FPS average.
const fpsSmoothing = 0.1

// keyHoldDuration is how long a direction stays held after its last key
// event. Terminals report presses and auto-repeats but never releases.
const keyHoldDuration = 150 * time.Millisecond

var tooSmallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)

// Model is the Bubble Tea model for a breakout session.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	renderer *render.Renderer
	styles   styleCache
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	stats    table.Model
	logger   *log.Logger
	now      func() time.Time

	width      int
	height     int
	lastTick   time.Time
	leftUntil  time.Time
	rightUntil time.Time
	fps        float64
	showStats  bool
	wasOver    bool
	tooSmall   bool
	quitting   bool
}

// NewModel creates a model driving game on a terminal of cfg's size.
// It fails when the terminal surface cannot provide a drawing context.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(0, 0),
		styles: styleCache{},
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		stats:  newStatsTable(),
		logger: logger,
		now:    time.Now,
	}

	if err := m.layout(cfg.ScreenW, cfg.ScreenH); err != nil {
		return Model{}, err
	}
	return m, nil
}

func newStatsTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Stat", Width: statsKeyWidth},
			{Title: "Value", Width: statsValueWidth},
		}),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// layout sizes the game screen for a width x height terminal and acquires
// a fresh drawing context for it.
func (m *Model) layout(width, height int) error {
	m.width, m.height = width, height
	m.config.ScreenW, m.config.ScreenH = width, height

	gameW := width
	if m.showStats && width >= minWidthForStats {
		gameW -= statsWidth + 1
	}
	m.screen.Resize(gameW, height-helpHeight)
	m.help.Width = width

	cfg := m.game.Config()
	renderer, err := render.New(render.NewTerminal(m.screen, cfg.Canvas.Width, cfg.Canvas.Height))
	if err != nil {
		m.renderer = nil
		m.tooSmall = true
		return fmt.Errorf("terminal %dx%d: %w", width, height, err)
	}
	m.renderer = renderer
	m.tooSmall = false
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.game.Config()
	m.logger.Info("round started",
		"canvas", fmt.Sprintf("%gx%g", cfg.Canvas.Width, cfg.Canvas.Height),
		"bricks", len(m.game.State().Bricks),
		"tick_rate", m.config.TickRate,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		state := m.game.State()
		m.logger.Info("quit", "score", state.Score, "frames", m.game.Frames())
		return m, tea.Quit

	case core.ActionLeft:
		m.leftUntil = now.Add(keyHoldDuration)
		m.game.SetInput(breakout.LeftPatch(true))

	case core.ActionRight:
		m.rightUntil = now.Add(keyHoldDuration)
		m.game.SetInput(breakout.RightPatch(true))

	case core.ActionPause:
		m.game.TogglePause()
		if m.game.State().Paused {
			m.logger.Info("paused", "frames", m.game.Frames())
		} else {
			m.logger.Info("resumed", "frames", m.game.Frames())
		}

	case core.ActionReset:
		m.logger.Info("reset", "score", m.game.State().Score)
		m.game.Reset()
		m.wasOver = false

	case core.ActionStats:
		m.showStats = !m.showStats
		if err := m.layout(m.width, m.height); err != nil {
			m.logger.Warn("layout failed", "error", err)
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse maps the pointer column onto the logical canvas.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cols := m.screen.Width()
	if cols <= 0 {
		return m, nil
	}

	canvasW := m.game.Config().Canvas.Width
	x := (float64(msg.X) + 0.5) * canvasW / float64(cols)
	m.game.SetInput(breakout.MousePatch(core.ClampF(x, 0, canvasW)))

	return m, nil
}

// handleResize processes window resize events. The round keeps going;
// only the drawing context is rebuilt.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if err := m.layout(msg.Width, msg.Height); err != nil {
		m.logger.Debug("terminal too small", "width", msg.Width, "height", msg.Height)
	}
	return m, nil
}

// handleTick releases expired key holds and advances the simulation by the
// real time since the previous tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FrameMillis()
	if !m.lastTick.IsZero() {
		dt = float64(t.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = t

	if dt > 0 {
		m.fps += (1000/dt - m.fps) * fpsSmoothing
	}

	input := m.game.Input()
	if input.Left && t.After(m.leftUntil) {
		m.game.SetInput(breakout.LeftPatch(false))
	}
	if input.Right && t.After(m.rightUntil) {
		m.game.SetInput(breakout.RightPatch(false))
	}

	m.game.Update(dt)

	state := m.game.State()
	if state.GameOver && !m.wasOver {
		outcome := "lost"
		if state.Won() {
			outcome = "won"
		}
		m.logger.Info("game over",
			"outcome", outcome,
			"score", state.Score,
			"bricks_left", state.AliveBricks(),
			"frames", m.game.Frames(),
		)
	}
	m.wasOver = state.GameOver

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall || m.renderer == nil {
		msg := tooSmallStyle.Render(fmt.Sprintf(
			"Terminal too small (%dx%d), need at least %dx%d",
			m.width, m.height, render.MinTerminalCols, render.MinTerminalRows+helpHeight,
		))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.renderer.Render(m.game.State())
	view := renderScreen(m.screen, m.styles)

	if m.showStats && m.width >= minWidthForStats {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, " ", m.statsView())
	}

	return view + "\n" + m.help.View(m.keys)
}

// statsView renders the live stats sidebar.
func (m Model) statsView() string {
	state := m.game.State()
	input := m.game.Input()

	m.stats.SetRows([]table.Row{
		{"Score", fmt.Sprint(state.Score)},
		{"Bricks", fmt.Sprintf("%d/%d", state.AliveBricks(), len(state.Bricks))},
		{"Ball", fmt.Sprintf("%.0f,%.0f", state.Ball.X, state.Ball.Y)},
		{"Velocity", fmt.Sprintf("%.1f,%.1f", state.Ball.VX, state.Ball.VY)},
		{"Paddle", fmt.Sprintf("%.0f", state.Paddle.X)},
		{"Mouse", fmt.Sprintf("%.0f", input.MouseX)},
		{"Keys", heldKeys(input)},
		{"Frames", fmt.Sprint(m.game.Frames())},
		{"FPS", fmt.Sprintf("%.0f", m.fps)},
	})
	return m.stats.View()
}

func heldKeys(in breakout.InputState) string {
	switch {
	case in.Left && in.Right:
		return "left+right"
	case in.Left:
		return "left"
	case in.Right:
		return "right"
	}
	return "-"
}

// Game returns the driven game.
func (m Model) Game() *breakout.Game {
	return m.game
}

// Run starts the Bubble Tea program for game.
func Run(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err = p.Run()
	return err
}
