package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/binocular-breakout/internal/core"
)

// StartSelection holds the settings chosen on the start menu.
type StartSelection struct {
	Keyboard   bool // Keys move the paddle between mouse moves
	TimeScaled bool // Movement follows elapsed time rather than ticks
}

// Menu rows
const (
	menuStart = iota
	menuControls
	menuSpeed
	menuQuit
	menuRows
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196f3")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4caf50")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StartMenuModel lets the player pick control and speed settings before
// the round starts.
type StartMenuModel struct {
	cursor    int
	width     int
	height    int
	keys      MenuKeyMap
	selection StartSelection
	started   bool
	quitting  bool
}

// NewStartMenuModel creates a start menu preset to initial.
func NewStartMenuModel(initial StartSelection, width, height int) StartMenuModel {
	return StartMenuModel{
		width:     width,
		height:    height,
		keys:      DefaultMenuKeyMap(),
		selection: initial,
	}
}

// Init initializes the model.
func (m StartMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StartMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m StartMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < menuRows-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case menuStart:
			m.started = true
			return m, tea.Quit
		case menuControls:
			m.selection.Keyboard = !m.selection.Keyboard
		case menuSpeed:
			m.selection.TimeScaled = !m.selection.TimeScaled
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m StartMenuModel) View() string {
	if m.quitting || m.started {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")

	controls := "mouse"
	if m.selection.Keyboard {
		controls = "keyboard + mouse"
	}
	speed := "per tick"
	if m.selection.TimeScaled {
		speed = "time scaled"
	}

	rows := []string{
		"Start",
		fmt.Sprintf("Controls: %s", controls),
		fmt.Sprintf("Speed: %s", speed),
		"Quit",
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = selectedStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Enter: Select/Toggle  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if the menu was left without
// starting.
func (m StartMenuModel) Selected() *StartSelection {
	if !m.started {
		return nil
	}
	sel := m.selection
	return &sel
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunStartMenu shows the start menu. It returns nil when the player quit.
func RunStartMenu(initial StartSelection, cfg core.RuntimeConfig) (*StartSelection, error) {
	p := tea.NewProgram(
		NewStartMenuModel(initial, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(StartMenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
