// Package tui runs the 2048 game and its menus as Bubble Tea programs.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/logging"
)

// footerHeight is the number of rows reserved for the help footer.
// FullHelp groups bindings in pairs so the full view also fits.
const footerHeight = 2

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing 2048.
// There is no tick loop: every key press is applied to completion before the
// next message is handled.
type Model struct {
	game     *t2048.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	state    core.GameState
	logger   *log.Logger
	quitting bool
	err      error
}

// NewModel creates a model and starts the first game.
func NewModel(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
		logger: logger,
	}

	cfg.ScreenH -= footerHeight
	if err := game.Reset(cfg); err != nil {
		return m, err
	}
	m.state = game.State()
	m.keys.SetFinished(m.state.Finished)
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	state, err := m.game.Apply(action)
	if err != nil {
		m.logger.Error("apply failed", "action", action, "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if action.IsMove() {
		m.logger.Debug("move", "key", msg.String(), "action", action, "moves", state.Moves)
	}
	m.state = state
	m.keys.SetFinished(state.Finished)

	if state.Terminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The board survives resizes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.game.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the state after the last handled key.
func (m Model) State() core.GameState {
	return m.state
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for game.
func Run(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
