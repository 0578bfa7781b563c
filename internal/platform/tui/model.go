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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f1race/internal/core"
)

// DefaultHoldWindow is how long a direction stays held after its last key
// event. Terminals report no key releases, only auto-repeat presses.
const DefaultHoldWindow = 250 * time.Millisecond

// Game is the contract the TUI drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// AudioControls are the sound keys handled outside the game.
type AudioControls interface {
	ToggleMute() bool
	Muted() bool
	SwitchBackground() core.MusicVariant
}

// Options configures the TUI.
type Options struct {
	Logger        *log.Logger   // Nil discards logs
	Audio         AudioControls // Nil disables the sound keys
	HoldWindow    time.Duration // Zero means DefaultHoldWindow
	ScreenshotDir string        // Empty means ~/.f1race/screenshots
}

// Model is the Bubble Tea model for running the race.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	held       map[core.Action]time.Time // Directions awaiting a synthesized release
	gameState  core.GameState
	ticks      int
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var status string
	if opts.Audio != nil && opts.Audio.Muted() {
		status = "muted"
	}

	return Model{
		status:     status,
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]time.Time),
	}
}

// screenRows leaves the bottom line for the help bar.
func screenRows(h int) int {
	return core.Max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("race started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("race quit", "score", m.gameState.Score, "level", m.gameState.Level, "tick", m.ticks)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if m.opts.Audio != nil {
			muted := m.opts.Audio.ToggleMute()
			m.status = "sound on"
			if muted {
				m.status = "muted"
			}
			m.logger.Debug("mute toggled", "muted", muted)
		}
		return m, nil
	case key.Matches(msg, m.keys.Track):
		if m.opts.Audio != nil {
			v := m.opts.Audio.SwitchBackground()
			m.status = "music: " + v.String()
			m.logger.Debug("background switched", "variant", v)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Set(action)
	if action.IsDirection() {
		// A new direction replaces the held one in the game.
		for a := range m.held {
			delete(m.held, a)
		}
		m.held[action] = now
	}
	return m, nil
}

// handleResize processes window resize events. Track geometry is fixed,
// so the race keeps running at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases expired holds, then runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.releaseExpired(now)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++
	m.logEvents(result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) releaseExpired(now time.Time) {
	for a, at := range m.held {
		if now.Sub(at) >= m.opts.HoldWindow {
			m.inputFrame.Release(a)
			delete(m.held, a)
		}
	}
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		kv := []any{"event", e.Kind, "value", e.Value, "score", m.gameState.Score, "level", m.gameState.Level, "tick", m.ticks}
		switch e.Kind {
		case core.EventSpawn:
			m.logger.Debug("spawn", "outcome", e.Detail, "lane", e.Value, "tick", m.ticks)
		case core.EventPass:
			m.logger.Debug("car passed", kv...)
		case core.EventCrash, core.EventGameOver:
			m.logger.Warn("race event", kv...)
		default:
			m.logger.Info("race event", kv...)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Error("screenshot failed", "error", err)
			return
		}
		dir = filepath.Join(home, ".f1race", "screenshots")
	}

	path, err := writeScreenshot(dir, m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

func writeScreenshot(dir, id string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}
	filename := fmt.Sprintf("%s_%s.txt", id, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bar := m.help.View(m.keys)
	if m.status != "" {
		bar = m.status + "  " + bar
	}
	return RenderScreen(m.screen) + "\n" + bar
}

// Run starts the Bubble Tea program for the game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
