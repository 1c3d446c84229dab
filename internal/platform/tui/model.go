package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathbreak/internal/core"
	"github.com/vovakirdan/mathbreak/internal/games/mathbreak"
	"github.com/vovakirdan/mathbreak/internal/storage"
)

// footerRows is the number of terminal rows reserved for the help bar.
const footerRows = 1

// Game is the interface the driver runs.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures the driver.
type Options struct {
	Journal      *storage.Store // May be nil
	RunID        string
	Logger       *log.Logger // May be nil
	ReleaseAfter float64     // Seconds an arrow stays held without a repeat
}

// Outcome is what the driver reports once the program exits.
type Outcome struct {
	State   core.GameState
	Aborted bool // Quit before the game finished
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	journal    *storage.Store
	runID      string
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	mapper     *KeyMapper
	hold       *HoldTracker
	help       help.Model
	gameState  core.GameState
	quitting   bool
	aborted    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.ScreenH = max(cfg.ScreenH-footerRows, 1)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		journal:    opts.Journal,
		runID:      opts.RunID,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		hold:       NewHoldTracker(cfg.Ticks(opts.ReleaseAfter)),
		help:       h,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "title", m.game.Title(), "seed", m.config.Seed,
		"screen", m.config.ScreenW, "rows", m.config.ScreenH, "fps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	arrow, isQuit := m.mapper.MapKeyToFrame(msg, &m.inputFrame)
	if isQuit {
		m.logger.Info("quit requested", "score", m.gameState.Score, "level", m.gameState.Level)
		m.quitting = true
		m.aborted = !m.gameState.Finished
		return m, tea.Quit
	}
	if arrow != core.ActionNone {
		m.hold.Press(arrow)
	}
	return m, nil
}

// handleResize processes window resize events. The play field is logical,
// so the game keeps its state and only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.logger.Debug("resized", "width", m.config.ScreenW, "height", m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.hold.Tick(&m.inputFrame)

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.Finished {
		m.logger.Info("game finished", "score", m.gameState.Score, "level", m.gameState.Level)
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// handleEvents logs game events and journals resolved questions.
func (m Model) handleEvents(events []core.Event) {
	for _, e := range events {
		switch data := e.Data.(type) {
		case mathbreak.QuizEvent:
			res := data.Result
			m.logger.Debug(e.Type.String(), "tick", e.Tick, "level", data.Level,
				"question", res.Challenge.Question(), "given", res.Given,
				"outcome", res.Outcome, "elapsed_ms", res.ElapsedMillis())
			m.recordAnswer(data)
		default:
			m.logger.Debug(e.Type.String(), "tick", e.Tick, "data", e.Data)
		}
	}
}

// recordAnswer writes a resolved question to the journal. Failures are
// logged and never stop the game.
func (m Model) recordAnswer(qe mathbreak.QuizEvent) {
	if m.journal == nil {
		return
	}
	if _, err := m.journal.SaveAnswer(storage.NewAnswerEntry(m.runID, qe.Level, qe.Result)); err != nil {
		m.logger.Warn("could not journal answer", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Outcome returns the final game state and whether the player quit early.
func (m Model) Outcome() Outcome {
	return Outcome{State: m.game.State(), Aborted: m.aborted}
}

// Run starts the Bubble Tea program and blocks until the game finishes or
// the player quits.
func Run(game Game, opts Options, cfg core.RuntimeConfig) (Outcome, error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Outcome{}, nil
	}
	return m.Outcome(), nil
}
