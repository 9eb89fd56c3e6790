package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/games/clipper"
	"github.com/vovakirdan/clipper-arcade/internal/registry"
	"github.com/vovakirdan/clipper-arcade/internal/storage"
)

// statsReporter is implemented by games that count per-run statistics.
type statsReporter interface {
	Stats() clipper.RunStats
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	recorder   storage.RunRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	loop       uint64
	held       HeldKeys
	pressed    core.InputFrame // One-shot actions since the last tick
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewGameModel creates a new model for the given game.
// recorder and logger may be nil.
func NewGameModel(game registry.Game, recorder storage.RunRecorder, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:  recorder,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		loop:      nextLoop(),
		pressed:   core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The simulation runs in world units, so only the render target changes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	in := m.keyMapper.MapKey(msg)
	switch {
	case in.Quit:
		m.quitting = true
		return m, tea.Quit
	case in.Back:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	case in.Action == core.ActionNone:
		return m, nil
	}

	if isHeldAction(in.Action) {
		m.held.Press(in.Action)
		if in.Run {
			m.held.Press(core.ActionRun)
		}
		return m, nil
	}
	m.pressed.Set(in.Action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.pressed.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.held.Release()
		m.pressed.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	frame := m.pressed.Clone()
	m.held.Apply(&frame)
	m.held.Tick()

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.pressed.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun records the finished run. Failure is logged and ignored.
func (m *GameModel) saveRun() {
	if m.recorder == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.RunRecord{GameID: m.game.ID(), Score: m.gameState.Score}
	if sr, ok := m.game.(statsReporter); ok {
		stats := sr.Stats()
		run.Stomps = stats.Stomps
		run.Coins = stats.Coins
		run.Ticks = stats.Ticks
	}
	if _, err := m.recorder.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "game", run.GameID, "score", run.Score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".clipper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// It returns when the player quits or leaves for the menu.
func Run(game registry.Game, recorder storage.RunRecorder, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, recorder, logger, cfg)

	p := tea.NewProgram(
		runModel{model},
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: game %s: %w", game.ID(), err)
	}
	if rm, ok := final.(runModel); ok {
		return rm.BackToMenu(), nil
	}
	return false, nil
}

// runModel quits the program when the game asks to return to the menu.
type runModel struct {
	GameModel
}

func (r runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		r.GameModel = gm
	}
	if r.BackToMenu() {
		return r, tea.Quit
	}
	return r, cmd
}
