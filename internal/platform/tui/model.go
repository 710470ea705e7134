package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ormakov/roidfield/internal/core"
	"github.com/ormakov/roidfield/internal/game"
	"github.com/ormakov/roidfield/internal/storage"
)

// holdLatchSeconds is how long a held action stays latched after the
// last key event. Terminals report no key releases, so holding a key is
// observed as an initial press followed by auto-repeat events; the latch
// has to outlive the repeat delay or thrust would stutter.
const holdLatchSeconds = 0.5

// Model is the Bubble Tea model that runs the game loop.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	tick      int
	heldUntil map[core.Action]int // action -> tick the latch expires on
	edgeUntil map[core.Action]int // edge actions: repeat window expiry
	pressed   map[core.Action]bool

	gameState core.GameState
	quitting  bool
	runSaved  bool

	scores     *ScoreboardModel
	showScores bool
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      g,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		heldUntil: make(map[core.Action]int),
		edgeUntil: make(map[core.Action]int),
		pressed:   make(map[core.Action]bool),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showScores {
		return m.updateScores(msg)
	}

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

// updateScores forwards messages to the scoreboard overlay. The
// simulation keeps its tick loop alive but does not advance while the
// overlay is up.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, tickCmd(m.config.TickRate)
	}

	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		return m.quit()
	}
	if m.scores.IsGoingBack() {
		m.showScores = false
		m.scores = nil
		return m, nil
	}

	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch {
	case action == core.ActionShowScores:
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		m.showScores = true
	case IsHeldAction(action):
		m.heldUntil[action] = m.tick + m.latchTicks()
	case action != core.ActionNone:
		// Edge actions fire on the first event of a fresh window only;
		// auto-repeat events inside the window just extend it, so holding
		// space fires a single shot rather than one per repeat.
		if m.tick >= m.edgeUntil[action] {
			m.pressed[action] = true
		}
		m.edgeUntil[action] = m.tick + m.latchTicks()
	}

	return m, nil
}

// latchTicks converts the latch window into simulation ticks.
func (m Model) latchTicks() int {
	return int(holdLatchSeconds * float64(m.config.TickRate))
}

// handleResize processes window resize events. The simulation itself is
// resolution independent, only the screen buffer needs to grow.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++

	// Restart wipes the run and reseeds
	if m.pressed[core.ActionRestart] {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		clear(m.pressed)
		clear(m.heldUntil)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.buildFrame())
	m.gameState = result.State

	clear(m.pressed)
	return m, tickCmd(m.config.TickRate)
}

// buildFrame assembles the input frame for one tick from the hold
// latches and the pressed edges collected since the last tick.
func (m Model) buildFrame() core.InputFrame {
	in := core.NewInputFrame()
	for action, until := range m.heldUntil {
		if m.tick <= until {
			in.SetHeld(action)
		} else {
			delete(m.heldUntil, action)
		}
	}
	for action := range m.pressed {
		in.SetPressed(action)
	}
	return in
}

// quit finalizes the run, persists it, and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.game.End()
	m.saveRun()
	m.quitting = true
	return m, tea.Quit
}

// saveRun persists the finished run once. Zero-score runs are skipped.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	if snap.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.SaveRun(storage.Run{
		Score:     snap.Score,
		Asteroids: m.game.AsteroidsShot(),
		ShipsLost: snap.ShipsLost,
		Duration:  int(m.game.Duration()),
	})
	m.runSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".roidfield", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("roidfield_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showScores && m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
