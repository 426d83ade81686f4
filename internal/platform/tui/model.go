package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/starcatch/internal/config"
	"github.com/dkotenko/starcatch/internal/core"
	"github.com/dkotenko/starcatch/internal/game"
	"github.com/dkotenko/starcatch/internal/storage"
)

// Model is the Bubble Tea model that drives a starcatch session.
// It owns the frame loop, input translation and score persistence; the
// simulation itself lives in the game package.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	runtime    core.RuntimeConfig
	keys       *KeyMapper
	player     string
	inputFrame core.InputFrame
	lastFrame  time.Time
	quitting   bool
	scoreSaved bool // Whether score has been saved for the current game over
}

// NewModel creates a model sized to the given runtime config.
// The store and notifier may be nil; persistence and sound are then skipped.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, notifier game.Notifier, player string) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(rt.Seed))
	field := game.FieldForScreen(rt.Cols, rt.Rows)
	session := game.NewSession(cfg, field, rng, notifier)

	// Seed the in-session high score from persisted history.
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			session.SetHighScore(high)
		}
	}

	return Model{
		session: session,
		screen:  core.NewScreen(rt.Cols, rt.Rows),
		store:   store,
		runtime: rt,
		keys:    NewKeyMapper(),
		player:  player,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.TickRate)
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

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Map(msg) {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit

	case KeyConfirm:
		m.session.Dispatch(game.CmdStart)

	case KeyPause:
		switch m.session.Phase() {
		case game.PhaseRunning:
			m.session.Dispatch(game.CmdPause)
		case game.PhasePaused:
			m.session.Dispatch(game.CmdResume)
		}

	case KeyRestart:
		if m.session.Dispatch(game.CmdRestart) {
			m.scoreSaved = false
		}

	case KeyLeft:
		m.inputFrame.Intent = core.IntentLeft

	case KeyRight:
		m.inputFrame.Intent = core.IntentRight

	case KeyScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleMouse translates the pointer column to a simulation-space target.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Center of the hovered cell in simulation units
	m.inputFrame.SetPointer(float64(msg.X)*game.CellW + game.CellW/2)
	return m, nil
}

// handleResize processes window resize events. Entities in flight are
// preserved; the session clamps the paddle to the new bounds.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.Cols = msg.Width
	m.runtime.Rows = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(game.FieldForScreen(msg.Width, msg.Height))
	return m, nil
}

// handleFrame advances the simulation by the elapsed wall-clock time.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	m.session.Update(dt, m.inputFrame)
	m.inputFrame.Clear()

	// Save score on game over (once)
	if m.session.Phase() == game.PhaseOver && !m.scoreSaved {
		if m.store != nil && m.session.Score() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.player, m.session.Score())
		}
		m.scoreSaved = true
	}

	return m, frameCmd(m.runtime.TickRate)
}

// saveScreenshot dumps the current screen buffer to a timestamped file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".starcatch", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("starcatch_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, notifier game.Notifier, player string) error {
	model := NewModel(cfg, rt, store, notifier, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer steering
	)

	_, err := p.Run()
	return err
}
