// Package tui hosts the session stack in a terminal through Bubble Tea,
// locally or over SSH with wish. Each Bubble Tea tick is one iteration of
// the stack, so the runtime's own event loop is the yield point.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
)

// Options configures a terminal session.
type Options struct {
	// TickRate is the number of loop iterations per second.
	TickRate int
	// Width and Height are the initial size until the first resize message.
	Width, Height int
	// ScreenshotDir receives Ctrl+S screenshots. Empty disables them.
	ScreenshotDir string
	// Renderer decides the color profile; nil means the local terminal.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model that runs one session stack. Input that
// arrives between ticks is batched and handed to the next update.
type Model struct {
	stack     *session.Stack
	env       *session.Env
	screen    *core.Screen
	clock     *session.Clock
	keyMapper *KeyMapper
	painter   *Painter
	input     core.Batch
	opts      Options
	quitting  bool
}

// NewModel creates a model driving root.
func NewModel(env *session.Env, root session.Session, opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	return Model{
		stack:     session.NewStack(env, root),
		env:       env,
		screen:    core.NewScreen(opts.Width, opts.Height),
		clock:     session.NewClock(opts.TickRate, false),
		keyMapper: NewKeyMapper(),
		painter:   NewPainter(opts.Renderer),
		opts:      opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.nextTick()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		if ev, ok := m.keyMapper.MapKey(msg); ok {
			m.input = append(m.input, ev)
		}
		return m, nil

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.input = append(m.input, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Width, m.opts.Height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// TickMsg triggers one loop iteration.
type TickMsg time.Time

// nextTick schedules the next iteration one nominal frame from now.
func (m Model) nextTick() tea.Cmd {
	return tea.Tick(m.clock.Target(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// handleTick runs one iteration of the stack with the batched input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	f := session.Frame{
		Elapsed: m.clock.Tick(),
		Input:   m.input,
		Width:   m.opts.Width,
		Height:  m.opts.Height,
	}
	m.input = nil

	if m.stack.Step(f) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.nextTick()
}

// Result returns how the stack ended.
func (m Model) Result() session.Result {
	return m.stack.Result()
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.stack.Draw(m.screen)
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.env.Log.Warn("could not create screenshot directory", "error", err)
		return
	}
	name := fmt.Sprintf("party_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.Log.Warn("could not save screenshot", "error", err)
		return
	}
	m.env.Log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.stack.Draw(m.screen)
	return m.painter.Paint(m.screen)
}

// Run starts the Bubble Tea program and blocks until the stack finishes.
func Run(env *session.Env, root session.Session, opts Options) (session.Result, error) {
	p := tea.NewProgram(
		NewModel(env, root, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return session.Result{}, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return session.Result{}, nil
}
