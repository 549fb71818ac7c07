// Package viewer shows a win-rate heatmap in an interactive terminal UI.
// Nothing is written to disk unless the operator asks for it.
package viewer

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/roundrobin/internal/heatmap"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// Options configures the viewer.
type Options struct {
	// SavePath is where the save key writes the SVG.
	SavePath string
	Logger   *log.Logger
	// Renderer styles the grid; defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for the heatmap viewer
type Model struct {
	grid     *heatmap.Grid
	content  string
	savePath string
	logger   *log.Logger

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	status    string
	statusErr bool
	ready     bool
	quitting  bool
}

type savedMsg struct {
	path string
	err  error
}

// New creates a viewer model for the grid.
func New(grid *heatmap.Grid, opts Options) *Model {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	vp := viewport.New(10, 5)

	return &Model{
		grid:     grid,
		content:  heatmap.RenderTerminal(grid, renderer),
		savePath: opts.SavePath,
		logger:   logger.WithPrefix("viewer"),
		viewport: vp,
		help:     help.New(),
		keys:     newKeyMap(vp.KeyMap),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logger.Debug("Updating dimensions", "width", msg.Width, "height", msg.Height)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-2)
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport.SetContent(m.content)
			m.viewport.GotoTop()
			m.ready = true
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			if m.savePath == "" {
				m.setStatus("No save path configured", true)
				return m, nil
			}
			m.setStatus("Saving "+m.savePath+"...", false)
			return m, m.save()
		}

	case savedMsg:
		if msg.err != nil {
			m.logger.Error("Failed to save heatmap", "path", msg.path, "err", msg.err)
			m.setStatus(msg.err.Error(), true)
		} else {
			m.logger.Info("Saved heatmap", "path", msg.path)
			m.setStatus("Saved "+msg.path, false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	status := statusStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		status,
		m.help.View(m.keys),
	)
}

// Status returns the last status line message.
func (m *Model) Status() string {
	return m.status
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = strings.TrimSpace(s)
	m.statusErr = isErr
}

func (m *Model) save() tea.Cmd {
	path, grid := m.savePath, m.grid
	return func() tea.Msg {
		return savedMsg{path: path, err: heatmap.SaveSVG(path, grid)}
	}
}

// Run shows the viewer full screen until the operator quits or ctx is done.
func Run(ctx context.Context, grid *heatmap.Grid, opts Options) error {
	p := tea.NewProgram(New(grid, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
