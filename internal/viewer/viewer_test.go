package viewer

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/roundrobin/internal/heatmap"
)

func newTestModel(t *testing.T, savePath string) *Model {
	t.Helper()

	grid, err := heatmap.New([]string{"A", "B"},
		[][]int{{0, 3}, {2, 2}},
		[][]int{{0, 1}, {2, 2}},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	return New(grid, Options{
		SavePath: savePath,
		Logger:   log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
		Renderer: lipgloss.NewRenderer(&buf, termenv.WithProfile(termenv.Ascii)),
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewerRendersAfterResize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	assert.Contains(t, view, "75%")
	assert.Contains(t, view, "White player")
	assert.Contains(t, view, "quit")
}

func TestViewerQuit(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, "")
		m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.Equal(t, tea.QuitMsg{}, cmd(), msg.String())
		assert.Empty(t, m.View())
	}
}

func TestViewerSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "heatmap.svg")
	m := newTestModel(t, path)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.NoFileExists(t, path, "nothing is written until the operator saves")

	_, cmd := m.Update(runes("s"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.FileExists(t, path)
	assert.Equal(t, "Saved "+path, m.Status())
	assert.Contains(t, m.View(), "Saved")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "75%")
}

func TestViewerSaveFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "heatmap.svg")
	m := newTestModel(t, path)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := m.Update(runes("s"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Contains(t, m.Status(), "failed to save heatmap")
	assert.NoFileExists(t, path)
}

func TestViewerSaveWithoutPath(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := m.Update(runes("s"))
	assert.Nil(t, cmd)
	assert.Equal(t, "No save path configured", m.Status())
}
