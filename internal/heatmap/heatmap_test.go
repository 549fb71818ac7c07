package heatmap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinRateZeroSafeguard(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.5, WinRate(0, 0))
	assert.Equal(t, 50, BlackPercent(WinRate(0, 0)))
}

func TestWinRateBounds(t *testing.T) {
	t.Parallel()

	for black := 0; black <= 30; black++ {
		for white := 0; white <= 30; white++ {
			rate := WinRate(black, white)
			assert.GreaterOrEqual(t, rate, 0.0)
			assert.LessOrEqual(t, rate, 1.0)
		}
	}

	assert.Equal(t, 1.0, WinRate(0, 7))
	assert.Equal(t, 0.0, WinRate(7, 0))
	assert.Equal(t, 0.25, WinRate(3, 1))
}

func TestWinRatesDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	black := [][]int{{0, 3}, {1, 0}}
	white := [][]int{{0, 1}, {3, 0}}

	rates := WinRates(black, white)

	assert.Equal(t, [][]float64{{0.5, 0.25}, {0.75, 0.5}}, rates)
	assert.Equal(t, [][]int{{0, 3}, {1, 0}}, black)
	assert.Equal(t, [][]int{{0, 1}, {3, 0}}, white)
}

func TestAnnotationInk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct  int
		want Ink
	}{
		{0, InkBlack},
		{49, InkBlack},
		{50, InkBlack},
		{51, InkWhite},
		{75, InkWhite},
		{100, InkWhite},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AnnotationInk(tt.pct), "pct=%d", tt.pct)
	}
	assert.Equal(t, "white", InkWhite.String())
	assert.Equal(t, "#000000", InkBlack.Hex())
}

func TestBlackPercentTruncates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 75, BlackPercent(0.25))
	assert.Equal(t, 0, BlackPercent(1))
	assert.Equal(t, 100, BlackPercent(0))
	// 1/3 white -> 33.33% white -> 67% black
	assert.Equal(t, 67, BlackPercent(1.0/3.0))
}

func TestTwoContestantExample(t *testing.T) {
	t.Parallel()

	g, err := New([]string{"A", "B"},
		[][]int{{0, 3}, {0, 0}},
		[][]int{{0, 1}, {0, 0}},
	)
	require.NoError(t, err)

	cell := g.Cell(0, 1)
	assert.Equal(t, 0.25, cell.Rate)
	assert.Equal(t, 75, cell.BlackPercent)
	assert.Equal(t, "75%", cell.Text)
	assert.Equal(t, InkWhite, cell.Ink)

	self := g.Cell(0, 0)
	assert.Equal(t, 0.5, self.Rate)
	assert.Equal(t, "50%", self.Text)
	assert.Equal(t, InkBlack, self.Ink)
}

func TestNewRejectsWrongShape(t *testing.T) {
	t.Parallel()

	_, err := New([]string{"A", "B"}, [][]int{{1, 2}}, [][]int{{1, 2}, {3, 4}})
	assert.Error(t, err)

	_, err = New([]string{"A", "B"}, [][]int{{1, 2}, {3}}, [][]int{{1, 2}, {3, 4}})
	assert.Error(t, err)
}

func TestShadeStretchesToDataRange(t *testing.T) {
	t.Parallel()

	g := NewFromRates([]string{"A", "B"}, [][]float64{{0.2, 0.4}, {0.6, 0.6}})
	assert.Equal(t, 0.0, g.Cell(0, 0).Shade)
	assert.InDelta(t, 0.5, g.Cell(0, 1).Shade, 1e-9)
	assert.Equal(t, 1.0, g.Cell(1, 0).Shade)

	flat := NewFromRates([]string{"A"}, [][]float64{{0.5}})
	assert.Equal(t, 0.0, flat.Cell(0, 0).Shade)

	assert.Equal(t, "#000000", GrayHex(0))
	assert.Equal(t, "#ffffff", GrayHex(1))
	assert.Equal(t, "#808080", GrayHex(0.5))
}

func sampleGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := New([]string{"Random", "Greedy & co", "MiniMax (3)"},
		[][]int{{50, 10, 2}, {90, 50, 20}, {97, 81, 0}},
		[][]int{{50, 90, 98}, {10, 50, 80}, {3, 19, 0}},
	)
	require.NoError(t, err)
	return g
}

func TestWriteSVG(t *testing.T) {
	t.Parallel()

	g := sampleGrid(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, g))

	out := buf.String()

	// Well-formed XML.
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}

	assert.Contains(t, out, "White player")
	assert.Contains(t, out, "Black player")
	assert.Contains(t, out, "Random")
	assert.Contains(t, out, "Greedy &amp; co")
	assert.Contains(t, out, "MiniMax (3)")
	assert.Equal(t, 9, strings.Count(out, "%</text>"), "one annotation per cell")
	assert.Contains(t, out, ">50%<")
	assert.Contains(t, out, ">97%<")
	assert.Contains(t, out, "rotate(45")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteSVGReportsWriteErrors(t *testing.T) {
	t.Parallel()

	err := WriteSVG(failingWriter{}, sampleGrid(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRenderTerminal(t *testing.T) {
	t.Parallel()

	g := sampleGrid(t)

	var buf bytes.Buffer
	plain := lipgloss.NewRenderer(&buf)
	plain.SetColorProfile(termenv.Ascii)
	out := RenderTerminal(g, plain)

	assert.Contains(t, out, "White player")
	assert.Contains(t, out, "Black player")
	assert.Contains(t, out, "  3  MiniMax (3)")
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(out, "\n")
	var randomRow string
	for _, line := range lines {
		if strings.Contains(line, "Random") && strings.Contains(line, "%") {
			randomRow = line
			break
		}
	}
	require.NotEmpty(t, randomRow)
	assert.Equal(t, []string{"Random", "50%", "10%", "2%"}, strings.Fields(randomRow))

	colored := lipgloss.NewRenderer(&buf)
	colored.SetColorProfile(termenv.TrueColor)
	assert.Contains(t, RenderTerminal(g, colored), "\x1b[")
}

func TestRenderTerminalCellColors(t *testing.T) {
	t.Parallel()

	g := sampleGrid(t)
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)

	// Greedy as black against Random: 90% black wins, white ink on a dark cell.
	dark := g.Cell(1, 0)
	require.Equal(t, "90%", dark.Text)
	out := renderCell(r, dark)
	v := GrayLevel(dark.Shade)
	assert.Contains(t, out, "38;2;255;255;255")
	assert.Contains(t, out, fmt.Sprintf("48;2;%d;%d;%d", v, v, v))
	assert.Contains(t, out, "90%")

	// Random against Greedy: 10% black wins, black ink on a light cell.
	light := g.Cell(0, 1)
	require.Equal(t, "10%", light.Text)
	out = renderCell(r, light)
	v = GrayLevel(light.Shade)
	assert.Contains(t, out, "38;2;0;0;0")
	assert.Contains(t, out, fmt.Sprintf("48;2;%d;%d;%d", v, v, v))

	// Exactly 50% keeps black ink.
	assert.Contains(t, renderCell(r, g.Cell(0, 0)), "38;2;0;0;0")
}

func TestSaveSVG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "heatmap.svg")
	require.NoError(t, SaveSVG(path, sampleGrid(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.Contains(t, string(data), "</svg>")

	err = SaveSVG(filepath.Join(t.TempDir(), "missing", "heatmap.svg"), sampleGrid(t))
	assert.Error(t, err)
}
