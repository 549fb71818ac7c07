package heatmap

import (
	"fmt"
	"math"
)

// Cell is everything needed to draw one square of the heatmap.
type Cell struct {
	Rate         float64
	BlackPercent int
	Text         string
	Ink          Ink
	Shade        float64 // 0 is black, 1 is white
}

// Grid is the win-rate matrix plus the contestant labels for both axes.
// Rows are black players, columns are white players.
type Grid struct {
	Labels []string
	Rates  [][]float64

	lo, hi float64
}

// New builds a grid from raw win counts.
func New(labels []string, black, white [][]int) (*Grid, error) {
	n := len(labels)
	if len(black) != n || len(white) != n {
		return nil, fmt.Errorf("expected %d rows, got %d black and %d white", n, len(black), len(white))
	}
	for i := range n {
		if len(black[i]) != n || len(white[i]) != n {
			return nil, fmt.Errorf("row %d: expected %d columns", i+1, n)
		}
	}

	return NewFromRates(labels, WinRates(black, white)), nil
}

// NewFromRates wraps an already computed rate matrix.
func NewFromRates(labels []string, rates [][]float64) *Grid {
	g := &Grid{Labels: labels, Rates: rates, lo: math.Inf(1), hi: math.Inf(-1)}
	for _, row := range rates {
		for _, r := range row {
			g.lo = math.Min(g.lo, r)
			g.hi = math.Max(g.hi, r)
		}
	}
	return g
}

// Size returns the number of contestants on each axis.
func (g *Grid) Size() int {
	return len(g.Labels)
}

// Shade maps a rate onto the gray scale, stretched so the lowest rate in
// the grid is black and the highest is white. A grid where every rate is
// equal is drawn entirely black.
func (g *Grid) Shade(rate float64) float64 {
	if !(g.hi > g.lo) {
		return 0
	}
	return (rate - g.lo) / (g.hi - g.lo)
}

// Cell returns the drawing data for row (black player) and col (white player).
func (g *Grid) Cell(row, col int) Cell {
	rate := g.Rates[row][col]
	pct := BlackPercent(rate)
	return Cell{
		Rate:         rate,
		BlackPercent: pct,
		Text:         Annotation(pct),
		Ink:          AnnotationInk(pct),
		Shade:        g.Shade(rate),
	}
}

// GrayLevel converts a shade to an 8-bit channel value.
func GrayLevel(shade float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, shade)) * 255))
}

// GrayHex returns the shade as a #rrggbb color.
func GrayHex(shade float64) string {
	v := GrayLevel(shade)
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}
