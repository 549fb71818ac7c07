// Package heatmap turns black/white win-count matrices into an annotated
// grayscale heatmap of white-side win rates, rendered as SVG or as a
// styled terminal grid.
package heatmap

import "fmt"

// WinRate is the fraction of decided rounds won by white. A pairing where
// neither side ever won counts as one win each, giving an even 0.5 instead
// of a division by zero.
func WinRate(black, white int) float64 {
	if black == 0 && white == 0 {
		black, white = 1, 1
	}
	return float64(white) / float64(white+black)
}

// WinRates applies WinRate cell by cell. The inputs are not modified.
func WinRates(black, white [][]int) [][]float64 {
	rates := make([][]float64, len(black))
	for i := range black {
		rates[i] = make([]float64, len(black[i]))
		for j := range black[i] {
			rates[i][j] = WinRate(black[i][j], white[i][j])
		}
	}
	return rates
}

// BlackPercent is the integer percentage of rounds black won, derived from
// the white win rate the same way the annotations always have been:
// 100 minus the truncated white percentage.
func BlackPercent(rate float64) int {
	return 100 - int(rate*100)
}

// Ink is an annotation text color.
type Ink int

const (
	InkBlack Ink = iota
	InkWhite
)

func (i Ink) String() string {
	if i == InkWhite {
		return "white"
	}
	return "black"
}

// Hex returns the CSS color for the ink.
func (i Ink) Hex() string {
	if i == InkWhite {
		return "#ffffff"
	}
	return "#000000"
}

// AnnotationInk picks white text for cells where black won more than half
// the rounds, since those cells are dark.
func AnnotationInk(blackPercent int) Ink {
	if blackPercent > 50 {
		return InkWhite
	}
	return InkBlack
}

// Annotation formats a black win percentage for display.
func Annotation(blackPercent int) string {
	return fmt.Sprintf("%d%%", blackPercent)
}
