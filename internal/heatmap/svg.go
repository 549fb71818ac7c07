package heatmap

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo"

	"github.com/lox/roundrobin/internal/fileutil"
)

const (
	cellSize  = 44
	fontSize  = 11
	charWidth = 6.5
	margin    = 12
	titleGap  = 22
)

// errWriter remembers the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws the grid: white players along the top with labels rotated
// 45 degrees, black players down the left, one gray cell per pairing
// annotated with the black win percentage.
func WriteSVG(w io.Writer, g *Grid) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	n := g.Size()
	labelSpan := int(float64(longestLabel(g.Labels))*charWidth) + margin

	left := titleGap + labelSpan
	top := titleGap + int(float64(labelSpan)*math.Sqrt2/2) + margin
	width := left + n*cellSize + margin
	height := top + n*cellSize + margin

	canvas.Start(width, height)
	canvas.Title("Win rates by pairing")
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	canvas.Text(left+n*cellSize/2, titleGap-8, "White player",
		fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx", fontSize+1))
	canvas.TranslateRotate(titleGap-8, top+n*cellSize/2, -90)
	canvas.Text(0, 0, "Black player",
		fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx", fontSize+1))
	canvas.Gend()

	labelStyle := fmt.Sprintf("text-anchor:end;font-family:sans-serif;font-size:%dpx", fontSize)
	for j, label := range g.Labels {
		canvas.TranslateRotate(left+j*cellSize+cellSize/2, top-6, 45)
		canvas.Text(0, 0, label, labelStyle)
		canvas.Gend()
	}
	for i, label := range g.Labels {
		canvas.Text(left-6, top+i*cellSize+cellSize/2+fontSize/3, label, labelStyle)
	}

	for i := range n {
		for j := range n {
			cell := g.Cell(i, j)
			x := left + j*cellSize
			y := top + i*cellSize
			canvas.Rect(x, y, cellSize, cellSize, "fill:"+GrayHex(cell.Shade))
			canvas.Text(x+cellSize/2, y+cellSize/2+fontSize/3, cell.Text,
				fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx;fill:%s", fontSize, cell.Ink.Hex()))
		}
	}

	canvas.End()
	return ew.err
}

func longestLabel(labels []string) int {
	longest := 0
	for _, l := range labels {
		longest = max(longest, utf8.RuneCountInString(l))
	}
	return longest
}

// SaveSVG writes the grid to path, replacing any existing file atomically.
func SaveSVG(path string, g *Grid) error {
	err := fileutil.WriteAtomic(path, 0644, func(w io.Writer) error {
		return WriteSVG(w, g)
	})
	if err != nil {
		return fmt.Errorf("failed to save heatmap to %s: %w", path, err)
	}
	return nil
}
