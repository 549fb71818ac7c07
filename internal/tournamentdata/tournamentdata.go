// Package tournamentdata persists tournament results as three flat CSV
// files: black.csv and white.csv hold N×N win counts without a header row,
// header.csv holds the N contestant names on a single row.
package tournamentdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lox/roundrobin/internal/fileutil"
)

const (
	DefaultDir = "tournament_data"

	BlackFile  = "black.csv"
	WhiteFile  = "white.csv"
	HeaderFile = "header.csv"
)

// Data is the persisted state of one tournament.
type Data struct {
	Header []string
	Black  [][]int
	White  [][]int
}

// ShapeError reports a file whose dimensions disagree with the header.
type ShapeError struct {
	File string
	Row  int // -1 when the row count itself is wrong
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: expected %d rows, got %d", e.File, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: row %d has %d columns, expected %d", e.File, e.Row+1, e.Got, e.Want)
}

// Size returns the contestant count.
func (d Data) Size() int {
	return len(d.Header)
}

// Validate checks that both matrices are N×N for the N names in the header.
func (d Data) Validate() error {
	n := d.Size()
	for _, m := range []struct {
		file string
		rows [][]int
	}{{BlackFile, d.Black}, {WhiteFile, d.White}} {
		if len(m.rows) != n {
			return &ShapeError{File: m.file, Row: -1, Want: n, Got: len(m.rows)}
		}
		for i, row := range m.rows {
			if len(row) != n {
				return &ShapeError{File: m.file, Row: i, Want: n, Got: len(row)}
			}
		}
	}
	return nil
}

// Save creates dir if needed and overwrites the three files in it.
func Save(dir string, d Data) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := writeCSV(filepath.Join(dir, BlackFile), intRows(d.Black)); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, WhiteFile), intRows(d.White)); err != nil {
		return err
	}
	return writeCSV(filepath.Join(dir, HeaderFile), [][]string{d.Header})
}

// Load reads the three files back from dir.
func Load(dir string) (Data, error) {
	var d Data

	headerRows, err := readCSV(filepath.Join(dir, HeaderFile))
	if err != nil {
		return d, err
	}
	if len(headerRows) == 0 {
		return d, fmt.Errorf("%s: no contestant names", HeaderFile)
	}
	d.Header = headerRows[0]

	if d.Black, err = readMatrix(filepath.Join(dir, BlackFile)); err != nil {
		return d, err
	}
	if d.White, err = readMatrix(filepath.Join(dir, WhiteFile)); err != nil {
		return d, err
	}

	return d, d.Validate()
}

func writeCSV(path string, rows [][]string) error {
	err := fileutil.WriteAtomic(path, 0644, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		return cw.WriteAll(rows)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // shape is checked against the header instead
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

func readMatrix(path string) ([][]int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	m := make([][]int, len(rows))
	for i, row := range rows {
		m[i] = make([]int, len(row))
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%s: row %d column %d: %w", filepath.Base(path), i+1, j+1, err)
			}
			m[i][j] = v
		}
	}
	return m, nil
}

func intRows(m [][]int) [][]string {
	rows := make([][]string, len(m))
	for i, row := range m {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = strconv.Itoa(v)
		}
	}
	return rows
}
