package tournament

// Matrix is a square table of win counts indexed [black][white].
type Matrix [][]int

// NewMatrix allocates an n×n zero matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

// Size returns the number of rows.
func (m Matrix) Size() int {
	return len(m)
}

// IsSquare reports whether every row is as long as the matrix is tall.
func (m Matrix) IsSquare() bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return true
}

// Rows exposes the matrix as plain nested slices.
func (m Matrix) Rows() [][]int {
	return [][]int(m)
}

// Results holds everything a finished tournament produced.
type Results struct {
	Contestants Roster
	Black       Matrix
	White       Matrix
}

// NewResults allocates empty matrices sized to the roster.
func NewResults(roster Roster) *Results {
	return &Results{
		Contestants: roster,
		Black:       NewMatrix(roster.Len()),
		White:       NewMatrix(roster.Len()),
	}
}

// Record stores the outcome of the pairing at row, col.
func (r *Results) Record(row, col int, o Outcome) {
	r.Black[row][col] = o.BlackWins
	r.White[row][col] = o.WhiteWins
}
