// Package tournament plays every ordered pairing of a contestant roster
// through an external agent binary and collects per-side win counts.
package tournament

// Contestant is one agent entry: the identifier passed to the agent binary
// and the label used for matrix rows, columns and plots.
type Contestant struct {
	ID   int
	Name string
}

// Roster is an ordered list of contestants. Position in the roster is the
// row and column index used by every matrix built from it.
type Roster []Contestant

// Len returns the number of contestants.
func (r Roster) Len() int {
	return len(r)
}

// Names returns the contestant labels in roster order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, c := range r {
		names[i] = c.Name
	}
	return names
}

// DuplicateIDs returns identifiers used by more than one contestant, in
// order of first repetition.
func (r Roster) DuplicateIDs() []int {
	seen := make(map[int]int, len(r))
	var dups []int
	for _, c := range r {
		seen[c.ID]++
		if seen[c.ID] == 2 {
			dups = append(dups, c.ID)
		}
	}
	return dups
}

// DefaultRoster is the reversi lineup the tournament has always been run
// with. The three MiniMax entries share agent id 14.
func DefaultRoster() Roster {
	return Roster{
		{ID: 1, Name: "Random"},
		{ID: 2, Name: "Greedy"},
		{ID: 3, Name: "Generous"},
		{ID: 4, Name: "Sampling greedy (10)"},
		{ID: 5, Name: "Sampling greedy (100)"},
		{ID: 7, Name: "UCT (10)"},
		{ID: 8, Name: "UCT (100)"},
		{ID: 10, Name: "UCB1 (10)"},
		{ID: 11, Name: "UCB1 (100)"},
		{ID: 14, Name: "MiniMax (3)"},
		{ID: 14, Name: "MiniMax (4)"},
		{ID: 14, Name: "MiniMax (5)"},
	}
}
