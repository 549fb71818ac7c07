package tournament

import (
	"fmt"
	"strconv"
	"strings"
)

// Outcome is the pair of win counts an agent binary reports for one pairing.
type Outcome struct {
	BlackWins int
	WhiteWins int
}

// ParseOutcome reads the agent's stdout. The second-to-last non-empty line
// ends with the black win count and the last non-empty line ends with the
// white win count; everything before them is ignored.
func ParseOutcome(stdout string) (Outcome, error) {
	var lines []string
	for line := range strings.SplitSeq(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return Outcome{}, fmt.Errorf("%w: expected at least 2 non-empty lines, got %d", ErrMalformedOutput, len(lines))
	}

	black, err := trailingCount(lines[len(lines)-2])
	if err != nil {
		return Outcome{}, fmt.Errorf("black wins: %w", err)
	}
	white, err := trailingCount(lines[len(lines)-1])
	if err != nil {
		return Outcome{}, fmt.Errorf("white wins: %w", err)
	}

	return Outcome{BlackWins: black, WhiteWins: white}, nil
}

func trailingCount(line string) (int, error) {
	fields := strings.Fields(line)
	last := fields[len(fields)-1]
	n, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("%w: line %q does not end with an integer", ErrMalformedOutput, line)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative count %d in line %q", ErrMalformedOutput, n, line)
	}
	return n, nil
}
