// Command mockagent stands in for a real game-playing agent binary. It
// accepts the same positional arguments, plays simulated games whose
// outcome is biased by agent id, and ends its output with the black and
// white win counts the tournament runner reads.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/roundrobin/internal/randutil"
)

type CLI struct {
	Black   int   `arg:"" help:"Agent id playing black"`
	White   int   `arg:"" help:"Agent id playing white"`
	Rounds  int   `arg:"" help:"Number of games to play"`
	Verbose int   `arg:"" optional:"" default:"0" help:"Print one line per game when non-zero"`
	Seed    int64 `help:"Base seed; the same seed and pairing always produce the same result" default:"1"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("mockagent"),
		kong.Description("Deterministic stand-in for a game-playing agent binary"),
		kong.UsageOnError(),
	)

	play(os.Stdout, cli)
}

// strength grows with the agent id so higher ids tend to win.
func strength(id int) float64 {
	return 1 + float64(max(id, 0))
}

func play(w io.Writer, cli CLI) {
	rng := randutil.ForPairing(cli.Seed, cli.Black, cli.White)

	sb, sw := strength(cli.Black), strength(cli.White)
	pBlack := sb / (sb + sw)

	var blackWins, whiteWins int
	for i := range cli.Rounds {
		roll := rng.Float64()
		switch {
		case roll < 0.05:
			if cli.Verbose != 0 {
				fmt.Fprintf(w, "game %d: draw\n", i+1)
			}
		case roll < 0.05+0.95*pBlack:
			blackWins++
			if cli.Verbose != 0 {
				fmt.Fprintf(w, "game %d: black\n", i+1)
			}
		default:
			whiteWins++
			if cli.Verbose != 0 {
				fmt.Fprintf(w, "game %d: white\n", i+1)
			}
		}
	}

	fmt.Fprintf(w, "B %d\n", blackWins)
	fmt.Fprintf(w, "W %d\n", whiteWins)
}
