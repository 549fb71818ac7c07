package tournament

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBinary is the agent executable, relative to the working directory.
	DefaultBinary = "./reversi"
	// DefaultRounds is how many games each pairing plays.
	DefaultRounds = 100
	// DefaultFlag is the fourth positional argument passed to the agent.
	DefaultFlag = "0"
)

// Config holds everything a tournament run needs
type Config struct {
	Binary      string
	Rounds      int
	Flag        string
	Contestants Roster

	// Executor runs the agent; defaults to CommandExecutor.
	Executor Executor
	// Clock times each match; defaults to the real clock.
	Clock quartz.Clock
	// Progress receives the per-match "Now playing" lines; defaults to stdout.
	Progress io.Writer

	Logger zerolog.Logger
}

// Pairing is one scheduled invocation of the agent binary.
type Pairing struct {
	Number int // 1-based position in the schedule
	Row    int
	Col    int
	Black  Contestant
	White  Contestant
}

// Args returns the positional arguments passed to the agent for this pairing.
func (p Pairing) Args(rounds int, flag string) []string {
	return []string{
		strconv.Itoa(p.Black.ID),
		strconv.Itoa(p.White.ID),
		strconv.Itoa(rounds),
		flag,
	}
}

// Runner plays a full round-robin, one agent process at a time.
type Runner struct {
	config   Config
	executor Executor
	clock    quartz.Clock
	progress io.Writer
	logger   zerolog.Logger
	runID    string
}

// NewRunner creates a runner, filling in defaults for unset fields.
func NewRunner(config Config) *Runner {
	if config.Binary == "" {
		config.Binary = DefaultBinary
	}
	if config.Flag == "" {
		config.Flag = DefaultFlag
	}

	executor := config.Executor
	if executor == nil {
		executor = CommandExecutor{}
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	progress := config.Progress
	if progress == nil {
		progress = os.Stdout
	}

	runID := uuid.NewString()[:8]

	return &Runner{
		config:   config,
		executor: executor,
		clock:    clock,
		progress: progress,
		runID:    runID,
		logger: config.Logger.With().
			Str("component", "tournament").
			Str("run_id", runID).
			Logger(),
	}
}

// RunID identifies this runner in log output.
func (r *Runner) RunID() string {
	return r.runID
}

// Schedule lists every ordered pairing, self-pairings included, in the
// order they are played: row-major over the roster.
func (r *Runner) Schedule() []Pairing {
	roster := r.config.Contestants
	pairings := make([]Pairing, 0, roster.Len()*roster.Len())
	for i, black := range roster {
		for j, white := range roster {
			pairings = append(pairings, Pairing{
				Number: len(pairings) + 1,
				Row:    i,
				Col:    j,
				Black:  black,
				White:  white,
			})
		}
	}
	return pairings
}

// PrintSchedule writes the schedule without running anything.
func (r *Runner) PrintSchedule() {
	total := r.config.Contestants.Len() * r.config.Contestants.Len()
	for _, p := range r.Schedule() {
		args := p.Args(r.config.Rounds, r.config.Flag)
		fmt.Fprintf(r.progress, "%s: %s %s\n", r.progressLine(p, total), r.config.Binary, strings.Join(args, " "))
	}
}

// Run plays every pairing and returns the filled matrices. The first failing
// pairing aborts the run; no partial results are returned.
func (r *Runner) Run(ctx context.Context) (*Results, error) {
	roster := r.config.Contestants
	if dups := roster.DuplicateIDs(); len(dups) > 0 {
		r.logger.Warn().
			Ints("ids", dups).
			Msg("Several contestants share an agent id and will play identically")
	}

	results := NewResults(roster)
	total := roster.Len() * roster.Len()
	start := r.clock.Now()

	r.logger.Info().
		Str("binary", r.config.Binary).
		Int("contestants", roster.Len()).
		Int("matches", total).
		Int("rounds", r.config.Rounds).
		Msg("Starting tournament")

	for _, p := range r.Schedule() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outcome, err := r.play(ctx, p, total)
		if err != nil {
			return nil, err
		}
		results.Record(p.Row, p.Col, outcome)
	}

	r.logger.Info().
		Dur("elapsed", r.clock.Since(start)).
		Int("matches", total).
		Msg("Tournament complete")

	return results, nil
}

func (r *Runner) play(ctx context.Context, p Pairing, total int) (Outcome, error) {
	fmt.Fprintln(r.progress, r.progressLine(p, total))

	args := p.Args(r.config.Rounds, r.config.Flag)
	started := r.clock.Now()
	execution, err := r.executor.Execute(ctx, r.config.Binary, args)
	elapsed := r.clock.Since(started)
	if err != nil {
		return Outcome{}, &MatchError{Pairing: p, Execution: execution, Err: err}
	}

	outcome, err := ParseOutcome(execution.Stdout)
	if err != nil {
		return Outcome{}, &MatchError{Pairing: p, Execution: execution, Err: err}
	}

	if execution.ExitCode != 0 {
		r.logger.Warn().
			Int("match", p.Number).
			Int("exit_code", execution.ExitCode).
			Msg("Agent exited with non-zero status but reported a result")
	}

	r.logger.Debug().
		Int("match", p.Number).
		Str("black", p.Black.Name).
		Str("white", p.White.Name).
		Int("black_wins", outcome.BlackWins).
		Int("white_wins", outcome.WhiteWins).
		Dur("duration", elapsed).
		Msg("Match finished")

	return outcome, nil
}

func (r *Runner) progressLine(p Pairing, total int) string {
	return fmt.Sprintf("Now playing: \"%s\" vs \"%s\" (%d of %d)", p.Black.Name, p.White.Name, p.Number, total)
}
