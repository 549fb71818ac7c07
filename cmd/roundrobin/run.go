package main

import (
	"os"

	"github.com/lox/roundrobin/cmd/roundrobin/shared"
	"github.com/lox/roundrobin/internal/tournament"
	"github.com/lox/roundrobin/internal/tournamentdata"
)

// RunCmd plays the tournament
type RunCmd struct {
	ConfigFlags

	DryRun bool `kong:"help='Print the schedule without running the agent'"`
	Debug  bool `kong:"help='Enable debug logging'"`
}

func (c *RunCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := c.load()
	if err != nil {
		return err
	}

	runner := tournament.NewRunner(tournament.Config{
		Binary:      cfg.Binary,
		Rounds:      cfg.RoundCount(),
		Flag:        cfg.Flag,
		Contestants: cfg.Roster(),
		Progress:    os.Stdout,
		Logger:      logger,
	})

	if c.DryRun {
		runner.PrintSchedule()
		return nil
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	data := tournamentdata.Data{
		Header: results.Contestants.Names(),
		Black:  results.Black.Rows(),
		White:  results.White.Rows(),
	}
	if err := tournamentdata.Save(cfg.DataDir, data); err != nil {
		return err
	}

	logger.Info().
		Str("run_id", runner.RunID()).
		Str("dir", cfg.DataDir).
		Int("contestants", data.Size()).
		Msg("Saved tournament data")
	return nil
}
