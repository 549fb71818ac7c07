package main

import (
	"fmt"

	"github.com/lox/roundrobin/cmd/roundrobin/shared"
	"github.com/lox/roundrobin/internal/tournament"
)

// ValidateCmd checks the configuration without playing any matches
type ValidateCmd struct {
	ConfigFlags

	Debug bool `kong:"help='Enable debug logging'"`
}

func (c *ValidateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := c.load()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	path, err := tournament.ValidateBinary(cfg.Binary)
	if err != nil {
		return fmt.Errorf("binary validation failed: %w", err)
	}

	roster := cfg.Roster()
	if dups := roster.DuplicateIDs(); len(dups) > 0 {
		logger.Warn().Ints("ids", dups).Msg("Several contestants share an agent id")
	}

	logger.Info().
		Str("binary", path).
		Int("contestants", roster.Len()).
		Int("matches", roster.Len()*roster.Len()).
		Int("rounds", cfg.RoundCount()).
		Msg("Configuration is valid")
	return nil
}
