// Package config loads tournament settings from an HCL file.
//
//	binary   = "./reversi"
//	rounds   = 100
//	data_dir = "tournament_data"
//
//	contestant "Random" {
//	  id = 1
//	}
//
//	contestant "Sampling greedy (1000)" {
//	  id       = 6
//	  disabled = true
//	}
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/roundrobin/internal/tournament"
	"github.com/lox/roundrobin/internal/tournamentdata"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "tournament.hcl"

// Tournament is the complete tournament configuration
type Tournament struct {
	Binary      string            `hcl:"binary,optional"`
	Rounds      *int              `hcl:"rounds,optional"`
	Flag        string            `hcl:"flag,optional"`
	DataDir     string            `hcl:"data_dir,optional"`
	Contestants []ContestantBlock `hcl:"contestant,block"`
}

// ContestantBlock declares one agent entry; block order is roster order.
type ContestantBlock struct {
	Name     string `hcl:"name,label"`
	ID       int    `hcl:"id"`
	Disabled bool   `hcl:"disabled,optional"`
}

// Default returns the configuration the tournament ran with before it had a
// config file.
func Default() *Tournament {
	rounds := tournament.DefaultRounds
	cfg := &Tournament{
		Binary:  tournament.DefaultBinary,
		Rounds:  &rounds,
		Flag:    tournament.DefaultFlag,
		DataDir: tournamentdata.DefaultDir,
	}
	for _, c := range tournament.DefaultRoster() {
		cfg.Contestants = append(cfg.Contestants, ContestantBlock{Name: c.Name, ID: c.ID})
	}
	return cfg
}

// Load reads an HCL file. A missing file yields the defaults.
func Load(filename string) (*Tournament, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for anything unset.
func Parse(src []byte, filename string) (*Tournament, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Tournament
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Binary == "" {
		cfg.Binary = defaults.Binary
	}
	if cfg.Rounds == nil {
		cfg.Rounds = defaults.Rounds
	}
	if cfg.Flag == "" {
		cfg.Flag = defaults.Flag
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if len(cfg.Contestants) == 0 {
		cfg.Contestants = defaults.Contestants
	}

	return &cfg, nil
}

// Validate checks the configuration can drive a tournament.
func (t *Tournament) Validate() error {
	if t.Binary == "" {
		return fmt.Errorf("binary must be set")
	}
	if t.Rounds == nil || *t.Rounds < 0 {
		return fmt.Errorf("rounds must be zero or positive")
	}
	if t.DataDir == "" {
		return fmt.Errorf("data_dir must be set")
	}

	for _, c := range t.Contestants {
		if c.Name == "" {
			return fmt.Errorf("contestant %d: name must not be empty", c.ID)
		}
	}
	if len(t.Roster()) == 0 {
		return fmt.Errorf("at least one enabled contestant must be configured")
	}

	return nil
}

// Roster returns the enabled contestants in file order.
func (t *Tournament) Roster() tournament.Roster {
	var roster tournament.Roster
	for _, c := range t.Contestants {
		if c.Disabled {
			continue
		}
		roster = append(roster, tournament.Contestant{ID: c.ID, Name: c.Name})
	}
	return roster
}

// RoundCount returns the configured number of rounds per pairing.
func (t *Tournament) RoundCount() int {
	if t.Rounds == nil {
		return tournament.DefaultRounds
	}
	return *t.Rounds
}
