package main

import (
	"github.com/lox/roundrobin/internal/config"
)

// ConfigFlags are shared by the commands that read the tournament file.
type ConfigFlags struct {
	Config  string `kong:"default='tournament.hcl',type='path',help='Tournament HCL file (defaults apply when missing)'"`
	Binary  string `kong:"help='Agent binary, overrides the config file'"`
	Rounds  *int   `kong:"help='Games per pairing, overrides the config file'"`
	DataDir string `kong:"help='Directory for black.csv, white.csv and header.csv, overrides the config file'"`
}

// load reads the config file and applies command-line overrides.
func (f ConfigFlags) load() (*config.Tournament, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}

	if f.Binary != "" {
		cfg.Binary = f.Binary
	}
	if f.Rounds != nil {
		cfg.Rounds = f.Rounds
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
