package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/lox/roundrobin/cmd/roundrobin/shared"
	"github.com/lox/roundrobin/internal/config"
	"github.com/lox/roundrobin/internal/heatmap"
	"github.com/lox/roundrobin/internal/tournamentdata"
	"github.com/lox/roundrobin/internal/viewer"
)

// PlotCmd renders saved tournament data
type PlotCmd struct {
	Config  string `kong:"default='tournament.hcl',type='path',help='Tournament HCL file whose data_dir is plotted'"`
	DataDir string `kong:"help='Directory holding black.csv, white.csv and header.csv, overrides the config file'"`
	Static  bool   `kong:"help='Print the heatmap once instead of opening the viewer'"`
	SVG     string `kong:"name='svg',type='path',help='Write the heatmap as SVG to this file and exit'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *PlotCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	dir, err := c.dataDir()
	if err != nil {
		return err
	}

	data, err := tournamentdata.Load(dir)
	if err != nil {
		return err
	}

	grid, err := heatmap.New(data.Header, data.Black, data.White)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("dir", dir).
		Int("contestants", grid.Size()).
		Msg("Loaded tournament data")

	if c.SVG != "" {
		if err := heatmap.SaveSVG(c.SVG, grid); err != nil {
			return err
		}
		logger.Info().Str("path", c.SVG).Msg("Wrote heatmap")
		return nil
	}

	renderer := lipgloss.NewRenderer(os.Stdout)
	renderer.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())

	if c.Static || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(heatmap.RenderTerminal(grid, renderer))
		return nil
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	return viewer.Run(ctx, grid, viewer.Options{
		SavePath: filepath.Join(dir, "heatmap.svg"),
		Logger:   shared.SetupViewerLogger(c.Debug),
		Renderer: renderer,
	})
}

// dataDir returns the --data-dir override, or the data_dir the run command
// wrote to according to the config file.
func (c *PlotCmd) dataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	cfg, err := config.Load(c.Config)
	if err != nil {
		return "", err
	}
	if cfg.DataDir == "" {
		return tournamentdata.DefaultDir, nil
	}
	return cfg.DataDir, nil
}
