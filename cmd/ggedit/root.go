package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/config"
)

const version = "0.1.0"

// app carries the loaded configuration to the subcommands.
type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{cfg: config.Default()}
	cmd := &cobra.Command{
		Use:           "ggedit",
		Short:         "Canvas text editing and viewport toolkit",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (.toml, .yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, off")

	cmd.AddCommand(
		newWrapCommand(a),
		newZoomCommand(),
		newFitCommand(a),
		newDeviceCommand(),
		newEditCommand(a),
		newConfigCommand(a),
	)
	return cmd
}

func (a *app) load() error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
		if _, err := a.cfg.LogLevel(); err != nil {
			return err
		}
	}
	if l := a.cfg.Logger(os.Stderr); l != nil {
		ggedit.SetLogger(l)
	}
	return nil
}

// parseSize parses "WxH".
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	if w, err = strconv.ParseFloat(ws, 64); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if h, err = strconv.ParseFloat(hs, 64); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	return w, h, nil
}
