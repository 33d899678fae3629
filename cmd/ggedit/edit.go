package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/config"
	"github.com/gogpu/ggedit/integration/termcanvas"
)

func newEditCommand(a *app) *cobra.Command {
	var (
		width int
		write bool
	)
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit text on a zoomable terminal canvas",
		Long: `Open a terminal canvas with one text area holding the file, if given.

Keys while no area is being edited:
  + - 0 1   zoom in, zoom out, reset, fit
  arrows    pan          g  toggle grid
  h         grab tool    n  create mode (click to add an area)
  q         quit
Ctrl+Q quits at any time. Escape leaves the active area.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path, content string
			if len(args) == 1 {
				path = args[0]
				b, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				content = string(b)
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			opts := []termcanvas.Option{
				termcanvas.WithEditorOptions(a.cfg.EditorOptions()...),
				termcanvas.WithViewportOptions(a.cfg.ViewportOptions()...),
				termcanvas.WithResizeOptions(a.cfg.ResizeOptions()...),
			}
			// Pixel measurers do not fit a cell grid; only a configured cell
			// measurer replaces the default one.
			if a.cfg.Text.Measurer == config.MeasurerCell {
				m, err := a.cfg.Measurer(1)
				if err != nil {
					return err
				}
				opts = append(opts, termcanvas.WithMeasurer(m))
			}
			h, err := termcanvas.New(screen, opts...)
			if err != nil {
				return err
			}
			area := h.AddArea(ggedit.Rect{X: 2, Y: 1, Width: float64(width), Height: 3}, content)
			runErr := h.Run(cmd.Context())
			h.Close()
			if runErr != nil {
				return runErr
			}
			if write && path != "" {
				if err := os.WriteFile(path, []byte(area.Text()), 0o644); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d runes)\n", path, area.Len())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 60, "area width in cells")
	cmd.Flags().BoolVar(&write, "write", false, "write the text back to the file on exit")
	return cmd
}
