package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggedit/text"
)

func newWrapCommand(a *app) *cobra.Command {
	var (
		width    float64
		measurer string
		size     float64
	)
	cmd := &cobra.Command{
		Use:   "wrap [text]",
		Short: "Wrap text and print the line table",
		Long: `Wrap text at a maximum width and print one row per line: the rune
range, the measured width and the line text. Without an argument the text
is read from standard input.

Examples:
  ggedit wrap --width 72 "The quick brown fox"
  ggedit wrap --measurer fixed --width 80 < notes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s string
			if len(args) == 1 {
				s = args[0]
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				s = strings.TrimRight(string(b), "\n")
			}

			cfg := a.cfg
			if measurer != "" {
				cfg.Text.Measurer = measurer
			}
			if size > 0 {
				cfg.Text.Size = size
			}
			m, err := cfg.Measurer(1)
			if err != nil {
				return err
			}
			style := cfg.Style()
			flow := text.NewFlow(m, style)
			lines := flow.Wrap(s, width)
			w, h := text.LinesBounds(lines, width, style)

			out := cmd.OutOrStdout()
			for i, ln := range lines {
				_, _ = fmt.Fprintf(out, "%3d [%d,%d) %7.2f  %s\n", i, ln.Start, ln.End, ln.Width, ln.Text)
			}
			_, _ = fmt.Fprintf(out, "lines=%d bounds=%.2fx%.2f\n", len(lines), w, h)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&width, "width", "w", 240, "maximum line width in canvas pixels")
	cmd.Flags().StringVarP(&measurer, "measurer", "m", "", "measurer: face, shaping, cell, fixed")
	cmd.Flags().Float64Var(&size, "size", 0, "font size (default from config)")
	return cmd
}
