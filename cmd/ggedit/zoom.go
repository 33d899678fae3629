package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggedit/zoom"
)

func newZoomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zoom [level]",
		Short: "List zoom levels or snap a level to the table",
		Long: `Without an argument, list the zoom table. With a level, print where it
snaps and its neighbours.

Examples:
  ggedit zoom
  ggedit zoom 1.3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for i, l := range zoom.Levels() {
					_, _ = fmt.Fprintf(out, "%2d  %.2f  %s\n", i, l, zoom.Percent(l))
				}
				return nil
			}
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("level %q: %w", args[0], err)
			}
			s := zoom.Snap(x)
			_, _ = fmt.Fprintf(out, "snap %.2f (%s) index %d\n", s, zoom.Percent(s), zoom.Index(x))
			_, _ = fmt.Fprintf(out, "next %.2f\n", zoom.Next(x))
			_, _ = fmt.Fprintf(out, "previous %.2f\n", zoom.Previous(x))
			return nil
		},
	}
}
