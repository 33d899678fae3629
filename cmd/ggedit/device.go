package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggedit/device"
)

func newDeviceCommand() *cobra.Command {
	var ratio float64
	cmd := &cobra.Command{
		Use:   "device WIDTHxHEIGHT",
		Short: "Classify a viewport size",
		Long: `Print the device class, orientation, renderer pixel size and the fit
padding recommended for a viewport.

Example:
  ggedit device 800x1200 --ratio 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := parseSize(args[0])
			if err != nil {
				return err
			}
			info := device.Describe(w, h, ratio)
			pw, ph := info.DevicePixels()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "class %s\n", info.Class)
			_, _ = fmt.Fprintf(out, "orientation %s\n", info.Orientation)
			_, _ = fmt.Fprintf(out, "pixels %dx%d\n", pw, ph)
			_, _ = fmt.Fprintf(out, "padding %.0f\n", device.RecommendedPadding(info.Class))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&ratio, "ratio", "r", 1, "device pixel ratio")
	return cmd
}
