package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggedit/device"
	"github.com/gogpu/ggedit/viewport"
)

func newFitCommand(a *app) *cobra.Command {
	var (
		content, container string
		padding            float64
	)
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit content into a container and print the camera",
		Long: `Compute the zoom and pan that fit content into a container, the way
the viewport does on Ctrl+1.

Example:
  ggedit fit --content 1600x1200 --container 1000x800 --padding 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cw, ch, err := parseSize(content)
			if err != nil {
				return err
			}
			vw, vh, err := parseSize(container)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("padding") {
				padding = a.cfg.Viewport.FitPadding
			}
			c := viewport.New(append(a.cfg.ViewportOptions(),
				viewport.WithContentSize(cw, ch),
				viewport.WithContainerSize(vw, vh),
			)...)
			z := c.FitToContainer(padding)
			scale := device.FitScale(device.Size{Width: cw, Height: ch}, device.Size{Width: vw, Height: vh}, padding)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "scale %.4f\n", scale)
			_, _ = fmt.Fprintf(out, "zoom %.2f\n", z)
			_, _ = fmt.Fprintf(out, "pan %.2f,%.2f\n", c.Pan().X, c.Pan().Y)
			return nil
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "content size WIDTHxHEIGHT")
	cmd.Flags().StringVar(&container, "container", "", "container size WIDTHxHEIGHT")
	cmd.Flags().Float64VarP(&padding, "padding", "p", viewport.DefaultFitPadding, "padding on every side")
	_ = cmd.MarkFlagRequired("content")
	_ = cmd.MarkFlagRequired("container")
	return cmd
}
