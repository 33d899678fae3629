// Command ggedit exercises the canvas editing core from a terminal: text
// wrapping, zoom levels, fit math, device classes and an interactive
// editor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ggedit:", err)
		stop()
		os.Exit(1)
	}
}
