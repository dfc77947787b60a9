package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/artpar/sloganforge/internal/shell/cli"
)

// Version information (set by build)
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.DefaultApp(Version)); err != nil {
		if !errors.Is(err, cli.ErrAborted) {
			fmt.Fprintf(os.Stderr, "sloganctl: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
