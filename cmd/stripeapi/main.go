package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/andrewpillar/stripeapi/cmd/stripeapi/cli"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Execute(ctx, version)
	stop()

	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
