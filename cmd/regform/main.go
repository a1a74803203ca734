package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(newApp(os.Stdout, os.Stderr))
	cmd.Version = version
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
