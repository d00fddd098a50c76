package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wildfunctions/recursive_art/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		// cobra has already written the error to stderr
		os.Exit(1)
	}
}
