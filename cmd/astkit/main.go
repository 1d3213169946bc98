// Package main provides the astkit command line tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/astkit-labs/astkit/internal/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals so watch mode shuts down cleanly
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
