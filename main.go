package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mordilloSan/chroma-logger/cmd"
)

// Usage:
//
//	chroma-logger emit warn "disk at %d%%" 91
//	chroma-logger colors
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
