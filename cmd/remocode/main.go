package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/aki/remocode/internal/cli/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
