// Command algomind runs the revision scheduling HTTP server.
//
// Configuration comes from a YAML file (CONFIG_PATH, default ./config.yaml)
// overridden by environment variables.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sambangiadharsh/algomind/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
