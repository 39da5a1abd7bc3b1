// Command server runs the weektrack HTTP API.
//
// Usage:
//
//	server
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; see config.example.yaml. The process stops gracefully on
// SIGINT or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/weektrack-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
