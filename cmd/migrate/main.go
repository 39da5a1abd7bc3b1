// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [--dsn=DSN] up|down|status
//
// The DSN defaults to DATABASE_DSN. "down" rolls back one migration.
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/weektrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/weektrack-backend/internal/app"
	"github.com/heartmarshall/weektrack-backend/internal/config"
)

func main() {
	var (
		dsn     string
		timeout time.Duration
	)

	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&dsn, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string")
	flagSet.DurationVar(&timeout, "timeout", 5*time.Minute, "give up after this long")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if flagSet.NArg() != 1 || dsn == "" {
		fmt.Fprintln(os.Stderr, "Usage: migrate [--dsn=DSN] up|down|status")
		os.Exit(2)
	}

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := run(ctx, dsn, flagSet.Arg(0), logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, command string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		return m.Up(ctx, logger)
	case "down":
		return m.Down(ctx, logger)
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%05d  %-8s  %s  %s\n", s.Source.Version, s.State, applied, s.Source.Path)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
