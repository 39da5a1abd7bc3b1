package app

import "log/slog"

// Set with -ldflags "-X github.com/heartmarshall/weektrack-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// buildInfo groups the link-time build stamps for the startup log line.
func buildInfo() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("time", BuildTime),
	)
}
