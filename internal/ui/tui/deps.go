package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/ports"
)

// Job runs one render, reporting progress through p.
type Job func(ctx context.Context, p ports.ProgressReporter) (domain.RunRecord, error)

type Deps struct {
	Logger *slog.Logger
	Debug  bool

	// Input and Output default to the process terminal.
	Input  io.Reader
	Output io.Writer
}
