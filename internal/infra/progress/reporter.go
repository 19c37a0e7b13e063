// Package progress provides non-interactive ProgressReporter implementations.
package progress

import (
	"log/slog"
	"time"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/ports"
)

// Nop discards progress.
type Nop struct{}

func (Nop) Phase(domain.Phase) {}
func (Nop) Objects(_, _ int) {}

var _ ports.ProgressReporter = Nop{}

// LogReporter writes phase transitions and every tenth of generation
// progress to a slog logger.
type LogReporter struct {
	log       *slog.Logger
	now       func() time.Time
	phase     domain.Phase
	since     time.Time
	lastTenth int
}

func NewLogReporter(log *slog.Logger) *LogReporter {
	if log == nil {
		log = slog.Default()
	}
	return &LogReporter{log: log, now: time.Now, lastTenth: -1}
}

var _ ports.ProgressReporter = (*LogReporter)(nil)

func (r *LogReporter) Phase(p domain.Phase) {
	now := r.now()
	if r.phase != "" {
		r.log.Info("phase.done", "phase", string(r.phase), "elapsed_ms", now.Sub(r.since).Milliseconds())
	}
	r.phase = p
	r.since = now
	if p != domain.PhaseDone {
		r.log.Info("phase.start", "phase", string(p))
	}
}

func (r *LogReporter) Objects(done, total int) {
	if total <= 0 {
		return
	}
	tenth := done * 10 / total
	if tenth == r.lastTenth {
		return
	}
	r.lastTenth = tenth
	r.log.Info("generate.progress", "done", done, "total", total, "percent", tenth*10)
}
