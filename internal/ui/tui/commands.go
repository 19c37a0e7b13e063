package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/ports"
)

// chanReporter forwards pipeline progress to the UI goroutine.
type chanReporter struct {
	ctx context.Context
	ch  chan<- tea.Msg
}

var _ ports.ProgressReporter = chanReporter{}

func (r chanReporter) Phase(p domain.Phase) {
	r.send(phaseMsg{phase: p})
}

func (r chanReporter) Objects(done, total int) {
	r.send(objectsMsg{done: done, total: total})
}

func (r chanReporter) send(msg tea.Msg) {
	select {
	case r.ch <- msg:
	case <-r.ctx.Done():
	}
}

func listenRender(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return renderDoneMsg{err: errors.New("render channel closed")}
		}
		return msg
	}
}

// startRenderAsync runs job on its own goroutine. The returned channel carries
// progress messages followed by exactly one renderDoneMsg, then closes.
func startRenderAsync(ctx context.Context, job Job, log *slog.Logger) (chan tea.Msg, tea.Cmd) {
	ch := make(chan tea.Msg, 64)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		rec, err := job(ctx, chanReporter{ctx: ctx, ch: ch})
		if err != nil {
			log.Error("tui.render.failed", "err", err)
		}

		// The final message must not be dropped even after cancellation.
		ch <- renderDoneMsg{rec: rec, err: err}
	}()

	return ch, listenRender(ch)
}

// waitDone drains ch until the render finishes.
func waitDone(ch <-chan tea.Msg) renderDoneMsg {
	for msg := range ch {
		if done, ok := msg.(renderDoneMsg); ok {
			return done
		}
	}
	return renderDoneMsg{err: errors.New("render channel closed")}
}
