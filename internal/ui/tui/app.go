package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/starfield/internal/domain"
)

var pipeline = []domain.Phase{
	domain.PhaseGenerate,
	domain.PhaseSerialize,
	domain.PhaseRasterize,
	domain.PhaseEncode,
	domain.PhaseRecord,
}

type model struct {
	theme Theme
	deps  Deps

	ch     <-chan tea.Msg
	cancel context.CancelFunc

	spin spinner.Model
	bar  progress.Model

	phase   domain.Phase
	done    int
	total   int
	started time.Time

	pending    tea.Cmd
	cancelling bool
	finished   bool
	rec        domain.RunRecord
	err        error
	toast      string
}

// Run shows progress for job until it finishes and returns its result.
// Pressing q or ctrl+c cancels the job.
func Run(ctx context.Context, deps Deps, job Job) (domain.RunRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch, listen := startRenderAsync(ctx, job, deps.Logger)
	m := newModel(deps, ch, cancel, listen)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if deps.Input != nil {
		opts = append(opts, tea.WithInput(deps.Input))
	}
	if deps.Output != nil {
		opts = append(opts, tea.WithOutput(deps.Output))
	}

	final, runErr := tea.NewProgram(wrapSafe(m, deps.Logger), opts...).Run()

	if sm, ok := final.(safeModel); ok && sm.m.finished {
		return sm.m.rec, sm.m.err
	}

	// The UI went away first: stop the job and wait for it.
	cancel()
	res := waitDone(ch)
	if res.err == nil && runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		res.err = runErr
	}
	return res.rec, res.err
}

func newModel(deps Deps, ch <-chan tea.Msg, cancel context.CancelFunc, listen tea.Cmd) model {
	t := DefaultTheme()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = t.Accent

	return model{
		theme:   t,
		deps:    deps,
		ch:      ch,
		cancel:  cancel,
		spin:    s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		pending: listen,
		started: time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.pending)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 8
		if w > 60 {
			w = 60
		}
		if w < 10 {
			w = 10
		}
		m.bar.Width = w
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if !m.cancelling {
				m.cancelling = true
				m.toast = "Cancelling…"
				if m.cancel != nil {
					m.cancel()
				}
			}
		}
		return m, nil

	case phaseMsg:
		m.phase = msg.phase
		return m, listenRender(m.ch)

	case objectsMsg:
		m.done, m.total = msg.done, msg.total
		cmd := m.bar.SetPercent(fraction(msg.done, msg.total))
		return m, tea.Batch(cmd, listenRender(m.ch))

	case renderDoneMsg:
		m.finished = true
		m.rec = msg.rec
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		if bar, ok := pm.(progress.Model); ok {
			m.bar = bar
		}
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("starfield"))
	b.WriteString("\n\n")

	for _, p := range pipeline {
		b.WriteString(m.phaseLine(p))
		b.WriteString("\n")
	}

	if m.finished {
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(m.theme.Error.Render("✗ " + userMessage(m.err)))
		} else {
			b.WriteString(m.theme.Card.Render(renderSummary(m.rec)))
		}
		return wrap.Render(b.String()) + "\n"
	}

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render(m.toast))
	}
	b.WriteString("\n")
	elapsed := time.Since(m.started).Round(time.Second)
	b.WriteString(m.theme.Help.Render(fmt.Sprintf("%s elapsed • q cancel", elapsed)))
	return wrap.Render(b.String())
}

func (m model) phaseLine(p domain.Phase) string {
	label := phaseLabel(p)
	switch {
	case m.finished && m.err == nil, phaseIndex(p) < phaseIndex(m.phase):
		return m.theme.Done.Render("✓ " + label)

	case p == m.phase && m.finished:
		return m.theme.Error.Render("✗ " + label)

	case p == m.phase:
		line := m.spin.View() + " " + label
		if p == domain.PhaseGenerate && m.total > 0 {
			line += "  " + m.bar.View() + fmt.Sprintf("  %s/%s", formatCount(m.done), formatCount(m.total))
		}
		return line

	default:
		return m.theme.Subtitle.Render("  " + label)
	}
}

func phaseIndex(p domain.Phase) int {
	if p == domain.PhaseDone {
		return len(pipeline)
	}
	for i, q := range pipeline {
		if q == p {
			return i
		}
	}
	return -1
}

func fraction(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(done) / float64(total)
}
