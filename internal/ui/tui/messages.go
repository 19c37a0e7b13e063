package tui

import "github.com/aalvaropc/starfield/internal/domain"

type phaseMsg struct {
	phase domain.Phase
}

type objectsMsg struct {
	done  int
	total int
}

type renderDoneMsg struct {
	rec domain.RunRecord
	err error
}
