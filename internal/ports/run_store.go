package ports

import "github.com/aalvaropc/starfield/internal/domain"

// RunStore persists run records for reproducibility.
type RunStore interface {
	SaveRun(run domain.RunRecord) (id string, err error)
}
