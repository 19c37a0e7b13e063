package ports

import "github.com/aalvaropc/starfield/internal/domain"

// ProgressReporter receives pipeline progress. Calls come from the goroutine
// running the pipeline.
type ProgressReporter interface {
	Phase(p domain.Phase)
	Objects(done, total int)
}
