package ports

import "io"

// Artifact is a pending write. Its content becomes visible under the
// artifact name only when Close succeeds; Discard drops it instead.
type Artifact interface {
	io.WriteCloser
	Discard() error
}

// ArtifactStore persists render artifacts (SVG, PNG) by name.
type ArtifactStore interface {
	Create(name string) (Artifact, error)
	Open(name string) (io.ReadCloser, error)
}
