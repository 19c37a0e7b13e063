// Package artifactfs stores render artifacts on a go-billy filesystem.
//
// Writes go to a temporary file next to the destination and are renamed into
// place on Close, so a failed run never leaves a truncated artifact behind.
package artifactfs

import (
	"io"
	"path"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/ports"
)

// Store is rooted at Filesystem; artifact names are slash-separated paths
// relative to it.
type Store struct {
	Filesystem billy.Filesystem
}

func New(fs billy.Filesystem) *Store {
	return &Store{Filesystem: fs}
}

var _ ports.ArtifactStore = (*Store)(nil)

func (s *Store) Create(name string) (ports.Artifact, error) {
	dir := path.Dir(name)
	if dir != "." {
		if err := s.Filesystem.MkdirAll(dir, 0o755); err != nil {
			return nil, &domain.OpError{
				Op:   "artifactfs.mkdir",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
	}

	temp, err := s.Filesystem.TempFile(dir, "."+path.Base(name)+".tmp")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "artifactfs.create",
			Kind: domain.KindExecution,
			Path: name,
			Err:  err,
		}
	}

	return &pendingFile{fs: s.Filesystem, file: temp, name: name}, nil
}

func (s *Store) Open(name string) (io.ReadCloser, error) {
	f, err := s.Filesystem.Open(name)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "artifactfs.open",
			Kind: domain.KindNotFound,
			Path: name,
			Err:  err,
		}
	}
	return f, nil
}

// pendingFile is a temp file that becomes name on a successful Close.
type pendingFile struct {
	fs     billy.Filesystem
	file   billy.File
	name   string
	failed bool
	closed bool
}

func (p *pendingFile) Write(b []byte) (int, error) {
	n, err := p.file.Write(b)
	if err != nil {
		p.failed = true
	}
	return n, err
}

// Close commits the file. If any write failed the temp file is discarded.
func (p *pendingFile) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	err := p.file.Close()
	if err != nil || p.failed {
		err = multierr.Append(err, p.fs.Remove(p.file.Name()))
		if err == nil {
			err = errDiscarded
		}
		return &domain.OpError{
			Op:   "artifactfs.close",
			Kind: domain.KindExecution,
			Path: p.name,
			Err:  err,
		}
	}

	if err := p.fs.Rename(p.file.Name(), p.name); err != nil {
		return &domain.OpError{
			Op:   "artifactfs.rename",
			Kind: domain.KindExecution,
			Path: p.name,
			Err:  multierr.Append(err, p.fs.Remove(p.file.Name())),
		}
	}
	return nil
}

// Discard drops the temp file. It is a no-op after Close.
func (p *pendingFile) Discard() error {
	if p.closed {
		return nil
	}
	p.closed = true

	err := multierr.Append(p.file.Close(), p.fs.Remove(p.file.Name()))
	if err != nil {
		return &domain.OpError{
			Op:   "artifactfs.discard",
			Kind: domain.KindExecution,
			Path: p.name,
			Err:  err,
		}
	}
	return nil
}
