package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/infra/artifactfs"
	"github.com/aalvaropc/starfield/internal/ports"
)

const defaultRunsDir = "runs"

type JSONStore struct {
	fs          billy.Filesystem
	artifacts   *artifactfs.Store
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(fs billy.Filesystem, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Runs.Dir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		fs:          fs,
		artifacts:   artifactfs.New(fs),
		runsDirName: runsDir,
		writeIndex:  false,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RunStore = (*JSONStore)(nil)

func (s *JSONStore) SaveRun(run domain.RunRecord) (string, error) {
	dir := s.runsDirName
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := run.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := run
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	base := fmt.Sprintf("%s_seed-%d", ts.Format("20060102T150405Z"), run.Seed)
	id := s.uniqueID(dir, base)
	filename := id + ".json"
	p := path.Join(dir, filename)
	toSave.ID = id

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: p,
			Err:  err,
		}
	}

	w, err := s.artifacts.Create(p)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(b); err != nil {
		_ = w.Discard()
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: p,
			Err:  err,
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

// uniqueID appends _2, _3, ... when a record with the same base already exists.
func (s *JSONStore) uniqueID(dir, base string) string {
	id := base
	for n := 2; s.exists(path.Join(dir, id+".json")); n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	return id
}

func (s *JSONStore) exists(p string) bool {
	_, err := s.fs.Stat(p)
	return err == nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, run domain.RunRecord) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Seed      uint64    `json:"seed"`
		Objects   int       `json:"objects"`
		PNG       string    `json:"png"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Seed:      run.Seed,
		Objects:   run.Objects,
		PNG:       run.PNGPath,
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := path.Join(dir, "index.jsonl")
	f, err := s.fs.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}
