package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/infra/config"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "starfield.yaml"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
	assertFileExists(t, filepath.Join(tmp, "runs"))
	assertFileExists(t, filepath.Join(tmp, ".starfield", "logs"))
}

func TestInitializer_Init_TemplateLoadsAsDefaults(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := config.Load(tmp)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected template to match defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	starfieldYAML := filepath.Join(tmp, "starfield.yaml")
	if err := os.WriteFile(starfieldYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing starfield.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(starfieldYAML)
	if err != nil {
		t.Fatalf("read starfield.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected starfield.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(starfieldYAML)
	if err != nil {
		t.Fatalf("read starfield.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "starfield:") {
		t.Fatalf("expected starfield.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
