package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/infra/config"
	"github.com/aalvaropc/starfield/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	// configPath is empty when no config file was found and defaults apply.
	configPath string

	fs billy.Filesystem
}

// loadWorkspace resolves the workspace root and its configuration. Without a
// starfield.yaml the current directory and the defaults are used.
func loadWorkspace(workspaceFlag, configFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, cfgPath, err := loadConfig(root, configFlag)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:       root,
		cfg:        cfg,
		configPath: cfgPath,
		fs:         osfs.New(root),
	}, nil
}

func loadConfig(root, configFlag string) (domain.Config, string, error) {
	if p := strings.TrimSpace(configFlag); p != "" {
		if !filepath.IsAbs(p) {
			wd, err := os.Getwd()
			if err != nil {
				return domain.Config{}, "", fmt.Errorf("get working directory: %w", err)
			}
			p = filepath.Join(wd, p)
		}
		cfg, err := config.LoadFile(p)
		return cfg, p, err
	}

	cfg, err := config.Load(root)
	if domain.IsKind(err, domain.KindNotFound) {
		return domain.DefaultConfig(), "", nil
	}
	if err != nil {
		return domain.Config{}, "", err
	}
	return cfg, filepath.Join(root, config.FileName), nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	wd, _ = filepath.Abs(wd)

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, nil
		}
		return "", err
	}
	return root, nil
}
