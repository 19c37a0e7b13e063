package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/starfield/internal/domain"
)

// FileName is the workspace configuration file.
const FileName = "starfield.yaml"

// Load reads starfield.yaml from the workspace root and applies it over the
// defaults. A missing file is reported as KindNotFound together with the
// defaults, so callers may choose to carry on.
func Load(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, FileName))
}

func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, cfg, y.Starfield)
}
