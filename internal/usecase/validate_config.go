package usecase

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/starfield/internal/domain"
)

// maxDimension bounds each canvas side so the RGBA buffer stays below 1 GiB.
const maxDimension = 16384

type ValidateConfig struct{}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{}
}

// Execute checks a merged config without generating anything. It reports the
// first problem found.
func (uc *ValidateConfig) Execute(cfg domain.Config) error {
	if err := checkDimension("canvas.width", cfg.Canvas.Width); err != nil {
		return err
	}
	if err := checkDimension("canvas.height", cfg.Canvas.Height); err != nil {
		return err
	}
	if cfg.Objects <= 0 {
		return invalidConfig("objects", fmt.Sprintf("must be > 0, got %d", cfg.Objects))
	}

	// Placeholders are checked with a sample seed; the real one is only known
	// when rendering starts.
	out, err := resolveOutputs(cfg, 0)
	if err != nil {
		return err
	}
	svg, err := checkOutputPath("output.svg", out.SVG)
	if err != nil {
		return err
	}
	png, err := checkOutputPath("output.png", out.PNG)
	if err != nil {
		return err
	}
	if svg == png {
		return invalidConfig("output", fmt.Sprintf("svg and png paths must differ (both %q)", svg))
	}

	if cfg.Runs.Enabled {
		if _, err := checkOutputPath("runs.dir", cfg.Runs.Dir); err != nil {
			return err
		}
	}

	switch cfg.PNG.Compression {
	case domain.PNGCompressionDefault,
		domain.PNGCompressionNone,
		domain.PNGCompressionSpeed,
		domain.PNGCompressionBest:
	default:
		return invalidConfig("png.compression", fmt.Sprintf("unsupported level %q", cfg.PNG.Compression))
	}

	return nil
}

func checkDimension(field string, v int) error {
	if v <= 0 || v > maxDimension {
		return invalidConfig(field, fmt.Sprintf("must be in 1..%d, got %d", maxDimension, v))
	}
	return nil
}

// checkOutputPath requires a relative path that stays inside the workspace
// and returns it in clean slash form.
func checkOutputPath(field, p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", invalidConfig(field, "must not be empty")
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return "", invalidConfig(field, fmt.Sprintf("must be relative to the workspace, got %q", p))
	}
	clean := path.Clean(filepath.ToSlash(p))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", invalidConfig(field, fmt.Sprintf("must stay inside the workspace, got %q", p))
	}
	return clean, nil
}

func invalidConfig(field, msg string) error {
	return &domain.OpError{
		Op:   "config.validate",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
