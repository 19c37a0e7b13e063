package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/starfield/internal/domain"
)

// MapConfig applies the parsed file on top of base.
func MapConfig(path string, base domain.Config, y YAMLConfig) (domain.Config, error) {
	cfg := base

	if y.Canvas.Width != nil {
		cfg.Canvas.Width = *y.Canvas.Width
	}
	if y.Canvas.Height != nil {
		cfg.Canvas.Height = *y.Canvas.Height
	}
	if y.Objects != nil {
		cfg.Objects = *y.Objects
	}
	if y.Seed != nil {
		seed := *y.Seed
		cfg.Seed = &seed
	}
	if s := strings.TrimSpace(y.Output.SVG); s != "" {
		cfg.Output.SVG = s
	}
	if s := strings.TrimSpace(y.Output.PNG); s != "" {
		cfg.Output.PNG = s
	}
	if y.Runs.Enabled != nil {
		cfg.Runs.Enabled = *y.Runs.Enabled
	}
	if s := strings.TrimSpace(y.Runs.Dir); s != "" {
		cfg.Runs.Dir = s
	}
	if s := strings.TrimSpace(y.PNG.Compression); s != "" {
		level, err := ParseCompression(s)
		if err != nil {
			return domain.Config{}, invalidField(path, "starfield.png.compression", err.Error())
		}
		cfg.PNG.Compression = level
	}

	return cfg, nil
}

func ParseCompression(s string) (domain.PNGCompression, error) {
	switch level := domain.PNGCompression(strings.ToLower(strings.TrimSpace(s))); level {
	case domain.PNGCompressionDefault,
		domain.PNGCompressionNone,
		domain.PNGCompressionSpeed,
		domain.PNGCompressionBest:
		return level, nil
	default:
		return "", fmt.Errorf("unsupported compression %q (expected default|none|speed|best)", s)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
