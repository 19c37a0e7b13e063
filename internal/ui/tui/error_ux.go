package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/starfield/internal/domain"
)

var (
	reLine  = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reField = regexp.MustCompile(`\bfield\s+([\w.]+):\s*([^:]+)`)
)

// userMessage turns a pipeline error into a one-line message. Details stay
// in the log file.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "Cancelled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Timed out"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found (run starfield init)"
			}
			if strings.Contains(oe.Op, "config") {
				return "Config file not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if field, msg := extractField(err.Error()); field != "" {
				return "Invalid " + field + ": " + msg
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindSerialize:
			return "Could not write SVG" + pathSuffix(oe.Path)

		case domain.KindParse:
			return "SVG could not be parsed" + pathSuffix(oe.Path)

		case domain.KindRasterize:
			return "Rasterization failed (see logs)"

		case domain.KindImageWrite:
			return "Could not write PNG" + pathSuffix(oe.Path)

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func pathSuffix(p string) string {
	if strings.TrimSpace(p) == "" {
		return ""
	}
	return " " + p
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) (field, msg string) {
	m := reField.FindStringSubmatch(s)
	if len(m) == 3 {
		return m[1], strings.TrimSpace(m[2])
	}
	return "", ""
}
