package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/starfield/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func phaseLabel(p domain.Phase) string {
	switch p {
	case domain.PhaseGenerate:
		return "Generating scene"
	case domain.PhaseSerialize:
		return "Writing SVG"
	case domain.PhaseRasterize:
		return "Rasterizing"
	case domain.PhaseEncode:
		return "Writing PNG"
	case domain.PhaseRecord:
		return "Saving run record"
	case domain.PhaseDone:
		return "Done"
	default:
		return string(p)
	}
}

// formatCount renders n with thousands separators: 110000 -> 110,000.
func formatCount(n int) string {
	if n < 0 {
		return "-" + formatCount(-n)
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}

func renderSummary(rec domain.RunRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Seed:    %d\n", rec.Seed)
	fmt.Fprintf(&b, "Canvas:  %dx%d\n", rec.Width, rec.Height)
	fmt.Fprintf(&b, "Objects: %s (%s stars, %s stretchy, %s swirls)\n",
		formatCount(rec.Stats.Objects),
		formatCount(rec.Stats.Stars),
		formatCount(rec.Stats.Stretchy),
		formatCount(rec.Stats.Swirls),
	)
	fmt.Fprintf(&b, "Circles: %s\n", formatCount(rec.Stats.Primitives))
	fmt.Fprintf(&b, "Timing:  generate %dms, render %dms\n", rec.GenerateMS, rec.RenderMS)
	fmt.Fprintf(&b, "SVG:     %s\n", clampString(rec.SVGPath, 60))
	fmt.Fprintf(&b, "PNG:     %s", clampString(rec.PNGPath, 60))
	if rec.ID != "" {
		fmt.Fprintf(&b, "\nRun:     %s", rec.ID)
	}
	return b.String()
}
