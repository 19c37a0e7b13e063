package usecase

import (
	"strconv"

	"github.com/aalvaropc/starfield/internal/app/template"
	"github.com/aalvaropc/starfield/internal/domain"
)

// outputVars are the placeholders available in output paths, for example
// "renders/stars-{{seed}}.png".
func outputVars(cfg domain.Config, seed uint64) map[string]string {
	return map[string]string{
		"seed":    strconv.FormatUint(seed, 10),
		"width":   strconv.Itoa(cfg.Canvas.Width),
		"height":  strconv.Itoa(cfg.Canvas.Height),
		"objects": strconv.Itoa(cfg.Objects),
	}
}

func resolveOutputs(cfg domain.Config, seed uint64) (domain.OutputConfig, error) {
	vars := outputVars(cfg, seed)

	svg, err := template.RenderString(cfg.Output.SVG, vars)
	if err != nil {
		return domain.OutputConfig{}, err
	}
	png, err := template.RenderString(cfg.Output.PNG, vars)
	if err != nil {
		return domain.OutputConfig{}, err
	}
	return domain.OutputConfig{SVG: svg, PNG: png}, nil
}
