package domain

import "time"

// Phase is a stage of the render pipeline, in execution order.
type Phase string

const (
	PhaseGenerate  Phase = "generate"
	PhaseSerialize Phase = "serialize"
	PhaseRasterize Phase = "rasterize"
	PhaseEncode    Phase = "encode"
	PhaseRecord    Phase = "record"
	PhaseDone      Phase = "done"
)

// RunRecord is the persisted summary of a render, enough to reproduce it.
type RunRecord struct {
	ID string `json:"id,omitempty"`

	Seed    uint64     `json:"seed"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Objects int        `json:"objects"`
	Stats   SceneStats `json:"stats"`

	SVGPath string `json:"svg_path"`
	PNGPath string `json:"png_path"`

	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
	GenerateMS int64     `json:"generate_ms"`
	RenderMS   int64     `json:"render_ms"`
}
