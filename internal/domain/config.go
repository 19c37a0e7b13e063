package domain

// Config represents the starfield configuration loaded from starfield.yaml
// and overridden by CLI flags.
type Config struct {
	Canvas  CanvasConfig
	Objects int
	// Seed is nil when the run should pick a random seed.
	Seed   *uint64
	Output OutputConfig
	Runs   RunsConfig
	PNG    PNGConfig
}

type CanvasConfig struct {
	Width  int
	Height int
}

type OutputConfig struct {
	SVG string
	PNG string
}

type RunsConfig struct {
	Enabled bool
	Dir     string
}

// PNGCompression mirrors the levels offered by image/png.
type PNGCompression string

const (
	PNGCompressionDefault PNGCompression = "default"
	PNGCompressionNone    PNGCompression = "none"
	PNGCompressionSpeed   PNGCompression = "speed"
	PNGCompressionBest    PNGCompression = "best"
)

type PNGConfig struct {
	Compression PNGCompression
}

// DefaultConfig provides the canonical 4000x2000, 110k object render.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  4000,
			Height: 2000,
		},
		Objects: 110_000,
		Output: OutputConfig{
			SVG: "stars.svg",
			PNG: "stars.png",
		},
		Runs: RunsConfig{
			Enabled: true,
			Dir:     "runs",
		},
		PNG: PNGConfig{Compression: PNGCompressionDefault},
	}
}
