package config

// YAMLFile is the on-disk shape of starfield.yaml. Pointers distinguish an
// absent key from a zero value so defaults survive partial files.
type YAMLFile struct {
	Starfield YAMLConfig `yaml:"starfield"`
}

type YAMLConfig struct {
	Canvas struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
	} `yaml:"canvas"`

	Objects *int    `yaml:"objects"`
	Seed    *uint64 `yaml:"seed"`

	Output struct {
		SVG string `yaml:"svg"`
		PNG string `yaml:"png"`
	} `yaml:"output"`

	Runs struct {
		Enabled *bool  `yaml:"enabled"`
		Dir     string `yaml:"dir"`
	} `yaml:"runs"`

	PNG struct {
		Compression string `yaml:"compression"`
	} `yaml:"png"`
}
