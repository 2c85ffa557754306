// Package renderjob loads the settings that drive a batch render from a
// YAML file, keeping scene construction (package scenes) separate from
// how a render is invoked (resolution, field of view, recursion depth,
// output path).
package renderjob

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a render job.
type Config struct {
	Scene           string  `yaml:"scene"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	FieldOfView     float64 `yaml:"field_of_view"`
	MaxRecursion    int     `yaml:"max_recursion,omitempty"`
	Output          string  `yaml:"output"`
	From            [3]float64 `yaml:"from"`
	To              [3]float64 `yaml:"to"`
	Up              [3]float64 `yaml:"up"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Scene:        "default",
		Width:        400,
		Height:       400,
		FieldOfView:  1.0471975511965976, // pi/3
		MaxRecursion: 5,
		Output:       "out.ppm",
		From:         [3]float64{0, 1.5, -5},
		To:           [3]float64{0, 1, 0},
		Up:           [3]float64{0, 1, 0},
	}
}

// Load reads and parses a render-job config file. Fields the file leaves
// out keep their Default() values, and a non-positive max_recursion is
// replaced by the default; other fields set explicitly to zero are kept
// as written, except width and height, which must be positive.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("renderjob: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("renderjob: parsing %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("renderjob: %s: width and height must be positive", path)
	}
	if cfg.MaxRecursion <= 0 {
		cfg.MaxRecursion = Default().MaxRecursion
	}
	return cfg, nil
}
