// Package config loads scene configuration for the gridviz CLI.
//
// A scene is the full description of one figure: domain bounds and grid
// step, the list of transformation cases, figure dimensions, styling,
// and the output path. Values are layered defaults <- YAML file <-
// environment, with env vars prefixed GRIDVIZ_ (nested keys use a
// double underscore, e.g. GRIDVIZ_BOUNDS__MIN).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"gridviz"
)

const envPrefix = "GRIDVIZ_"

// BoundsSpec mirrors gridviz.Bounds for config decoding.
type BoundsSpec struct {
	Min float64 `koanf:"min"`
	Max float64 `koanf:"max"`
}

// CaseSpec is one transformation case: a display name and a 2x2 matrix
// in row-major order [a b c d].
type CaseSpec struct {
	Name   string     `koanf:"name"`
	Matrix [4]float64 `koanf:"matrix"`
}

// Mat returns the case's matrix as a gridviz.Matrix.
func (c CaseSpec) Mat() gridviz.Matrix {
	return gridviz.Matrix{
		A: c.Matrix[0], B: c.Matrix[1],
		C: c.Matrix[2], D: c.Matrix[3],
	}
}

// Scene describes one complete figure.
type Scene struct {
	Output        string     `koanf:"output"`
	Width         int        `koanf:"width"`
	Height        int        `koanf:"height"`
	Cols          int        `koanf:"cols"`
	Bounds        BoundsSpec `koanf:"bounds"`
	Step          float64    `koanf:"step"`
	LineWidth     float64    `koanf:"line_width"`
	RefColor      string     `koanf:"ref_color"`
	DeformedColor string     `koanf:"deformed_color"`
	Markers       bool       `koanf:"markers"`
	Titles        bool       `koanf:"titles"`
	Cases         []CaseSpec `koanf:"cases"`
}

// Default returns the built-in demo scene: the unit square at 0.25
// spacing and the eight catalogue transformations in a 2x4 figure.
func Default() Scene {
	cases := gridviz.Cases()
	specs := make([]CaseSpec, len(cases))
	for i, c := range cases {
		specs[i] = CaseSpec{
			Name:   c.Name,
			Matrix: [4]float64{c.Matrix.A, c.Matrix.B, c.Matrix.C, c.Matrix.D},
		}
	}
	return Scene{
		Output:        "output.png",
		Width:         1400,
		Height:        600,
		Cols:          4,
		Bounds:        BoundsSpec{Min: 0, Max: 1},
		Step:          0.25,
		LineWidth:     1,
		RefColor:      "000000",
		DeformedColor: "d62728",
		Markers:       true,
		Titles:        true,
		Cases:         specs,
	}
}

// Load merges the default scene with an optional YAML file and
// GRIDVIZ_-prefixed environment variables, then validates the result.
// A missing file at path is not an error; the defaults stand.
func Load(path string) (Scene, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Scene{}, fmt.Errorf("config: %w", err)
		}
	}
	_ = k.Load(env.Provider(envPrefix, ".", envKey), nil)

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Scene{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Scene{}, err
	}
	return cfg, nil
}

// envKey maps GRIDVIZ_BOUNDS__MIN to bounds.min, GRIDVIZ_LINE_WIDTH to
// line_width.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

// Domain returns the scene's bounds as a gridviz.Bounds.
func (s Scene) Domain() gridviz.Bounds {
	return gridviz.Bounds{Min: s.Bounds.Min, Max: s.Bounds.Max}
}

// GridCases converts the scene's case specs for the renderer.
func (s Scene) GridCases() []gridviz.Case {
	out := make([]gridviz.Case, len(s.Cases))
	for i, c := range s.Cases {
		out[i] = gridviz.Case{Name: c.Name, Matrix: c.Mat()}
	}
	return out
}

// Validate checks the scene for degenerate values. Grid parameters are
// validated by actually constructing a grid, so the error taxonomy
// matches the core package exactly.
func (s Scene) Validate() error {
	if s.Output == "" {
		return fmt.Errorf("%w: output path is empty", gridviz.ErrInvalidConfig)
	}
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: figure size %dx%d", gridviz.ErrInvalidConfig, s.Width, s.Height)
	}
	if s.Cols < 1 {
		return fmt.Errorf("%w: cols %d", gridviz.ErrInvalidConfig, s.Cols)
	}
	if s.LineWidth <= 0 {
		return fmt.Errorf("%w: line width %v", gridviz.ErrInvalidConfig, s.LineWidth)
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("%w: no cases", gridviz.ErrInvalidConfig)
	}
	if _, err := gridviz.NewGrid(s.Domain(), s.Step); err != nil {
		return err
	}
	for _, c := range s.Cases {
		if !c.Mat().IsFinite() {
			return fmt.Errorf("%w: case %q", gridviz.ErrInvalidMatrix, c.Name)
		}
	}
	return nil
}
