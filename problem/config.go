// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/itersolve/axb"
	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
)

// Config is a solver run read from YAML:
//
//	algorithm: sor
//	omega: 1.25
//	tolerance: 1e-10
//	max_iter: 500
//	criterion: residual
//	symmetry: G
//	input: system.txt
//
// Absent keys keep the DefaultConfig values; unknown keys are rejected.
type Config struct {
	Algorithm string  `yaml:"algorithm" validate:"required"`
	Omega     float64 `yaml:"omega"`
	Tolerance float64 `yaml:"tolerance" validate:"gt=0"`
	MaxIter   int     `yaml:"max_iter" validate:"gt=0"`
	Criterion string  `yaml:"criterion" validate:"omitempty,oneof=relative relative-change residual"`
	Symmetry  string  `yaml:"symmetry" validate:"omitempty,oneof=G L U D g l u d general lower upper diagonal"`
	Input     string  `yaml:"input"`
}

var configValidate = validator.New(validator.WithRequiredStructEnabled())

// DefaultConfig returns Gauss-Seidel with the fixedpoint defaults, the
// relative-change criterion and a General matrix read from stdin.
func DefaultConfig() Config {
	return Config{
		Algorithm: axb.AlgGaussSeidel.String(),
		Omega:     axb.DefaultRelaxation,
		Tolerance: fixedpoint.DefaultTolerance,
		MaxIter:   fixedpoint.DefaultMaxIter,
		Criterion: axb.RelativeChange.String(),
		Symmetry:  "G",
	}
}

// LoadConfig reads and validates the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// An empty document yields DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse the config: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags first, then that every field parses to a
// usable value.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.AlgorithmID(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if math.IsNaN(c.Omega) || math.IsInf(c.Omega, 0) {
		return fmt.Errorf("%w: omega %g: %w", ErrInvalidConfig, c.Omega, axb.ErrInvalidRelaxation)
	}
	if _, err := c.Settings(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := axb.ParseCriterion(c.Criterion); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseSymmetry(c.Symmetry); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// AlgorithmID parses the algorithm field.
func (c Config) AlgorithmID() (axb.Algorithm, error) { return axb.ParseAlgorithm(c.Algorithm) }

// Settings builds the iteration settings.
func (c Config) Settings() (fixedpoint.Settings, error) {
	return fixedpoint.NewSettings(c.Tolerance, c.MaxIter)
}

// MatrixSymmetry parses the symmetry field.
func (c Config) MatrixSymmetry() (matrix.Symmetry, error) { return ParseSymmetry(c.Symmetry) }

// SolverOptions returns the axb options implied by omega and criterion.
func (c Config) SolverOptions() ([]axb.Option, error) {
	crit, err := axb.ParseCriterion(c.Criterion)
	if err != nil {
		return nil, err
	}

	return []axb.Option{axb.WithRelaxation(c.Omega), axb.WithCriterion(crit)}, nil
}
