// SPDX-License-Identifier: MIT
// Package: redistrict/plan
//
// config.go - run configuration: YAML loading, defaults and validation.
//
// Validation runs in two passes: struct tags (go-playground/validator) for
// single-field ranges, then cross-field rules (pack counts sum, temperature
// order). The first failure is reported as a *ConfigError naming the YAML
// key, and every such error matches ErrConfiguration.

package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/redistrict/anneal"
	"github.com/katalvlaran/redistrict/objective"
	"github.com/katalvlaran/redistrict/seed"
)

// ErrConfiguration is the root of every configuration failure.
var ErrConfiguration = errors.New("plan: invalid configuration")

// ConfigError pinpoints the offending configuration key. Err, when set, is
// the engine failure the key is blamed for.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrConfiguration) hold, and errors.Is on Err
// when one is attached.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfiguration}
	}
	return []error{ErrConfiguration, e.Err}
}

// Component policies for graphs with more than one connected component.
const (
	ComponentsRequire = "require"
	ComponentsLargest = "largest"
	ComponentsAllow   = "allow"
)

// Config is one districting run.
type Config struct {
	// Districts is the number of districts to draw.
	Districts int `yaml:"districts" validate:"gte=1"`

	// Epsilon is the tolerated population deviation fraction around ideal.
	Epsilon float64 `yaml:"epsilon" validate:"gt=0,lt=1"`

	// PackA and PackB are the number of seeds drawn from each side's extreme.
	PackA int `yaml:"pack_a" validate:"gte=0"`
	PackB int `yaml:"pack_b" validate:"gte=0"`

	// Lean names the per-unit score (b_minus_a, a_minus_b, share_b).
	Lean string `yaml:"lean" validate:"oneof=b_minus_a a_minus_b share_b"`

	// PackGrowth makes side-A seeded districts grow toward the lowest score.
	PackGrowth bool `yaml:"pack_growth"`

	// Target is the side whose seats are maximized ("a" or "b").
	Target string `yaml:"target" validate:"oneof=a b"`

	// TieRule decides exact ties: none, a or b.
	TieRule string `yaml:"tie_rule" validate:"oneof=none a b"`

	// Components is the policy for disconnected graphs.
	Components string `yaml:"components" validate:"oneof=require largest allow"`

	// Overflow lets unplaceable leftovers exceed the population ceiling.
	Overflow bool `yaml:"overflow"`

	// ProgressEvery logs growth and annealing progress every N steps (0 = off).
	ProgressEvery int `yaml:"progress_every" validate:"gte=0"`

	Anneal AnnealConfig `yaml:"anneal"`
}

// AnnealConfig is the local-search budget and cooling schedule.
type AnnealConfig struct {
	TInit               float64       `yaml:"t_init" validate:"gt=0"`
	TFinal              float64       `yaml:"t_final" validate:"gt=0"`
	Alpha               float64       `yaml:"alpha" validate:"gt=0,lt=1"`
	MaxIter             int           `yaml:"max_iter" validate:"gte=0"`
	Seed                int64         `yaml:"seed"`
	TimeLimit           time.Duration `yaml:"time_limit" validate:"gte=0"`
	MaxContiguityVisits int           `yaml:"max_contiguity_visits" validate:"gte=0"`
}

// Schedule converts the cooling parameters.
func (a AnnealConfig) Schedule() anneal.Schedule {
	return anneal.Schedule{TInit: a.TInit, TFinal: a.TFinal, Alpha: a.Alpha, MaxIter: a.MaxIter}
}

// DefaultConfig mirrors the statewide run: 27 districts, ±15%, two packed
// side-A districts and the 1.0 → 0.001 schedule over 2000 iterations.
func DefaultConfig() Config {
	s := anneal.DefaultSchedule()
	return Config{
		Districts:     27,
		Epsilon:       0.15,
		PackA:         2,
		PackB:         25,
		Lean:          seed.NameBMinusA,
		Target:        "b",
		TieRule:       "none",
		Components:    ComponentsRequire,
		ProgressEvery: 100,
		Anneal: AnnealConfig{
			TInit:   s.TInit,
			TFinal:  s.TFinal,
			Alpha:   s.Alpha,
			MaxIter: s.MaxIter,
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks every field and the cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			field := strings.TrimPrefix(fe.Namespace(), "Config.")
			reason := fe.Tag()
			if fe.Param() != "" {
				reason += "=" + fe.Param()
			}
			return &ConfigError{Field: field, Reason: fmt.Sprintf("failed %q (got %v)", reason, fe.Value())}
		}
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if c.PackA+c.PackB != c.Districts {
		return &ConfigError{Field: "pack_a", Reason: fmt.Sprintf("pack_a (%d) + pack_b (%d) must equal districts (%d)", c.PackA, c.PackB, c.Districts)}
	}
	if !(c.Anneal.TInit > c.Anneal.TFinal) {
		return &ConfigError{Field: "anneal.t_init", Reason: fmt.Sprintf("%v must exceed t_final %v", c.Anneal.TInit, c.Anneal.TFinal)}
	}
	return nil
}

// resolved holds the typed values behind the string settings.
type resolved struct {
	lean   seed.LeanFunc
	target objective.Side
	tie    objective.TieRule
}

func (c Config) resolve() (resolved, error) {
	var (
		r   resolved
		err error
	)
	if r.lean, err = seed.ParseLean(c.Lean); err != nil {
		return r, &ConfigError{Field: "lean", Reason: err.Error()}
	}
	if r.target, err = objective.ParseSide(c.Target); err != nil {
		return r, &ConfigError{Field: "target", Reason: err.Error()}
	}
	if r.tie, err = objective.ParseTieRule(c.TieRule); err != nil {
		return r, &ConfigError{Field: "tie_rule", Reason: err.Error()}
	}
	return r, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("plan: read config: %w", err)
	}
	return ParseConfig(bytes.NewReader(data))
}
