// Package config holds the baseline constants and tunables of an evaluation
// run. A Config is a plain value: components copy what they need at
// construction and never observe later changes.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ja7ad/pemev/pkg/entropy"
	"github.com/ja7ad/pemev/pkg/ethics"
	"github.com/ja7ad/pemev/pkg/kardashev"
	"github.com/ja7ad/pemev/pkg/types"
	"github.com/ja7ad/pemev/pkg/util"
	"github.com/ja7ad/pemev/pkg/weights"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DateLayout is the layout of Baseline.Date.
const DateLayout = "2006-01-02"

// Config is the full set of run parameters.
type Config struct {
	Baseline   Baseline       `yaml:"baseline" json:"baseline"`
	Weights    weights.Triple `yaml:"weights" json:"weights"`
	Threshold  float64        `yaml:"threshold" json:"threshold"`
	Hints      Hints          `yaml:"hints" json:"hints"`
	Robustness Robustness     `yaml:"robustness" json:"robustness"`
	Entropy    Entropy        `yaml:"entropy" json:"entropy"`
}

// Baseline holds the reference constants.
// Units:
//   - CurrentPower/TargetPower: Watts
//   - StatedIndex, ReferenceAnchor, TargetIndex: Kardashev index
//   - BaseRemorseHorizon: dimensionless, lower is better
type Baseline struct {
	Date         string      `yaml:"date" json:"date"`
	CurrentPower types.Watts `yaml:"current_power_w" json:"current_power_w"`
	TargetPower  types.Watts `yaml:"target_power_w" json:"target_power_w"`
	// StatedIndex is the commonly quoted current level. It is reported next
	// to the derived index but never used in computation.
	StatedIndex        float64 `yaml:"stated_index" json:"stated_index"`
	ReferenceAnchor    float64 `yaml:"reference_anchor" json:"reference_anchor"`
	TargetIndex        float64 `yaml:"target_index" json:"target_index"`
	BaseRemorseHorizon float64 `yaml:"base_remorse_horizon" json:"base_remorse_horizon"`
}

// Hints are the current real-world equity and sustainability estimates used
// when a scenario leaves them unset.
type Hints struct {
	Equity         float64 `yaml:"equity" json:"equity"`
	Sustainability float64 `yaml:"sustainability" json:"sustainability"`
}

// Robustness controls the stakeholder robustness bonus.
type Robustness struct {
	Enabled      bool `yaml:"enabled" json:"enabled"`
	Stakeholders int  `yaml:"stakeholders" json:"stakeholders"`
}

// Entropy controls weight seeding.
type Entropy struct {
	// Seed replaces Weights with an entropy-derived triple at startup.
	Seed     bool          `yaml:"seed" json:"seed"`
	Endpoint string        `yaml:"endpoint" json:"endpoint"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`
	// Hex, when set, is used as fixed 24-byte entropy instead of the remote
	// service (reproducible runs).
	Hex string `yaml:"hex,omitempty" json:"hex,omitempty"`
}

// Default returns a Config pre-filled with the reference values.
func Default() Config {
	return Config{
		Baseline: Baseline{
			Date:               "2026-01-01",
			CurrentPower:       2.3e13,  // ~23 TW global primary energy, 2025
			TargetPower:        1.74e17, // solar power incident on Earth
			StatedIndex:        0.73,    // commonly quoted level
			ReferenceAnchor:    kardashev.DefaultAnchor,
			TargetIndex:        kardashev.TypeI,
			BaseRemorseHorizon: ethics.DefaultBaseHorizon,
		},
		Weights:   weights.Default(),
		Threshold: 0.95,
		Hints: Hints{
			Equity:         0.35, // approx global inequality inverse
			Sustainability: 0.65, // approx ESI average
		},
		Robustness: Robustness{
			Enabled:      false,
			Stakeholders: ethics.DefaultStakeholders,
		},
		Entropy: Entropy{
			Seed:     false,
			Endpoint: entropy.DefaultEndpoint,
			Timeout:  entropy.DefaultTimeout,
		},
	}
}

// New merges cfg over Default(). It is the entry point for callers that
// build a Config in code; files go through Load, which decodes over
// Default() directly.
// Notes:
//   - Powers, TargetIndex, Threshold, Stakeholders, Timeout and Endpoint
//     override only when > 0 (or non-empty).
//   - ReferenceAnchor and BaseRemorseHorizon override when non-zero; a zero
//     anchor or horizon cannot be expressed through New, use Load instead.
//   - Weights override only when the triple is not all-zero.
//   - Hints override per field when in [0,1] and the pair is not all-zero.
//   - Booleans are taken verbatim.
func New(cfg *Config) Config {
	merged := Default()
	if cfg == nil {
		return merged
	}

	b := cfg.Baseline
	if b.Date != "" {
		merged.Baseline.Date = b.Date
	}
	if b.CurrentPower > 0 {
		merged.Baseline.CurrentPower = b.CurrentPower
	}
	if b.TargetPower > 0 {
		merged.Baseline.TargetPower = b.TargetPower
	}
	if b.StatedIndex > 0 {
		merged.Baseline.StatedIndex = b.StatedIndex
	}
	if b.ReferenceAnchor != 0 {
		merged.Baseline.ReferenceAnchor = b.ReferenceAnchor
	}
	if b.TargetIndex > 0 {
		merged.Baseline.TargetIndex = b.TargetIndex
	}
	if b.BaseRemorseHorizon != 0 {
		merged.Baseline.BaseRemorseHorizon = b.BaseRemorseHorizon
	}

	if cfg.Weights != (weights.Triple{}) {
		merged.Weights = cfg.Weights
	}
	if cfg.Threshold > 0 {
		merged.Threshold = cfg.Threshold
	}
	if cfg.Hints != (Hints{}) {
		if util.In01(cfg.Hints.Equity) {
			merged.Hints.Equity = cfg.Hints.Equity
		}
		if util.In01(cfg.Hints.Sustainability) {
			merged.Hints.Sustainability = cfg.Hints.Sustainability
		}
	}

	merged.Robustness.Enabled = cfg.Robustness.Enabled
	if cfg.Robustness.Stakeholders > 0 {
		merged.Robustness.Stakeholders = cfg.Robustness.Stakeholders
	}

	merged.Entropy.Seed = cfg.Entropy.Seed
	if cfg.Entropy.Endpoint != "" {
		merged.Entropy.Endpoint = cfg.Entropy.Endpoint
	}
	if cfg.Entropy.Timeout > 0 {
		merged.Entropy.Timeout = cfg.Entropy.Timeout
	}
	if cfg.Entropy.Hex != "" {
		merged.Entropy.Hex = cfg.Entropy.Hex
	}

	return merged
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	b := c.Baseline
	if _, err := time.Parse(DateLayout, b.Date); err != nil {
		return fmt.Errorf("%w: baseline.date %q: %w", ErrInvalid, b.Date, err)
	}
	if !(b.CurrentPower > 0) || !util.Finite(b.CurrentPower.ToFloat64()) {
		return fmt.Errorf("%w: baseline.current_power_w must be > 0, got %g", ErrInvalid, b.CurrentPower.ToFloat64())
	}
	if !(b.TargetPower > 0) || !util.Finite(b.TargetPower.ToFloat64()) {
		return fmt.Errorf("%w: baseline.target_power_w must be > 0, got %g", ErrInvalid, b.TargetPower.ToFloat64())
	}
	if !util.Finite(b.ReferenceAnchor) || !util.Finite(b.TargetIndex) {
		return fmt.Errorf("%w: baseline anchor/target index must be finite", ErrInvalid)
	}
	if b.TargetIndex == b.ReferenceAnchor {
		return fmt.Errorf("%w: baseline.target_index must differ from reference_anchor (%g)", ErrInvalid, b.ReferenceAnchor)
	}
	if !util.Finite(b.BaseRemorseHorizon) {
		return fmt.Errorf("%w: baseline.base_remorse_horizon must be finite", ErrInvalid)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !util.Finite(c.Threshold) {
		return fmt.Errorf("%w: threshold must be finite", ErrInvalid)
	}
	if !util.In01(c.Hints.Equity) || !util.In01(c.Hints.Sustainability) {
		return fmt.Errorf("%w: hints must be in [0,1], got equity=%g sustainability=%g", ErrInvalid, c.Hints.Equity, c.Hints.Sustainability)
	}
	if c.Robustness.Stakeholders <= 0 {
		return fmt.Errorf("%w: robustness.stakeholders must be > 0, got %d", ErrInvalid, c.Robustness.Stakeholders)
	}
	if c.Entropy.Timeout <= 0 {
		return fmt.Errorf("%w: entropy.timeout must be > 0", ErrInvalid)
	}
	if c.Entropy.Hex != "" && len(c.Entropy.Hex) != 2*weights.EntropyLen {
		return fmt.Errorf("%w: entropy.hex must be %d hex characters", ErrInvalid, 2*weights.EntropyLen)
	}
	return nil
}

// ParsedDate parses Baseline.Date, returning the zero time when malformed.
func (b Baseline) ParsedDate() time.Time {
	t, err := time.Parse(DateLayout, b.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CurrentIndex is the index derived from CurrentPower. The stated index is
// never used in computation.
func (b Baseline) CurrentIndex() float64 {
	k, err := kardashev.Index(b.CurrentPower)
	if err != nil {
		return math.NaN()
	}
	return k
}
