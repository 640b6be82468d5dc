package scenario

import (
	"fmt"

	"github.com/ja7ad/pemev/pkg/types"
	"github.com/ja7ad/pemev/pkg/weights"
)

// Classification is the verdict on a scenario.
type Classification string

const (
	Recommend Classification = "RECOMMEND"
	Reject    Classification = "REJECT"
)

// Guidance returns the human-readable verdict line.
func (c Classification) Guidance() string {
	switch c {
	case Recommend:
		return "RECOMMEND — Aligned with remorse-free flourishing"
	case Reject:
		return "REJECT — Risk of misalignment or future remorse"
	default:
		return string(c)
	}
}

func (c Classification) String() string { return string(c) }

func (c Classification) MarshalText() ([]byte, error) { return []byte(c), nil }

func (c *Classification) UnmarshalText(b []byte) error {
	switch v := Classification(b); v {
	case Recommend, Reject:
		*c = v
		return nil
	default:
		return fmt.Errorf("scenario: unknown classification %q", string(b))
	}
}

func classify(score, threshold float64) Classification {
	if score >= threshold {
		return Recommend
	}
	return Reject
}

// Scenario is one growth path to evaluate. Nil Equity or Sustainability
// are filled from the evaluator's HintProvider.
type Scenario struct {
	GrowthFactor   float64  `yaml:"growth_factor" json:"growth_factor"`
	Years          float64  `yaml:"years" json:"years"`
	Equity         *float64 `yaml:"equity,omitempty" json:"equity,omitempty"`
	Sustainability *float64 `yaml:"sustainability,omitempty" json:"sustainability,omitempty"`
}

// Path builds a Scenario with explicit equity and sustainability.
func Path(growth, years, equity, sustainability float64) Scenario {
	return Scenario{GrowthFactor: growth, Years: years, Equity: &equity, Sustainability: &sustainability}
}

// Hinted builds a Scenario that takes equity and sustainability from hints.
func Hinted(growth, years float64) Scenario {
	return Scenario{GrowthFactor: growth, Years: years}
}

// Result is produced fresh by every Evaluate call.
type Result struct {
	GrowthFactor   float64        `json:"growth_factor" yaml:"growth_factor"`
	Years          float64        `json:"years" yaml:"years"`
	FuturePower    types.Watts    `json:"future_power_w" yaml:"future_power_w"`
	Index          float64        `json:"kardashev_index" yaml:"kardashev_index"`
	Progress       float64        `json:"progress" yaml:"progress"`
	GapFactor      float64        `json:"gap_factor" yaml:"gap_factor"`
	Equity         float64        `json:"equity" yaml:"equity"`
	Sustainability float64        `json:"sustainability" yaml:"sustainability"`
	UsedHints      bool           `json:"used_hints" yaml:"used_hints"`
	Weights        weights.Triple `json:"weights" yaml:"weights"`
	Bonus          float64        `json:"robustness_bonus" yaml:"robustness_bonus"`
	Score          float64        `json:"ethical_score" yaml:"ethical_score"`
	RemorseHorizon float64        `json:"remorse_horizon" yaml:"remorse_horizon"`
	Threshold      float64        `json:"threshold" yaml:"threshold"`
	Classification Classification `json:"classification" yaml:"classification"`
}

// NamedScenario labels a Scenario in batches and presets.
type NamedScenario struct {
	Scenario `yaml:",inline"`

	Name string `yaml:"name" json:"name"`
	// Robust, when set, overrides the evaluator's robustness setting.
	Robust *bool `yaml:"robust,omitempty" json:"robust,omitempty"`
}
