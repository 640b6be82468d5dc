package scenario

import (
	"time"

	"github.com/ja7ad/pemev/pkg/kardashev"
	"github.com/ja7ad/pemev/pkg/types"
)

// Summary describes the baseline itself.
type Summary struct {
	Date         time.Time   `json:"date" yaml:"date"`
	CurrentPower types.Watts `json:"current_power_w" yaml:"current_power_w"`
	TargetPower  types.Watts `json:"target_power_w" yaml:"target_power_w"`
	// FullProgressPower is where progress reaches 1 (the target index).
	FullProgressPower types.Watts `json:"full_progress_power_w" yaml:"full_progress_power_w"`
	// Index is derived from CurrentPower; StatedIndex is echoed for comparison.
	Index       float64 `json:"kardashev_index" yaml:"kardashev_index"`
	StatedIndex float64 `json:"stated_index" yaml:"stated_index"`
	// AnchorDrift is Index - StatedIndex.
	AnchorDrift float64 `json:"anchor_drift" yaml:"anchor_drift"`
	ProgressPct float64 `json:"progress_pct" yaml:"progress_pct"`
	GapFactor   float64 `json:"gap_factor" yaml:"gap_factor"`
}

// Projection is a growth path without ethical scoring.
type Projection struct {
	Name         string      `json:"name,omitempty" yaml:"name,omitempty"`
	GrowthFactor float64     `json:"growth_factor" yaml:"growth_factor"`
	Years        float64     `json:"years" yaml:"years"`
	FuturePower  types.Watts `json:"future_power_w" yaml:"future_power_w"`
	Index        float64     `json:"kardashev_index" yaml:"kardashev_index"`
	ProgressPct  float64     `json:"progress_pct" yaml:"progress_pct"`
	RemainingGap float64     `json:"remaining_gap" yaml:"remaining_gap"`
}

// Summary reports the baseline: derived index, percent of the way to
// Type I (index*100) and the energy gap factor target/current.
func (e *Evaluator) Summary() (Summary, error) {
	b := e.baseline
	k, err := kardashev.Index(b.CurrentPower)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Date:              b.ParsedDate(),
		CurrentPower:      b.CurrentPower,
		TargetPower:       b.TargetPower,
		FullProgressPower: kardashev.PowerForIndex(b.TargetIndex),
		Index:             k,
		StatedIndex:       b.StatedIndex,
		AnchorDrift:       k - b.StatedIndex,
		ProgressPct:       k * 100,
		GapFactor:         b.TargetPower.Ratio(b.CurrentPower),
	}, nil
}

// Project multiplies current power by growth and reports where that lands.
func (e *Evaluator) Project(growth, years float64) (Projection, error) {
	if growth <= 0 {
		return Projection{}, kardashev.NewDomainError("growth_factor", growth, "must be > 0")
	}
	if years < 0 {
		return Projection{}, kardashev.NewDomainError("years", years, "must be >= 0")
	}
	future := e.baseline.CurrentPower.Scale(growth)
	k, err := kardashev.Index(future)
	if err != nil {
		return Projection{}, err
	}
	return Projection{
		GrowthFactor: growth,
		Years:        years,
		FuturePower:  future,
		Index:        k,
		ProgressPct:  k * 100,
		RemainingGap: e.baseline.TargetPower.Ratio(future),
	}, nil
}

// Outlook is a named projection input.
type Outlook struct {
	Name         string
	GrowthFactor float64
	Years        float64
}

// Outlooks returns the reference projections: near-term renewables and
// early fusion, mid-century fusion with orbital solar, and full Type I.
func Outlooks() []Outlook {
	return []Outlook{
		{Name: "near-term", GrowthFactor: 10, Years: 20},
		{Name: "mid-century", GrowthFactor: 1000, Years: 50},
		{Name: "type-i", GrowthFactor: 7570, Years: 100},
	}
}

// CurrentState evaluates the no-change path (growth 1, 0 years) with the
// real-world hints.
func (e *Evaluator) CurrentState(opts ...Option) (Result, error) {
	return e.Evaluate(Hinted(1, 0), opts...)
}
