// Package ethics combines Kardashev progress with equity and sustainability
// scores into a single weighted ethical score, and derives the robustness
// bonus and remorse horizon adjustments from it.
package ethics

import (
	"math"
	"sync/atomic"

	"github.com/ja7ad/pemev/pkg/kardashev"
	"github.com/ja7ad/pemev/pkg/weights"
)

const (
	// RobustnessFloor is subtracted from the stakeholder robustness before
	// it counts as a bonus.
	RobustnessFloor = 0.8
	// DefaultStakeholders is the stakeholder count (nations, ecosystems,
	// generations) used when none is configured.
	DefaultStakeholders = 3
	// DefaultBaseHorizon is the remorse horizon of a perfect score.
	DefaultBaseHorizon = -1.0
)

// Scorer holds the weighting used by every score computed in a run.
// Reseed replaces the whole triple in one atomic store, so readers never
// observe a partially updated weighting.
type Scorer struct {
	w atomic.Pointer[weights.Triple]
}

// NewScorer returns a Scorer using w.
func NewScorer(w weights.Triple) *Scorer {
	s := &Scorer{}
	s.Reseed(w)
	return s
}

// Weights returns the current triple.
func (s *Scorer) Weights() weights.Triple { return *s.w.Load() }

// Reseed installs a new triple.
func (s *Scorer) Reseed(w weights.Triple) { s.w.Store(&w) }

// Score computes
//
//	wE*progress + wQ*equity + wS*sustainability + bonus
//
// with the current weights. The result is not clamped: a bonus may push it
// above 1 and negative progress may pull it down.
func (s *Scorer) Score(progress, equity, sustainability, bonus float64) float64 {
	return WeightedScore(s.Weights(), progress, equity, sustainability, bonus)
}

// WeightedScore is Score with an explicit triple.
func WeightedScore(w weights.Triple, progress, equity, sustainability, bonus float64) float64 {
	return w.Energy*progress + w.Equity*equity + w.Sustainability*sustainability + bonus
}

// RobustnessBonus models resilience of k equally represented stakeholders
// (W-state amplitude 1/sqrt(k)):
//
//	robustness = (1/sqrt(k))^2 * k
//	bonus      = max(robustness - RobustnessFloor, 0)
//
// robustness is 1 for every k, so the bonus is always 0.2 up to rounding.
func RobustnessBonus(k int) (float64, error) {
	if k <= 0 {
		return 0, kardashev.NewDomainError("stakeholders", float64(k), "must be > 0")
	}
	amplitude := 1 / math.Sqrt(float64(k))
	robustness := amplitude * amplitude * float64(k)
	return math.Max(robustness-RobustnessFloor, 0), nil
}

// RemorseHorizon links the ethical score to projected regret:
//
//	base + (1 - score)
//
// Lower is better; a perfect score returns base.
func RemorseHorizon(score, base float64) float64 {
	return base + (1.0 - score)
}
