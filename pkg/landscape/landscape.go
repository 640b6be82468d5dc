// Package landscape samples the ethical score across a range of growth
// factors. It is a pure function of the baseline, weights and inputs and
// keeps no state between samples.
package landscape

import (
	"iter"
	"math"

	"github.com/ja7ad/pemev/pkg/config"
	"github.com/ja7ad/pemev/pkg/ethics"
	"github.com/ja7ad/pemev/pkg/kardashev"
	"github.com/ja7ad/pemev/pkg/util"
	"github.com/ja7ad/pemev/pkg/weights"
)

const (
	// DefaultPoints is the number of samples per curve.
	DefaultPoints = 100
	// DefaultStartExp and DefaultStopExp span 1x to 10,000x.
	DefaultStartExp = 0.0
	DefaultStopExp  = 4.0
	// ZoneHeadroom is added above the low curve when sizing the remorse-free zone.
	ZoneHeadroom = 0.1
)

// LogSpace returns n growth factors evenly spaced on a log10 scale from
// 10^startExp to 10^stopExp inclusive.
func LogSpace(startExp, stopExp float64, n int) []float64 {
	return util.LogSpace(startExp, stopExp, n)
}

// DefaultFactors is LogSpace(0, 4, 100).
func DefaultFactors() []float64 {
	return LogSpace(DefaultStartExp, DefaultStopExp, DefaultPoints)
}

// Point is one (growth, score) sample.
type Point struct {
	Growth float64 `json:"growth_factor" yaml:"growth_factor"`
	Score  float64 `json:"score" yaml:"score"`
}

// Sampler scores growth factors against a fixed baseline and weighting.
type Sampler struct {
	Baseline config.Baseline
	Weights  weights.Triple
}

// NewSampler returns a Sampler for cfg's baseline and w.
func NewSampler(b config.Baseline, w weights.Triple) Sampler {
	return Sampler{Baseline: b, Weights: w}
}

// ScoreAt is the ethical score of growth factor g. Non-positive or
// non-finite g returns NaN.
func (s Sampler) ScoreAt(g, equity, sustainability, bonus float64) float64 {
	if !util.Finite(g) || g <= 0 {
		return math.NaN()
	}
	k, err := kardashev.Index(s.Baseline.CurrentPower.Scale(g))
	if err != nil {
		return math.NaN()
	}
	progress := kardashev.ProgressTowardTarget(k, s.Baseline.ReferenceAnchor, s.Baseline.TargetIndex)
	return ethics.WeightedScore(s.Weights, progress, equity, sustainability, bonus)
}

// Sample yields (growth, score) for each factor in order. The sequence is
// computed lazily and may be ranged over any number of times. Factors that
// cannot be scored are skipped.
func (s Sampler) Sample(factors []float64, equity, sustainability, bonus float64) iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for _, g := range factors {
			score := s.ScoreAt(g, equity, sustainability, bonus)
			if math.IsNaN(score) {
				continue
			}
			if !yield(g, score) {
				return
			}
		}
	}
}

// Collect drains seq into points.
func Collect(seq iter.Seq2[float64, float64]) []Point {
	var out []Point
	for g, score := range seq {
		out = append(out, Point{Growth: g, Score: score})
	}
	return out
}

// Curve is one sampled equity/sustainability profile.
type Curve struct {
	Name           string  `json:"name" yaml:"name"`
	Label          string  `json:"label" yaml:"label"`
	Color          string  `json:"color" yaml:"color"`
	Equity         float64 `json:"equity" yaml:"equity"`
	Sustainability float64 `json:"sustainability" yaml:"sustainability"`
	Points         []Point `json:"points" yaml:"points"`
}

// Max returns the highest scoring point; ok is false for an empty curve.
func (c Curve) Max() (p Point, ok bool) {
	for i, pt := range c.Points {
		if i == 0 || pt.Score > p.Score {
			p = pt
		}
	}
	return p, len(c.Points) > 0
}

// Min returns the lowest scoring point; ok is false for an empty curve.
func (c Curve) Min() (p Point, ok bool) {
	for i, pt := range c.Points {
		if i == 0 || pt.Score < p.Score {
			p = pt
		}
	}
	return p, len(c.Points) > 0
}

// FirstAbove returns the first point scoring at least threshold.
func (c Curve) FirstAbove(threshold float64) (Point, bool) {
	for _, pt := range c.Points {
		if pt.Score >= threshold {
			return pt, true
		}
	}
	return Point{}, false
}

type profile struct {
	name, label, color     string
	equity, sustainability float64
}

// Curves samples the three reference profiles: high (0.95/0.98),
// medium (0.7/0.8) and low (the current real-world hints).
func (s Sampler) Curves(factors []float64, hints config.Hints, bonus float64) []Curve {
	profiles := []profile{
		{"high", "High equity/sustainability", "green", 0.95, 0.98},
		{"medium", "Medium (improving)", "orange", 0.7, 0.8},
		{"low", "Current real-world hints", "red", hints.Equity, hints.Sustainability},
	}
	out := make([]Curve, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Curve{
			Name:           p.name,
			Label:          p.label,
			Color:          p.color,
			Equity:         p.equity,
			Sustainability: p.sustainability,
			Points:         Collect(s.Sample(factors, p.equity, p.sustainability, bonus)),
		})
	}
	return out
}

// ZoneTop is the upper edge of the remorse-free zone drawn above the
// threshold: the highest curve maximum, with headroom over the last curve.
func ZoneTop(curves []Curve, threshold float64) float64 {
	top := threshold
	for i, c := range curves {
		p, ok := c.Max()
		if !ok {
			continue
		}
		v := p.Score
		if i == len(curves)-1 {
			v += ZoneHeadroom
		}
		top = math.Max(top, v)
	}
	return top
}
