// Package scenario evaluates growth scenarios: it projects future power,
// converts it to a Kardashev index, scores it with the ethical weighting,
// derives the remorse horizon and classifies the result against a threshold.
//
// An Evaluate call moves through three states and touches no shared state:
//
//	validated -> scored -> classified
//
// Invalid numeric input fails the call with a *kardashev.DomainError.
package scenario

import (
	"log/slog"
	"math"

	"github.com/ja7ad/pemev/pkg/config"
	"github.com/ja7ad/pemev/pkg/ethics"
	"github.com/ja7ad/pemev/pkg/kardashev"
	"github.com/ja7ad/pemev/pkg/util"
	"github.com/ja7ad/pemev/pkg/weights"
)

// Evaluator is safe to share once constructed; it only reads its
// configuration and the Scorer's current weights.
type Evaluator struct {
	baseline   config.Baseline
	threshold  float64
	robustness config.Robustness
	scorer     *ethics.Scorer
	hints      HintProvider
	log        *slog.Logger
}

// New builds an Evaluator from cfg. A nil scorer uses cfg.Weights; nil
// hints use cfg.Hints.
func New(cfg config.Config, scorer *ethics.Scorer, hints HintProvider) *Evaluator {
	if scorer == nil {
		scorer = ethics.NewScorer(cfg.Weights)
	}
	if hints == nil {
		hints = StaticHints(cfg.Hints)
	}
	return &Evaluator{
		baseline:   cfg.Baseline,
		threshold:  cfg.Threshold,
		robustness: cfg.Robustness,
		scorer:     scorer,
		hints:      hints,
		log:        slog.Default().With(slog.String("component", "evaluator")),
	}
}

// WithLogger returns a copy of e logging to l.
func (e *Evaluator) WithLogger(l *slog.Logger) *Evaluator {
	cp := *e
	cp.log = l.With(slog.String("component", "evaluator"))
	return &cp
}

// Scorer returns the scorer whose weights the evaluator reads.
func (e *Evaluator) Scorer() *ethics.Scorer { return e.scorer }

// Baseline returns the baseline constants.
func (e *Evaluator) Baseline() config.Baseline { return e.baseline }

// Threshold returns the default classification threshold.
func (e *Evaluator) Threshold() float64 { return e.threshold }

type options struct {
	threshold    float64
	robust       bool
	stakeholders int
	weights      *weights.Triple
}

// Option adjusts a single Evaluate call.
type Option func(*options)

// WithThreshold overrides the classification threshold.
func WithThreshold(t float64) Option { return func(o *options) { o.threshold = t } }

// WithRobustness applies the robustness bonus for k stakeholders.
func WithRobustness(k int) Option {
	return func(o *options) {
		o.robust = true
		o.stakeholders = k
	}
}

// WithoutRobustness disables the robustness bonus.
func WithoutRobustness() Option { return func(o *options) { o.robust = false } }

// WithWeights scores with w instead of the scorer's current triple.
func WithWeights(w weights.Triple) Option { return func(o *options) { o.weights = &w } }

// Evaluate runs one scenario.
//
//	future   = current_power * growth
//	index    = (log10(future) - 6) / 10
//	progress = min((index - anchor) / (target - anchor), 1)
//	score    = wE*progress + wQ*equity + wS*sustainability + bonus
//	horizon  = base + (1 - score)
//	class    = RECOMMEND if score >= threshold else REJECT
func (e *Evaluator) Evaluate(s Scenario, opts ...Option) (Result, error) {
	o := options{
		threshold:    e.threshold,
		robust:       e.robustness.Enabled,
		stakeholders: e.robustness.Stakeholders,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// validated
	in, err := e.validate(s, o)
	if err != nil {
		return Result{}, err
	}

	// scored
	future := e.baseline.CurrentPower.Scale(s.GrowthFactor)
	index, err := kardashev.Index(future)
	if err != nil {
		return Result{}, err
	}
	progress := kardashev.ProgressTowardTarget(index, e.baseline.ReferenceAnchor, e.baseline.TargetIndex)

	var bonus float64
	if o.robust {
		if bonus, err = ethics.RobustnessBonus(o.stakeholders); err != nil {
			return Result{}, err
		}
	}

	w := e.scorer.Weights()
	if o.weights != nil {
		w = *o.weights
	}
	score := ethics.WeightedScore(w, progress, in.equity, in.sustainability, bonus)

	// classified
	res := Result{
		GrowthFactor:   s.GrowthFactor,
		Years:          s.Years,
		FuturePower:    future,
		Index:          index,
		Progress:       progress,
		GapFactor:      e.baseline.TargetPower.Ratio(future),
		Equity:         in.equity,
		Sustainability: in.sustainability,
		UsedHints:      in.hinted,
		Weights:        w,
		Bonus:          bonus,
		Score:          score,
		RemorseHorizon: ethics.RemorseHorizon(score, e.baseline.BaseRemorseHorizon),
		Threshold:      o.threshold,
		Classification: classify(score, o.threshold),
	}

	e.log.Debug("scenario evaluated",
		"growth", s.GrowthFactor, "years", s.Years, "index", index,
		"score", score, "horizon", res.RemorseHorizon, "class", string(res.Classification))
	return res, nil
}

type inputs struct {
	equity, sustainability float64
	hinted                 bool
}

func (e *Evaluator) validate(s Scenario, o options) (inputs, error) {
	if !util.Finite(s.GrowthFactor) || s.GrowthFactor <= 0 {
		return inputs{}, kardashev.NewDomainError("growth_factor", s.GrowthFactor, "must be > 0")
	}
	if !util.Finite(s.Years) || s.Years < 0 {
		return inputs{}, kardashev.NewDomainError("years", s.Years, "must be >= 0")
	}
	if math.IsNaN(o.threshold) {
		return inputs{}, kardashev.NewDomainError("threshold", o.threshold, "must be a number")
	}

	var in inputs
	if s.Equity == nil || s.Sustainability == nil {
		h := e.hints.Hints()
		if s.Equity == nil {
			in.equity = h.Equity
			e.log.Info("using real-world hint", "field", "equity", "value", h.Equity)
		}
		if s.Sustainability == nil {
			in.sustainability = h.Sustainability
			e.log.Info("using real-world hint", "field", "sustainability", "value", h.Sustainability)
		}
		in.hinted = true
	}
	if s.Equity != nil {
		in.equity = *s.Equity
	}
	if s.Sustainability != nil {
		in.sustainability = *s.Sustainability
	}

	if !util.In01(in.equity) {
		return inputs{}, kardashev.NewDomainError("equity", in.equity, "must be in [0,1]")
	}
	if !util.In01(in.sustainability) {
		return inputs{}, kardashev.NewDomainError("sustainability", in.sustainability, "must be in [0,1]")
	}
	return in, nil
}
