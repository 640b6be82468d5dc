// Package kardashev converts power figures to Kardashev-scale indices using the
// Sagan interpolation K = (log10(P) - 6) / 10 and measures progress toward a
// target index relative to a reference anchor.
package kardashev

import (
	"math"

	"github.com/ja7ad/pemev/pkg/types"
	"github.com/ja7ad/pemev/pkg/util"
)

const (
	// DefaultAnchor is the reference index progress is normalized against.
	// It is the index the formula yields for ~23 TW, rounded to three places.
	DefaultAnchor = 0.736
	// TypeI is the index of a Type I civilization.
	TypeI = 1.0
)

// Index returns the Kardashev index of power.
//
//	K = (log10(P) - 6) / 10
//
// P must be positive and finite.
func Index(power types.Watts) (float64, error) {
	p := power.ToFloat64()
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, NewDomainError("power", p, "must be finite")
	}
	if p <= 0 {
		return 0, NewDomainError("power", p, "must be > 0, log10 undefined")
	}
	return (math.Log10(p) - 6) / 10, nil
}

// PowerForIndex is the inverse of Index: P = 10^(10*K + 6).
func PowerForIndex(index float64) types.Watts {
	return types.Watts(math.Pow(10, 10*index+6))
}

// ProgressTowardTarget normalizes index between anchor (0) and target (1):
//
//	min((index - anchor) / (target - anchor), 1.0)
//
// The result is capped at 1 but is not floored: scenarios below the anchor
// yield negative progress. A degenerate span (target == anchor) yields 0.
func ProgressTowardTarget(index, anchor, target float64) float64 {
	return math.Min(util.SafeDiv(index-anchor, target-anchor), 1.0)
}

// Progress is ProgressTowardTarget with DefaultAnchor and TypeI.
func Progress(index float64) float64 {
	return ProgressTowardTarget(index, DefaultAnchor, TypeI)
}
