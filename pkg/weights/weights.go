// Package weights derives the (energy, equity, sustainability) weighting of the
// ethical score from raw entropy, with two distinct fallbacks: a local secure
// generator when the primary source is empty, and a fixed ultra-safe triple
// when the bytes cannot be decoded.
package weights

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// EntropyLen is three little-endian uint64 values.
	EntropyLen = 24
	// SumTolerance bounds |Sum()-1| for a valid triple.
	SumTolerance = 1e-9
)

// Triple is an immutable weighting of the three score criteria.
type Triple struct {
	Energy         float64 `yaml:"energy" json:"energy"`
	Equity         float64 `yaml:"equity" json:"equity"`
	Sustainability float64 `yaml:"sustainability" json:"sustainability"`
}

// Default is the hand-tuned weighting used when seeding is disabled.
func Default() Triple { return Triple{Energy: 0.3, Equity: 0.4, Sustainability: 0.3} }

// Fallback is the ultra-safe triple used when entropy cannot be decoded.
// Its components are rounded and only approximately sum to 1.
func Fallback() Triple { return Triple{Energy: 0.33, Equity: 0.34, Sustainability: 0.33} }

func (t Triple) Sum() float64 { return t.Energy + t.Equity + t.Sustainability }

// Validate checks that no weight is negative and the weights sum to 1.
func (t Triple) Validate() error {
	for _, v := range []float64{t.Energy, t.Equity, t.Sustainability} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: negative weight %g", ErrInvalid, v)
		}
	}
	if s := t.Sum(); math.Abs(s-1) > SumTolerance {
		return fmt.Errorf("%w: weights sum to %.6f, must sum to 1.0", ErrInvalid, s)
	}
	return nil
}

// Normalize rescales the triple to sum to 1. A zero or negative sum is an error.
func (t Triple) Normalize() (Triple, error) {
	s := t.Sum()
	if !(s > 0) || math.IsInf(s, 0) {
		return Triple{}, fmt.Errorf("%w: sum %g", ErrDegenerateSum, s)
	}
	return Triple{Energy: t.Energy / s, Equity: t.Equity / s, Sustainability: t.Sustainability / s}, nil
}

func (t Triple) String() string {
	return fmt.Sprintf("energy=%.2f equity=%.2f sustainability=%.2f", t.Energy, t.Equity, t.Sustainability)
}

// Decode interprets b as three little-endian uint64 values, maps each to
// [0,1] by dividing by 2^64-1, and normalizes them to sum to 1.
func Decode(b []byte) (Triple, error) {
	if len(b) != EntropyLen {
		return Triple{}, fmt.Errorf("%w: %w: got %d bytes, want %d", ErrDecode, ErrDecodeLength, len(b), EntropyLen)
	}
	var f [3]float64
	for i := range f {
		f[i] = float64(binary.LittleEndian.Uint64(b[i*8:])) / math.MaxUint64
	}
	t, err := Triple{Energy: f[0], Equity: f[1], Sustainability: f[2]}.Normalize()
	if err != nil {
		return Triple{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return t, nil
}

// Derive is Decode with the ultra-safe fallback: it never fails.
func Derive(b []byte) Triple {
	t, _ := derive(b)
	return t
}

// derive returns Fallback() together with the decode error that caused it.
func derive(b []byte) (Triple, error) {
	t, err := Decode(b)
	if err != nil {
		return Fallback(), err
	}
	return t, nil
}
