package types

import (
	"fmt"
	"math"
)

// Watts is a float64 wrapper representing a power figure in watts.
type Watts float64

// Humanized returns a human-readable string with automatic SI unit (W, kW, MW, GW, TW, PW, EW).
func (w Watts) Humanized() string {
	v := float64(w)
	a := math.Abs(v)
	switch {
	case a >= 1e18:
		return fmt.Sprintf("%.2f EW", v/1e18)
	case a >= 1e15:
		return fmt.Sprintf("%.2f PW", v/1e15)
	case a >= 1e12:
		return fmt.Sprintf("%.2f TW", v/1e12)
	case a >= 1e9:
		return fmt.Sprintf("%.2f GW", v/1e9)
	case a >= 1e6:
		return fmt.Sprintf("%.2f MW", v/1e6)
	case a >= 1e3:
		return fmt.Sprintf("%.2f kW", v/1e3)
	default:
		return fmt.Sprintf("%.2f W", v)
	}
}

// Scientific returns the value in exponent notation, e.g. "2.30e+13 W".
func (w Watts) Scientific() string { return fmt.Sprintf("%.2e W", float64(w)) }

// TW returns the number of terawatts.
func (w Watts) TW() float64 { return float64(w) / 1e12 }

// Scale multiplies the power by a growth factor.
func (w Watts) Scale(factor float64) Watts { return Watts(float64(w) * factor) }

// Ratio returns w/other, or +Inf when other is zero.
func (w Watts) Ratio(other Watts) float64 {
	if other == 0 {
		return math.Inf(1)
	}
	return float64(w) / float64(other)
}

// ToFloat64 returns the raw watt value.
func (w Watts) ToFloat64() float64 { return float64(w) }
