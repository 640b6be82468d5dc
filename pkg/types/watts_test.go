package types

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatts_Humanized_Boundaries(t *testing.T) {
	cases := []struct {
		in   Watts
		want string
	}{
		{Watts(0), "0.00 W"},
		{Watts(1), "1.00 W"},
		{Watts(999), "999.00 W"},
		{Watts(1e3), "1.00 kW"},
		{Watts(1e6), "1.00 MW"},
		{Watts(1e9), "1.00 GW"},
		{Watts(2.3e13), "23.00 TW"},
		{Watts(1.74e17), "174.00 PW"},
		{Watts(1e19), "10.00 EW"},
		{Watts(-2.5e12), "-2.50 TW"},
		{Watts(999_999_999_999), "1000.00 GW"},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Humanized())
		})
	}
}

func TestWatts_Scientific(t *testing.T) {
	assert.Equal(t, "2.30e+13 W", Watts(2.3e13).Scientific())
	assert.Equal(t, "1.74e+17 W", Watts(1.74e17).Scientific())
}

func TestWatts_Accessors(t *testing.T) {
	w := Watts(2.3e13)
	assert.InDelta(t, 23.0, w.TW(), 1e-12)
	assert.InDelta(t, 2.3e16, w.Scale(1000).ToFloat64(), 1e3)
	assert.InDelta(t, 7565.2, Watts(1.74e17).Ratio(w), 0.1)
	assert.True(t, math.IsInf(w.Ratio(0), 1))
}
