package util

import (
	"math"
	"strconv"
)

func SafeDiv(n, d float64) float64 {
	const eps = 1e-12
	if d > eps || d < -eps {
		return n / d
	}
	return 0
}

// In01 reports whether x lies in the closed unit interval. NaN is never in range.
func In01(x float64) bool { return x >= 0 && x <= 1 }

// Finite reports whether x is neither NaN nor ±Inf.
func Finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// LogSpace returns n points spaced evenly on a log10 scale from 10^start to
// 10^stop inclusive. n == 1 yields only 10^start; n <= 0 yields nil.
func LogSpace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = math.Pow(10, start)
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, start+step*float64(i))
	}
	// exact endpoint, avoids drift from repeated addition
	out[n-1] = math.Pow(10, stop)
	return out
}

// FmtFloat formats with the shortest representation that round-trips.
func FmtFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
