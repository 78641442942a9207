package report

import (
	"math"
	"sort"
)

// mean returns the arithmetic mean of xs; ok is false for an empty sample.
func mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}

// median returns the middle value of xs, averaging the two middle values for
// even-sized samples.
func median(xs []float64) (float64, bool) {
	return quantile(sorted(xs), 0.5)
}

// quantile returns the q-th quantile of an ascending sample using linear
// interpolation between closest ranks (position q*(n-1)).
func quantile(asc []float64, q float64) (float64, bool) {
	n := len(asc)
	if n == 0 {
		return 0, false
	}
	if q <= 0 {
		return asc[0], true
	}
	if q >= 1 {
		return asc[n-1], true
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return asc[lo] + (asc[hi]-asc[lo])*frac, true
}

func sorted(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}

// round rounds half away from zero to the given number of decimal places.
func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

func ptr(v float64) *float64 { return &v }
