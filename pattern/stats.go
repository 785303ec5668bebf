// SPDX-License-Identifier: MIT
// Package: pattern
//
// Purpose:
//   - Descriptive statistics computed on demand (never cached): Max, Min, Integral, Avg.
//   - Deterministic 0..n-1 folds; Rest slots are skipped by Max/Min and add 0 to Integral.
//   - A NaN slot makes Max/Min NaN wherever it sits.
//
// Policy:
//   - Max/Min over a pattern without numeric slots is ErrEmptyReduction, never ±Inf.
//   - Avg divides by the total length, not by the count of numeric slots.

package pattern

import "math"

const (
	opMax   = "Max"
	opMin   = "Min"
	opStats = "Stats"
)

// Summary bundles the statistics of one pattern.
type Summary struct {
	Len      int     // total slot count
	Rests    int     // number of Rest slots
	Min      float64 // smallest number
	Max      float64 // largest number
	Integral float64 // sum of numbers
	Avg      float64 // Integral / Len
}

// Max returns the largest numeric slot, or NaN if any numeric slot is NaN.
//
// Errors:
//   - ErrEmptyReduction when no slot holds a number.
func (p *Pattern) Max() (float64, error) {
	v, err := p.fold(func(best, x float64) bool { return x > best })
	if err != nil {
		return 0, patternErrorf(opMax, err)
	}
	return v, nil
}

// Min returns the smallest numeric slot, or NaN if any numeric slot is NaN.
//
// Errors:
//   - ErrEmptyReduction when no slot holds a number.
func (p *Pattern) Min() (float64, error) {
	v, err := p.fold(func(best, x float64) bool { return x < best })
	if err != nil {
		return 0, patternErrorf(opMin, err)
	}
	return v, nil
}

// Integral returns the sum of numeric slots; rests contribute 0.
func (p *Pattern) Integral() float64 {
	var sum float64
	for i := 0; i < p.Len(); i++ {
		sum += p.values[i].OrZero()
	}
	return sum
}

// Avg returns Integral()/Len(). A zero-length pattern yields NaN.
func (p *Pattern) Avg() float64 {
	n := float64(p.Len())
	return p.Integral() / n
}

// Stats computes every statistic in one call.
//
// Errors:
//   - ErrEmptyReduction when no slot holds a number; Len, Rests, Integral
//     and Avg are still filled in.
func (p *Pattern) Stats() (Summary, error) {
	s := Summary{Len: p.Len(), Integral: p.Integral(), Avg: p.Avg()}
	for i := 0; i < s.Len; i++ {
		if p.values[i].IsRest() {
			s.Rests++
		}
	}
	if s.Rests == s.Len {
		return s, patternErrorf(opStats, ErrEmptyReduction)
	}
	// Both folds succeed once a numeric slot is known to exist.
	s.Min, _ = p.Min()
	s.Max, _ = p.Max()

	return s, nil
}

// fold walks numeric slots in index order, replacing the running best
// whenever better(best, x) holds. The first number seeds the fold; a NaN
// ends it with NaN.
func (p *Pattern) fold(better func(best, x float64) bool) (float64, error) {
	var (
		best  float64
		found bool
	)
	for i := 0; i < p.Len(); i++ {
		x, ok := p.values[i].Float()
		if !ok {
			continue
		}
		if math.IsNaN(x) {
			return x, nil
		}
		if !found || better(best, x) {
			best, found = x, true
		}
	}
	if !found {
		return 0, ErrEmptyReduction
	}
	return best, nil
}
