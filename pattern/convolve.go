// SPDX-License-Identifier: MIT
// Package: pattern
//
// convolve.go: discrete circular convolution against a kernel pattern.
//
// Algorithm (direct form):
//
//	out[i] = Σ_{k=0}^{K-1} p[(i - k + N) mod N] * kernel[k],   i = 0..N-1
//
//   - Output length is always N = p.Len(), never the kernel's length.
//   - K may be smaller, equal or larger than N; taps beyond N alias onto the
//     same positions (accepted behavior, not an error).
//   - Summation is ascending in k so results are reproducible bit-for-bit.
//   - Rest slots on either side contribute 0; every output slot is a number.
//
// Complexity: O(N·K) time, O(N) memory.

package pattern

const opConvolve = "CircularConvolve"

// CircularConvolve returns the circular convolution of p with kernel.
//
// Errors:
//   - ErrNilPattern if p or kernel is nil.
func (p *Pattern) CircularConvolve(kernel *Pattern) (*Pattern, error) {
	if p == nil || kernel == nil {
		return nil, patternErrorf(opConvolve, ErrNilPattern)
	}

	n, k := p.Len(), kernel.Len()
	out := make([]Value, n)
	// Unpack once so the hot loop only touches float64 slices.
	xs, taps := p.Floats(), kernel.Floats()

	var (
		i, j, idx int
		sum       float64
	)
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < k; j++ {
			// (i - j) may be many multiples of n below zero when k > n.
			idx = (i - j) % n
			if idx < 0 {
				idx += n
			}
			sum += xs[idx] * taps[j]
		}
		out[i] = Number(sum)
	}

	return &Pattern{values: out}, nil
}
