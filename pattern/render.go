// SPDX-License-Identifier: MIT
// Package: pattern
//
// render.go: deterministic ASCII bar graph of a pattern.
//
// Layout:
//   - graphHeight+1 rows (top row first), each exactly Len() characters, each ending in '\n'.
//   - Column i has bucket b = round(v * (graphHeight+1)), rounding halves up.
//   - The column's glyph is '0'..'9' for b ≤ 9 and 'A', 'B', ... for b ≥ 10 (capped at 'Z').
//   - Row r shows the glyph only when b ≥ graphHeight - r, so bars grow upward
//     from the bottom row; otherwise the cell is a space.
//   - Rest, NaN and negative buckets never reach a row and render as blank columns.
//     A Rest is not drawn as bucket 0: only Number(0) puts a '0' on the bottom row,
//     so silence and a zero-valued hit stay distinguishable.

package pattern

import (
	"math"
	"strings"
)

const (
	graphHeight = 9 // rows are 0..graphHeight

	glyphBlank  = ' '
	glyphDigit0 = '0'
	glyphLetter = 'A'
	glyphLast   = 'Z'
	digitLimit  = 9   // largest bucket drawn as a digit
	bucketNone  = -1  // sentinel bucket for slots that never draw
	roundHalfUp = 0.5 // Floor(x+0.5) rounds halves toward +Inf
)

// RenderASCII returns the bar graph described above.
// Complexity: O(rows·n) time and memory.
func (p *Pattern) RenderASCII() string {
	n := p.Len()
	buckets := make([]int, n)
	glyphs := make([]byte, n)
	for i := 0; i < n; i++ {
		buckets[i] = bucketOf(p.values[i])
		glyphs[i] = glyphOf(buckets[i])
	}

	var sb strings.Builder
	sb.Grow((n + 1) * (graphHeight + 1))
	for r := 0; r <= graphHeight; r++ {
		for i := 0; i < n; i++ {
			if buckets[i] >= graphHeight-r {
				sb.WriteByte(glyphs[i])
			} else {
				sb.WriteByte(glyphBlank)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// bucketOf maps a slot onto the graph scale; bucketNone means "never drawn".
func bucketOf(v Value) int {
	x, ok := v.Float()
	if !ok || math.IsNaN(x) {
		return bucketNone
	}
	scaled := math.Floor(x*(graphHeight+1) + roundHalfUp)
	switch {
	case scaled < 0:
		return bucketNone
	case scaled > float64(math.MaxInt32):
		return math.MaxInt32
	}
	return int(scaled)
}

// glyphOf returns the character for a bucket; the value is irrelevant for
// bucketNone since such columns are always blank.
func glyphOf(b int) byte {
	switch {
	case b < 0:
		return glyphBlank
	case b <= digitLimit:
		return byte(glyphDigit0 + b)
	case b-digitLimit-1 >= glyphLast-glyphLetter:
		return glyphLast
	default:
		return byte(glyphLetter + b - digitLimit - 1)
	}
}
