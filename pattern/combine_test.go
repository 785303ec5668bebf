// SPDX-License-Identifier: MIT

package pattern_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/metapattern/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumFn(a, b pattern.Value, _ int) pattern.Value {
	return pattern.Number(a.OrZero() + b.OrZero())
}

func mustPrefilled(t *testing.T, n int, x float64) *pattern.Pattern {
	t.Helper()
	p, err := pattern.Prefilled(n, pattern.Number(x))
	require.NoError(t, err)
	return p
}

func TestRemap_ValueAndIndex(t *testing.T) {
	t.Parallel()

	p := mustPrefilled(t, 3, 6)
	out := p.Remap(func(v pattern.Value, i int) pattern.Value {
		return pattern.Number((v.OrZero() + float64(i)) * 10)
	})
	requireFloats(t, out, 60, 70, 80)
	requireFloats(t, p, 6, 6, 6)
}

func TestRemap_IntroducesRests(t *testing.T) {
	t.Parallel()

	p := pattern.FromFloats(0.1, 0.9, 0.4, 0.7)
	out := p.Remap(func(v pattern.Value, _ int) pattern.Value {
		if v.OrZero() > 0.5 {
			return pattern.Number(0.8)
		}
		return pattern.Rest
	})
	assert.Equal(t, "[- 0.8 - 0.8]", out.String())
}

func TestApplyScalar(t *testing.T) {
	t.Parallel()

	p := mustPrefilled(t, 3, 6)
	out := pattern.ApplyScalar(p, 2, func(a, b pattern.Value, _ int) pattern.Value {
		return pattern.Number(a.OrZero() * b.OrZero())
	})
	requireFloats(t, out, 12, 12, 12)

	var seen []int
	pattern.ApplyScalar(p, 0, func(a, _ pattern.Value, i int) pattern.Value {
		seen = append(seen, i)
		return a
	})
	assert.Equal(t, []int{0, 1, 2}, seen, "indices visited in ascending order")
}

func TestApplyVector_SizeMismatch(t *testing.T) {
	t.Parallel()

	_, err := pattern.ApplyVector(mustPrefilled(t, 2, 6), mustPrefilled(t, 3, 6), sumFn)
	require.ErrorIs(t, err, pattern.ErrSizeMismatch)

	_, err = pattern.ApplyVector(nil, mustPrefilled(t, 3, 6), sumFn)
	require.ErrorIs(t, err, pattern.ErrNilPattern)

	_, err = pattern.ApplyVector(mustPrefilled(t, 3, 6), mustPrefilled(t, 3, 6), nil)
	require.ErrorIs(t, err, pattern.ErrNilFunc)
}

func TestApplyVector_Positional(t *testing.T) {
	t.Parallel()

	a := pattern.FromFloats(1, 2, 3)
	b := pattern.FromFloats(10, 20, 30)
	out, err := pattern.ApplyVector(a, b, func(x, y pattern.Value, i int) pattern.Value {
		return pattern.Number(x.OrZero()*y.OrZero() + float64(i))
	})
	require.NoError(t, err)
	requireFloats(t, out, 10, 41, 92)
}

func TestApplyScalarOrVector_Dispatch(t *testing.T) {
	t.Parallel()

	a := mustPrefilled(t, 3, 3)
	b := mustPrefilled(t, 3, 6)

	viaVector, err := pattern.ApplyScalarOrVector(a, pattern.Vector(b), sumFn)
	require.NoError(t, err)
	direct, err := pattern.ApplyVector(a, b, sumFn)
	require.NoError(t, err)
	require.True(t, viaVector.Equal(direct))
	requireFloats(t, viaVector, 9, 9, 9)

	viaScalar, err := pattern.ApplyScalarOrVector(a, pattern.Scalar(6), sumFn)
	require.NoError(t, err)
	require.True(t, viaScalar.Equal(pattern.ApplyScalar(a, 6, sumFn)))
	requireFloats(t, viaScalar, 9, 9, 9)

	assert.True(t, pattern.Vector(b).IsVector())
	assert.False(t, pattern.Scalar(1).IsVector())

	_, err = pattern.ApplyScalarOrVector(a, pattern.Vector(mustPrefilled(t, 4, 1)), sumFn)
	require.ErrorIs(t, err, pattern.ErrSizeMismatch)
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := mustPrefilled(t, 3, 3)
	b := mustPrefilled(t, 3, 6)

	added, err := a.Add(pattern.Vector(b))
	require.NoError(t, err)
	requireFloats(t, added, 9, 9, 9)

	multiplied, err := a.Multiply(pattern.Scalar(2))
	require.NoError(t, err)
	requireFloats(t, multiplied, 6, 6, 6)

	powered, err := a.Power(pattern.Scalar(2))
	require.NoError(t, err)
	requireFloats(t, powered, 9, 9, 9)

	_, err = a.Add(pattern.Vector(mustPrefilled(t, 2, 1)))
	require.ErrorIs(t, err, pattern.ErrSizeMismatch)
	_, err = a.Multiply(pattern.Vector(mustPrefilled(t, 4, 1)))
	require.ErrorIs(t, err, pattern.ErrSizeMismatch)
	_, err = a.Power(pattern.Vector(nil))
	require.ErrorIs(t, err, pattern.ErrNilPattern)
}

func TestArithmetic_RestPropagates(t *testing.T) {
	t.Parallel()

	a := pattern.New([]pattern.Value{pattern.Number(2), pattern.Rest, pattern.Number(4)})
	b := pattern.New([]pattern.Value{pattern.Rest, pattern.Number(1), pattern.Number(0.5)})

	sum, err := a.Add(pattern.Vector(b))
	require.NoError(t, err)
	assert.Equal(t, "[- - 4.5]", sum.String())

	scaled, err := a.Multiply(pattern.Scalar(10))
	require.NoError(t, err)
	assert.Equal(t, "[20 - 40]", scaled.String())
}

func TestPower_NegativeBaseFractionalExponent(t *testing.T) {
	t.Parallel()

	out, err := pattern.FromFloats(-8).Power(pattern.Scalar(0.5))
	require.NoError(t, err)
	v, _ := out.At(0)
	x, ok := v.Float()
	require.True(t, ok)
	assert.True(t, math.IsNaN(x))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	out, err := pattern.FromFloats(0.5, 2, 1).Normalize()
	require.NoError(t, err)
	requireFloats(t, out, 0.25, 1, 0.5)

	_, err = pattern.FromFloats(0, 0).Normalize()
	require.ErrorIs(t, err, pattern.ErrZeroPeak)

	rests, err := pattern.Prefilled(2, pattern.Rest)
	require.NoError(t, err)
	_, err = rests.Normalize()
	require.ErrorIs(t, err, pattern.ErrEmptyReduction)
}
