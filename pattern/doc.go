// Package pattern provides a fixed-length numeric sequence ("pattern") and the
// operator set used to generate and combine rhythmic event patterns.
//
// 🚀 What is a Pattern?
//
//	A Pattern is an ordered, fixed-length row of slots. Every slot holds either
//	a number or an explicit Rest ("no event here"), which is distinct from 0.
//	Patterns are built, reshaped and combined in small pipelines and finally
//	handed to a consumer such as a step player or a renderer.
//
// ✨ Key features:
//   - Container: New / FromFloats / Prefilled / Zeros / ByFunction, bounds-checked At/Set
//   - Statistics: Max, Min (rests ignored), Integral (rest = 0), Avg (Integral / Len)
//   - Combinators: Remap, ApplyScalar, ApplyVector, ApplyScalarOrVector, Add, Multiply, Power
//   - Circular convolution against a kernel pattern (output length = pattern length)
//   - Deterministic ASCII bar graph (10 rows, bars grow from the bottom)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/metapattern/pattern"
//
//	a, _ := pattern.Prefilled(4, pattern.Number(3))
//	b := pattern.FromFloats(0, 1, 0, 1)
//	sum, err := a.Add(pattern.Vector(b)) // [3,4,3,4]
//	if err != nil {
//	  // errors.Is(err, pattern.ErrSizeMismatch)
//	}
//	doubled, _ := sum.Multiply(pattern.Scalar(2))
//	fmt.Print(doubled.RenderASCII())
//
// Errors:
//
//	All failures are sentinel errors (see errors.go) wrapped with the operation
//	name; match them with errors.Is. Nothing in this package panics on user input.
//
// Concurrency:
//
//	Patterns are not safe for concurrent mutation. Every derived operation
//	returns a fresh Pattern and never mutates its operands.
package pattern
