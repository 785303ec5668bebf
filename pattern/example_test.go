// SPDX-License-Identifier: MIT

package pattern_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metapattern/pattern"
)

// ExamplePattern_CircularConvolve shifts a pattern one step to the right by
// convolving it with a kernel whose only tap sits at k=1.
func ExamplePattern_CircularConvolve() {
	p := pattern.FromFloats(1, 2, 3, 4)
	kernel := pattern.FromFloats(0, 1, 0, 0)

	out, err := p.CircularConvolve(kernel)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// [4 1 2 3]
}

// ExamplePattern_Add shows broadcast and positional arithmetic side by side.
func ExamplePattern_Add() {
	a, _ := pattern.Prefilled(3, pattern.Number(3))
	b, _ := pattern.Prefilled(3, pattern.Number(6))

	sum, _ := a.Add(pattern.Vector(b))
	doubled, _ := a.Multiply(pattern.Scalar(2))
	squared, _ := a.Power(pattern.Scalar(2))
	fmt.Println(sum, doubled, squared)

	_, err := a.Add(pattern.Vector(pattern.FromFloats(1, 2)))
	fmt.Println(errors.Is(err, pattern.ErrSizeMismatch))
	// Output:
	// [9 9 9] [6 6 6] [9 9 9]
	// true
}

// ExamplePattern_RenderASCII draws a rising ramp.
func ExamplePattern_RenderASCII() {
	p := pattern.FromFloats(0.2, 0.4, 0.6, 0.8)
	fmt.Print(p.RenderASCII())
	// Output:
	//
	//    8
	//    8
	//   68
	//   68
	//  468
	//  468
	// 2468
	// 2468
	// 2468
}
