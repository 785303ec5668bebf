// Package report prints a pattern the way a generator pipeline inspects its
// intermediate stages: a rule, a one-line statistics summary and the ASCII
// bar graph from pattern.RenderASCII.
//
//	--------------------------------
//	Pattern: spiked | Length: 32 | Min: 0.0000 | Max: 1.0000 | Integral: 6.2000 | Avg: 0.19375
//	A
//	...
//
// Numbers carry five significant digits. Styling uses lipgloss and degrades
// to plain text when the output is not a colour terminal; Plain() forces it.
package report
