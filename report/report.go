// SPDX-License-Identifier: MIT
// Package: metapattern/report
//
// report.go: statistics line + graph emission for a named pattern.

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/metapattern/pattern"
)

const (
	significantDigits = 5
	ruleGlyph         = "-"
	notAvailable      = "n/a"
	defaultName       = "unnamed"
	trailer           = "\n\n"
)

// Default styles; override with WithHeaderStyle / WithRuleStyle.
var (
	DefaultHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	DefaultRuleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	DefaultGraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// Option customizes Write.
type Option func(*config)

type config struct {
	header lipgloss.Style
	rule   lipgloss.Style
	graph  lipgloss.Style
	plain  bool
}

// WithHeaderStyle styles the statistics line.
func WithHeaderStyle(s lipgloss.Style) Option {
	return func(c *config) { c.header = s }
}

// WithRuleStyle styles the dashed rule above the header.
func WithRuleStyle(s lipgloss.Style) Option {
	return func(c *config) { c.rule = s }
}

// WithGraphStyle styles the bar graph.
func WithGraphStyle(s lipgloss.Style) Option {
	return func(c *config) { c.graph = s }
}

// Plain disables all styling.
func Plain() Option {
	return func(c *config) { c.plain = true }
}

// StatsLine returns the unstyled summary line for p. Min and Max print as
// "n/a" when p has no numeric slot.
func StatsLine(name string, p *pattern.Pattern) string {
	if name == "" {
		name = defaultName
	}
	s, err := p.Stats()
	minText, maxText := notAvailable, notAvailable
	if err == nil {
		minText = toPrecision(s.Min, significantDigits)
		maxText = toPrecision(s.Max, significantDigits)
	}
	return fmt.Sprintf("Pattern: %s | Length: %d | Min: %s | Max: %s | Integral: %s | Avg: %s",
		name, s.Len, minText, maxText,
		toPrecision(s.Integral, significantDigits),
		toPrecision(s.Avg, significantDigits))
}

// Write emits the rule, the statistics line, the graph and two blank lines.
func Write(w io.Writer, name string, p *pattern.Pattern, opts ...Option) error {
	if p == nil {
		return fmt.Errorf("report.Write(%q): %w", name, pattern.ErrNilPattern)
	}
	cfg := config{header: DefaultHeaderStyle, rule: DefaultRuleStyle, graph: DefaultGraphStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	render := func(s lipgloss.Style, text string) string {
		if cfg.plain || text == "" {
			return text
		}
		return s.Render(text)
	}

	var sb strings.Builder
	sb.WriteString(render(cfg.rule, strings.Repeat(ruleGlyph, p.Len())))
	sb.WriteByte('\n')
	sb.WriteString(render(cfg.header, StatsLine(name, p)))
	sb.WriteByte('\n')
	graph := p.RenderASCII()
	if cfg.plain {
		sb.WriteString(graph)
	} else {
		// Style line by line so padding never spills across newlines.
		for _, line := range strings.SplitAfter(graph, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(render(cfg.graph, strings.TrimSuffix(line, "\n")))
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(trailer)

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("report.Write(%q): %w", name, err)
	}
	return nil
}

// toPrecision formats x with the given number of significant digits, keeping
// trailing zeros, and switches to exponent form outside 1e-6 ≤ |x| < 10^digits.
// The exponent carries no leading zeros: 1.2346e+5, 1.5000e-7.
func toPrecision(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return strconv.FormatFloat(0, 'f', digits-1, 64)
	}
	// Read the exponent after rounding, so 99999.7 is treated as 1.0000e+05.
	sci := strconv.FormatFloat(x, 'e', digits-1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	if exp < -6 || exp >= digits {
		return shortExponent(sci, exp)
	}
	return strconv.FormatFloat(x, 'f', digits-1-exp, 64)
}

// shortExponent rewrites the exponent of a FormatFloat 'e' string without
// zero padding.
func shortExponent(sci string, exp int) string {
	mantissa := sci[:strings.IndexByte(sci, 'e')]
	sign := "+"
	if exp < 0 {
		sign, exp = "-", -exp
	}
	return mantissa + "e" + sign + strconv.Itoa(exp)
}
