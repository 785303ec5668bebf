// SPDX-License-Identifier: MIT
// Package: metapattern/pipeline
//
// pipeline.go: the stock accent pipeline.

package pipeline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metapattern/generator"
	"github.com/katalvlaran/metapattern/pattern"
)

// Stage names, in the order Generate records them.
const (
	StageSpiked     = "spiked"
	StageChances    = "chances"
	StageSwooshed   = "swooshed"
	StageShaped     = "shaped"
	StageNormalized = "normalized"
	StageKernel     = "kernel"
	StageConvolved  = "convolved"
	StageDraws      = "draws"
	StageFinal      = "final"
)

// Stage is one named intermediate pattern.
type Stage struct {
	Name    string
	Pattern *pattern.Pattern
}

// Result holds the final pattern and every intermediate stage in order.
type Result struct {
	Final  *pattern.Pattern
	Stages []Stage
}

// Stage returns the pattern recorded under name.
func (r *Result) Stage(name string) (*pattern.Pattern, bool) {
	for _, s := range r.Stages {
		if s.Name == name {
			return s.Pattern, true
		}
	}
	return nil, false
}

// Generate runs the pipeline. The final pattern holds Number(cfg.Hit) where
// the normalised chance beat its uniform draw, and Rest elsewhere.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	res := &Result{}
	record := func(name string, p *pattern.Pattern) *pattern.Pattern {
		res.Stages = append(res.Stages, Stage{Name: name, Pattern: p})
		return p
	}

	spiked, err := generator.Spiked(cfg.LengthExponent, generator.WithSpikeExponent(cfg.SpikeExponent))
	if err != nil {
		return nil, stageErr(StageSpiked, err)
	}
	record(StageSpiked, spiked)

	depth := cfg.AccentDepth
	accents := spiked.Remap(func(v pattern.Value, _ int) pattern.Value {
		return pattern.Number(math.Pow(2, v.OrZero()*depth))
	})
	chances, err := accents.Multiply(pattern.Scalar(cfg.ChanceScale))
	if err != nil {
		return nil, stageErr(StageChances, err)
	}
	record(StageChances, chances)

	swooshed, err := generator.Swooshed(cfg.LengthExponent, generator.WithSwooshExponent(cfg.SwooshExponent))
	if err != nil {
		return nil, stageErr(StageSwooshed, err)
	}
	record(StageSwooshed, swooshed)

	shaped, err := chances.Multiply(pattern.Vector(swooshed))
	if err != nil {
		return nil, stageErr(StageShaped, err)
	}
	record(StageShaped, shaped)

	normalized, err := shaped.Normalize()
	if err != nil {
		return nil, stageErr(StageNormalized, err)
	}
	record(StageNormalized, normalized)

	kernel, err := buildKernel(cfg)
	if err != nil {
		return nil, stageErr(StageKernel, err)
	}
	record(StageKernel, kernel)

	convolved, err := swooshed.CircularConvolve(kernel)
	if err != nil {
		return nil, stageErr(StageConvolved, err)
	}
	record(StageConvolved, convolved)

	draws, err := generator.Random(cfg.Length(), generator.WithSeed(cfg.Seed))
	if err != nil {
		return nil, stageErr(StageDraws, err)
	}
	record(StageDraws, draws)

	hit := pattern.Number(cfg.Hit)
	final, err := pattern.ApplyVector(normalized, draws, func(chance, draw pattern.Value, _ int) pattern.Value {
		if chance.OrZero() > draw.OrZero() {
			return hit
		}
		return pattern.Rest
	})
	if err != nil {
		return nil, stageErr(StageFinal, err)
	}
	res.Final = record(StageFinal, final)

	return res, nil
}

// buildKernel places cfg.Kernel taps into a zero pattern of the pipeline length.
func buildKernel(cfg Config) (*pattern.Pattern, error) {
	kernel, err := pattern.Zeros(cfg.Length())
	if err != nil {
		return nil, err
	}
	for _, idx := range cfg.kernelIndices() {
		if err := kernel.Set(idx, pattern.Number(cfg.Kernel[idx])); err != nil {
			return nil, err
		}
	}
	return kernel, nil
}

func stageErr(stage string, err error) error {
	return fmt.Errorf("Generate: stage %s: %w", stage, err)
}
