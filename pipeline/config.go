// SPDX-License-Identifier: MIT
// Package: metapattern/pipeline
//
// config.go: YAML configuration, defaults and validation.

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/katalvlaran/metapattern/generator"
	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates a configuration that cannot drive Generate.
var ErrBadConfig = errors.New("pipeline: invalid config")

// Defaults reproduce the stock 128-step pipeline.
const (
	DefaultLengthExponent = 7
	DefaultSpikeExponent  = generator.DefaultSpikeExponent
	DefaultAccentDepth    = 4.0
	DefaultChanceScale    = 0.05
	DefaultSwooshExponent = generator.DefaultSwooshExponent
	DefaultHit            = 0.8
)

// Config drives Generate. Field names follow the YAML keys.
type Config struct {
	LengthExponent int             `yaml:"length_exponent"`
	SpikeExponent  float64         `yaml:"spike_exponent"`
	AccentDepth    float64         `yaml:"accent_depth"`
	ChanceScale    float64         `yaml:"chance_scale"`
	SwooshExponent float64         `yaml:"swoosh_exponent"`
	Kernel         map[int]float64 `yaml:"kernel,flow"`
	Hit            float64         `yaml:"hit"`
	Seed           int64           `yaml:"seed"`
}

// DefaultConfig returns the stock configuration. The kernel map is fresh on
// every call.
func DefaultConfig() Config {
	return Config{
		LengthExponent: DefaultLengthExponent,
		SpikeExponent:  DefaultSpikeExponent,
		AccentDepth:    DefaultAccentDepth,
		ChanceScale:    DefaultChanceScale,
		SwooshExponent: DefaultSwooshExponent,
		Kernel:         DefaultKernel(1 << DefaultLengthExponent),
		Hit:            DefaultHit,
	}
}

// defaultTaps are the default kernel weights at 0, n/4, n/2 and 3n/4.
var defaultTaps = [4]float64{0.5, 0.1, 0.3, 0.1}

// DefaultKernel returns the default kernel for a pattern of length n: taps at
// the quarter positions, {0: 0.5, 32: 0.1, 64: 0.3, 96: 0.1} for n = 128.
// When n < 4 quarters coincide and their weights add up, so the taps always
// sum to 1. n < 1 yields an empty kernel.
func DefaultKernel(n int) map[int]float64 {
	kernel := make(map[int]float64, len(defaultTaps))
	if n < 1 {
		return kernel
	}
	for q, w := range defaultTaps {
		kernel[q*n/len(defaultTaps)] += w
	}
	return kernel
}

// LoadConfig decodes a YAML document on top of DefaultConfig. Unknown keys
// are rejected. A kernel given in the document replaces the default kernel
// wholesale; otherwise DefaultKernel is laid out for the decoded length.
// An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	cfg.Kernel = nil

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w: %v", ErrBadConfig, err)
	}
	if cfg.Kernel == nil && cfg.LengthExponent >= 0 && cfg.LengthExponent <= generator.MaxLengthExponent {
		cfg.Kernel = DefaultKernel(cfg.Length())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig over the named file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfigFile: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Length is the pattern length implied by LengthExponent.
func (c Config) Length() int {
	return 1 << c.LengthExponent
}

// Validate reports the first field that cannot drive Generate, wrapped around ErrBadConfig.
func (c Config) Validate() error {
	if c.LengthExponent < 1 || c.LengthExponent > generator.MaxLengthExponent {
		return badConfig("length_exponent %d outside 1..%d", c.LengthExponent, generator.MaxLengthExponent)
	}
	for _, f := range []struct {
		name string
		x    float64
	}{
		{"spike_exponent", c.SpikeExponent},
		{"accent_depth", c.AccentDepth},
		{"swoosh_exponent", c.SwooshExponent},
	} {
		if !finite(f.x) {
			return badConfig("%s must be finite, got %v", f.name, f.x)
		}
	}
	if !finite(c.ChanceScale) || c.ChanceScale <= 0 {
		return badConfig("chance_scale must be positive, got %v", c.ChanceScale)
	}
	if !finite(c.Hit) || c.Hit <= 0 {
		return badConfig("hit must be positive, got %v", c.Hit)
	}

	n := c.Length()
	for _, idx := range c.kernelIndices() {
		if idx < 0 || idx >= n {
			return badConfig("kernel tap %d outside 0..%d", idx, n-1)
		}
		if tap := c.Kernel[idx]; !finite(tap) {
			return badConfig("kernel tap %d must be finite, got %v", idx, tap)
		}
	}
	return nil
}

// kernelIndices returns the kernel tap positions in ascending order.
func (c Config) kernelIndices() []int {
	idx := make([]int, 0, len(c.Kernel))
	for i := range c.Kernel {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

func badConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadConfig, fmt.Sprintf(format, args...))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
