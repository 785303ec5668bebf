// SPDX-License-Identifier: MIT

// Command metapattern generates an accent pattern, prints its report and
// optionally plays it against a fake MIDI clock, logging the note messages.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/metapattern/pattern"
	"github.com/katalvlaran/metapattern/pipeline"
	"github.com/katalvlaran/metapattern/player"
	"github.com/katalvlaran/metapattern/report"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("metapattern: ")

	configPath := flag.String("config", "", "YAML pipeline config. Omitted fields keep their defaults.")
	seed := flag.Int64("seed", 0, "Override the config seed. 0 keeps the config value.")
	stages := flag.Bool("stages", false, "Report every intermediate stage, not only the final pattern.")
	plain := flag.Bool("plain", false, "Disable terminal styling.")
	play := flag.Bool("play", false, "Play the final pattern against a fake MIDI clock.")
	bpm := flag.Float64("bpm", 120, "Tempo of the fake clock.")
	bars := flag.Int("bars", 8, "Number of bars to play.")
	channel := flag.Uint("channel", 9, "MIDI channel (0-15).")
	key := flag.Uint("key", 36, "MIDI key (0-127).")
	flag.Parse()

	cfg := pipeline.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = pipeline.LoadConfigFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	res, err := pipeline.Generate(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var opts []report.Option
	if *plain {
		opts = append(opts, report.Plain())
	}
	for _, s := range res.Stages {
		if !*stages && s.Name != pipeline.StageFinal {
			continue
		}
		if err := report.Write(os.Stdout, s.Name, s.Pattern, opts...); err != nil {
			log.Fatal(err)
		}
	}

	if !*play {
		return
	}
	if *channel > 15 || *key > 127 {
		log.Fatalf("channel %d / key %d out of MIDI range", *channel, *key)
	}
	voice := player.Voice{Channel: uint8(*channel), Key: uint8(*key)}
	if err := playPattern(res.Final, voice, *bpm, *bars); err != nil {
		log.Fatal(err)
	}
}

// playPattern runs the fake clock for the given number of bars, or until
// interrupted, and logs every NoteOn/NoteOff it would send.
func playPattern(p *pattern.Pattern, voice player.Voice, bpm float64, bars int) error {
	if bars < 1 {
		return fmt.Errorf("bars must be positive, got %d", bars)
	}
	pl, err := player.New(p)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	limit := int64(bars) * player.PulsesPerBar
	sounding := false
	err = player.FakeClock{BPM: bpm}.Run(ctx, func(clock int64) {
		if clock >= limit {
			cancel()
			return
		}
		v, ok := pl.PlayAtClock(clock)
		if !ok {
			return
		}
		step := player.ClockToStep(clock)
		if sounding {
			log.Printf("step %4d  %v", step, voice.NoteOff())
			sounding = false
		}
		if msg, ok := voice.NoteOn(v); ok {
			log.Printf("step %4d  %v", step, msg)
			sounding = true
		}
	})
	if sounding {
		log.Printf("end        %v", voice.NoteOff())
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
