package config

import (
	"fmt"
	"time"

	"github.com/go-ini/ini"

	"git.sr.ht/~lazyframe/lazyframe/lib/ui"
)

type ScrollConfig struct {
	StartBuffer  int           `ini:"start-buffer" default:"3"`
	EndBuffer    int           `ini:"end-buffer" default:"3"`
	SettleDelay  time.Duration `ini:"settle-delay" default:"75ms"`
	ScrollStep   int           `ini:"scroll-step" default:"0"`
	Probe        ui.ProbeMode  `ini:"probe" default:"scan" parse:"ParseProbe"`
	ProbeStride  int           `ini:"probe-stride" default:"1"`
	ProbeInset   int           `ini:"probe-inset" default:"0"`
	PaddingTop   int           `ini:"padding-top" default:"1"`
	PaddingLeft  int           `ini:"padding-left" default:"2"`
	PaddingRight int           `ini:"padding-right" default:"2"`
}

func (config *LazyConfig) parseScroll(file *ini.File) error {
	if err := MapToStruct(file.Section("scroll"), &config.Scroll, true); err != nil {
		return err
	}
	return config.Scroll.validate()
}

func (s *ScrollConfig) ParseProbe(sec *ini.Section, key *ini.Key) (ui.ProbeMode, error) {
	return ui.ParseProbeMode(key.String())
}

func (s *ScrollConfig) validate() error {
	nonNegative := []struct {
		name  string
		value int
	}{
		{"start-buffer", s.StartBuffer},
		{"end-buffer", s.EndBuffer},
		{"scroll-step", s.ScrollStep},
		{"probe-inset", s.ProbeInset},
		{"padding-top", s.PaddingTop},
		{"padding-left", s.PaddingLeft},
		{"padding-right", s.PaddingRight},
	}
	for _, opt := range nonNegative {
		if opt.value < 0 {
			return fmt.Errorf("[scroll].%s: must not be negative", opt.name)
		}
	}
	if s.ProbeStride < 1 {
		return fmt.Errorf("[scroll].probe-stride: must be at least 1")
	}
	if s.SettleDelay < 0 {
		return fmt.Errorf("[scroll].settle-delay: must not be negative")
	}
	return nil
}

// FrameConfig returns the scroll frame settings for one-line labels.
func (s *ScrollConfig) FrameConfig() ui.ScrollFrameConfig {
	return ui.ScrollFrameConfig{
		StartBuffer: s.StartBuffer,
		EndBuffer:   s.EndBuffer,
		SettleDelay: s.SettleDelay,
		ScrollStep:  s.ScrollStep,
		Probe:       s.Probe,
		ProbeStride: s.ProbeStride,
		ProbeInset:  s.ProbeInset,
		Padding: ui.Padding{
			Top:   s.PaddingTop,
			Left:  s.PaddingLeft,
			Right: s.PaddingRight,
		},
		ItemHeight: 1,
	}
}
