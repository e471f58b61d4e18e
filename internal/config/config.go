// Package config loads the TOML configuration for the studio CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Speech configures the synthesis and transcription provider.
type Speech struct {
	Provider       string `toml:"provider"`
	Voice          string `toml:"voice"`
	Model          string `toml:"model"`
	LanguageCode   string `toml:"language_code"`
	SampleRate     int    `toml:"sample_rate"`
	SplitCharCount int    `toml:"split_char_count"`
}

// Silence configures the silence detector defaults.
type Silence struct {
	Threshold   float64 `toml:"threshold"`
	MinDuration float64 `toml:"min_duration"`
}

// Editor configures timeline editing behavior.
type Editor struct {
	TimestampSync bool `toml:"timestamp_sync"`
}

// Config is the root of the configuration file.
type Config struct {
	Speech  Speech  `toml:"speech"`
	Silence Silence `toml:"silence"`
	Editor  Editor  `toml:"editor"`
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Speech: Speech{
			Provider:       "gemini",
			Voice:          "Kore",
			LanguageCode:   "ko-KR",
			SampleRate:     24000,
			SplitCharCount: 25,
		},
		Silence: Silence{
			Threshold:   0.01,
			MinDuration: 0.25,
		},
		Editor: Editor{
			TimestampSync: true,
		},
	}
}

// Load parses the configuration file at path, layered over defaults. A
// missing file is not an error; the defaults are returned as-is. An empty
// path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("open config: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Speech.Provider != "gemini" && c.Speech.Provider != "openai" {
		return fmt.Errorf("speech.provider must be gemini or openai, got %q", c.Speech.Provider)
	}
	if c.Speech.SampleRate <= 0 {
		return errors.New("speech.sample_rate must be positive")
	}
	if c.Speech.SplitCharCount <= 0 {
		return errors.New("speech.split_char_count must be positive")
	}
	if c.Silence.Threshold <= 0 || c.Silence.Threshold >= 1 {
		return errors.New("silence.threshold must be between 0 and 1")
	}
	if c.Silence.MinDuration <= 0 {
		return errors.New("silence.min_duration must be positive")
	}
	return nil
}
