// Package config reads caller options for the transcoder from the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/caarlos0/env/v7"
	"github.com/npillmayer/transcode"
	"github.com/npillmayer/transcode/morse"
	"github.com/npillmayer/transcode/morse/morsetab"
)

var errPlaceholder = errors.New("placeholder must be exactly one character")

// Config holds the options a caller may set through the environment.
type Config struct {
	Strict      bool   `env:"TRANSCODE_STRICT"      envDefault:"false"`
	Placeholder string `env:"TRANSCODE_PLACEHOLDER" envDefault:"�"`
	MorseTable  string `env:"TRANSCODE_MORSE_TABLE" envDefault:""`
	Effects     bool   `env:"TRANSCODE_EFFECTS"     envDefault:"true"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from vars instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to load transcode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values which cannot be expressed through struct tags.
func (cfg Config) Validate() error {
	if utf8.RuneCountInString(cfg.Placeholder) != 1 {
		return fmt.Errorf("%w: %q", errPlaceholder, cfg.Placeholder)
	}
	return nil
}

// PlaceholderRune returns the configured placeholder.
func (cfg Config) PlaceholderRune() rune {
	r, _ := utf8.DecodeRuneInString(cfg.Placeholder)
	return r
}

// Options builds codec options, loading a custom Morse table if one is
// configured.
func (cfg Config) Options() (transcode.Options, error) {
	if err := cfg.Validate(); err != nil {
		return transcode.Options{}, err
	}
	opts := transcode.Options{
		Strict:      cfg.Strict,
		Placeholder: cfg.PlaceholderRune(),
	}
	if cfg.MorseTable == "" {
		return opts, nil
	}
	table, err := loadTable(cfg.MorseTable)
	if err != nil {
		return transcode.Options{}, err
	}
	opts.Table = table
	return opts, nil
}

func loadTable(path string) (*morse.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open morse table: %w", err)
	}
	defer f.Close()
	table, err := morsetab.LoadTable(path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load morse table %s: %w", path, err)
	}
	return table, nil
}
