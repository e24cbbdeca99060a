package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nebbyJammin/asciiweb/pkg/asciiart"
)

const appName = "asciiart"

// fileConfig mirrors config.toml.
type fileConfig struct {
	Generator asciiart.Config      `toml:"generator"`
	Text      asciiart.TextOptions `toml:"text"`
	Output    outputConfig         `toml:"output"`
}

type outputConfig struct {
	// Format is text, html, json, yaml or ansi. Empty picks ansi on a terminal and text otherwise.
	Format string `toml:"format"`
	// Interpolation is the re-sampling kernel: nearest, approx-bilinear, bilinear or catmull-rom.
	Interpolation string `toml:"interpolation"`
	// Title is the <title> of the html format.
	Title string `toml:"title"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() *fileConfig {
	return &fileConfig{
		Generator: asciiart.DefaultConfig(),
		Text:      asciiart.DefaultTextOptions(),
		Output: outputConfig{
			Interpolation: asciiart.InterpolationBiLinear.String(),
			Title:         appName,
		},
	}
}

/*
loadConfig builds the configuration: defaults, then the TOML file, then the ASCIIART_* environment variables. An explicit
path must exist. Without one, os.UserConfigDir()/asciiart/config.toml is used when present.
*/
func loadConfig(path string) (*fileConfig, error) {
	if path == "" {
		path = defaultConfigPath()
		if _, err := os.Stat(path); path == "" || errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := loadConfigFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func loadConfigFromReader(r io.Reader) (*fileConfig, error) {
	cfg := defaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// envOverrides maps each environment variable to the setting it replaces when non-empty.
func envOverrides(cfg *fileConfig) map[string]*string {
	return map[string]*string{
		"ASCIIART_CHARSET": &cfg.Generator.Charset,
		"ASCIIART_FORMAT":  &cfg.Output.Format,
	}
}

func applyEnvOverrides(cfg *fileConfig) {
	for name, field := range envOverrides(cfg) {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
}

// defaultConfigPath is empty when the platform has no user config directory.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.toml")
}
