package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Box is a width by height target for fit, cover and resize.
type Box struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Config drives a single svgpath run. Zero values mean "not set".
type Config struct {
	Steps     int       `toml:"steps"`
	Output    string    `toml:"output"`
	Transform string    `toml:"transform"`
	Translate []float32 `toml:"translate"`
	Scale     float32   `toml:"scale"`
	Resize    *Box      `toml:"resize"`
	Fit       *Box      `toml:"fit"`
	Cover     *Box      `toml:"cover"`
}

func defaultConfig() Config {
	return Config{Output: "path"}
}

// loadConfig reads a TOML file on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Output {
	case "commands", "path", "size":
	default:
		return fmt.Errorf("unknown output %q", c.Output)
	}
	if c.Translate != nil && len(c.Translate) != 2 {
		return fmt.Errorf("translate needs 2 values, got %d", len(c.Translate))
	}
	return nil
}

// parseBox parses "WxH".
func parseBox(s string) (*Box, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return nil, fmt.Errorf("box %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 32)
	if err != nil {
		return nil, fmt.Errorf("box %q: %w", s, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 32)
	if err != nil {
		return nil, fmt.Errorf("box %q: %w", s, err)
	}
	return &Box{Width: float32(width), Height: float32(height)}, nil
}

// parsePair parses "X,Y".
func parsePair(s string) ([]float32, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("pair %q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 32)
	if err != nil {
		return nil, fmt.Errorf("pair %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 32)
	if err != nil {
		return nil, fmt.Errorf("pair %q: %w", s, err)
	}
	return []float32{float32(x), float32(y)}, nil
}
