// Package config loads run settings for the toyrobot command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"toyrobot/internal/robot"
)

// Config is the on-disk settings file. Sizes are in cells.
type Config struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	RequirePlace bool `yaml:"require_place"`
	Verbose      bool `yaml:"verbose"`
	Show         bool `yaml:"show"`
}

// Default is a 5x5 table with every option off.
func Default() Config {
	c := robot.DefaultCorner
	return Config{Width: c.X + 1, Height: c.Y + 1}
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Corner() robot.Point {
	return robot.Point{X: c.Width - 1, Y: c.Height - 1}
}

// Validate checks the table size without building it.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, robot.ErrTableSize)
	}
	return nil
}

func (c Config) Table() (robot.Table, error) {
	if err := c.Validate(); err != nil {
		return robot.Table{}, err
	}
	return robot.NewTable(c.Corner())
}
