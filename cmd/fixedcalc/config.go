package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/avdva/binfixed/display"
)

// Config is a board profile.
type Config struct {
	LCD struct {
		Address    uint8         `yaml:"address"`
		Width      uint8         `yaml:"width"`
		Height     uint8         `yaml:"height"`
		PageDelay  time.Duration `yaml:"page_delay"`
		FracDigits int           `yaml:"frac_digits"`
	} `yaml:"lcd"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Opts returns display options of the profile. Missing fields are taken from display.DefaultOpts.
func (c *Config) Opts() display.Opts {
	return display.Opts{
		Address:    c.LCD.Address,
		Width:      c.LCD.Width,
		Height:     c.LCD.Height,
		PageDelay:  c.LCD.PageDelay,
		FracDigits: c.LCD.FracDigits,
	}
}
