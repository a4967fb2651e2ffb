// Package config reads the viewer settings from the environment. Values
// from .env.local and then .env in the working directory are loaded first;
// variables already set in the process environment win.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ushitora-anqou/slotassets/constant"
)

var EnvFiles = []string{".env.local", ".env"}

type Config struct {
	Trace      bool    // SLOT_TRACE=1
	CPUProfile string  // SLOT_CPUPROFILE
	Scale      int     // SLOT_SCALE
	Volume     float32 // SLOT_VOLUME, 0 to 1
}

func Default() *Config {
	return &Config{
		Scale:  constant.WINDOW_SCALE,
		Volume: 0.25,
	}
}

// Load reads the env files (or EnvFiles when none are given) and builds the
// configuration.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = EnvFiles
	}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		// godotenv.Load never overrides variables that are already set
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := Default()
	cfg.Trace = os.Getenv("SLOT_TRACE") == "1"
	cfg.CPUProfile = os.Getenv("SLOT_CPUPROFILE")

	if v := os.Getenv("SLOT_SCALE"); v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil || scale < 1 {
			return nil, fmt.Errorf("Invalid SLOT_SCALE: %q", v)
		}
		cfg.Scale = scale
	}
	if v := os.Getenv("SLOT_VOLUME"); v != "" {
		volume, err := strconv.ParseFloat(v, 32)
		if err != nil || volume < 0 || volume > 1 {
			return nil, fmt.Errorf("Invalid SLOT_VOLUME: %q", v)
		}
		cfg.Volume = float32(volume)
	}
	return cfg, nil
}
