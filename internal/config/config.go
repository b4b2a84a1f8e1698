package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gotube/internal/units"
)

// Environment variables read by Load
const (
	EnvUnits     = "GOTUBE_UNITS"
	EnvOutputDir = "GOTUBE_OUTPUT_DIR"
	EnvDebug     = "GOTUBE_DEBUG"
)

// DefaultEnvFile is loaded when no other file is named
const DefaultEnvFile = ".env"

// Config holds process settings from the environment
type Config struct {
	Units     units.System
	OutputDir string
	Debug     bool
}

// Load reads envFile, if it exists, into the process environment and
// then builds a Config from it. Variables already set in the environment
// win over the file.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{Units: units.Metric}

	if v := os.Getenv(EnvUnits); v != "" {
		sys, err := units.ParseSystem(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvUnits, err)
		}
		cfg.Units = sys
	}

	cfg.OutputDir = os.Getenv(EnvOutputDir)

	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

// OutputPath places a relative export path under OutputDir. Absolute
// paths and an empty OutputDir leave path unchanged.
func (c Config) OutputPath(path string) string {
	if path == "" || c.OutputDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.OutputDir, path)
}
