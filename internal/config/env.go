package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvOutputDir = "PGN2CSV_OUTPUT_DIR"
	EnvPrefix    = "PGN2CSV_PREFIX"
	EnvFormat    = "PGN2CSV_FORMAT"
	EnvEngine    = "PGN2CSV_ENGINE"
	EnvCompress  = "PGN2CSV_COMPRESS"
)

// LoadEnv loads dotenv files into the process environment. Variables that
// are already set are left alone, and missing files are skipped.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides configuration values from PGN2CSV_* variables.
// lookup is normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		c.Output.Dir = v
	}
	if v, ok := lookup(EnvPrefix); ok {
		c.Output.Prefix = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		f, err := ParseTableFormat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		c.Output.Format = f
	}
	if v, ok := lookup(EnvEngine); ok && v != "" {
		e, err := ParseEngine(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEngine, err)
		}
		c.Replay.Engine = e
	}
	if v, ok := lookup(EnvCompress); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvCompress, v, errors.ErrInvalidConfig)
		}
		c.Output.Compress = b
	}
	return nil
}
