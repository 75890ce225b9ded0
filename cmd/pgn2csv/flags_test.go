package main

import (
	"errors"
	"io"
	"testing"

	"github.com/lgbarn/pgn2csv-go/internal/config"
	pgnerrors "github.com/lgbarn/pgn2csv-go/internal/errors"
	"github.com/lgbarn/pgn2csv-go/internal/testutil"
)

func parseFlags(t *testing.T, cfg *config.Config, args ...string) *options {
	t.Helper()
	opts := &options{}
	fs := newFlagSet(cfg, opts, io.Discard)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return opts
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	opts := parseFlags(t, cfg)

	if err := applyFlags(cfg, opts); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}

	want := config.NewConfig()
	if *cfg.Output != *want.Output {
		t.Errorf("Output = %+v, want %+v", *cfg.Output, *want.Output)
	}
	if *cfg.Replay != *want.Replay {
		t.Errorf("Replay = %+v, want %+v", *cfg.Replay, *want.Replay)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.NewConfig()
	opts := parseFlags(t, cfg,
		"-o", "out", "-prefix", "jan_", "-format", "jsonl", "-compress", "-noheader",
		"-diagnostics=false", "-manifest=false", "-engine", "notnil", "-nullmoves",
		"-nofen", "-nestedcomments", "-v")

	if err := applyFlags(cfg, opts); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}

	wantOutput := config.OutputConfig{
		Dir:      "out",
		Prefix:   "jan_",
		Format:   config.JSONLines,
		Compress: true,
	}
	if *cfg.Output != wantOutput {
		t.Errorf("Output = %+v, want %+v", *cfg.Output, wantOutput)
	}
	if cfg.Replay.Engine != config.NotnilEngine || cfg.Replay.UseFENTag {
		t.Errorf("Replay = %+v", *cfg.Replay)
	}
	if !cfg.AllowNullMoves || !cfg.AllowNestedComments {
		t.Error("parser flags not applied")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}

func TestApplyFlags_QuietWins(t *testing.T) {
	cfg := config.NewConfig()
	opts := parseFlags(t, cfg, "-s", "-v")

	if err := applyFlags(cfg, opts); err != nil {
		t.Fatal(err)
	}
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d, want 0", cfg.Verbosity)
	}
}

func TestApplyFlags_Invalid(t *testing.T) {
	for _, args := range [][]string{{"-format", "xml"}, {"-engine", "stockfish"}} {
		cfg := config.NewConfig()
		err := applyFlags(cfg, parseFlags(t, cfg, args...))
		if !errors.Is(err, pgnerrors.ErrInvalidConfig) {
			t.Errorf("applyFlags(%v) error = %v, want ErrInvalidConfig", args, err)
		}
	}
}

func TestNewFlagSet_EnvironmentDefaults(t *testing.T) {
	cfg := config.NewConfig()
	env := testutil.EnvLookup(map[string]string{
		config.EnvOutputDir: "/data/out",
		config.EnvEngine:    "notnil",
		config.EnvCompress:  "true",
	})
	if err := cfg.ApplyEnv(env); err != nil {
		t.Fatal(err)
	}

	opts := parseFlags(t, cfg, "-compress=false")
	if err := applyFlags(cfg, opts); err != nil {
		t.Fatal(err)
	}

	if cfg.Output.Dir != "/data/out" {
		t.Errorf("Dir = %q, want the environment value", cfg.Output.Dir)
	}
	if cfg.Replay.Engine != config.NotnilEngine {
		t.Errorf("Engine = %v, want notnil", cfg.Replay.Engine)
	}
	if cfg.Output.Compress {
		t.Error("-compress=false did not override the environment")
	}
}
