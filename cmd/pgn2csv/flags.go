// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/pgn2csv-go/internal/config"
	"github.com/lgbarn/pgn2csv-go/internal/output"
)

// options holds the parsed command line.
type options struct {
	// Output options
	outputDir   string
	prefix      string
	format      string
	compress    bool
	noHeader    bool
	diagnostics bool
	manifest    bool

	// Replay options
	engine     string
	nullMoves  bool
	ignoreFEN  bool
	nestedComs bool

	// Logging
	logFile string
	quiet   bool
	verbose bool

	// Other options
	help    bool
	version bool
}

// newFlagSet defines the flags of pgn2csv. Defaults come from cfg, so
// values already taken from the environment show up as defaults and an
// explicit flag overrides them.
func newFlagSet(cfg *config.Config, opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("pgn2csv", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.outputDir, "o", cfg.Output.Dir, "Output directory for the tables")
	fs.StringVar(&opts.prefix, "prefix", cfg.Output.Prefix, "Prefix added to every table file name")
	fs.StringVar(&opts.format, "format", cfg.Output.Format.String(), "Table format: csv, jsonl")
	fs.BoolVar(&opts.compress, "compress", cfg.Output.Compress, "Compress tables with zstd (adds .zst)")
	fs.BoolVar(&opts.noHeader, "noheader", !cfg.Output.WriteHeader, "Don't write CSV header rows")
	fs.BoolVar(&opts.diagnostics, "diagnostics", cfg.Output.Diagnostics, "Write the diagnostics table")
	fs.BoolVar(&opts.manifest, "manifest", cfg.Output.Manifest, "Write "+output.ManifestFile)

	fs.StringVar(&opts.engine, "engine", cfg.Replay.Engine.String(), "Replay engine: builtin, notnil")
	fs.BoolVar(&opts.nullMoves, "nullmoves", cfg.AllowNullMoves, "Accept null moves (--) in the main line")
	fs.BoolVar(&opts.ignoreFEN, "nofen", !cfg.Replay.UseFENTag, "Ignore FEN headers and start every game from the initial position")
	fs.BoolVar(&opts.nestedComs, "nestedcomments", cfg.AllowNestedComments, "Allow nested comments in PGN parsing")

	fs.StringVar(&opts.logFile, "l", "", "Write log messages to this file")
	fs.BoolVar(&opts.quiet, "s", false, "Silent mode (no summary)")
	fs.BoolVar(&opts.verbose, "v", false, "Log every diagnostic")

	fs.BoolVar(&opts.help, "h", false, "Show help")
	fs.BoolVar(&opts.version, "version", false, "Show version")

	fs.Usage = func() { usage(fs) }
	return fs
}

// applyFlags applies the parsed flags to the configuration.
func applyFlags(cfg *config.Config, opts *options) error {
	if err := applyOutputFlags(cfg, opts); err != nil {
		return err
	}
	if err := applyReplayFlags(cfg, opts); err != nil {
		return err
	}

	cfg.AllowNestedComments = opts.nestedComs
	switch {
	case opts.quiet:
		cfg.Verbosity = 0
	case opts.verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyOutputFlags configures the output tables.
func applyOutputFlags(cfg *config.Config, opts *options) error {
	format, err := config.ParseTableFormat(opts.format)
	if err != nil {
		return fmt.Errorf("-format: %w", err)
	}

	cfg.Output.Dir = opts.outputDir
	cfg.Output.Prefix = opts.prefix
	cfg.Output.Format = format
	cfg.Output.Compress = opts.compress
	cfg.Output.WriteHeader = !opts.noHeader
	cfg.Output.Diagnostics = opts.diagnostics
	cfg.Output.Manifest = opts.manifest
	return nil
}

// applyReplayFlags configures position replay.
func applyReplayFlags(cfg *config.Config, opts *options) error {
	engine, err := config.ParseEngine(opts.engine)
	if err != nil {
		return fmt.Errorf("-engine: %w", err)
	}

	cfg.Replay.Engine = engine
	cfg.Replay.UseFENTag = !opts.ignoreFEN
	cfg.AllowNullMoves = opts.nullMoves
	return nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: pgn2csv [options] <input.pgn[.zst|.bz2|.gz] | ->\n\n")
	fmt.Fprintf(w, "Extracts game headers, replayed positions and move annotations from a PGN\n")
	fmt.Fprintf(w, "file into games, positions and annotations tables.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment (also read from .env, overridden by flags):\n")
	fmt.Fprintf(w, "  %s  %s  %s  %s  %s\n",
		config.EnvOutputDir, config.EnvPrefix, config.EnvFormat, config.EnvEngine, config.EnvCompress)
}
