// pgn2csv extracts games, replayed positions and move annotations from a PGN
// file into tabular files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pgn2csv-go/internal/config"
)

const programVersion = "0.1.0"

// envFile is loaded from the working directory when present.
const envFile = ".env"

func main() {
	if err := config.LoadEnv(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "pgn2csv: %v\n", err)
		os.Exit(2)
	}
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

// run executes pgn2csv and returns the process exit code: 0 on success, 1
// when the input or an output table fails and 2 on a usage error.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookup func(string) (string, bool)) int {
	cfg := config.NewConfig()
	cfg.SetLog(stderr)

	if err := cfg.ApplyEnv(lookup); err != nil {
		fmt.Fprintf(stderr, "pgn2csv: %v\n", err)
		return 2
	}

	opts := &options{}
	fs := newFlagSet(cfg, opts, stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if opts.help {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "pgn2csv version %s\n", programVersion)
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "pgn2csv: expected exactly one input file")
		fs.Usage()
		return 2
	}

	if err := applyFlags(cfg, opts); err != nil {
		fmt.Fprintf(stderr, "pgn2csv: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "pgn2csv: %v\n", err)
		return 2
	}

	if opts.logFile != "" {
		file, err := os.Create(opts.logFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating log file %s: %v\n", opts.logFile, err)
			return 1
		}
		defer file.Close()
		cfg.SetLog(file)
	}

	res, err := process(ctx, cfg, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "pgn2csv: %v\n", err)
		return 1
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintln(stdout, res.summary())
	}
	return 0
}
