// processor.go - Runs one extraction from an input file to the output tables
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/inhies/go-bytesize"

	"github.com/lgbarn/pgn2csv-go/internal/config"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
	"github.com/lgbarn/pgn2csv-go/internal/extract"
	"github.com/lgbarn/pgn2csv-go/internal/output"
	"github.com/lgbarn/pgn2csv-go/internal/source"
)

// result summarises a finished run.
type result struct {
	games       int
	moves       int
	read        bytesize.ByteSize
	diagnostics int
	manifest    *output.Manifest
}

// summary returns the line printed after a successful run.
func (r *result) summary() string {
	line := fmt.Sprintf("Parsed %d games, %d moves (%s read)", r.games, r.moves, r.read)
	if r.diagnostics > 0 {
		line += fmt.Sprintf(", %d diagnostics", r.diagnostics)
	}
	return line
}

// process extracts every game of the input at path into the tables
// configured in cfg. The tables are closed on every path out.
func process(ctx context.Context, cfg *config.Config, path string) (res *result, err error) {
	in, err := source.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	cfg.CurrentInputFile = in.Name()

	replayer, err := extract.NewReplayer(cfg.Replay.Engine)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil { //nolint:gosec // G301: output tables are meant to be shared
		return nil, fmt.Errorf("output directory: %w: %w", errors.ErrSinkWrite, err)
	}
	sinks, err := output.OpenSinks(cfg.Output, extract.Schema())
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := sinks.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	manifest := output.NewManifest(in.Name())
	manifest.Compression = in.Compression().String()
	manifest.Engine = cfg.Replay.Engine.String()
	manifest.Format = cfg.Output.Format.String()

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Reading %s (%s, %s)\n", in.Name(), in.Compression(), in.Size())
	}

	ex := extract.NewExtractor(cfg, replayer, extract.WritersFor(sinks))
	if err := ex.Run(in); err != nil {
		return nil, err
	}
	// A failed flush must not produce a manifest.
	if err := sinks.Close(); err != nil {
		return nil, err
	}

	res = &result{
		games:       ex.Games(),
		moves:       ex.Moves(),
		read:        in.BytesRead(),
		diagnostics: ex.Diagnostics().Total(),
		manifest:    manifest,
	}
	manifest.Finish(res.games, res.moves, res.read, sinks)
	manifest.Diagnostics = ex.Diagnostics().Counts()

	if cfg.Output.Manifest {
		if err := manifest.WriteFile(cfg.Output.Dir); err != nil {
			return nil, err
		}
	}
	return res, nil
}
