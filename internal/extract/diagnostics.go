package extract

import (
	"fmt"

	"github.com/lgbarn/pgn2csv-go/internal/config"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
	"github.com/lgbarn/pgn2csv-go/internal/output"
)

// Kind classifies a diagnostic.
type Kind int

const (
	MalformedTimeControl Kind = iota
	AnnotationParse
	IllegalMove
	InvalidFEN
	UnsupportedVariant
	numKinds
)

var kindNames = [...]string{
	MalformedTimeControl: "malformed_time_control",
	AnnotationParse:      "annotation_parse",
	IllegalMove:          "illegal_move",
	InvalidFEN:           "invalid_fen",
	UnsupportedVariant:   "unsupported_variant",
}

func (k Kind) String() string {
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// kindOf maps an error to its diagnostic kind.
func kindOf(err error) Kind {
	switch {
	case errors.Is(err, errors.ErrMalformedTimeControl):
		return MalformedTimeControl
	case errors.Is(err, errors.ErrAnnotationParse):
		return AnnotationParse
	case errors.Is(err, errors.ErrInvalidFEN):
		return InvalidFEN
	case errors.Is(err, errors.ErrUnsupportedVariant):
		return UnsupportedVariant
	}
	return IllegalMove
}

// Diagnostics counts recoverable problems per kind, writes them to the
// diagnostics table and, at verbosity 2 and above, to the log.
type Diagnostics struct {
	w      output.RecordWriter
	cfg    *config.Config
	counts [numKinds]int
}

// NewDiagnostics creates a collector writing rows to w.
func NewDiagnostics(w output.RecordWriter, cfg *config.Config) *Diagnostics {
	if w == nil {
		w = output.Discard
	}
	return &Diagnostics{w: w, cfg: cfg}
}

// Report records a problem with a game. Only a failure to write the row is
// returned.
func (d *Diagnostics) Report(gerr *errors.GameError) error {
	kind := kindOf(gerr.Err)
	d.counts[kind]++

	if d.cfg.Verbosity >= 2 {
		fmt.Fprintf(d.cfg.LogFile, "%s: %v\n", kind, gerr)
	}

	detail := ""
	if gerr.Err != nil {
		detail = gerr.Err.Error()
	}
	return d.w.Write(DiagnosticRecord{
		Game:     gerr.GameNum,
		GameID:   gerr.GameID,
		HalfMove: gerr.PlyNum,
		Kind:     kind,
		Detail:   detail,
	})
}

// Count returns the number of diagnostics of kind k.
func (d *Diagnostics) Count(k Kind) int {
	if k < 0 || k >= numKinds {
		return 0
	}
	return d.counts[k]
}

// Total returns the number of diagnostics of all kinds.
func (d *Diagnostics) Total() int {
	total := 0
	for _, n := range d.counts {
		total += n
	}
	return total
}

// Counts returns the non-zero counts keyed by kind name.
func (d *Diagnostics) Counts() map[string]int {
	counts := make(map[string]int)
	for k, n := range d.counts {
		if n > 0 {
			counts[Kind(k).String()] = n
		}
	}
	return counts
}
