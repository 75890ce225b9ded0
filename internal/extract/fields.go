package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// Slot tells the caller what MapHeader did with a header.
type Slot int

const (
	// SlotNone: the header is not extracted.
	SlotNone Slot = iota
	// SlotStored: the value was written to the record.
	SlotStored
	// SlotSite: the Site header, stored and used as the game id.
	SlotSite
	// SlotFEN: a FEN header holding the starting position.
	SlotFEN
	// SlotSetUp: the SetUp header that accompanies FEN.
	SlotSetUp
	// SlotVariant: the Variant header.
	SlotVariant
)

// MapHeader stores a header value in rec. Unknown keys are ignored. A
// malformed TimeControl is still stored verbatim; the error reports that
// its numeric fields were left at zero.
func MapHeader(rec *GameHeaderRecord, key, value string) (Slot, error) {
	switch chess.LookupTag(key) {
	case chess.EventTag:
		rec.Event = value
	case chess.SiteTag:
		rec.GameLink = value
		return SlotSite, nil
	case chess.WhiteTag:
		rec.WhitePlayer = value
	case chess.BlackTag:
		rec.BlackPlayer = value
	case chess.ResultTag:
		rec.Result = value
	case chess.UTCDateTag:
		rec.DatePlayed = value
	case chess.UTCTimeTag:
		rec.TimePlayed = value
	case chess.WhiteEloTag:
		rec.WhiteElo = value
	case chess.BlackEloTag:
		rec.BlackElo = value
	case chess.WhiteRatingDiffTag:
		rec.WhiteRatingDiff = value
	case chess.BlackRatingDiffTag:
		rec.BlackRatingDiff = value
	case chess.ECOTag:
		rec.ECO = value
	case chess.OpeningTag:
		rec.OpeningName = value
	case chess.TerminationTag:
		rec.Termination = value
	case chess.TimeControlTag:
		rec.TimeControl = value
		initial, increment, err := ParseTimeControl(value)
		rec.InitialTime, rec.Increment = initial, increment
		return SlotStored, err
	case chess.FENTag:
		return SlotFEN, nil
	case chess.SetupTag:
		return SlotSetUp, nil
	case chess.VariantTag:
		return SlotVariant, nil
	default:
		return SlotNone, nil
	}
	return SlotStored, nil
}

// ParseTimeControl splits a "base+increment" value in seconds. The untimed
// marker "-" yields zeros without error.
func ParseTimeControl(value string) (initial, increment int, err error) {
	if value == "-" {
		return 0, 0, nil
	}

	parts := strings.Split(value, "+")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: %w", value, errors.ErrMalformedTimeControl)
	}

	initial, ok := parseSeconds(parts[0])
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", value, errors.ErrMalformedTimeControl)
	}
	increment, ok = parseSeconds(parts[1])
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", value, errors.ErrMalformedTimeControl)
	}
	return initial, increment, nil
}

// parseSeconds accepts a plain non-negative decimal number.
func parseSeconds(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
