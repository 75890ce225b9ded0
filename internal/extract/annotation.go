package extract

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

const (
	evalMarker  = "[%eval "
	clockMarker = "[%clk "
)

// Annotation is the data found in one comment.
type Annotation struct {
	Eval     string
	HasEval  bool
	Clock    string
	HasClock bool
}

// ParseAnnotation extracts the [%eval ...] and [%clk ...] commands of a
// comment. When a command appears more than once the last one wins. A
// comment with neither returns an error wrapping errors.ErrAnnotationParse.
func ParseAnnotation(comment string) (Annotation, error) {
	var a Annotation
	a.Eval, a.HasEval = lastCommand(comment, evalMarker)
	a.Clock, a.HasClock = lastCommand(comment, clockMarker)

	if !a.HasEval && !a.HasClock {
		return a, fmt.Errorf("%q: %w", abbreviate(comment, 40), errors.ErrAnnotationParse)
	}
	return a, nil
}

// lastCommand returns the trimmed value of the last marker in s, up to the
// closing bracket or the end of s.
func lastCommand(s, marker string) (string, bool) {
	i := strings.LastIndex(s, marker)
	if i < 0 {
		return "", false
	}
	value := s[i+len(marker):]
	if end := strings.IndexByte(value, ']'); end >= 0 {
		value = value[:end]
	}
	return strings.TrimSpace(value), true
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
