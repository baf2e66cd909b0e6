package tape

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBracketMismatch matches every structural error reported by Translate.
	ErrBracketMismatch = errors.New("bracket mismatch")
	// ErrOutput matches every fatal write failure reported by Machine.Run.
	ErrOutput = errors.New("output failed")
)

// MismatchKind distinguishes the two ways brackets can fail to balance.
type MismatchKind int

const (
	UnmatchedClose MismatchKind = iota + 1
	UnmatchedOpen
)

func (k MismatchKind) String() string {
	switch k {
	case UnmatchedClose:
		return "unmatched ']'"
	case UnmatchedOpen:
		return "unmatched '['"
	default:
		return "unknown mismatch"
	}
}

// BracketError reports unbalanced loop markers. For an unmatched close it
// points at the offending ']'; for unmatched opens it points at the
// outermost '[' left open and Unmatched counts all of them.
type BracketError struct {
	Kind      MismatchKind
	Index     int
	Pos       Position
	Unmatched int

	source string
}

func (e *BracketError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s", ErrBracketMismatch, e.Pos.Line, e.Pos.Column, e.Kind)
	if e.Unmatched > 1 {
		fmt.Fprintf(&b, " (%d unclosed)", e.Unmatched)
	}
	if frame := formatCodeFrame(e.source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

func (e *BracketError) Is(target error) bool {
	return target == ErrBracketMismatch
}

// OutputError reports a write failure at operation Index. It aborts the run.
type OutputError struct {
	Index int
	Err   error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%s at operation %d: %v", ErrOutput, e.Index, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

func (e *OutputError) Is(target error) bool {
	return target == ErrOutput
}
