package parsec

import (
	"errors"
	"strings"
)

// ParseFailure is the one domain error type a parser produces. It carries
// the stack of named contexts pushed by <?> (outermost first) and the
// primitive's own message; composite combinators never rewrite the
// message, they only add marks.
type ParseFailure struct {
	Marks   []string
	Message string
}

// Error renders marks joined by " > ", followed by ": " and the message —
// or just the message when there are no marks.
func (e *ParseFailure) Error() string {
	if len(e.Marks) == 0 {
		return e.Message
	}
	return strings.Join(e.Marks, " > ") + ": " + e.Message
}

// Is supports errors.Is comparisons against another *ParseFailure by
// message and mark trail, the same equality the teacher's *Error gives
// errors.Is over its Code field.
func (e *ParseFailure) Is(target error) bool {
	other, ok := target.(*ParseFailure)
	if !ok {
		return false
	}
	if e.Message != other.Message || len(e.Marks) != len(other.Marks) {
		return false
	}
	for i := range e.Marks {
		if e.Marks[i] != other.Marks[i] {
			return false
		}
	}
	return true
}

// newFailure constructs a ParseFailure with marks copied defensively —
// the slice backing a success continuation's closure must not be mutated
// by a later <?> further up the call stack.
func newFailure(marks []string, message string) *ParseFailure {
	cp := make([]string, len(marks))
	copy(cp, marks)
	return &ParseFailure{Marks: cp, Message: message}
}

// IsFailure reports whether err is (or wraps) a *ParseFailure, and returns
// it, mirroring the teacher's IsCode helper built on errors.As.
func IsFailure(err error) (*ParseFailure, bool) {
	var pf *ParseFailure
	if errors.As(err, &pf) {
		return pf, true
	}
	return nil, false
}

// UsageError marks a programming error (negative Count, a buffer sized
// below 1, a driver observing shrunk input) — these are fatal, not part
// of the ParseFailure taxonomy a grammar can recover from with <|>, and
// the engine panics with one rather than threading it through Fail.
type UsageError struct {
	Op  string
	Msg string
}

func (e *UsageError) Error() string {
	return "parsec: " + e.Op + ": " + e.Msg
}

func usageErrorf(op, msg string) *UsageError {
	return &UsageError{Op: op, Msg: msg}
}
