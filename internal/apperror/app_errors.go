package apperror

import (
	"errors"
	"fmt"
)

// Kind - category of a failure the caller can branch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindMalformedInput
	KindLogicViolation
	KindMissingEntry
	KindTableUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed input"
	case KindLogicViolation:
		return "logic violation"
	case KindMissingEntry:
		return "missing table entry"
	case KindTableUnavailable:
		return "table unavailable"
	default:
		return "unknown"
	}
}

// Error - sentinel with a kind attached.
type Error struct {
	Kind Kind
	msg  string
}

func (that *Error) Error() string {
	return that.msg
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

var (
	ErrMalformedInput = newError(KindMalformedInput, "malformed input")

	ErrGameFinished = newError(KindLogicViolation, "game is already finished")
	ErrNoLegalMoves = newError(KindLogicViolation, "no legal moves available")
	ErrCellOccupied = newError(KindLogicViolation, "cell is already occupied")
	ErrInvalidCell  = newError(KindLogicViolation, "invalid cell")
	ErrInvalidMark  = newError(KindLogicViolation, "invalid mark")

	ErrMissingEntry     = newError(KindMissingEntry, "state is missing from value table")
	ErrTableUnavailable = newError(KindTableUnavailable, "value table is unavailable")
)

// KindOf - returns the kind of the first *Error found in the chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindUnknown
}

type malformedError struct {
	msg string
}

func (that *malformedError) Error() string {
	return that.msg
}

func (that *malformedError) Unwrap() error {
	return ErrMalformedInput
}

// Malformed - ErrMalformedInput whose message is only the given description, so it can be shown to clients as is.
func Malformed(format string, args ...any) error {
	return &malformedError{msg: fmt.Sprintf(format, args...)}
}
