package mess

import "fmt"

// Kind identifies the category of an error this package returns or
// panics with, so a caller can tell them apart with errors.As instead
// of matching on message text.
type Kind uint8

const (
	// MalformedEncoding covers FEN structure, character range, and
	// field count errors.
	MalformedEncoding Kind = iota
	// UnknownCastlingChar covers a castling field character outside
	// the "KQkq"/Shredder-FEN letter sets.
	UnknownCastlingChar
	// IllegalInsert covers Insert/Remove invariant violations -
	// inserting into an occupied square or removing from an empty
	// one. These are programmer errors and never surface past a panic.
	IllegalInsert
	// InvalidMagic covers a slider table index, computed at package
	// init, that would overwrite a differing value - a build-time
	// failure in the magic numbers themselves.
	InvalidMagic
)

func (k Kind) String() string {
	switch k {
	case MalformedEncoding:
		return "malformed encoding"
	case UnknownCastlingChar:
		return "unknown castling character"
	case IllegalInsert:
		return "illegal insert"
	case InvalidMagic:
		return "invalid magic"
	default:
		return "unknown error kind"
	}
}

// Error is the concrete error type this package returns for parsing
// failures, and the type it panics with for internal invariant
// violations. Kind lets a caller distinguish the failure category.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf("mess: %s", fmt.Sprintf(format, args...))}
}
