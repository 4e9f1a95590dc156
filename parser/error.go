package parser

import (
	"errors"
	"fmt"

	"github.com/dhamidi/req/ast"
)

// Error is the parser's only failure value. Recoverable means "this
// alternative did not match, an enclosing choice may try the next one";
// non-recoverable means the grammar committed to this production and the
// input is malformed.
type Error struct {
	Pos         ast.Pos
	Recoverable bool
	Inner       ErrorKind
}

// ErrorKind is the structured cause of an Error.
type ErrorKind interface {
	message() string
}

// Expecting reports that a specific token or value shape was required.
type Expecting struct{ Value string }

// InvalidOption reports an unrecognized option keyword.
type InvalidOption struct{}

// Eof reports that the input ended where more was required.
type Eof struct{}

func (e Expecting) message() string   { return fmt.Sprintf("expecting %q", e.Value) }
func (InvalidOption) message() string { return "invalid option" }
func (Eof) message() string           { return "unexpected end of input" }

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Inner.message())
}

// IsRecoverable reports whether err is a recoverable parse error.
func IsRecoverable(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Recoverable
	}
	return false
}

func newError(pos ast.Pos, recoverable bool, inner ErrorKind) *Error {
	return &Error{Pos: pos, Recoverable: recoverable, Inner: inner}
}
