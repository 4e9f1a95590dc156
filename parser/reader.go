// Package parser parses option clauses of req documents.
//
// The parser is a hand-written recursive descent over a rune cursor, with no
// tokenizer stage. Alternatives are tried in order and backtrack by restoring
// a saved cursor state; whether a failure allows backtracking is carried on
// the error itself (see Error.Recoverable).
package parser

import "github.com/dhamidi/req/ast"

// State is the reader's cursor: a rune offset plus its line/column position.
// It is a plain value; saving and restoring it is how combinators backtrack.
type State struct {
	Offset int
	Pos    ast.Pos
}

// Reader walks the source text one rune at a time.
type Reader struct {
	input []rune
	state State
}

// NewReader returns a reader positioned at the start of s.
func NewReader(s string) *Reader {
	return &Reader{
		input: []rune(s),
		state: State{Offset: 0, Pos: ast.Pos{Line: 1, Column: 1}},
	}
}

// State returns the current cursor for a later Restore.
func (r *Reader) State() State { return r.state }

// Restore rewinds the cursor to a previously saved state.
func (r *Reader) Restore(s State) { r.state = s }

// Pos returns the current line/column position.
func (r *Reader) Pos() ast.Pos { return r.state.Pos }

// IsEOF reports whether the cursor is past the last rune.
func (r *Reader) IsEOF() bool { return r.state.Offset >= len(r.input) }

// Peek returns the rune under the cursor without consuming it.
func (r *Reader) Peek() (rune, bool) {
	if r.IsEOF() {
		return 0, false
	}
	return r.input[r.state.Offset], true
}

// PeekAt returns the rune offset runes past the cursor without consuming.
func (r *Reader) PeekAt(offset int) (rune, bool) {
	i := r.state.Offset + offset
	if i < 0 || i >= len(r.input) {
		return 0, false
	}
	return r.input[i], true
}

// Read consumes and returns the rune under the cursor.
func (r *Reader) Read() (rune, bool) {
	if r.IsEOF() {
		return 0, false
	}
	c := r.input[r.state.Offset]
	r.state.Offset++
	if c == '\n' {
		r.state.Pos.Line++
		r.state.Pos.Column = 1
	} else {
		r.state.Pos.Column++
	}
	return c, true
}

// ReadWhile consumes the maximal prefix of runes satisfying pred. The result
// may be empty; ReadWhile never fails.
func (r *Reader) ReadWhile(pred func(rune) bool) string {
	start := r.state.Offset
	for {
		c, ok := r.Peek()
		if !ok || !pred(c) {
			break
		}
		r.Read()
	}
	return string(r.input[start:r.state.Offset])
}
