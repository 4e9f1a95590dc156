package parser

import (
	"unicode"

	"github.com/dhamidi/req/ast"
)

// filename parses a path-shaped value. Paths are not resolved or checked
// against the filesystem here; an empty capture is a genuine syntax error.
func filename(r *Reader) (ast.Filename, error) {
	start := r.Pos()
	value := r.ReadWhile(func(c rune) bool {
		return unicode.IsLetter(c) || unicode.IsDigit(c) ||
			c == '.' || c == '/' || c == '_' || c == '-' || c == '~'
	})
	if value == "" {
		return ast.Filename{}, newError(start, false, Expecting{Value: "filename"})
	}
	return ast.Filename{
		Value:      value,
		SourceInfo: ast.SourceInfo{Start: start, End: r.Pos()},
	}, nil
}
