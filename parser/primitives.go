package parser

import (
	"math"
	"strconv"

	"github.com/dhamidi/req/ast"
)

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isSpace(c rune) bool { return c == ' ' || c == '\t' }

func isASCIIAlphanumeric(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c)
}

// zeroOrMoreSpaces captures a possibly empty run of spaces and tabs.
// It never fails.
func zeroOrMoreSpaces(r *Reader) (ast.Whitespace, error) {
	start := r.Pos()
	value := r.ReadWhile(isSpace)
	return ast.Whitespace{
		Value:      value,
		SourceInfo: ast.SourceInfo{Start: start, End: r.Pos()},
	}, nil
}

// comment parses a '#' comment running to the end of the line. The '#' is
// not part of the captured value.
func comment(r *Reader) (ast.Comment, error) {
	start := r.Pos()
	if err := TryLiteral("#", r); err != nil {
		return ast.Comment{}, err
	}
	value := r.ReadWhile(func(c rune) bool { return c != '\n' })
	return ast.Comment{
		Value:      value,
		SourceInfo: ast.SourceInfo{Start: start, End: r.Pos()},
	}, nil
}

// newline parses "\r\n" or "\n" as captured whitespace.
func newline(r *Reader) (ast.Whitespace, error) {
	start := r.Pos()
	if err := TryLiteral("\r\n", r); err == nil {
		return ast.Whitespace{Value: "\r\n", SourceInfo: ast.SourceInfo{Start: start, End: r.Pos()}}, nil
	}
	if err := TryLiteral("\n", r); err == nil {
		return ast.Whitespace{Value: "\n", SourceInfo: ast.SourceInfo{Start: start, End: r.Pos()}}, nil
	}
	return ast.Whitespace{}, newError(start, true, Expecting{Value: "newline"})
}

// lineTerminator parses trailing spaces, an optional comment, and the
// newline. At end of input the newline is empty. Anything else on the line
// is a fatal failure: by the time a line terminator is required, the clause
// has been committed to.
func lineTerminator(r *Reader) (ast.LineTerminator, error) {
	space0, _ := zeroOrMoreSpaces(r)
	cmt, err := Optional(comment, r)
	if err != nil {
		return ast.LineTerminator{}, err
	}
	var nl ast.Whitespace
	if r.IsEOF() {
		pos := r.Pos()
		nl = ast.Whitespace{SourceInfo: ast.SourceInfo{Start: pos, End: pos}}
	} else {
		nl, err = newline(r)
		if err != nil {
			pe := err.(*Error)
			return ast.LineTerminator{}, newError(pe.Pos, false, Expecting{Value: "line terminator"})
		}
	}
	return ast.LineTerminator{Space0: space0, Comment: cmt, Newline: nl}, nil
}

// optionalLineTerminators consumes any blank and comment lines before a
// clause. It always succeeds, possibly consuming nothing.
func optionalLineTerminators(r *Reader) ([]ast.LineTerminator, error) {
	return ZeroOrMore(func(r *Reader) (ast.LineTerminator, error) {
		return Recover(lineTerminator, r)
	}, r)
}

// boolean parses the strict literals "true" and "false".
func boolean(r *Reader) (bool, error) {
	if err := TryLiteral("true", r); err == nil {
		return true, nil
	}
	if err := TryLiteral("false", r); err == nil {
		return false, nil
	}
	return false, newError(r.Pos(), true, Expecting{Value: "true|false"})
}

// nullLiteral parses the literal "null".
func nullLiteral(r *Reader) error {
	return TryLiteral("null", r)
}

// natural parses an unsigned decimal number: no sign, no fraction, no
// redundant leading zero.
func natural(r *Reader) (uint64, error) {
	start := r.State()
	first, ok := r.Read()
	if !ok || !isDigit(first) {
		r.Restore(start)
		return 0, newError(start.Pos, true, Expecting{Value: "natural"})
	}
	rest := r.ReadWhile(isDigit)
	if first == '0' && rest != "" {
		return 0, newError(start.Pos, false, Expecting{Value: "natural"})
	}
	value, err := strconv.ParseUint(string(first)+rest, 10, 64)
	if err != nil {
		return 0, newError(start.Pos, false, Expecting{Value: "natural"})
	}
	return value, nil
}

// integer parses an optionally negated natural as a signed value. "-0" is
// rejected like a redundant leading zero: zero has exactly one spelling, so
// every accepted number reprints as its source text.
func integer(r *Reader) (int64, error) {
	start := r.State()
	negative := TryLiteral("-", r) == nil
	value, err := natural(r)
	if err != nil {
		return 0, err
	}
	if negative && value == 0 {
		return 0, newError(start.Pos, false, Expecting{Value: "integer"})
	}
	if value > math.MaxInt64 {
		return 0, newError(start.Pos, false, Expecting{Value: "integer"})
	}
	if negative {
		return -int64(value), nil
	}
	return int64(value), nil
}

// float parses a decimal number with a mandatory fraction part; without the
// '.' it fails recoverably so an integer alternative can match instead. The
// source text is preserved alongside the value.
func float(r *Reader) (ast.Float, error) {
	start := r.State()
	var encoded string
	if TryLiteral("-", r) == nil {
		encoded = "-"
	}
	intPart, err := natural(r)
	if err != nil {
		return ast.Float{}, err
	}
	encoded += strconv.FormatUint(intPart, 10)
	if err := TryLiteral(".", r); err != nil {
		return ast.Float{}, err
	}
	fraction := r.ReadWhile(isDigit)
	if fraction == "" {
		return ast.Float{}, newError(r.Pos(), false, Expecting{Value: "natural"})
	}
	encoded += "." + fraction
	value, err := strconv.ParseFloat(encoded, 64)
	if err != nil {
		return ast.Float{}, newError(start.Pos, false, Expecting{Value: "float"})
	}
	return ast.Float{Value: value, Encoded: encoded}, nil
}
