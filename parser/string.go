package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/dhamidi/req/ast"
)

// variableName reads a non-empty run of name characters.
func variableName(r *Reader) (string, error) {
	start := r.Pos()
	name := r.ReadWhile(func(c rune) bool {
		return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-'
	})
	if name == "" {
		return "", newError(start, false, Expecting{Value: "variable name"})
	}
	return name, nil
}

// placeholder parses a {{name}} interpolation. The opening braces are the
// commit point: everything after them must be a well-formed placeholder.
func placeholder(r *Reader) (ast.TemplatePlaceholder, error) {
	start := r.Pos()
	if err := TryLiteral("{{", r); err != nil {
		return ast.TemplatePlaceholder{}, err
	}
	space0, _ := zeroOrMoreSpaces(r)
	varPos := r.Pos()
	name, err := variableName(r)
	if err != nil {
		return ast.TemplatePlaceholder{}, err
	}
	variable := ast.Variable{
		Name:       name,
		SourceInfo: ast.SourceInfo{Start: varPos, End: r.Pos()},
	}
	space1, _ := zeroOrMoreSpaces(r)
	if err := Literal("}}", r); err != nil {
		return ast.TemplatePlaceholder{}, err
	}
	return ast.TemplatePlaceholder{
		Space0:     space0,
		Variable:   variable,
		Space1:     space1,
		SourceInfo: ast.SourceInfo{Start: start, End: r.Pos()},
	}, nil
}

func atPlaceholder(r *Reader) bool {
	c0, ok0 := r.Peek()
	c1, ok1 := r.PeekAt(1)
	return ok0 && ok1 && c0 == '{' && c1 == '{'
}

// escapeSequence decodes one backslash escape, returning the decoded text
// and the source text. The backslash has already been identified but not
// consumed.
func escapeSequence(r *Reader) (string, string, error) {
	pos := r.Pos()
	r.Read() // the backslash
	c, ok := r.Read()
	if !ok {
		return "", "", newError(pos, false, Eof{})
	}
	switch c {
	case '"':
		return `"`, `\"`, nil
	case '\\':
		return `\`, `\\`, nil
	case '#':
		return "#", `\#`, nil
	case '/':
		return "/", `\/`, nil
	case 'b':
		return "\b", `\b`, nil
	case 'f':
		return "\f", `\f`, nil
	case 'n':
		return "\n", `\n`, nil
	case 'r':
		return "\r", `\r`, nil
	case 't':
		return "\t", `\t`, nil
	case 'u':
		var hex strings.Builder
		for i := 0; i < 4; i++ {
			h, ok := r.Read()
			if !ok || !isHexDigit(h) {
				return "", "", newError(pos, false, Expecting{Value: "unicode escape"})
			}
			hex.WriteRune(h)
		}
		code, err := strconv.ParseUint(hex.String(), 16, 32)
		if err != nil {
			return "", "", newError(pos, false, Expecting{Value: "unicode escape"})
		}
		// Surrogate halves are not characters; string(rune) would turn
		// them into U+FFFD and the decoded value would no longer match
		// the source.
		if utf16.IsSurrogate(rune(code)) {
			return "", "", newError(pos, false, Expecting{Value: "unicode escape"})
		}
		return string(rune(code)), `\u` + hex.String(), nil
	default:
		return "", "", newError(pos, false, Expecting{Value: "escape character"})
	}
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// templateElements reads literal runs and placeholders while isLiteralChar
// accepts the next rune. withEscapes enables backslash escapes in the
// literal runs.
func templateElements(r *Reader, isLiteralChar func(rune) bool, withEscapes bool) ([]ast.TemplateElement, error) {
	var elements []ast.TemplateElement
	for {
		if atPlaceholder(r) {
			p, err := placeholder(r)
			if err != nil {
				return nil, err
			}
			elements = append(elements, p)
			continue
		}
		var value, encoded strings.Builder
		for {
			if atPlaceholder(r) {
				break
			}
			c, ok := r.Peek()
			if !ok || !isLiteralChar(c) {
				break
			}
			if withEscapes && c == '\\' {
				v, e, err := escapeSequence(r)
				if err != nil {
					return nil, err
				}
				value.WriteString(v)
				encoded.WriteString(e)
				continue
			}
			r.Read()
			value.WriteRune(c)
			encoded.WriteRune(c)
		}
		if encoded.Len() == 0 {
			return elements, nil
		}
		elements = append(elements, ast.TemplateString{
			Value:   value.String(),
			Encoded: encoded.String(),
		})
	}
}

// quotedTemplate parses a double-quoted interpolatable string. A missing
// opening quote fails recoverably; everything after it is committed.
func quotedTemplate(r *Reader) (ast.Template, error) {
	start := r.Pos()
	if err := TryLiteral(`"`, r); err != nil {
		return ast.Template{}, err
	}
	elements, err := templateElements(r, func(c rune) bool { return c != '"' }, true)
	if err != nil {
		return ast.Template{}, err
	}
	if err := Literal(`"`, r); err != nil {
		return ast.Template{}, err
	}
	return ast.Template{
		Delimiter:  '"',
		Elements:   elements,
		SourceInfo: ast.SourceInfo{Start: start, End: r.Pos()},
	}, nil
}

// unquotedTemplate parses a bare interpolatable token running to the next
// space, comment or line ending. It requires at least one character, failing
// recoverably on none, which makes it safe as a catch-all alternative.
func unquotedTemplate(r *Reader) (ast.Template, error) {
	start := r.Pos()
	elements, err := templateElements(r, func(c rune) bool {
		return !isSpace(c) && c != '\n' && c != '\r' && c != '#'
	}, false)
	if err != nil {
		return ast.Template{}, err
	}
	if len(elements) == 0 {
		return ast.Template{}, newError(start, true, Expecting{Value: "string"})
	}
	return ast.Template{
		Elements:   elements,
		SourceInfo: ast.SourceInfo{Start: start, End: r.Pos()},
	}, nil
}
