package parser

import (
	"math"
	"strings"
	"unicode"

	"github.com/dhamidi/req/ast"
)

// ParseOption parses one "name: value" option clause, including any blank
// and comment lines before it and the line terminator after it.
//
// An unrecognized keyword is a recoverable failure positioned at the
// keyword's first character, so a caller sequencing clause kinds can treat
// "not an option" as an ordinary alternative. Once the keyword has matched,
// every later failure is fatal.
func ParseOption(r *Reader) (ast.EntryOption, error) {
	lineTerminators, err := optionalLineTerminators(r)
	if err != nil {
		return ast.EntryOption{}, err
	}
	space0, _ := zeroOrMoreSpaces(r)
	pos := r.Pos()
	name := r.ReadWhile(func(c rune) bool {
		return isASCIIAlphanumeric(c) || c == '-' || c == '.'
	})
	space1, _ := zeroOrMoreSpaces(r)
	if err := TryLiteral(":", r); err != nil {
		return ast.EntryOption{}, err
	}
	space2, _ := zeroOrMoreSpaces(r)
	parseValue, ok := optionValues[name]
	if !ok {
		return ast.EntryOption{}, newError(pos, true, InvalidOption{})
	}
	kind, err := parseValue(r)
	if err != nil {
		return ast.EntryOption{}, err
	}
	lineTerminator0, err := lineTerminator(r)
	if err != nil {
		return ast.EntryOption{}, err
	}
	return ast.EntryOption{
		LineTerminators: lineTerminators,
		Space0:          space0,
		Name:            name,
		Space1:          space1,
		Space2:          space2,
		Kind:            kind,
		LineTerminator0: lineTerminator0,
	}, nil
}

// optionValues maps each option keyword to its single value grammar.
// Keywords are matched exactly; adding an option means adding one entry here
// and one OptionKind variant.
var optionValues = map[string]ParseFunc[ast.OptionKind]{
	"aws-sigv4":      optionAwsSigV4,
	"cacert":         optionCaCertificate,
	"cert":           optionClientCert,
	"compressed":     booleanOption(func(v bool) ast.OptionKind { return ast.Compressed{Value: v} }),
	"connect-to":     optionConnectTo,
	"delay":          naturalOption(func(v uint64) ast.OptionKind { return ast.Delay{Value: v} }),
	"http1.0":        booleanOption(func(v bool) ast.OptionKind { return ast.Http10{Value: v} }),
	"http1.1":        booleanOption(func(v bool) ast.OptionKind { return ast.Http11{Value: v} }),
	"http2":          booleanOption(func(v bool) ast.OptionKind { return ast.Http2{Value: v} }),
	"http3":          booleanOption(func(v bool) ast.OptionKind { return ast.Http3{Value: v} }),
	"insecure":       booleanOption(func(v bool) ast.OptionKind { return ast.Insecure{Value: v} }),
	"ipv4":           booleanOption(func(v bool) ast.OptionKind { return ast.IpV4{Value: v} }),
	"ipv6":           booleanOption(func(v bool) ast.OptionKind { return ast.IpV6{Value: v} }),
	"key":            optionClientKey,
	"location":       booleanOption(func(v bool) ast.OptionKind { return ast.FollowLocation{Value: v} }),
	"max-redirs":     optionMaxRedirect,
	"path-as-is":     booleanOption(func(v bool) ast.OptionKind { return ast.PathAsIs{Value: v} }),
	"proxy":          optionProxy,
	"resolve":        optionResolve,
	"retry":          optionRetry,
	"retry-interval": naturalOption(func(v uint64) ast.OptionKind { return ast.RetryInterval{Value: v} }),
	"variable":       optionVariable,
	"verbose":        booleanOption(func(v bool) ast.OptionKind { return ast.Verbose{Value: v} }),
	"very-verbose":   booleanOption(func(v bool) ast.OptionKind { return ast.VeryVerbose{Value: v} }),
}

// booleanOption builds the value grammar for a true/false toggle. The
// keyword has already matched, so a bad value is fatal.
func booleanOption(wrap func(bool) ast.OptionKind) ParseFunc[ast.OptionKind] {
	return func(r *Reader) (ast.OptionKind, error) {
		value, err := NonRecover(boolean, r)
		if err != nil {
			return nil, err
		}
		return wrap(value), nil
	}
}

// naturalOption builds the value grammar for an unsigned numeric setting.
func naturalOption(wrap func(uint64) ast.OptionKind) ParseFunc[ast.OptionKind] {
	return func(r *Reader) (ast.OptionKind, error) {
		value, err := NonRecover(natural, r)
		if err != nil {
			return nil, err
		}
		return wrap(value), nil
	}
}

func optionAwsSigV4(r *Reader) (ast.OptionKind, error) {
	start := r.Pos()
	provider := r.ReadWhile(func(c rune) bool {
		return unicode.IsLetter(c) || unicode.IsDigit(c) || c == ':' || c == '-'
	})
	if provider == "" {
		return nil, newError(start, false, Expecting{Value: "aws-sigv4 provider"})
	}
	return ast.AwsSigV4{Value: provider}, nil
}

func optionCaCertificate(r *Reader) (ast.OptionKind, error) {
	value, err := filename(r)
	if err != nil {
		return nil, err
	}
	return ast.CaCertificate{Value: value}, nil
}

func optionClientCert(r *Reader) (ast.OptionKind, error) {
	value, err := filename(r)
	if err != nil {
		return nil, err
	}
	return ast.ClientCert{Value: value}, nil
}

func optionClientKey(r *Reader) (ast.OptionKind, error) {
	value, err := filename(r)
	if err != nil {
		return nil, err
	}
	return ast.ClientKey{Value: value}, nil
}

func optionConnectTo(r *Reader) (ast.OptionKind, error) {
	start := r.Pos()
	value := r.ReadWhile(func(c rune) bool {
		return unicode.IsLetter(c) || unicode.IsDigit(c) || c == ':' || c == '.'
	})
	if value == "" {
		return nil, newError(start, false, Expecting{Value: "connect-to"})
	}
	// Only the presence of a colon is checked here; splitting the value into
	// its four segments is left to the consumer.
	if !strings.ContainsRune(value, ':') {
		return nil, newError(start, false, Expecting{Value: "HOST1:PORT1:HOST2:PORT2"})
	}
	return ast.ConnectTo{Value: value}, nil
}

func optionMaxRedirect(r *Reader) (ast.OptionKind, error) {
	pos := r.Pos()
	value, err := NonRecover(natural, r)
	if err != nil {
		return nil, err
	}
	if value > math.MaxInt {
		return nil, newError(pos, false, Expecting{Value: "redirect count"})
	}
	return ast.MaxRedirect{Value: int(value)}, nil
}

func optionProxy(r *Reader) (ast.OptionKind, error) {
	start := r.Pos()
	value := r.ReadWhile(func(c rune) bool {
		return unicode.IsLetter(c) || unicode.IsDigit(c) ||
			c == ':' || c == '.' || c == '[' || c == ']'
	})
	if value == "" {
		return nil, newError(start, false, Expecting{Value: "proxy name"})
	}
	return ast.Proxy{Value: value}, nil
}

func optionResolve(r *Reader) (ast.OptionKind, error) {
	start := r.Pos()
	value := r.ReadWhile(func(c rune) bool {
		return unicode.IsLetter(c) || unicode.IsDigit(c) || c == ':' || c == '.'
	})
	if value == "" {
		return nil, newError(start, false, Expecting{Value: "resolve"})
	}
	if !strings.ContainsRune(value, ':') {
		return nil, newError(start, false, Expecting{Value: "HOST:PORT:ADDR"})
	}
	return ast.Resolve{Value: value}, nil
}

func optionRetry(r *Reader) (ast.OptionKind, error) {
	value, err := retryValue(r)
	if err != nil {
		return nil, err
	}
	return ast.RetryOption{Value: value}, nil
}

// retryValue maps the signed input onto the three-valued retry setting:
// exactly -1 is infinite, exactly 0 is none, positive is a finite count.
// Anything below -1 is a syntax error.
func retryValue(r *Reader) (ast.Retry, error) {
	pos := r.Pos()
	value, err := NonRecover(integer, r)
	if err != nil {
		return nil, err
	}
	switch {
	case value == -1:
		return ast.RetryInfinite{}, nil
	case value == 0:
		return ast.RetryNone{}, nil
	case value > 0:
		return ast.RetryFinite{Count: uint64(value)}, nil
	default:
		return nil, newError(pos, false, Expecting{Value: "retry value"})
	}
}

func optionVariable(r *Reader) (ast.OptionKind, error) {
	value, err := ParseVariableDefinition(r)
	if err != nil {
		return nil, err
	}
	return ast.VariableOption{Value: value}, nil
}

// ParseVariableDefinition parses a "name = value" pair. It is exported
// because variable definitions also appear outside option clauses, for
// example on the command line.
func ParseVariableDefinition(r *Reader) (ast.VariableDefinition, error) {
	name, err := variableName(r)
	if err != nil {
		return ast.VariableDefinition{}, err
	}
	space0, _ := zeroOrMoreSpaces(r)
	if err := Literal("=", r); err != nil {
		return ast.VariableDefinition{}, err
	}
	space1, _ := zeroOrMoreSpaces(r)
	value, err := variableValue(r)
	if err != nil {
		return ast.VariableDefinition{}, err
	}
	return ast.VariableDefinition{
		Name:   name,
		Space0: space0,
		Space1: space1,
		Value:  value,
	}, nil
}

// variableValue tries each value shape in a fixed order. The order is the
// tie-break: "true" is a boolean before it is a string, "1.5" is a float
// before "1" would match as an integer, and the unquoted template comes last
// because it accepts almost any non-empty token. Whatever goes wrong is
// reported as one fatal failure at the value's position.
func variableValue(r *Reader) (ast.VariableValue, error) {
	value, err := Choice([]ParseFunc[ast.VariableValue]{
		func(r *Reader) (ast.VariableValue, error) {
			if err := nullLiteral(r); err != nil {
				return nil, err
			}
			return ast.VariableNull{}, nil
		},
		func(r *Reader) (ast.VariableValue, error) {
			v, err := boolean(r)
			if err != nil {
				return nil, err
			}
			return ast.VariableBool{Value: v}, nil
		},
		func(r *Reader) (ast.VariableValue, error) {
			v, err := float(r)
			if err != nil {
				return nil, err
			}
			return ast.VariableFloat{Value: v}, nil
		},
		func(r *Reader) (ast.VariableValue, error) {
			v, err := integer(r)
			if err != nil {
				return nil, err
			}
			return ast.VariableInteger{Value: v}, nil
		},
		func(r *Reader) (ast.VariableValue, error) {
			v, err := quotedTemplate(r)
			if err != nil {
				return nil, err
			}
			return ast.VariableString{Value: v}, nil
		},
		func(r *Reader) (ast.VariableValue, error) {
			v, err := unquotedTemplate(r)
			if err != nil {
				return nil, err
			}
			return ast.VariableString{Value: v}, nil
		},
	}, r)
	if err != nil {
		pe := err.(*Error)
		return nil, newError(pe.Pos, false, Expecting{Value: "variable value"})
	}
	return value, nil
}
