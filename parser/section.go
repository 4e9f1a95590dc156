package parser

import "github.com/dhamidi/req/ast"

// ParseOptions parses consecutive option clauses until the input stops
// looking like one, then requires only trivia up to the end of input. The
// trailing trivia is kept on the section so reprinting it reproduces the
// whole input, not just the clauses. This is the entry point used by the
// command line tools and the language server; a surrounding document parser
// would instead call ParseOption directly and handle the recoverable failure
// itself.
func ParseOptions(r *Reader) (ast.OptionsSection, error) {
	options, err := ZeroOrMore(ParseOption, r)
	if err != nil {
		return ast.OptionsSection{}, err
	}
	lineTerminators, err := optionalLineTerminators(r)
	if err != nil {
		return ast.OptionsSection{}, err
	}
	space0, err := zeroOrMoreSpaces(r)
	if err != nil {
		return ast.OptionsSection{}, err
	}
	if !r.IsEOF() {
		return ast.OptionsSection{}, newError(r.Pos(), false, Expecting{Value: "option"})
	}
	return ast.OptionsSection{
		Options:         options,
		LineTerminators: lineTerminators,
		Space0:          space0,
	}, nil
}
