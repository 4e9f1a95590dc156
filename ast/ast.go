// Package ast defines the syntax nodes produced by the req option parser.
//
// Every node keeps the source text it was parsed from, including whitespace,
// comments and line endings, so that a parsed document can be reprinted
// byte-for-byte (see Text on each node).
package ast

// Pos is a 1-based line/column position in the source text.
type Pos struct {
	Line   int
	Column int
}

// SourceInfo is the half-open span a node was parsed from.
type SourceInfo struct {
	Start Pos
	End   Pos
}

// Whitespace is a literal run of spacing characters.
type Whitespace struct {
	Value      string
	SourceInfo SourceInfo
}

// Comment is a '#' comment without its leading '#'.
type Comment struct {
	Value      string
	SourceInfo SourceInfo
}

// LineTerminator is the trivia ending a line: trailing spaces, an optional
// comment, and the newline itself (empty at end of input).
type LineTerminator struct {
	Space0  Whitespace
	Comment *Comment
	Newline Whitespace
}

// Filename is a path value such as a certificate location.
type Filename struct {
	Value      string
	SourceInfo SourceInfo
}

// Float keeps the source text alongside the parsed value so that "3.10"
// reprints as written.
type Float struct {
	Value   float64
	Encoded string
}

// Template is an interpolatable string: a sequence of literal and
// placeholder elements, optionally quote-delimited.
type Template struct {
	// Delimiter is the quote character, or 0 for an unquoted template.
	Delimiter  rune
	Elements   []TemplateElement
	SourceInfo SourceInfo
}

// TemplateElement is one segment of a Template.
type TemplateElement interface {
	templateElement()
}

// TemplateString is a literal segment. Value is the decoded text, Encoded the
// source text including escape sequences.
type TemplateString struct {
	Value   string
	Encoded string
}

func (TemplateString) templateElement() {}

// TemplatePlaceholder is a {{name}} segment.
type TemplatePlaceholder struct {
	Space0     Whitespace
	Variable   Variable
	Space1     Whitespace
	SourceInfo SourceInfo
}

func (TemplatePlaceholder) templateElement() {}

// Variable is a variable reference inside a placeholder.
type Variable struct {
	Name       string
	SourceInfo SourceInfo
}

/// EntryOption is one "name: value" clause of an entry's options section.
// Concatenating its fields in order (see Text) reproduces the input exactly.
type EntryOption struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Name            string
	Space1          Whitespace
	Space2          Whitespace
	Kind            OptionKind
	LineTerminator0 LineTerminator
}

// OptionsSection is a parsed options block: its clauses plus the blank and
// comment lines after the last clause, which belong to no clause but are
// still part of the source text.
type OptionsSection struct {
	Options         []EntryOption
	LineTerminators []LineTerminator
	Space0          Whitespace
}

// OptionKind is the closed set of option variants. Each variant owns exactly
// the value its grammar produces.
type OptionKind interface {
	optionKind()
	// OptionName is the keyword the variant is written as.
	OptionName() string
}

// AwsSigV4 holds the "aws-sigv4" provider string.
type AwsSigV4 struct{ Value string }

// CaCertificate holds the "cacert" filename.
type CaCertificate struct{ Value Filename }

// ClientCert holds the "cert" filename.
type ClientCert struct{ Value Filename }

// ClientKey holds the "key" filename.
type ClientKey struct{ Value Filename }

// Compressed holds the "compressed" toggle.
type Compressed struct{ Value bool }

// ConnectTo holds the "connect-to" HOST1:PORT1:HOST2:PORT2 string.
type ConnectTo struct{ Value string }

// Delay holds the "delay" duration in milliseconds.
type Delay struct{ Value uint64 }

// FollowLocation holds the "location" toggle.
type FollowLocation struct{ Value bool }

// Http10 holds the "http1.0" toggle.
type Http10 struct{ Value bool }

// Http11 holds the "http1.1" toggle.
type Http11 struct{ Value bool }

// Http2 holds the "http2" toggle.
type Http2 struct{ Value bool }

// Http3 holds the "http3" toggle.
type Http3 struct{ Value bool }

// Insecure holds the "insecure" toggle.
type Insecure struct{ Value bool }

// IpV4 holds the "ipv4" toggle.
type IpV4 struct{ Value bool }

// IpV6 holds the "ipv6" toggle.
type IpV6 struct{ Value bool }

// MaxRedirect holds the "max-redirs" count.
type MaxRedirect struct{ Value int }

// PathAsIs holds the "path-as-is" toggle.
type PathAsIs struct{ Value bool }

// Proxy holds the "proxy" host string.
type Proxy struct{ Value string }

// Resolve holds the "resolve" HOST:PORT:ADDR string.
type Resolve struct{ Value string }

// RetryOption holds the "retry" sentinel.
type RetryOption struct{ Value Retry }

// RetryInterval holds the "retry-interval" duration in milliseconds.
type RetryInterval struct{ Value uint64 }

// VariableOption holds a "variable" definition.
type VariableOption struct{ Value VariableDefinition }

// Verbose holds the "verbose" toggle.
type Verbose struct{ Value bool }

// VeryVerbose holds the "very-verbose" toggle.
type VeryVerbose struct{ Value bool }

func (AwsSigV4) optionKind()       {}
func (CaCertificate) optionKind()  {}
func (ClientCert) optionKind()     {}
func (ClientKey) optionKind()      {}
func (Compressed) optionKind()     {}
func (ConnectTo) optionKind()      {}
func (Delay) optionKind()          {}
func (FollowLocation) optionKind() {}
func (Http10) optionKind()         {}
func (Http11) optionKind()         {}
func (Http2) optionKind()          {}
func (Http3) optionKind()          {}
func (Insecure) optionKind()       {}
func (IpV4) optionKind()           {}
func (IpV6) optionKind()           {}
func (MaxRedirect) optionKind()    {}
func (PathAsIs) optionKind()       {}
func (Proxy) optionKind()          {}
func (Resolve) optionKind()        {}
func (RetryOption) optionKind()    {}
func (RetryInterval) optionKind()  {}
func (VariableOption) optionKind() {}
func (Verbose) optionKind()        {}
func (VeryVerbose) optionKind()    {}

func (AwsSigV4) OptionName() string       { return "aws-sigv4" }
func (CaCertificate) OptionName() string  { return "cacert" }
func (ClientCert) OptionName() string     { return "cert" }
func (ClientKey) OptionName() string      { return "key" }
func (Compressed) OptionName() string     { return "compressed" }
func (ConnectTo) OptionName() string      { return "connect-to" }
func (Delay) OptionName() string          { return "delay" }
func (FollowLocation) OptionName() string { return "location" }
func (Http10) OptionName() string         { return "http1.0" }
func (Http11) OptionName() string         { return "http1.1" }
func (Http2) OptionName() string          { return "http2" }
func (Http3) OptionName() string          { return "http3" }
func (Insecure) OptionName() string       { return "insecure" }
func (IpV4) OptionName() string           { return "ipv4" }
func (IpV6) OptionName() string           { return "ipv6" }
func (MaxRedirect) OptionName() string    { return "max-redirs" }
func (PathAsIs) OptionName() string       { return "path-as-is" }
func (Proxy) OptionName() string          { return "proxy" }
func (Resolve) OptionName() string        { return "resolve" }
func (RetryOption) OptionName() string    { return "retry" }
func (RetryInterval) OptionName() string  { return "retry-interval" }
func (VariableOption) OptionName() string { return "variable" }
func (Verbose) OptionName() string        { return "verbose" }
func (VeryVerbose) OptionName() string    { return "very-verbose" }

// Retry is the three-valued retry setting: -1 in the source means infinite,
// 0 means no retries, and a positive count means that many retries. No other
// value is representable.
type Retry interface {
	retry()
}

// RetryInfinite is the "-1" retry sentinel.
type RetryInfinite struct{}

// RetryNone is the "0" retry sentinel.
type RetryNone struct{}

// RetryFinite is a positive retry count.
type RetryFinite struct{ Count uint64 }

func (RetryInfinite) retry() {}
func (RetryNone) retry()     {}
func (RetryFinite) retry()   {}

// VariableDefinition is a "name = value" pair with the whitespace around '='.
type VariableDefinition struct {
	Name   string
	Space0 Whitespace
	Space1 Whitespace
	Value  VariableValue
}

// VariableValue is the closed set of variable value variants.
type VariableValue interface {
	variableValue()
}

// VariableNull is the literal null.
type VariableNull struct{}

// VariableBool is a boolean literal.
type VariableBool struct{ Value bool }

// VariableFloat is a float literal.
type VariableFloat struct{ Value Float }

// VariableInteger is an integer literal.
type VariableInteger struct{ Value int64 }

// VariableString is a string template, quoted or not.
type VariableString struct{ Value Template }

func (VariableNull) variableValue()    {}
func (VariableBool) variableValue()    {}
func (VariableFloat) variableValue()   {}
func (VariableInteger) variableValue() {}
func (VariableString) variableValue()  {}
