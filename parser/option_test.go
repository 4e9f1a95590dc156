package parser

import (
	"testing"

	"github.com/dhamidi/req/ast"
	"github.com/google/go-cmp/cmp"
)

func emptyWhitespace(line, column int) ast.Whitespace {
	pos := ast.Pos{Line: line, Column: column}
	return ast.Whitespace{SourceInfo: ast.SourceInfo{Start: pos, End: pos}}
}

func TestOptionInsecure(t *testing.T) {
	r := NewReader("insecure: true")
	got, err := ParseOption(r)
	if err != nil {
		t.Fatalf("ParseOption = %v", err)
	}
	want := ast.EntryOption{
		Space0: emptyWhitespace(1, 1),
		Name:   "insecure",
		Space1: emptyWhitespace(1, 9),
		Space2: ast.Whitespace{
			Value: " ",
			SourceInfo: ast.SourceInfo{
				Start: ast.Pos{Line: 1, Column: 10},
				End:   ast.Pos{Line: 1, Column: 11},
			},
		},
		Kind: ast.Insecure{Value: true},
		LineTerminator0: ast.LineTerminator{
			Space0:  emptyWhitespace(1, 15),
			Newline: emptyWhitespace(1, 15),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("option mismatch (-want +got):\n%s", diff)
	}
	if !r.IsEOF() {
		t.Error("reader not at end of input")
	}
}

func TestOptionInsecureError(t *testing.T) {
	r := NewReader("insecure: error")
	_, err := ParseOption(r)
	if err == nil {
		t.Fatal("ParseOption succeeded")
	}
	if IsRecoverable(err) {
		t.Error("error is recoverable, want fatal")
	}
}

func TestOptionCaCertificate(t *testing.T) {
	r := NewReader("cacert: /home/foo/cert.pem")
	got, err := ParseOption(r)
	if err != nil {
		t.Fatalf("ParseOption = %v", err)
	}
	want := ast.EntryOption{
		Space0: emptyWhitespace(1, 1),
		Name:   "cacert",
		Space1: emptyWhitespace(1, 7),
		Space2: ast.Whitespace{
			Value: " ",
			SourceInfo: ast.SourceInfo{
				Start: ast.Pos{Line: 1, Column: 8},
				End:   ast.Pos{Line: 1, Column: 9},
			},
		},
		Kind: ast.CaCertificate{Value: ast.Filename{
			Value: "/home/foo/cert.pem",
			SourceInfo: ast.SourceInfo{
				Start: ast.Pos{Line: 1, Column: 9},
				End:   ast.Pos{Line: 1, Column: 27},
			},
		}},
		LineTerminator0: ast.LineTerminator{
			Space0:  emptyWhitespace(1, 27),
			Newline: emptyWhitespace(1, 27),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("option mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionCaCertificateError(t *testing.T) {
	r := NewReader("cacert: ###")
	_, err := ParseOption(r)
	if err == nil {
		t.Fatal("ParseOption succeeded")
	}
	if IsRecoverable(err) {
		t.Error("error is recoverable, want fatal")
	}
}

func TestOptionKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  ast.OptionKind
	}{
		{"aws-sigv4: aws:amz:eu-central-1:foos", ast.AwsSigV4{Value: "aws:amz:eu-central-1:foos"}},
		{"compressed: true", ast.Compressed{Value: true}},
		{"connect-to: example.com:443:host.local:8443", ast.ConnectTo{Value: "example.com:443:host.local:8443"}},
		{"delay: 1000", ast.Delay{Value: 1000}},
		{"http1.0: false", ast.Http10{Value: false}},
		{"http1.1: false", ast.Http11{Value: false}},
		{"http2: true", ast.Http2{Value: true}},
		{"http3: true", ast.Http3{Value: true}},
		{"insecure: false", ast.Insecure{Value: false}},
		{"ipv4: true", ast.IpV4{Value: true}},
		{"ipv6: false", ast.IpV6{Value: false}},
		{"location: true", ast.FollowLocation{Value: true}},
		{"max-redirs: 10", ast.MaxRedirect{Value: 10}},
		{"path-as-is: true", ast.PathAsIs{Value: true}},
		{"proxy: [::1]:8080", ast.Proxy{Value: "[::1]:8080"}},
		{"resolve: example.com:443:127.0.0.1", ast.Resolve{Value: "example.com:443:127.0.0.1"}},
		{"retry: 3", ast.RetryOption{Value: ast.RetryFinite{Count: 3}}},
		{"retry-interval: 500", ast.RetryInterval{Value: 500}},
		{"verbose: true", ast.Verbose{Value: true}},
		{"very-verbose: false", ast.VeryVerbose{Value: false}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := NewReader(tt.input)
			got, err := ParseOption(r)
			if err != nil {
				t.Fatalf("ParseOption(%q) = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got.Kind); diff != "" {
				t.Errorf("kind mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptionFilenames(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cert: client.pem", "client.pem"},
		{"key: /etc/ssl/client.key", "/etc/ssl/client.key"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := NewReader(tt.input)
			got, err := ParseOption(r)
			if err != nil {
				t.Fatalf("ParseOption(%q) = %v", tt.input, err)
			}
			var value string
			switch k := got.Kind.(type) {
			case ast.ClientCert:
				value = k.Value.Value
			case ast.ClientKey:
				value = k.Value.Value
			default:
				t.Fatalf("kind = %T", got.Kind)
			}
			if value != tt.want {
				t.Errorf("filename = %q, want %q", value, tt.want)
			}
		})
	}
}

func TestUnknownKeywordIsRecoverable(t *testing.T) {
	tests := []struct {
		input string
		pos   ast.Pos
	}{
		{"unknown: true", ast.Pos{Line: 1, Column: 1}},
		{"  unknown: true", ast.Pos{Line: 1, Column: 3}},
		{"# lead\nunknown: true", ast.Pos{Line: 2, Column: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := NewReader(tt.input)
			_, err := ParseOption(r)
			if err == nil {
				t.Fatal("ParseOption succeeded")
			}
			if !IsRecoverable(err) {
				t.Fatal("error is fatal, want recoverable")
			}
			pe := err.(*Error)
			if pe.Pos != tt.pos {
				t.Errorf("Pos = %v, want %v", pe.Pos, tt.pos)
			}
			if _, ok := pe.Inner.(InvalidOption); !ok {
				t.Errorf("Inner = %T, want InvalidOption", pe.Inner)
			}
		})
	}
}

// Once a keyword has matched, no failure in the rest of the clause may be
// recoverable.
func TestCommitmentAfterKeyword(t *testing.T) {
	tests := []string{
		"insecure: yes",
		"compressed: 1",
		"delay: -1",
		"delay: x",
		"max-redirs: many",
		"cacert: ###",
		"aws-sigv4:",
		"proxy: ",
		"resolve: localhost",
		"connect-to: localhost",
		"retry: -2",
		"variable: =1",
		"variable: a",
		"insecure: true extra",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			r := NewReader(input)
			_, err := ParseOption(r)
			if err == nil {
				t.Fatalf("ParseOption(%q) succeeded", input)
			}
			if IsRecoverable(err) {
				t.Errorf("ParseOption(%q): error is recoverable, want fatal", input)
			}
		})
	}
}

func TestRetrySentinel(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Retry
	}{
		{"retry: -1", ast.RetryInfinite{}},
		{"retry: 0", ast.RetryNone{}},
		{"retry: 1", ast.RetryFinite{Count: 1}},
		{"retry: 10", ast.RetryFinite{Count: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := NewReader(tt.input)
			got, err := ParseOption(r)
			if err != nil {
				t.Fatalf("ParseOption(%q) = %v", tt.input, err)
			}
			kind := got.Kind.(ast.RetryOption)
			if diff := cmp.Diff(tt.want, kind.Value); diff != "" {
				t.Errorf("retry mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Invalid retry spellings are fatal. "-0" in particular must not come back
// as RetryNone, which would reprint as "0" and break the exact round trip.
func TestRetryInvalidValuesAreFatal(t *testing.T) {
	for _, input := range []string{"retry: -2", "retry: -100", "retry: -0"} {
		t.Run(input, func(t *testing.T) {
			r := NewReader(input)
			_, err := ParseOption(r)
			if err == nil {
				t.Fatalf("ParseOption(%q) succeeded", input)
			}
			if IsRecoverable(err) {
				t.Error("error is recoverable, want fatal")
			}
		})
	}
}

func TestResolveRequiresColon(t *testing.T) {
	r := NewReader("resolve: localhost")
	_, err := ParseOption(r)
	if err == nil {
		t.Fatal("ParseOption succeeded")
	}
	pe := err.(*Error)
	if pe.Recoverable {
		t.Error("error is recoverable, want fatal")
	}
	if exp, ok := pe.Inner.(Expecting); !ok || exp.Value != "HOST:PORT:ADDR" {
		t.Errorf("Inner = %#v, want Expecting HOST:PORT:ADDR", pe.Inner)
	}
}

func TestConnectToRequiresColon(t *testing.T) {
	r := NewReader("connect-to: localhost")
	_, err := ParseOption(r)
	if err == nil {
		t.Fatal("ParseOption succeeded")
	}
	pe := err.(*Error)
	if pe.Recoverable {
		t.Error("error is recoverable, want fatal")
	}
	if exp, ok := pe.Inner.(Expecting); !ok || exp.Value != "HOST1:PORT1:HOST2:PORT2" {
		t.Errorf("Inner = %#v, want Expecting HOST1:PORT1:HOST2:PORT2", pe.Inner)
	}
}

func TestOptionRoundTrip(t *testing.T) {
	inputs := []string{
		"insecure: true",
		"insecure:true",
		"insecure  :  true  ",
		"retry: -1\n",
		"delay: 500 # half a second\n",
		"# choose your cert\n\ncacert: /home/foo/cert.pem\n",
		"variable: host = example.com\n",
		"variable: greeting = \"hello {{ name }}\"\r\n",
		"resolve: example.com:443:127.0.0.1",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			r := NewReader(input)
			got, err := ParseOption(r)
			if err != nil {
				t.Fatalf("ParseOption(%q) = %v", input, err)
			}
			if got.Text() != input {
				t.Errorf("Text() = %q, want %q", got.Text(), input)
			}
		})
	}
}

func TestVariableDefinition(t *testing.T) {
	r := NewReader("a=1")
	got, err := ParseVariableDefinition(r)
	if err != nil {
		t.Fatalf("ParseVariableDefinition = %v", err)
	}
	want := ast.VariableDefinition{
		Name:   "a",
		Space0: emptyWhitespace(1, 2),
		Space1: emptyWhitespace(1, 3),
		Value:  ast.VariableInteger{Value: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("definition mismatch (-want +got):\n%s", diff)
	}
}

func TestVariableValuePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  ast.VariableValue
	}{
		{"null", ast.VariableNull{}},
		{"true", ast.VariableBool{Value: true}},
		{"false", ast.VariableBool{Value: false}},
		{"1", ast.VariableInteger{Value: 1}},
		{"-3", ast.VariableInteger{Value: -3}},
		{"1.5", ast.VariableFloat{Value: ast.Float{Value: 1.5, Encoded: "1.5"}}},
		{"toto", ast.VariableString{Value: ast.Template{
			Elements: []ast.TemplateElement{
				ast.TemplateString{Value: "toto", Encoded: "toto"},
			},
			SourceInfo: ast.SourceInfo{
				Start: ast.Pos{Line: 1, Column: 1},
				End:   ast.Pos{Line: 1, Column: 5},
			},
		}}},
		{`"123"`, ast.VariableString{Value: ast.Template{
			Delimiter: '"',
			Elements: []ast.TemplateElement{
				ast.TemplateString{Value: "123", Encoded: "123"},
			},
			SourceInfo: ast.SourceInfo{
				Start: ast.Pos{Line: 1, Column: 1},
				End:   ast.Pos{Line: 1, Column: 6},
			},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := NewReader(tt.input)
			got, err := variableValue(r)
			if err != nil {
				t.Fatalf("variableValue(%q) = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVariableValueEmptyIsFatal(t *testing.T) {
	r := NewReader("")
	_, err := variableValue(r)
	if err == nil {
		t.Fatal("variableValue succeeded on empty input")
	}
	pe := err.(*Error)
	if pe.Recoverable {
		t.Error("error is recoverable, want fatal")
	}
	if exp, ok := pe.Inner.(Expecting); !ok || exp.Value != "variable value" {
		t.Errorf("Inner = %#v, want Expecting variable value", pe.Inner)
	}
}

func FuzzParseOption(f *testing.F) {
	seeds := []string{
		"insecure: true",
		"retry: -1\n",
		"variable: a=1",
		"cacert: ###",
		"delay: 500 # half a second\n",
		"unknown: x",
		"variable: s = \"a{{b}}c\"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		r := NewReader(input)
		option, err := ParseOption(r)
		if err != nil {
			return
		}
		text := option.Text()
		if len(text) > len(input) {
			t.Errorf("Text() longer than input: %q from %q", text, input)
		}
		if input[:len(text)] != text {
			t.Errorf("Text() = %q is not a prefix of input %q", text, input)
		}
	})
}
