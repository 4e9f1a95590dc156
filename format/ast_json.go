// Package format renders parsed option clauses for output.
package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/req/ast"
)

// ASTJSONEncoder writes option clauses as indented JSON.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(options []ast.EntryOption) error {
	text, err := e.MarshalText(options)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(options []ast.EntryOption) ([]byte, error) {
	out := make([]*jsonOption, len(options))
	for i, o := range options {
		out[i] = optionToJSON(o)
	}
	return json.MarshalIndent(out, "", "  ")
}

type jsonOption struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type jsonRetry struct {
	Kind  string  `json:"kind"`
	Count *uint64 `json:"count,omitempty"`
}

type jsonVariable struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type jsonTemplate struct {
	Quoted   bool          `json:"quoted"`
	Text     string        `json:"text"`
	Elements []jsonElement `json:"elements"`
}

type jsonElement struct {
	Kind     string `json:"kind"`
	Value    string `json:"value,omitempty"`
	Variable string `json:"variable,omitempty"`
}

func optionToJSON(o ast.EntryOption) *jsonOption {
	return &jsonOption{
		Name:  o.Kind.OptionName(),
		Value: kindValueToJSON(o.Kind),
	}
}

func kindValueToJSON(kind ast.OptionKind) any {
	switch k := kind.(type) {
	case ast.AwsSigV4:
		return k.Value
	case ast.CaCertificate:
		return k.Value.Value
	case ast.ClientCert:
		return k.Value.Value
	case ast.ClientKey:
		return k.Value.Value
	case ast.Compressed:
		return k.Value
	case ast.ConnectTo:
		return k.Value
	case ast.Delay:
		return k.Value
	case ast.FollowLocation:
		return k.Value
	case ast.Http10:
		return k.Value
	case ast.Http11:
		return k.Value
	case ast.Http2:
		return k.Value
	case ast.Http3:
		return k.Value
	case ast.Insecure:
		return k.Value
	case ast.IpV4:
		return k.Value
	case ast.IpV6:
		return k.Value
	case ast.MaxRedirect:
		return k.Value
	case ast.PathAsIs:
		return k.Value
	case ast.Proxy:
		return k.Value
	case ast.Resolve:
		return k.Value
	case ast.RetryOption:
		return retryToJSON(k.Value)
	case ast.RetryInterval:
		return k.Value
	case ast.VariableOption:
		return variableToJSON(k.Value)
	case ast.Verbose:
		return k.Value
	case ast.VeryVerbose:
		return k.Value
	}
	return nil
}

func retryToJSON(r ast.Retry) jsonRetry {
	switch r := r.(type) {
	case ast.RetryInfinite:
		return jsonRetry{Kind: "infinite"}
	case ast.RetryNone:
		return jsonRetry{Kind: "none"}
	case ast.RetryFinite:
		count := r.Count
		return jsonRetry{Kind: "finite", Count: &count}
	}
	return jsonRetry{}
}

func variableToJSON(v ast.VariableDefinition) jsonVariable {
	return jsonVariable{
		Name:  v.Name,
		Value: variableValueToJSON(v.Value),
	}
}

func variableValueToJSON(v ast.VariableValue) any {
	switch v := v.(type) {
	case ast.VariableNull:
		return nil
	case ast.VariableBool:
		return v.Value
	case ast.VariableFloat:
		return v.Value.Value
	case ast.VariableInteger:
		return v.Value
	case ast.VariableString:
		return templateToJSON(v.Value)
	}
	return nil
}

func templateToJSON(t ast.Template) jsonTemplate {
	out := jsonTemplate{
		Quoted:   t.Delimiter != 0,
		Text:     t.Text(),
		Elements: make([]jsonElement, 0, len(t.Elements)),
	}
	for _, e := range t.Elements {
		switch e := e.(type) {
		case ast.TemplateString:
			out.Elements = append(out.Elements, jsonElement{Kind: "string", Value: e.Value})
		case ast.TemplatePlaceholder:
			out.Elements = append(out.Elements, jsonElement{Kind: "placeholder", Variable: e.Variable.Name})
		}
	}
	return out
}
