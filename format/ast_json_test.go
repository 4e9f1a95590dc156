package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dhamidi/req/parser"
	"github.com/google/go-cmp/cmp"
)

func parseAll(t *testing.T, input string) []byte {
	t.Helper()
	section, err := parser.ParseOptions(parser.NewReader(input))
	if err != nil {
		t.Fatalf("ParseOptions(%q) = %v", input, err)
	}
	var buf bytes.Buffer
	if err := NewASTJSONEncoder(&buf).Encode(section.Options); err != nil {
		t.Fatalf("Encode = %v", err)
	}
	return buf.Bytes()
}

func decode(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal = %v\n%s", err, raw)
	}
	return out
}

func TestEncodeScalarOptions(t *testing.T) {
	raw := parseAll(t, "insecure: true\ndelay: 500\ncacert: /tmp/ca.pem\n")
	got := decode(t, raw)
	want := []map[string]any{
		{"name": "insecure", "value": true},
		{"name": "delay", "value": float64(500)},
		{"name": "cacert", "value": "/tmp/ca.pem"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encoded options mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRetry(t *testing.T) {
	tests := []struct {
		input string
		want  map[string]any
	}{
		{"retry: -1\n", map[string]any{"kind": "infinite"}},
		{"retry: 0\n", map[string]any{"kind": "none"}},
		{"retry: 5\n", map[string]any{"kind": "finite", "count": float64(5)}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := decode(t, parseAll(t, tt.input))
			if diff := cmp.Diff(tt.want, got[0]["value"]); diff != "" {
				t.Errorf("retry mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeVariableTemplate(t *testing.T) {
	got := decode(t, parseAll(t, "variable: greeting = \"hi {{name}}\"\n"))
	want := map[string]any{
		"name": "greeting",
		"value": map[string]any{
			"quoted": true,
			"text":   `"hi {{name}}"`,
			"elements": []any{
				map[string]any{"kind": "string", "value": "hi "},
				map[string]any{"kind": "placeholder", "variable": "name"},
			},
		},
	}
	if diff := cmp.Diff(want, got[0]["value"]); diff != "" {
		t.Errorf("variable mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeVariableNull(t *testing.T) {
	got := decode(t, parseAll(t, "variable: missing = null\n"))
	value := got[0]["value"].(map[string]any)
	if value["value"] != nil {
		t.Errorf("value = %v, want nil", value["value"])
	}
}

func TestEncodeEmptySection(t *testing.T) {
	raw := parseAll(t, "")
	if string(raw) != "[]" {
		t.Errorf("encoded = %q, want []", raw)
	}
}
