package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnoseValidDocument(t *testing.T) {
	inputs := []string{
		"",
		"insecure: true\nretry: 3\n",
		"# comments only\n",
	}
	for _, input := range inputs {
		if got := diagnose(input); len(got) != 0 {
			t.Errorf("diagnose(%q) = %v, want none", input, got)
		}
	}
}

func TestDiagnosePositionIsZeroBased(t *testing.T) {
	got := diagnose("insecure: true\ndelay: oops\n")
	if len(got) != 1 {
		t.Fatalf("len(diagnostics) = %d, want 1", len(got))
	}
	want := protocol.Position{Line: 1, Character: 7}
	if got[0].Range.Start != want {
		t.Errorf("Range.Start = %v, want %v", got[0].Range.Start, want)
	}
	if !strings.Contains(got[0].Message, "expecting") {
		t.Errorf("Message = %q, want an expecting message", got[0].Message)
	}
	if *got[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v, want error", *got[0].Severity)
	}
}

func TestDiagnoseUnknownKeyword(t *testing.T) {
	got := diagnose("whatever: 1\n")
	if len(got) != 1 {
		t.Fatalf("len(diagnostics) = %d, want 1", len(got))
	}
	if got[0].Range.Start != (protocol.Position{Line: 0, Character: 0}) {
		t.Errorf("Range.Start = %v, want 0:0", got[0].Range.Start)
	}
}
