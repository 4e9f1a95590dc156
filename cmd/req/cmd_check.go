package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/req/parser"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check req files for syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				input := string(data)
				if _, err := parser.ParseOptions(parser.NewReader(input)); err != nil {
					failed = true
					fmt.Fprintf(os.Stderr, "%s:%s\n", filename, err)
					if pe, ok := err.(*parser.Error); ok {
						fmt.Fprint(os.Stderr, codeSnippet(input, pe.Pos.Line, pe.Pos.Column))
					}
				}
			}
			if failed {
				return fmt.Errorf("syntax errors found")
			}
			return nil
		},
	}
}

// codeSnippet renders the offending line with a caret under the error
// column. Columns count runes, not bytes.
func codeSnippet(input string, line, column int) string {
	lines := strings.Split(input, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	content := lines[line-1]
	width := len([]rune(content))

	var sb strings.Builder
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%2d | %s\n", line, content)
	sb.WriteString("   | ")
	if column > 0 && column <= width+1 {
		sb.WriteString(strings.Repeat(" ", column-1) + "^")
	}
	sb.WriteString("\n")
	return sb.String()
}
