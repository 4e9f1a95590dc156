package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/req/parser"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reprint the options of a req file from its syntax tree",
		Long: "Parses the file and prints it back from the syntax tree. The " +
			"tree keeps all spacing, comments and line endings, so the output " +
			"matches the input byte for byte.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			section, err := parser.ParseOptions(parser.NewReader(string(data)))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			fmt.Print(section.Text())
			return nil
		},
	}
}
