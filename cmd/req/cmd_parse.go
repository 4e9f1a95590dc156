package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/req/format"
	"github.com/dhamidi/req/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse the options of a req file and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			section, err := parser.ParseOptions(parser.NewReader(string(data)))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			switch outputFormat {
			case "json":
				enc := format.NewASTJSONEncoder(os.Stdout)
				if err := enc.Encode(section.Options); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println()
			case "text":
				fmt.Print(section.Text())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}
