package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahi-dev/brack/bracket"
	"github.com/ahi-dev/brack/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var maxDepth int
	var absoluteOffsets bool

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse a text argument and dump the bracket tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []bracket.Option{bracket.WithMaxDepth(maxDepth)}
			if absoluteOffsets {
				opts = append(opts, bracket.WithAbsoluteOffsets())
			}

			node, err := bracket.Parse(args[0], opts...)
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "tree":
				encoder = format.NewTextEncoder(os.Stdout)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", bracket.DefaultMaxDepth, "maximum bracket nesting depth")
	cmd.Flags().BoolVar(&absoluteOffsets, "absolute-offsets", false, "report error offsets into the whole input instead of the failing level's substring")

	return cmd
}
