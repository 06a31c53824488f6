package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahi-dev/brack/bracket"
)

func newCheckCmd() *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check files for unbalanced brackets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read %s: %w", filename, err)
				}

				_, err = bracket.Parse(string(data),
					bracket.WithMaxDepth(maxDepth),
					bracket.WithAbsoluteOffsets(),
				)
				if err != nil {
					fmt.Printf("%s: %v\n", filename, err)
					failed++
					continue
				}
				fmt.Printf("%s: ok\n", filename)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", bracket.DefaultMaxDepth, "maximum bracket nesting depth")

	return cmd
}
