package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "eval <expr...>",
		Short: "Evaluate a single expression",
		Long: `Evaluate a single expression and print the result.

Binary expressions take the form 'A op B' where op is one of
+ - * cmp == != < <= > >=. Unary expressions take the form 'fn A' where fn
is one of neg, abs, len, hash, sign.

Flags must come before the expression. Everything after the first operand is
part of the expression, so 'eval neg -5' and 'eval 3 + -5' work as written.
An expression that starts with a negative number needs a '--' separator:

	decalc eval -- -5 + 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = root.cfg.Output.Format
			}
			if format == "msgpack" {
				return fmt.Errorf("eval does not support msgpack output")
			}

			res, err := evaluate(strings.Join(args, " "))
			if err != nil {
				return err
			}
			root.logger.Printf("evaluated %q", res.Expr)
			return writeResults(cmd.OutOrStdout(), format, false, []result{res})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
