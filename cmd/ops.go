/*
Copyright © 2025 vipcxj
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/iset/internal/calc"
)

func newOpCommand(use, short string, op calc.Op, nargs cobra.PositionalArgs) *cobra.Command {
	c := &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         nargs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc.Run(cmd.OutOrStdout(), cmd.Flags(), op, args)
		},
	}
	c.Flags().StringP("type", "t", "u64", "index type, one of: u8 u16 u32 u64 i8 i16 i32 i64 char ipv4 ipv6")
	c.Flags().Bool("size", false, "also print the element count of the result")
	return c
}

func init() {
	rootCmd.AddCommand(
		newOpCommand("union SET [SET...]", "Union of the given sets", calc.OpUnion, cobra.MinimumNArgs(1)),
		newOpCommand("intersect SET [SET...]", "Intersection of the given sets", calc.OpIntersect, cobra.MinimumNArgs(1)),
		newOpCommand("diff SET [SET...]", "First set minus the remaining sets", calc.OpDiff, cobra.MinimumNArgs(1)),
		newOpCommand("complement SET", "Complement of the set within its domain", calc.OpComplement, cobra.ExactArgs(1)),
	)
}
