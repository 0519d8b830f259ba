/*
Copyright © 2025 vipcxj
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iset",
	Short: "Set algebra over discrete intervals",
	Long: `iset evaluates set algebra (union, intersection, difference,
complement) over compact interval representations of discrete domains:
fixed-width integers, Unicode scalar values and IPv4/IPv6 addresses.

Sets are written as comma separated range tokens, e.g.:

  iset union -t u16 "1..=1023" "8080,8443"
  iset complement -t u16 --size "22,443"
  iset diff -t ipv4 "10.0.0.0..=10.0.0.255" "10.0.0.1"`,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
