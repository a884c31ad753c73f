// Package commands provides the CLI commands for the depc tool.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "depc [file.dep]",
	Short: "Type checker for a small dependently-typed lambda calculus",
	Long: `depc infers the classifier ("type") of a term in a small
dependently-typed lambda calculus.

Usage:
  depc [file.dep]               Check a source file (shorthand)
  depc check [file.dep]         Check explicitly
  depc check -e '<expr>'        Check an inline expression
  depc repl                     Start an interactive session
  depc version                  Print version`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Run check by default if a .dep file is provided as argument.
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkExpr != "" {
			runCheck(cmd, args)
			return nil
		}

		if len(args) > 0 && strings.HasSuffix(args[0], ".dep") {
			runCheck(cmd, args)
			return nil
		}

		if len(args) == 0 {
			return cmd.Help()
		}

		return fmt.Errorf("unknown command %q for \"depc\"\nRun 'depc --help' for usage", args[0])
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	// Global flags that mirror check flags, for the shorthand form.
	rootCmd.Flags().StringVarP(&checkExpr, "expr", "e", "", "Inline expression to check")
	rootCmd.Flags().BoolVar(&checkSubst, "subst", false, "Also print the final substitution")
}
