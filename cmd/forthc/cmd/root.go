package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "forthc",
	Short: "A front end for a stack-based, Forth-like language",
	Long: `forthc lexes, parses, and analyzes programs written in a small
stack-based language: words are defined with ':' and ';', the data
stack is manipulated by words and arithmetic, and control flow is
expressed with IF/ELSE/THEN and BEGIN/UNTIL.

forthc reports every word's inferred stack effect and flags stack
underflows, unbalanced loops, mismatched IF/ELSE branches, and
undefined words. It does not execute programs or emit target code.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("vocabulary", "standard", "builtin vocabulary: minimal, standard, math_enhanced, extended")
}
