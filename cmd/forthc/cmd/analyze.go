package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kdriscoll/forthc/internal/compiler"
)

var (
	analyzeEvalExpr string
	analyzeStats    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the full front end and report inferred stack effects",
	Long: `Lex, parse, and semantically analyze a stack-language program.

For every word definition, analyze prints its inferred stack effect
as (consumed, produced). Stack underflows, unbalanced BEGIN/UNTIL
loops, mismatched IF/ELSE branches, and undefined words are reported
as diagnostics. Use --stats to additionally print a summary of the
analysis run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeEvalExpr, "eval", "e", "", "analyze inline code instead of reading from a file")
	analyzeCmd.Flags().BoolVar(&analyzeStats, "stats", false, "print a summary of the analysis run")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(analyzeEvalExpr, args)
	if err != nil {
		return err
	}

	result := compiler.Compile(source,
		compiler.WithFile(filename),
		compiler.WithVocabulary(vocabularyFlag(cmd)))

	for _, name := range result.Dictionary.Names() {
		entry := result.Dictionary.Lookup(name)
		if entry.BodyAST == nil {
			continue
		}
		fmt.Printf("%-16s %s\n", name, entry.Effect)
	}

	for _, w := range result.Warnings {
		fmt.Println(color.YellowString("warning: " + w.Format(false)))
	}
	for _, e := range result.Errors {
		fmt.Println(color.RedString(e.Format(true)))
	}

	if analyzeStats {
		fmt.Println("---")
		fmt.Printf("dictionary words:   %d\n", result.Stats.WordCount)
		fmt.Printf("fixpoint passes:    %d\n", result.Stats.FixpointPasses)
		fmt.Printf("max nesting depth:  %d\n", result.Stats.MaxNestingDepth)
		fmt.Printf("undefined words:    %d\n", result.Stats.UndefinedWords)
	}

	if !result.Emittable() {
		return fmt.Errorf("analysis found %d error(s)", len(result.Errors))
	}
	return nil
}
