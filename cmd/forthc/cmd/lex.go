package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kdriscoll/forthc/internal/lexer"
)

var (
	lexEvalExpr string
	lexShowPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Tokenize a stack-language program and print the resulting tokens,
one per line, tagged by kind.

Examples:
  forthc lex program.fs
  forthc lex -e ": SQUARE DUP * ;"
  forthc lex --show-pos program.fs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s (%d bytes)\n", filename, len(source))
		fmt.Println("---")
	}

	l := lexer.New(source)
	errorCount := 0
	for {
		tok := l.NextToken()
		printToken(tok)
		if tok.Kind == lexer.ILLEGAL {
			errorCount++
		}
		if tok.Kind == lexer.EOF {
			break
		}
	}

	for _, lexErr := range l.Errors() {
		fmt.Println(color.RedString("lex error: %s", lexErr))
	}

	if errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok lexer.Token) {
	output := fmt.Sprintf("[%-10s]", tok.Kind)
	switch {
	case tok.Kind == lexer.EOF:
		output += " EOF"
	case tok.Kind == lexer.ILLEGAL:
		output += color.RedString(" ILLEGAL: %q", tok.Literal)
	default:
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(output)
}
