package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kdriscoll/forthc/internal/dictionary"
)

// readSource resolves a command's input: an inline expression via -e,
// a file path argument, or stdin when neither is given.
func readSource(evalExpr string, args []string) (source, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	default:
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), "<stdin>", nil
	}
}

// vocabularyFlag reads the --vocabulary persistent flag and resolves it
// to a dictionary.Config, defaulting to Standard on an unrecognized
// value.
func vocabularyFlag(cmd *cobra.Command) dictionary.Config {
	name, _ := cmd.Flags().GetString("vocabulary")
	switch name {
	case "minimal":
		return dictionary.Minimal
	case "math_enhanced":
		return dictionary.MathEnhanced
	case "extended":
		return dictionary.Extended
	default:
		return dictionary.Standard
	}
}
