package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdriscoll/forthc/internal/ast"
	"github.com/kdriscoll/forthc/internal/dictionary"
	"github.com/kdriscoll/forthc/internal/parser"
)

var (
	parseEvalExpr string
	parseDumpAST  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source code and display the AST",
	Long: `Parse a stack-language program and display its syntax tree.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line. Use --dump-ast to show the full
tree structure rather than the flattened source rendering.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	dict := dictionary.NewWithConfig(vocabularyFlag(cmd))
	p := parser.New(source, dict).WithFile(filename)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			fmt.Println(e.Format(true))
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if parseDumpAST {
		dumpNode(program, 0)
	} else {
		fmt.Println(program.String())
	}
	return nil
}

func dumpNode(node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(s, indent+1)
		}
	case *ast.WordDefinition:
		fmt.Printf("%sWordDefinition %s effect=%s\n", pad, n.Name, n.Effect())
		for _, s := range n.Body {
			dumpNode(s, indent+1)
		}
	case *ast.IfStatement:
		fmt.Printf("%sIfStatement\n", pad)
		fmt.Printf("%s  Then:\n", pad)
		for _, s := range n.ThenBranch {
			dumpNode(s, indent+2)
		}
		if n.ElseBranch != nil {
			fmt.Printf("%s  Else:\n", pad)
			for _, s := range n.ElseBranch {
				dumpNode(s, indent+2)
			}
		}
	case *ast.BeginUntilLoop:
		fmt.Printf("%sBeginUntilLoop\n", pad)
		for _, s := range n.Body {
			dumpNode(s, indent+1)
		}
	case *ast.WordCall:
		fmt.Printf("%sWordCall %s effect=%s\n", pad, n.Name, n.Effect())
	case *ast.MathOperation:
		fmt.Printf("%sMathOperation %s effect=%s\n", pad, n.Op, n.Effect())
	case *ast.NumberLiteral:
		fmt.Printf("%sNumberLiteral %s\n", pad, n.Text)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral %q print=%v\n", pad, n.Text, n.IsPrint)
	case *ast.VariableDeclaration:
		fmt.Printf("%sVariableDeclaration %s constant=%v\n", pad, n.Name, n.IsConstant)
	default:
		fmt.Printf("%s%T\n", pad, node)
	}
}
