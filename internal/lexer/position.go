package lexer

import "fmt"

// Position identifies a location in source text. Lines and columns are
// 1-based, matching the diagnostics convention used throughout the
// compiler.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column" for embedding in messages.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
