// Package ccerrors provides the structured diagnostics the core reports
// to its caller: errors and warnings each carry
// (line, column, message), plus a Kind drawn from a closed set.
// Formatting includes a source-context caret line.
package ccerrors

import (
	"fmt"
	"strings"

	"github.com/kdriscoll/forthc/internal/lexer"
)

// Kind classifies a diagnostic.
type Kind string

const (
	KindLexError           Kind = "lex_error"
	KindParseError         Kind = "parse_error"
	KindUnclosedControl    Kind = "unclosed_control"
	KindUndefinedWord      Kind = "undefined_word"
	KindStackUnderflow     Kind = "stack_underflow"
	KindBranchMismatch     Kind = "branch_mismatch"
	KindUnbalancedLoop     Kind = "unbalanced_loop"
	KindNonConvergence     Kind = "non_convergence"
)

// Diagnostic is a single compiler error or warning with source position
// and an optional Kind for programmatic handling.
type Diagnostic struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
	Source  string
	File    string
}

// New creates a Diagnostic at pos. Source and File are filled in by
// Format's caller (or left blank when no source context is available).
func New(kind Kind, pos lexer.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// WithSource returns a copy of d with source context attached, used so
// the parser/analyzer can build diagnostics without threading the
// source text through every call and attach it once at the boundary.
func (d Diagnostic) WithSource(source, file string) Diagnostic {
	d.Source = source
	d.File = file
	return d
}

func (d Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic with a source-context caret line. If
// color is true, ANSI codes highlight the caret and message for
// terminal output (the CLI's parse and analyze commands pass true for
// errors whether or not --verbose is set; github.com/fatih/color stays
// in the CLI layer, and this package only emits raw codes).
func (d Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", d.Pos.Line, d.Pos.Column)
	}

	if line := sourceLine(d.Source, d.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+d.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// List holds an ordered collection of diagnostics (errors or warnings).
// The core never aborts on a warning; the presence of any error simply
// makes the compile unit non-emittable.
type List []Diagnostic

func (l List) Error() string {
	if len(l) == 0 {
		return ""
	}
	if len(l) == 1 {
		return l[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n", len(l))
	for i, d := range l {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, d.Error())
	}
	return sb.String()
}

// HasErrors reports whether l holds any diagnostic at all. The core keeps
// errors and warnings in separate Lists, so this is simply len(l) > 0 —
// kept as a named predicate for readability at call sites.
func (l List) HasErrors() bool {
	return len(l) > 0
}
