// Package compiler wires the lexer, parser, and semantic analyzer into
// the single front-end pipeline: source text →
// tokens → AST + dictionary → analyzed AST. It is the boundary the CLI
// (cmd/forthc) and any future backend call through; it does not emit
// target code itself.
package compiler

import (
	"github.com/kdriscoll/forthc/internal/ast"
	"github.com/kdriscoll/forthc/internal/ccerrors"
	"github.com/kdriscoll/forthc/internal/dictionary"
	"github.com/kdriscoll/forthc/internal/parser"
	"github.com/kdriscoll/forthc/internal/semantic"
)

// Result is what the core hands back to its caller: the
// analyzed AST, the (mutated) dictionary, and structured error/warning
// lists.
type Result struct {
	Program    *ast.Program
	Dictionary *dictionary.Dictionary
	Errors     ccerrors.List
	Warnings   ccerrors.List
	Stats      semantic.Stats
}

// Emittable reports whether the compile unit has zero errors and is
// therefore safe to hand to a backend: the presence of any error makes
// the compile unit non-emittable.
func (r *Result) Emittable() bool {
	return len(r.Errors) == 0
}

// Option configures a compile run.
type Option func(*options)

type options struct {
	file   string
	config dictionary.Config
}

// WithFile sets the filename used in diagnostic headers.
func WithFile(file string) Option {
	return func(o *options) { o.file = file }
}

// WithVocabulary selects the builtin dictionary configuration to seed
// before parsing (MINIMAL/STANDARD/MATH_ENHANCED/EXTENDED).
// Defaults to dictionary.Standard.
func WithVocabulary(cfg dictionary.Config) Option {
	return func(o *options) { o.config = cfg }
}

// Compile runs the whole front-end pipeline over source and returns the
// analyzed result. Compile never panics on malformed input — malformed
// input produces diagnostics in Result.Errors/Warnings instead.
func Compile(source string, opts ...Option) *Result {
	cfg := options{config: dictionary.Standard}
	for _, opt := range opts {
		opt(&cfg)
	}

	dict := dictionary.NewWithConfig(cfg.config)
	p := parser.New(source, dict)
	if cfg.file != "" {
		p.WithFile(cfg.file)
	}
	prog := p.ParseProgram()

	analyzer := semantic.New(dict).WithSource(source, cfg.file)
	analyzer.Analyze(prog)

	var errs ccerrors.List
	errs = append(errs, p.Errors()...)
	errs = append(errs, analyzer.Errors()...)

	var warns ccerrors.List
	warns = append(warns, p.Warnings()...)
	warns = append(warns, analyzer.Warnings()...)

	return &Result{
		Program:    prog,
		Dictionary: dict,
		Errors:     errs,
		Warnings:   warns,
		Stats:      analyzer.Stats(),
	}
}
