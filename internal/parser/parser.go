// Package parser implements a recursive-descent grammar
// over the lexer's token stream, producing a Program AST and populating
// a Dictionary with every word, variable, and constant it declares.
package parser

import (
	"strings"

	"github.com/kdriscoll/forthc/internal/ast"
	"github.com/kdriscoll/forthc/internal/ccerrors"
	"github.com/kdriscoll/forthc/internal/dictionary"
	"github.com/kdriscoll/forthc/internal/effect"
	"github.com/kdriscoll/forthc/internal/lexer"
)

// marker tags an open control-flow construct on the parser's balance
// stack.
type marker int

const (
	markerColon marker = iota
	markerIf
	markerBegin
)

func (m marker) String() string {
	switch m {
	case markerColon:
		return ":"
	case markerIf:
		return "IF"
	case markerBegin:
		return "BEGIN"
	}
	return "?"
}

// Parser is a recursive-descent parser over a token stream. One Parser
// is used for exactly one compile unit, single-threaded, start to
// finish.
type Parser struct {
	tokens []lexer.Token
	pos    int

	dict *dictionary.Dictionary

	controlStack []marker

	errors   ccerrors.List
	warnings ccerrors.List

	source string
	file   string
}

// New creates a Parser over source, tokenizing it fully up front: the
// grammar needs arbitrary lookahead for ELSE/THEN matching, so buffering
// the whole stream up front is simpler than a streaming cursor.
// If dict is nil, a fresh STANDARD-configuration dictionary is created.
func New(source string, dict *dictionary.Dictionary) *Parser {
	if dict == nil {
		dict = dictionary.New()
	}
	p := &Parser{dict: dict, source: source}
	l := lexer.New(source)
	for {
		tok := l.NextToken()
		p.tokens = append(p.tokens, tok)
		if tok.Kind == lexer.EOF {
			break
		}
	}
	for _, lexErr := range l.Errors() {
		p.errors = append(p.errors, ccerrors.New(ccerrors.KindLexError, lexErr.Pos, "%s", lexErr.Message).WithSource(source, p.file))
	}
	return p
}

// WithFile sets the filename used in diagnostic headers, including those
// of lexer errors already recorded by New.
func (p *Parser) WithFile(file string) *Parser {
	p.file = file
	for i := range p.errors {
		p.errors[i].File = file
	}
	return p
}

// Dictionary returns the dictionary the parser has been registering
// names into. This is the same dictionary the analyzer mutates next.
func (p *Parser) Dictionary() *dictionary.Dictionary {
	return p.dict
}

// Errors returns parse-time errors (including any lexer errors surfaced
// at construction time).
func (p *Parser) Errors() ccerrors.List { return p.errors }

// Warnings returns parse-time warnings.
func (p *Parser) Warnings() ccerrors.List { return p.warnings }

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == lexer.EOF
}

func (p *Parser) errorf(pos lexer.Position, kind ccerrors.Kind, format string, args ...any) {
	p.errors = append(p.errors, ccerrors.New(kind, pos, format, args...).WithSource(p.source, p.file))
}

func (p *Parser) warnf(pos lexer.Position, kind ccerrors.Kind, format string, args ...any) {
	p.warnings = append(p.warnings, ccerrors.New(kind, pos, format, args...).WithSource(p.source, p.file))
}

// recover skips tokens until the next SEMICOLON or EOF (panic-mode
// error recovery), and returns without consuming the SEMICOLON
// (the caller's loop will consume it or hit EOF next).
func (p *Parser) recover() {
	for !p.atEOF() && p.cur().Kind != lexer.SEMICOLON {
		p.advance()
	}
}

// ParseProgram parses the whole token stream into a Program, per the
// grammar `program := statement* EOF`.
func (p *Parser) ParseProgram() *ast.Program {
	var stmts []ast.Statement
	for !p.atEOF() {
		if s := p.statement(); s != nil {
			stmts = append(stmts, s)
		}
	}
	if len(p.controlStack) > 0 {
		unclosed := p.controlStack[len(p.controlStack)-1]
		p.errorf(p.cur().Pos, ccerrors.KindUnclosedControl, "unclosed %s at end of input", unclosed)
	}
	return ast.NewProgram(stmts)
}

// body parses statement* until one of the given terminator kinds is
// seen (without consuming it), implementing the `body := statement*`
// production for whichever construct called it.
func (p *Parser) body(terminators ...lexer.TokenKind) []ast.Statement {
	var stmts []ast.Statement
	for !p.atEOF() && !p.atAny(terminators...) {
		if s := p.statement(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *Parser) atAny(kinds ...lexer.TokenKind) bool {
	cur := p.cur().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// statement parses one grammar production of the `statement`
// rule, or nil plus a recorded error if the current token starts
// nothing recognizable.
func (p *Parser) statement() ast.Statement {
	tok := p.cur()
	switch tok.Kind {
	case lexer.COLON:
		return p.colonDefinition()
	case lexer.IF:
		return p.ifStatement()
	case lexer.BEGIN:
		return p.beginUntilLoop()
	case lexer.NUMBER:
		p.advance()
		return ast.NewNumberLiteral(tok.Pos, tok.Literal, tok.IsFloat())
	case lexer.STRING:
		p.advance()
		return ast.NewStringLiteral(tok.Pos, tok.StringText(), tok.IsPrintString())
	case lexer.MATHWORD:
		p.advance()
		return ast.NewMathOperation(tok.Pos, strings.ToUpper(tok.Literal), mathEffect(strings.ToUpper(tok.Literal)))
	case lexer.WORD:
		return p.word()
	case lexer.SEMICOLON:
		// A stray ';' with no open colon definition: report and skip it
		// so the caller's loop makes progress.
		p.errorf(tok.Pos, ccerrors.KindParseError, "unexpected ';' with no open definition")
		p.advance()
		return nil
	case lexer.THEN, lexer.ELSE, lexer.UNTIL, lexer.DO, lexer.LOOP:
		p.errorf(tok.Pos, ccerrors.KindParseError, "unexpected %s", tok.Kind)
		p.advance()
		return nil
	case lexer.ILLEGAL:
		p.errorf(tok.Pos, ccerrors.KindLexError, "%s", tok.Literal)
		p.advance()
		return nil
	default:
		p.errorf(tok.Pos, ccerrors.KindParseError, "unexpected token %q", tok.Literal)
		p.advance()
		return nil
	}
}

// word handles a generic WORD token: VARIABLE/CONSTANT declarations
// (the lexer leaves these tagged as generic words; the
// parser interprets them by uppercased lexeme), or an ordinary word
// call recorded for the analyzer to resolve later.
func (p *Parser) word() ast.Statement {
	tok := p.advance()
	switch strings.ToUpper(tok.Literal) {
	case "VARIABLE":
		return p.variableOrConstant(tok.Pos, false)
	case "CONSTANT":
		return p.variableOrConstant(tok.Pos, true)
	default:
		return p.wordCall(tok)
	}
}

func (p *Parser) variableOrConstant(pos lexer.Position, isConstant bool) ast.Statement {
	if p.cur().Kind != lexer.WORD && p.cur().Kind != lexer.MATHWORD {
		p.errorf(p.cur().Pos, ccerrors.KindParseError, "expected a name after VARIABLE/CONSTANT")
		p.recover()
		return nil
	}
	nameTok := p.advance()
	decl := ast.NewVariableDeclaration(pos, strings.ToUpper(nameTok.Literal), isConstant)
	if isConstant {
		p.dict.DefineConstant(nameTok.Literal)
	} else {
		p.dict.DefineVariable(nameTok.Literal)
	}
	return decl
}

// wordCall records a call to a name that may not be defined yet
// (forward reference or recursion); resolution is deferred to the
// semantic analyzer, which is the only stage that resolves names.
func (p *Parser) wordCall(tok lexer.Token) ast.Statement {
	return ast.NewWordCall(tok.Pos, strings.ToUpper(tok.Literal))
}

// colonDefinition parses `: WORD body ;`. The new name is registered in
// the dictionary immediately, before the body is parsed, so recursive
// and forward self-calls inside the body resolve.
func (p *Parser) colonDefinition() ast.Statement {
	colonTok := p.advance() // consume ':'
	p.controlStack = append(p.controlStack, markerColon)
	defer p.popControl()

	if p.cur().Kind != lexer.WORD && p.cur().Kind != lexer.MATHWORD {
		p.errorf(p.cur().Pos, ccerrors.KindParseError, "expected a word name after ':'")
		p.recover()
		if p.cur().Kind == lexer.SEMICOLON {
			p.advance()
		}
		return nil
	}
	nameTok := p.advance()
	name := strings.ToUpper(nameTok.Literal)

	def := ast.NewWordDefinition(colonTok.Pos, name, nil)
	p.dict.DefineUser(name, def)

	def.Body = p.body(lexer.SEMICOLON)

	if p.cur().Kind != lexer.SEMICOLON {
		p.errorf(p.cur().Pos, ccerrors.KindParseError, "expected ';' to close definition of %s", name)
		p.recover()
	}
	if p.cur().Kind == lexer.SEMICOLON {
		p.advance()
	}
	return def
}

func (p *Parser) popControl() {
	if len(p.controlStack) > 0 {
		p.controlStack = p.controlStack[:len(p.controlStack)-1]
	}
}

// ifStatement parses `IF body (ELSE body)? THEN`.
func (p *Parser) ifStatement() ast.Statement {
	ifTok := p.advance() // consume IF
	p.controlStack = append(p.controlStack, markerIf)
	defer p.popControl()

	thenBranch := p.body(lexer.ELSE, lexer.THEN)

	var elseBranch []ast.Statement
	if p.cur().Kind == lexer.ELSE {
		p.advance()
		elseBranch = p.body(lexer.THEN)
	}

	if p.cur().Kind != lexer.THEN {
		p.errorf(p.cur().Pos, ccerrors.KindParseError, "expected THEN to close IF")
		p.recover()
		if p.cur().Kind == lexer.SEMICOLON {
			// Leave the ';' for the enclosing colon definition to see;
			// recovery for IF stops at the next statement boundary.
		}
		return ast.NewIfStatement(ifTok.Pos, thenBranch, elseBranch)
	}
	p.advance() // consume THEN
	return ast.NewIfStatement(ifTok.Pos, thenBranch, elseBranch)
}

// beginUntilLoop parses `BEGIN body UNTIL`.
func (p *Parser) beginUntilLoop() ast.Statement {
	beginTok := p.advance() // consume BEGIN
	p.controlStack = append(p.controlStack, markerBegin)
	defer p.popControl()

	body := p.body(lexer.UNTIL)

	if p.cur().Kind != lexer.UNTIL {
		p.errorf(p.cur().Pos, ccerrors.KindParseError, "expected UNTIL to close BEGIN")
		p.recover()
		return ast.NewBeginUntilLoop(beginTok.Pos, body)
	}
	p.advance() // consume UNTIL
	return ast.NewBeginUntilLoop(beginTok.Pos, body)
}

// mathEffect returns the canonical declared effect for a math word.
// Callers only ever pass names the lexer has
// already classified as MATHWORD, so every case is covered.
func mathEffect(upper string) effect.StackEffect {
	switch upper {
	case "+", "-", "*", "/", "MOD", "<", ">", "=", "<>", "<=", ">=":
		return effect.StackEffect{Consumed: 2, Produced: 1, Known: true}
	case "NEGATE", "ABS", "1+", "1-", "0<", "0=", "0>", "NOT",
		"SQRT", "SIN", "COS", "TAN", "ASIN", "ACOS", "ATAN", "LOG", "EXP":
		return effect.StackEffect{Consumed: 1, Produced: 1, Known: true}
	case "POW", "AND", "OR", "XOR", "LSHIFT", "RSHIFT":
		return effect.StackEffect{Consumed: 2, Produced: 1, Known: true}
	default:
		return effect.Unknown
	}
}
