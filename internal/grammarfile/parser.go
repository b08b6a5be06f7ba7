// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package grammarfile is a small recursive-descent parser over a lexed
// grammar file. It drives a grammar.Sink the way a Lemon-style tool's
// front end would: one BeginRule/Alternative*/EndRule sequence per rule
// group, and one Directive call per %directive line.
package grammarfile

import (
	"fmt"

	"github.com/ashgrove/lr0gen/internal/grammar"
	"github.com/ashgrove/lr0gen/internal/lex"
)

// Parse drives sink from a token stream produced by lex.Tokenize. It
// returns when it reaches the trailing TOKEN_EOF. Syntax errors are
// reported to sink.ParserError and do not stop the parse; the parser skips
// to the next plausible boundary (a '.' or the start of a new rule) and
// continues, so a single mistake does not hide every other diagnostic in
// the file.
func Parse(sink grammar.Sink, tokens []lex.Token) {
	p := &parser{sink: sink, toks: tokens}
	p.run()
}

type parser struct {
	sink grammar.Sink
	toks []lex.Token
	pos  int
}

func (p *parser) peek() lex.Token {
	if p.pos >= len(p.toks) {
		return lex.Token{Type: lex.TOKEN_EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() lex.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) span(t lex.Token) *grammar.Span {
	return &grammar.Span{File: t.Pos.File, Line: t.Pos.Line, Column: t.Pos.Column}
}

func (p *parser) run() {
	for {
		t := p.peek()
		switch t.Type {
		case lex.TOKEN_EOF:
			return
		case lex.TOKEN_NONTERMINAL:
			p.parseRule()
		case lex.TOKEN_DOT:
			p.next() // stray terminator; ignore
		default:
			if kind, ok := directiveKind(t.Type); ok {
				p.parseDirective(kind)
				continue
			}
			p.sink.ParserError(p.span(t), fmt.Sprintf("unexpected token %q", t.Literal))
			p.next()
		}
	}
}

// directiveKind maps a directive token type to the Sink's DirectiveKind.
// Directives this front end does not have a dedicated Kind for still parse
// cleanly: they fall through to DirUnknown with Key set from the token,
// which the sink stores for later inspection.
func directiveKind(tt lex.TokenType) (grammar.DirectiveKind, bool) {
	switch tt {
	case lex.TOKEN_DIR_START_SYMBOL:
		return grammar.DirStartSymbol, true
	case lex.TOKEN_DIR_TOKEN:
		return grammar.DirToken, true
	case lex.TOKEN_DIR_TOKEN_TYPE:
		return grammar.DirTokenType, true
	case lex.TOKEN_DIR_INCLUDE:
		return grammar.DirInclude, true
	case lex.TOKEN_DIR_CODE:
		return grammar.DirCode, true
	case lex.TOKEN_DIR_FALLBACK:
		return grammar.DirFallback, true
	case lex.TOKEN_DIR_GENERIC:
		return grammar.DirUnknown, true
	default:
		return grammar.DirUnknown, false
	}
}

// parseDirective consumes everything from the directive token through the
// terminating '.', classifying each symbol-like token it collects as a
// SymRef in Directive.List.
func (p *parser) parseDirective(kind grammar.DirectiveKind) {
	start := p.next()
	d := grammar.Directive{Kind: kind, At: p.span(start), Key: start.Literal}

	for {
		t := p.peek()
		switch t.Type {
		case lex.TOKEN_DOT:
			p.next()
			p.sink.Directive(d)
			return
		case lex.TOKEN_EOF:
			p.sink.Directive(d)
			return
		case lex.TOKEN_TERMINAL, lex.TOKEN_NONTERMINAL, lex.TOKEN_STRING:
			p.next()
			if d.Value == "" {
				d.Value = t.Literal
			}
			d.List = append(d.List, grammar.SymRef{Name: t.Literal, At: p.span(t)})
		case lex.TOKEN_CODE_BLOCK:
			p.next()
			d.Value = t.Literal
		default:
			p.next()
		}
	}
}

// parseRule consumes "lhs ::= alt1 | alt2 | ... ." and drives
// BeginRule/Alternative/EndRule on the sink.
func (p *parser) parseRule() {
	lhsTok := p.next()
	p.sink.BeginRule(grammar.SymRef{Name: lhsTok.Literal, At: p.span(lhsTok)})

	if p.peek().Type != lex.TOKEN_COLONCOLON_EQ {
		p.sink.ParserError(p.span(p.peek()), fmt.Sprintf("expected ::= after %q", lhsTok.Literal))
		p.skipToDot()
		p.sink.EndRule(p.span(p.peek()))
		return
	}
	p.next()

	for {
		p.parseAlternative()
		switch p.peek().Type {
		case lex.TOKEN_PIPE:
			p.next()
			continue
		case lex.TOKEN_DOT:
			end := p.next()
			p.sink.EndRule(p.span(end))
			return
		default:
			p.sink.ParserError(p.span(p.peek()), fmt.Sprintf("expected '|' or '.' in rule for %q", lhsTok.Literal))
			p.skipToDot()
			p.sink.EndRule(p.span(p.peek()))
			return
		}
	}
}

// parseAlternative consumes one rhs: a run of symbols, optional bracketed
// precedence override, and optional trailing code block.
func (p *parser) parseAlternative() {
	alt := grammar.Alt{At: p.span(p.peek())}

	for {
		t := p.peek()
		switch t.Type {
		case lex.TOKEN_TERMINAL, lex.TOKEN_NONTERMINAL, lex.TOKEN_STRING:
			p.next()
			alt.RHS = append(alt.RHS, grammar.SymRef{Name: t.Literal, At: p.span(t)})
		case lex.TOKEN_LBRACKET:
			// Bracketed precedence override from the wider Lemon dialect;
			// this front end has no LR(0)-relevant use for it.
			p.next()
			for p.peek().Type != lex.TOKEN_RBRACKET && p.peek().Type != lex.TOKEN_DOT && p.peek().Type != lex.TOKEN_EOF {
				p.next()
			}
			if p.peek().Type == lex.TOKEN_RBRACKET {
				p.next()
			}
		case lex.TOKEN_LPAREN, lex.TOKEN_RPAREN, lex.TOKEN_COMMA:
			// labeled-occurrence punctuation from a dialect this front end
			// does not attach labels from yet; consume and move on.
			p.next()
		case lex.TOKEN_CODE_BLOCK:
			p.next()
			alt.Action = &grammar.Action{Raw: t.Literal, At: p.span(t)}
		default:
			p.sink.Alternative(alt)
			return
		}
	}
}

// skipToDot discards tokens until it reaches a '.' or TOKEN_EOF, for error
// recovery; it does not consume the '.' itself.
func (p *parser) skipToDot() {
	for {
		t := p.peek()
		if t.Type == lex.TOKEN_DOT || t.Type == lex.TOKEN_EOF {
			return
		}
		p.next()
	}
}
