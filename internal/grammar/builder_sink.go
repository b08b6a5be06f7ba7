// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package grammar

import (
	"strings"
	"unicode"
)

// BuilderSink adapts Builder to the parser-facing Sink interface.
type BuilderSink struct {
	B *Builder

	// Rule state (the parser streams BeginRule -> Alternative* -> EndRule).
	curRule *RuleBuilder
	curLHS  *Symbol

	// declTokens tracks names this front end has already committed to as
	// terminals, so a later RHS occurrence resolves the same way.
	declTokens map[string]bool

	// Optional heuristic: treat ALLCAPS-ish names as terminals unless otherwise known.
	UseHeuristicCapsAsTerminal bool
}

// NewBuilderSink constructs a sink around a Builder.
func NewBuilderSink(b *Builder) *BuilderSink {
	return &BuilderSink{
		B:                          b,
		declTokens:                 map[string]bool{},
		UseHeuristicCapsAsTerminal: true,
	}
}

// --------------------
// Sink implementation
// --------------------

func (s *BuilderSink) ParserError(at *Span, msg string) {
	if s == nil || s.B == nil {
		return
	}
	s.B.error(at, "%s", msg)
}

func (s *BuilderSink) Directive(d Directive) {
	if s == nil || s.B == nil {
		return
	}
	switch d.Kind {
	case DirStartSymbol:
		name := strings.TrimSpace(d.Value)
		if name == "" {
			s.B.error(d.At, "%%start_symbol requires a symbol name")
			return
		}
		sym := s.B.EnsureNonterminal(name, d.At)
		s.B.SetStart(sym, d.At)

	case DirToken:
		for _, ref := range d.List {
			name := strings.TrimSpace(ref.Name)
			if name == "" {
				continue
			}
			s.declTokens[name] = true
			s.B.EnsureTerminal(name, ref.At)
		}

	case DirTokenType:
		// This can mean different things in different Lemon-ish dialects.
		// It is stored as a directive and not interpreted further.
		s.B.SetDirective("token_type", d.Value, d.At)

	case DirInclude, DirCode, DirFallback, DirUnknown:
		// This front end gives no directive-specific treatment to these;
		// stash the key/value pair for a future codegen stage to consult.
		key := strings.TrimSpace(d.Key)
		if key == "" {
			key = "directive"
		}
		s.B.SetDirective(key, d.Value, d.At)

	default:
		// Unrecognized directive kind; store it rather than drop it.
		key := strings.TrimSpace(d.Key)
		if key == "" {
			key = "directive"
		}
		s.B.SetDirective(key, d.Value, d.At)
	}
}

func (s *BuilderSink) BeginRule(lhs SymRef) {
	if s == nil || s.B == nil {
		return
	}
	// End any open rule defensively (parser bug guard).
	if s.curRule != nil {
		s.B.warn(lhs.At, "begin rule while previous rule still open; closing previous rule")
		s.curRule.End()
		s.curRule = nil
		s.curLHS = nil
	}

	name := strings.TrimSpace(lhs.Name)
	if name == "" {
		s.B.error(lhs.At, "rule LHS is empty")
		return
	}

	s.curLHS = s.B.EnsureNonterminal(name, lhs.At)
	s.curRule = s.B.BeginRule(s.curLHS, lhs.At)
}

func (s *BuilderSink) Alternative(alt Alt) {
	if s == nil || s.B == nil {
		return
	}
	if s.curRule == nil || s.curLHS == nil {
		s.B.error(alt.At, "alternative encountered without an open rule")
		return
	}

	// Resolve RHS symbols.
	rhs := make([]*SymbolRef, 0, len(alt.RHS))
	for _, sr := range alt.RHS {
		sym := s.resolveSymbolInRHS(sr)
		rhs = append(rhs, s.B.NewRef(sym, sr.Label, sr.At))
	}

	s.curRule.Alt(rhs, alt.Action, alt.At)
}

func (s *BuilderSink) EndRule(at *Span) {
	if s == nil || s.B == nil {
		return
	}
	if s.curRule == nil {
		// Allow benign extra EndRule calls.
		return
	}
	s.curRule.End()
	s.curRule = nil
	s.curLHS = nil
}

// --------------------
// Symbol resolution
// --------------------

// resolveSymbolInRHS decides whether an RHS symbol is terminal or nonterminal.
// Precedence rules (explicit > inferred):
//  1. If explicitly declared by %token -> terminal
//  2. If already interned, use its existing kind
//  3. Heuristic: ALLCAPS-ish (or contains non-letters) => terminal
//  4. Otherwise => nonterminal
func (s *BuilderSink) resolveSymbolInRHS(sr SymRef) *Symbol {
	name := strings.TrimSpace(sr.Name)
	if name == "" {
		s.B.error(sr.At, "rhs symbol name is empty")
		return s.B.internDummy(sr.At)
	}

	// 1) Explicit %token declaration.
	if s.declTokens[name] {
		return s.B.EnsureTerminal(name, sr.At)
	}

	// 2) Already known.
	if existing, ok := s.B.Lookup(name); ok {
		return existing
	}

	// 3) Heuristic.
	if s.UseHeuristicCapsAsTerminal && looksLikeTerminal(name) {
		return s.B.EnsureTerminal(name, sr.At)
	}

	// 4) Default: nonterminal.
	return s.B.EnsureNonterminal(name, sr.At)
}

// looksLikeTerminal returns true for names that appear token-like:
// - contains any non-letter (e.g. "+", "==", "TK_ID", "NUM1")
// - OR is all-uppercase letters (ASCII) (e.g. "PLUS", "MINUS")
func looksLikeTerminal(name string) bool {
	if name == "" {
		return false
	}
	hasLetter := false
	allUpperLetters := true

	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true
			// Only treat ASCII-ish upper as "upper" for this heuristic.
			if unicode.ToUpper(r) != r {
				allUpperLetters = false
			}
			continue
		}
		// Any non-letter character makes it token-ish.
		return true
	}
	return hasLetter && allUpperLetters
}
