// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package grammar

import (
	"fmt"
	"strings"
)

// Diagnostic is a structured error/warning emitted during building/validation.
type Diagnostic struct {
	Level DiagnosticLevel
	Msg   string
	At    *Span
}

type DiagnosticLevel uint8

const (
	DiagError DiagnosticLevel = iota + 1
	DiagWarn
)

func (d Diagnostic) Error() string {
	if d.At == nil {
		return d.Msg
	}
	return fmt.Sprintf("%s:%d:%d: %s", d.At.File, d.At.Line, d.At.Column, d.Msg)
}

// Builder builds a Grammar incrementally, collecting diagnostics instead of
// failing hard. grammarfile.Parse drives it one event at a time through a
// BuilderSink.
type Builder struct {
	g *Grammar

	diags []Diagnostic
}

// NewBuilder creates a new Builder with an empty Grammar.
func NewBuilder(fileLabel string) *Builder {
	g := &Grammar{
		Name:          "",
		Start:         nil,
		Symbols:       nil,
		SymbolsByName: map[string]*Symbol{},
		Rules:         nil,
		Directives:    map[string]string{},
	}
	_ = fileLabel // spans already carry the filename; kept for a future per-file default
	return &Builder{g: g}
}

// Grammar returns the built grammar (even if there are diagnostics).
func (b *Builder) Grammar() *Grammar { return b.g }

// Diagnostics returns all diagnostics collected so far.
func (b *Builder) Diagnostics() []Diagnostic { return append([]Diagnostic(nil), b.diags...) }

// HasErrors reports whether any error-level diagnostics exist.
func (b *Builder) HasErrors() bool {
	for _, d := range b.diags {
		if d.Level == DiagError {
			return true
		}
	}
	return false
}

// Lookup returns the interned symbol for name and true, or (nil, false) if
// name has not been declared yet.
func (b *Builder) Lookup(name string) (*Symbol, bool) {
	name = strings.TrimSpace(name) // Intern normalizes the same way

	symbol, ok := b.g.SymbolsByName[name]
	return symbol, ok
}

func (b *Builder) error(at *Span, msg string, args ...any) {
	b.diags = append(b.diags, Diagnostic{
		Level: DiagError,
		Msg:   fmt.Sprintf(msg, args...),
		At:    at,
	})
}

func (b *Builder) warn(at *Span, msg string, args ...any) {
	b.diags = append(b.diags, Diagnostic{
		Level: DiagWarn,
		Msg:   fmt.Sprintf(msg, args...),
		At:    at,
	})
}

// ---------------------------
// Symbol interning & metadata
// ---------------------------

// Intern gets or creates a symbol with the given name and kind. If name was
// already interned with a different kind, the original symbol is kept and
// an error is recorded -- a grammar file never gets to redeclare a
// terminal as a nonterminal or vice versa.
func (b *Builder) Intern(name string, kind SymbolKind, at *Span) *Symbol {
	name = strings.TrimSpace(name)
	if name == "" {
		b.error(at, "symbol name is empty")
		return b.internDummy(at) // let the caller keep building
	}

	if sym, ok := b.g.SymbolsByName[name]; ok {
		if sym.Kind != kind {
			b.error(at, "symbol %q previously declared as %s, cannot redeclare as %s",
				name, kindString(sym.Kind), kindString(kind))
		}
		return sym
	}

	sym := &Symbol{
		ID:         SymbolID(len(b.g.Symbols)),
		Name:       name,
		Kind:       kind,
		DeclaredAt: at,
	}
	b.g.Symbols = append(b.g.Symbols, sym)
	b.g.SymbolsByName[name] = sym
	return sym
}

// EnsureTerminal is a convenience for grammar parsers that see a token name.
func (b *Builder) EnsureTerminal(name string, at *Span) *Symbol {
	return b.Intern(name, SymTerminal, at)
}

// EnsureNonterminal is a convenience for grammar parsers that see an LHS name.
func (b *Builder) EnsureNonterminal(name string, at *Span) *Symbol {
	return b.Intern(name, SymNonterminal, at)
}

// SetStart sets the grammar start symbol.
func (b *Builder) SetStart(sym *Symbol, at *Span) {
	if sym == nil {
		return
	}
	if sym.Kind != SymNonterminal {
		b.error(at, "start symbol %q must be a nonterminal", sym.Name)
		return
	}
	if b.g.Start != nil && b.g.Start != sym {
		b.warn(at, "start symbol changed from %q to %q", b.g.Start.Name, sym.Name)
	}
	b.g.Start = sym
}

// ---------------------------
// Rules & productions
// ---------------------------

// RuleBuilder accumulates the alternatives of one rule group as
// grammarfile.Parse streams BeginRule -> Alternative* -> EndRule for a
// single "lhs ::= rhs1 | rhs2 ." production.
type RuleBuilder struct {
	b    *Builder
	rule *Rule
	done bool
}

// BeginRule starts a new rule for the given LHS.
func (b *Builder) BeginRule(lhs *Symbol, at *Span) *RuleBuilder {
	if lhs == nil {
		lhs = b.internDummy(at)
	}
	if lhs.Kind != SymNonterminal {
		b.error(at, "rule LHS %q must be a nonterminal", lhs.Name)
	}

	r := &Rule{LHS: lhs, Alternatives: nil, At: at}
	b.g.Rules = append(b.g.Rules, r)

	// If no explicit start symbol yet, infer from first rule (common behavior).
	if b.g.Start == nil && lhs.Kind == SymNonterminal {
		b.g.Start = lhs
	}

	return &RuleBuilder{b: b, rule: r}
}

// Alt adds an alternative to the current rule.
func (rb *RuleBuilder) Alt(rhs []*SymbolRef, action *Action, at *Span) {
	if rb == nil || rb.done || rb.rule == nil {
		return
	}

	// Validate RHS refs are not nil.
	for i, sr := range rhs {
		if sr == nil || sr.Sym == nil {
			rb.b.error(at, "rhs symbol at position %d is nil", i)
		}
	}

	rb.rule.Alternatives = append(rb.rule.Alternatives, &Alternative{
		RHS:    rhs,
		Action: action,
		At:     at,
	})
}

// End marks the rule builder as finished (optional but helps prevent misuse).
func (rb *RuleBuilder) End() {
	if rb == nil {
		return
	}
	rb.done = true
}

// NewRef creates an RHS reference (with optional label).
func (b *Builder) NewRef(sym *Symbol, label string, at *Span) *SymbolRef {
	if sym == nil {
		sym = b.internDummy(at)
	}
	label = strings.TrimSpace(label)
	return &SymbolRef{Sym: sym, Label: label, At: at}
}

// NewAction creates an action block wrapper.
func (b *Builder) NewAction(raw string, at *Span) *Action {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &Action{Raw: raw, At: at}
}

// ---------------------------
// Generic directives passthrough
// ---------------------------

// SetDirective stores a directive key/value pair for later stages.
func (b *Builder) SetDirective(key, value string, at *Span) {
	key = strings.TrimSpace(key)
	if key == "" {
		b.error(at, "directive key is empty")
		return
	}
	// Warn on overwrite; keep last.
	if _, exists := b.g.Directives[key]; exists {
		b.warn(at, "directive %q overwritten", key)
	}
	b.g.Directives[key] = value
}

// ---------------------------
// Helpers
// ---------------------------

func kindString(k SymbolKind) string {
	switch k {
	case SymTerminal:
		return "terminal"
	case SymNonterminal:
		return "nonterminal"
	default:
		return "unknown"
	}
}

func (b *Builder) internDummy(at *Span) *Symbol {
	// One stable placeholder per builder, so a run of bad input doesn't
	// mint a fresh dummy symbol for every error.
	const name = "<invalid>"
	if sym, ok := b.g.SymbolsByName[name]; ok {
		return sym
	}
	return b.Intern(name, SymNonterminal, at)
}
