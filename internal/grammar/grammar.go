// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package grammar

// SymbolID is a stable, dense ID (0..N-1) assigned during symbol interning.
type SymbolID int

// SymbolKind distinguishes terminals vs nonterminals.
type SymbolKind uint8

const (
	SymTerminal SymbolKind = iota + 1
	SymNonterminal
)

// Symbol is a named grammar symbol, terminal or nonterminal. Terminals and
// nonterminals share the same namespace, matching the grammar-file syntax
// this package's front end parses.
type Symbol struct {
	ID   SymbolID
	Name string
	Kind SymbolKind

	// DeclaredAt locates the symbol's first declaration for diagnostics.
	DeclaredAt *Span
}

// Grammar is the in-memory representation of a grammar file, prior to
// flattening into the LR(0) core's bare lhs/rhs rule list.
type Grammar struct {
	// Name is optional; some grammar-file dialects declare one for codegen.
	Name string

	// Start is the start symbol. If nil, it is inferred from the lhs of the
	// first rule seen, or set explicitly by a %start_symbol directive.
	Start *Symbol

	// Symbols is the intern table, in first-declaration order.
	// SymbolsByName indexes it for repeated lookup during building.
	Symbols       []*Symbol
	SymbolsByName map[string]*Symbol

	// Rules in source order.
	Rules []*Rule

	// Directives holds key/value pairs from directives this front end does
	// not give dedicated treatment, for a later stage to consult.
	Directives map[string]string
}

// Rule is a production group: LHS ::= RHS1 | RHS2 | ...
type Rule struct {
	LHS          *Symbol
	Alternatives []*Alternative
	At           *Span
}

// Alternative is one RHS option for a rule.
type Alternative struct {
	// RHS is the sequence of symbols on the right-hand side.
	RHS []*SymbolRef

	// Action is an optional semantic action block, opaque at this layer;
	// Flatten drops it since the LR(0) core has no notion of actions.
	Action *Action

	At *Span
}

// SymbolRef is a reference to a symbol occurrence in an RHS, with an
// optional label for semantic-action use (e.g. "expr(A)"). The LR(0) core
// only cares about Sym; Flatten discards the label.
type SymbolRef struct {
	Sym *Symbol

	// Label is an optional name attached to this occurrence.
	Label string

	At *Span
}

// Action is an opaque semantic action block associated with an alternative.
type Action struct {
	// Raw includes the text inside the braces (or however the grammar denotes it).
	Raw string
	At  *Span
}

// Span identifies a location in the source grammar file for diagnostics.
type Span struct {
	File string
	// 1-based, inclusive positions.
	Line   int
	Column int
	// Optional end position (can be zeroed if you only track a point).
	EndLine   int
	EndColumn int
}
