// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package lr0grammar is the grammar data model consumed by the LR(0)
// automaton builder: symbols, productions, and the augmentation
// transformation that gives a grammar a unique accepting configuration.
package lr0grammar

// Reserved symbol names. AugmentedStart denotes the fresh start symbol
// introduced by augmentation; EndOfInput denotes the end-of-input marker
// appended to the terminal set during augmentation. Epsilon is never a
// member of a grammar's symbol sets; it is a sentinel the LR(0) validator
// uses to key items whose dot is at position zero.
const (
	AugmentedStart = "S'"
	EndOfInput     = "$"
	Epsilon        = "ε"
)

// Symbol is a named grammar atom. Equality and hashing are defined over the
// name string; a Symbol never carries terminal/non-terminal classification
// itself, since that classification lives in the owning Grammar.
type Symbol struct {
	Name string
}

// NewSymbol returns the Symbol with the given name.
func NewSymbol(name string) Symbol {
	return Symbol{Name: name}
}

// IsAugmentedStart reports whether the symbol is the reserved S' symbol.
func (s Symbol) IsAugmentedStart() bool {
	return s.Name == AugmentedStart
}

// IsEndOfInput reports whether the symbol is the reserved $ terminal.
func (s Symbol) IsEndOfInput() bool {
	return s.Name == EndOfInput
}

func (s Symbol) String() string {
	return s.Name
}
