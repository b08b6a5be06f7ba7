// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lr0grammar

// Grammar is (start, terminals, non-terminals, rules, is_augmented). The
// order of Terminals and NonTerminals is significant: a symbol's index in
// its slice is its column number in the ACTION/GOTO tables.
type Grammar struct {
	Start        Symbol
	Terminals    []Symbol
	NonTerminals []Symbol
	Rules        []*Rule
	IsAugmented  bool

	termIndex map[string]int
	ntIndex   map[string]int
}

// FromRules builds a grammar by scanning rules once, in source order.
// Non-terminals are every symbol that appears as some rule's lhs; every
// other symbol seen on a rhs is a terminal. Both sets are ordered by
// first occurrence, which pins table column assignment and must be
// deterministic. The start symbol is the lhs of the first rule.
func FromRules(rules []*Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, newError(ErrEmptyRules, "")
	}

	lhsSet := make(map[string]bool, len(rules))
	for _, r := range rules {
		lhsSet[r.LHS.Name] = true
	}

	g := &Grammar{
		Start:     rules[0].LHS,
		Rules:     rules,
		termIndex: map[string]int{},
		ntIndex:   map[string]int{},
	}

	seen := map[string]bool{}
	addNonTerminal := func(s Symbol) {
		if seen[s.Name] {
			return
		}
		seen[s.Name] = true
		g.ntIndex[s.Name] = len(g.NonTerminals)
		g.NonTerminals = append(g.NonTerminals, s)
	}
	addTerminal := func(s Symbol) {
		if seen[s.Name] {
			return
		}
		seen[s.Name] = true
		g.termIndex[s.Name] = len(g.Terminals)
		g.Terminals = append(g.Terminals, s)
	}

	for _, r := range rules {
		addNonTerminal(r.LHS)
		for _, sym := range r.RHS {
			if lhsSet[sym.Name] {
				addNonTerminal(sym)
			} else {
				addTerminal(sym)
			}
		}
	}

	return g, nil
}

// IsTerminal reports whether name is classified as a terminal in g.
func (g *Grammar) IsTerminal(name string) bool {
	_, ok := g.termIndex[name]
	return ok
}

// IsNonTerminal reports whether name is classified as a non-terminal in g.
func (g *Grammar) IsNonTerminal(name string) bool {
	_, ok := g.ntIndex[name]
	return ok
}

// TerminalColumn returns the ACTION-table column for a terminal name, or -1
// if name is not a known terminal.
func (g *Grammar) TerminalColumn(name string) int {
	if col, ok := g.termIndex[name]; ok {
		return col
	}
	return -1
}

// NonTerminalColumn returns the GOTO-table column for a non-terminal name,
// excluding the augmented S' symbol (which occupies no GOTO column). It
// returns -1 for S' itself or for an unknown name.
func (g *Grammar) NonTerminalColumn(name string) int {
	col, ok := g.ntIndex[name]
	if !ok || name == AugmentedStart {
		return -1
	}
	if g.IsAugmented {
		return col - 1
	}
	return col
}

// Validate checks the structural invariants a well-formed grammar must
// satisfy: non-empty terminal, non-terminal, and rule sets; a start symbol
// that both appears as some rule's lhs and is classified as a non-terminal;
// every non-terminal reachable from start; and every non-terminal
// productive (derives some string of terminals).
func (g *Grammar) Validate() error {
	if len(g.Terminals) == 0 {
		return newError(ErrEmptyTerminals, "")
	}
	if len(g.NonTerminals) == 0 {
		return newError(ErrEmptyNonTerminals, "")
	}
	if len(g.Rules) == 0 {
		return newError(ErrEmptyRules, "")
	}

	if g.IsTerminal(g.Start.Name) {
		return newError(ErrStartSymbolIsNotNonTerminal, g.Start.Name)
	}

	foundAsLHS := false
	for _, r := range g.Rules {
		if r.LHS.Name == g.Start.Name {
			foundAsLHS = true
			break
		}
	}
	if !foundAsLHS {
		return newError(ErrStartSymbolNotFoundInRules, g.Start.Name)
	}

	if !g.IsNonTerminal(g.Start.Name) {
		return newError(ErrStartSymbolIsNotNonTerminal, g.Start.Name)
	}

	if name, ok := g.unreachableNonTerminal(); ok {
		return newError(ErrUnreachableNonTerminal, name)
	}

	if name, ok := g.nonProductiveNonTerminal(); ok {
		return newError(ErrNonProductiveNonTerminal, name)
	}

	return nil
}

// StartRule returns rules[0], the augmented rule S' -> S. It fails if g is
// not augmented, since an unaugmented grammar has no guaranteed rule at
// index 0.
func (g *Grammar) StartRule() (*Rule, error) {
	if !g.IsAugmented {
		return nil, newError(ErrGrammarIsNotAugmented, "")
	}
	return g.Rules[0], nil
}
