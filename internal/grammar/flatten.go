// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package grammar

import (
	"github.com/ashgrove/lr0gen/internal/lr0grammar"
)

// Flatten expands every rule's alternatives into individual lr0grammar
// rules, one per alternative, in source order. A Lemon-style "LHS ::= RHS1
// | RHS2" group becomes two lr0grammar.Rule values sharing the same lhs.
// Semantic actions and labels have no place in the LR(0) core and are
// dropped here; they stay recoverable on g itself for callers that need
// them. Precedence overrides never reach g: grammarfile.Parse discards them.
func (g *Grammar) Flatten() []*lr0grammar.Rule {
	var out []*lr0grammar.Rule
	for _, r := range g.Rules {
		lhs := lr0grammar.NewSymbol(r.LHS.Name)
		for _, alt := range r.Alternatives {
			rhs := make([]lr0grammar.Symbol, len(alt.RHS))
			for i, ref := range alt.RHS {
				rhs[i] = lr0grammar.NewSymbol(ref.Sym.Name)
			}
			out = append(out, lr0grammar.NewRule(lhs, rhs...))
		}
	}
	return out
}
