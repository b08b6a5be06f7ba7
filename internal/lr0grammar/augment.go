// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lr0grammar

// Augmented returns a new grammar extended with a fresh start symbol S' and
// the rule S' -> S (S being g's prior start symbol), giving the grammar a
// unique accepting configuration. It is a one-shot transform: calling it
// again on the result is a no-op that returns the same grammar.
//
// Note: the inserted rule is S' -> S, not S' -> S $. Acceptance is instead
// detected by completion of the S' rule (see the automaton package). An
// end-of-input terminal on the rhs of the start rule was deliberately left
// out to match the behavior of the tool this package continues; see
// DESIGN.md for the tradeoff.
func (g *Grammar) Augmented() (*Grammar, error) {
	if g.IsAugmented {
		return g, nil
	}

	augStart := NewSymbol(AugmentedStart)
	endOfInput := NewSymbol(EndOfInput)

	ag := &Grammar{
		Start:       augStart,
		IsAugmented: true,
		termIndex:   map[string]int{},
		ntIndex:     map[string]int{},
	}

	ag.NonTerminals = append(ag.NonTerminals, augStart)
	ag.ntIndex[augStart.Name] = 0
	for i, nt := range g.NonTerminals {
		ag.ntIndex[nt.Name] = i + 1
		ag.NonTerminals = append(ag.NonTerminals, nt)
	}

	ag.Terminals = append(ag.Terminals, g.Terminals...)
	for i, t := range g.Terminals {
		ag.termIndex[t.Name] = i
	}
	ag.termIndex[endOfInput.Name] = len(ag.Terminals)
	ag.Terminals = append(ag.Terminals, endOfInput)

	startRule := NewRule(augStart, g.Start)
	ag.Rules = make([]*Rule, 0, len(g.Rules)+1)
	ag.Rules = append(ag.Rules, startRule)
	ag.Rules = append(ag.Rules, g.Rules...)

	return ag, nil
}
