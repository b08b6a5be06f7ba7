// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lr0grammar

// rulesByLHS indexes g's rules by the name of their lhs symbol.
func (g *Grammar) rulesByLHS() map[string][]*Rule {
	idx := make(map[string][]*Rule, len(g.NonTerminals))
	for _, r := range g.Rules {
		idx[r.LHS.Name] = append(idx[r.LHS.Name], r)
	}
	return idx
}

// unreachableNonTerminal returns the first non-terminal (in g.NonTerminals
// order) that cannot be reached from g.Start by following rhs non-terminal
// occurrences, or ("", false) if every non-terminal is reachable.
func (g *Grammar) unreachableNonTerminal() (string, bool) {
	byLHS := g.rulesByLHS()

	reachable := map[string]bool{g.Start.Name: true}
	queue := []string{g.Start.Name}
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]
		for _, r := range byLHS[nt] {
			for _, sym := range r.RHS {
				if g.IsNonTerminal(sym.Name) && !reachable[sym.Name] {
					reachable[sym.Name] = true
					queue = append(queue, sym.Name)
				}
			}
		}
	}

	for _, nt := range g.NonTerminals {
		if !reachable[nt.Name] {
			return nt.Name, true
		}
	}
	return "", false
}

// nonProductiveNonTerminal returns the first non-terminal (in g.NonTerminals
// order) that derives no string of terminals -- every one of its rules has
// at least one rhs symbol that is itself non-productive -- or ("", false)
// if every non-terminal is productive. A non-terminal is productive once
// some rule with that lhs has every rhs symbol either a terminal or already
// known productive; the fixpoint below grows that set until it stops
// changing.
func (g *Grammar) nonProductiveNonTerminal() (string, bool) {
	productive := make(map[string]bool, len(g.NonTerminals))
	for changed := true; changed; {
		changed = false
		for _, r := range g.Rules {
			if productive[r.LHS.Name] {
				continue
			}
			ok := true
			for _, sym := range r.RHS {
				if g.IsNonTerminal(sym.Name) && !productive[sym.Name] {
					ok = false
					break
				}
			}
			if ok {
				productive[r.LHS.Name] = true
				changed = true
			}
		}
	}

	for _, nt := range g.NonTerminals {
		if !productive[nt.Name] {
			return nt.Name, true
		}
	}
	return "", false
}
