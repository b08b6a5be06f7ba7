// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package automaton

import (
	"github.com/ashgrove/lr0gen/internal/lr0grammar"
)

// Automaton is the canonical collection of LR(0) states for a grammar,
// reachable from state 0 (the closure of the augmented start item) by
// repeated GOTO.
type Automaton struct {
	Grammar *lr0grammar.Grammar
	States  []*State
}

// rulesByLHS indexes a grammar's rules by the name of their lhs symbol, for
// repeated lookup during closure.
func rulesByLHS(g *lr0grammar.Grammar) map[string][]*lr0grammar.Rule {
	idx := make(map[string][]*lr0grammar.Rule)
	for _, r := range g.Rules {
		idx[r.LHS.Name] = append(idx[r.LHS.Name], r)
	}
	return idx
}

// closure computes CLOSURE(items): repeatedly, for every item with the dot
// immediately before a non-terminal A, add the initial item (dot at 0) for
// every rule with lhs A, until no item is added. The result is returned in
// a stable order: the seed items first, in the order given, followed by
// additions in the order they were discovered.
func closure(seed []*Item, byLHS map[string][]*lr0grammar.Rule) []*Item {
	have := make(map[string]bool, len(seed))
	result := make([]*Item, 0, len(seed))
	for _, it := range seed {
		if !have[it.Key()] {
			have[it.Key()] = true
			result = append(result, it)
		}
	}

	for i := 0; i < len(result); i++ {
		sym, ok := result[i].DotSymbol()
		if !ok {
			continue
		}
		for _, r := range byLHS[sym.Name] {
			cand := NewItem(r, 0)
			if !have[cand.Key()] {
				have[cand.Key()] = true
				result = append(result, cand)
			}
		}
	}
	return result
}

// gotoSet computes GOTO(items, sym): advance every item in items whose dot
// symbol is sym, then close the result. Returns nil if no item in items has
// dot symbol sym.
func gotoSet(items []*Item, sym lr0grammar.Symbol, byLHS map[string][]*lr0grammar.Rule) []*Item {
	var moved []*Item
	for _, it := range items {
		dotSym, ok := it.DotSymbol()
		if !ok || dotSym.Name != sym.Name {
			continue
		}
		moved = append(moved, it.Advance())
	}
	if len(moved) == 0 {
		return nil
	}
	return closure(moved, byLHS)
}

// dotSymbols walks items once and returns each unique dot-symbol in
// first-occurrence order. Transition order (and, through it, the state ids
// GOTO discovers) depends on this order, so it is never derived from the
// grammar's column ordering.
func dotSymbols(items []*Item) []lr0grammar.Symbol {
	seen := make(map[string]bool, len(items))
	out := make([]lr0grammar.Symbol, 0, len(items))
	for _, it := range items {
		sym, ok := it.DotSymbol()
		if !ok || seen[sym.Name] {
			continue
		}
		seen[sym.Name] = true
		out = append(out, sym)
	}
	return out
}

// Build constructs the canonical collection of LR(0) states for g. g is
// augmented first if it is not already (Augmented is a no-op on an
// already-augmented grammar), so callers may pass either form.
//
// The construction is the textbook worklist over item sets: state 0 is the
// closure of the lone augmented start item; each subsequent state is GOTO
// of some known state on some grammar symbol, added only if its item set is
// not already present under any other state number. The worklist is a plain
// FIFO slice index, so earlier states always finish processing their
// transitions before the automaton returns.
func Build(g *lr0grammar.Grammar) (*Automaton, error) {
	ag, err := g.Augmented()
	if err != nil {
		return nil, err
	}
	startRule, err := ag.StartRule()
	if err != nil {
		return nil, err
	}

	byLHS := rulesByLHS(ag)

	a := &Automaton{Grammar: ag}
	seen := make(map[string]int)

	seed := closure([]*Item{NewItem(startRule, 0)}, byLHS)
	s0 := &State{ID: 0, Items: seed}
	a.States = append(a.States, s0)
	seen[itemSetKey(seed)] = 0

	for i := 0; i < len(a.States); i++ {
		cur := a.States[i]
		for _, sym := range dotSymbols(cur.Items) {
			next := gotoSet(cur.Items, sym, byLHS)
			if next == nil {
				continue
			}
			key := itemSetKey(next)
			to, ok := seen[key]
			if !ok {
				to = len(a.States)
				seen[key] = to
				a.States = append(a.States, &State{ID: to, Items: next})
			}
			cur.Transitions = append(cur.Transitions, Transition{Symbol: sym, To: to})
		}
	}

	return a, nil
}
