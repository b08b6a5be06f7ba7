// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package automaton

import (
	"sort"
	"strings"

	"github.com/ashgrove/lr0gen/internal/lr0grammar"
)

// Transition is one labeled edge out of a state: on seeing Symbol, go to
// the state numbered To.
type Transition struct {
	Symbol lr0grammar.Symbol
	To     int
}

// State is a numbered, closed set of items together with its outgoing
// transitions. Two states with the same item set (regardless of discovery
// order) are the same state; the builder never creates a duplicate.
type State struct {
	ID          int
	Items       []*Item
	Transitions []Transition
}

// itemSetKey returns an order-independent identity for a set of items, used
// to deduplicate states during construction. Items are sorted by their own
// key before joining so that two sets built in different orders collapse to
// the same string.
func itemSetKey(items []*Item) string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Key()
	}
	sort.Strings(keys)
	return strings.Join(keys, "\n")
}

// GotoOn returns the state number reached from s on sym, and true, or
// (0, false) if s has no transition labeled sym.
func (s *State) GotoOn(sym lr0grammar.Symbol) (int, bool) {
	for _, tr := range s.Transitions {
		if tr.Symbol.Name == sym.Name {
			return tr.To, true
		}
	}
	return 0, false
}
