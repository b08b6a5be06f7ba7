// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package validator inspects a built LR(0) automaton for shift/reduce and
// reduce/reduce conflicts: states where more than one action is possible on
// the same lookahead-free decision point.
package validator

import (
	"fmt"

	"github.com/ashgrove/lr0gen/internal/automaton"
	"github.com/ashgrove/lr0gen/internal/lr0grammar"
)

// ConflictKind distinguishes the two kinds of LR(0) conflict.
type ConflictKind uint8

const (
	ShiftReduceConflict ConflictKind = iota
	ReduceReduceConflict
)

func (k ConflictKind) String() string {
	switch k {
	case ShiftReduceConflict:
		return "shift/reduce"
	case ReduceReduceConflict:
		return "reduce/reduce"
	default:
		return "?"
	}
}

// Conflict reports that state StateID has more than one viable action keyed
// on the same pre-dot symbol. Symbol is that shared pre-dot symbol --
// lr0grammar.Epsilon when the items in conflict sit at dot position 0.
type Conflict struct {
	Kind    ConflictKind
	StateID int
	Symbol  string
	Items   []*automaton.Item
}

func (c Conflict) String() string {
	return fmt.Sprintf("state %d: %s conflict on %q", c.StateID, c.Kind, c.Symbol)
}

// group collects the items of a state that share a pre-dot symbol, in
// first-occurrence order.
type group struct {
	shifts  []*automaton.Item
	reduces []*automaton.Item
}

// Validate reports every shift/reduce and reduce/reduce conflict in a. Each
// state is scanned once: every item is keyed by its pre-dot symbol (epsilon
// substituted for an item whose dot sits at position 0), and items sharing a
// key are grouped together. A group holding both a shift and a reduce item
// contributes a shift/reduce conflict; a group holding two or more reduce
// items contributes a reduce/reduce conflict. Accept items never conflict --
// the augmented start rule appears in exactly one state and nowhere else --
// so they are excluded from grouping.
func Validate(a *automaton.Automaton) []Conflict {
	var conflicts []Conflict

	for _, st := range a.States {
		groups := make(map[string]*group)
		var order []string

		for _, it := range st.Items {
			if it.Action == automaton.ActionAccept {
				continue
			}

			key := lr0grammar.Epsilon
			if sym, ok := it.PreDotSymbol(); ok {
				key = sym.Name
			}

			g, ok := groups[key]
			if !ok {
				g = &group{}
				groups[key] = g
				order = append(order, key)
			}

			switch it.Action {
			case automaton.ActionShift:
				g.shifts = append(g.shifts, it)
			case automaton.ActionReduce:
				g.reduces = append(g.reduces, it)
			}
		}

		for _, key := range order {
			g := groups[key]

			if len(g.shifts) > 0 && len(g.reduces) > 0 {
				conflicts = append(conflicts, Conflict{
					Kind:    ShiftReduceConflict,
					StateID: st.ID,
					Symbol:  key,
					Items:   append(append([]*automaton.Item{}, g.shifts...), g.reduces...),
				})
			}

			if len(g.reduces) > 1 {
				conflicts = append(conflicts, Conflict{
					Kind:    ReduceReduceConflict,
					StateID: st.ID,
					Symbol:  key,
					Items:   append([]*automaton.Item{}, g.reduces...),
				})
			}
		}
	}

	return conflicts
}
