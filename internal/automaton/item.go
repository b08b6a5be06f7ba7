// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package automaton builds the canonical LR(0) characteristic finite-state
// machine for an augmented grammar: CLOSURE, GOTO, and the worklist that
// deduplicates states by item-set identity.
package automaton

import (
	"fmt"
	"strings"

	"github.com/ashgrove/lr0gen/internal/lr0grammar"
)

// ActionKind is the action cached on a complete or incomplete item.
type ActionKind uint8

const (
	ActionShift ActionKind = iota
	ActionReduce
	ActionAccept
)

func (a ActionKind) String() string {
	switch a {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "?"
	}
}

// Item is a rule annotated with a dot position and a cached action kind.
// Identity is (Rule, Dot); Action is a pure function of those two fields.
type Item struct {
	Rule *lr0grammar.Rule
	Dot  int

	Action ActionKind
}

// NewItem returns the item (rule, dot) with its action kind derived: accept
// if complete and the lhs is the augmented start symbol, reduce if complete,
// shift otherwise.
func NewItem(rule *lr0grammar.Rule, dot int) *Item {
	it := &Item{Rule: rule, Dot: dot}
	if dot >= len(rule.RHS) {
		if rule.LHS.Name == lr0grammar.AugmentedStart {
			it.Action = ActionAccept
		} else {
			it.Action = ActionReduce
		}
	} else {
		it.Action = ActionShift
	}
	return it
}

// Complete reports whether the dot has reached the end of the rhs.
func (it *Item) Complete() bool {
	return it.Dot >= len(it.Rule.RHS)
}

// DotSymbol returns rule.RHS[dot] and true when the item is incomplete, or
// the zero Symbol and false when it is complete.
func (it *Item) DotSymbol() (lr0grammar.Symbol, bool) {
	if it.Complete() {
		return lr0grammar.Symbol{}, false
	}
	return it.Rule.RHS[it.Dot], true
}

// PreDotSymbol returns rule.RHS[dot-1] and true when dot > 0, or the zero
// Symbol and false when dot == 0 (the validator substitutes epsilon here).
func (it *Item) PreDotSymbol() (lr0grammar.Symbol, bool) {
	if it.Dot == 0 {
		return lr0grammar.Symbol{}, false
	}
	return it.Rule.RHS[it.Dot-1], true
}

// Advance returns a new item with dot+1 and a recomputed action.
func (it *Item) Advance() *Item {
	return NewItem(it.Rule, it.Dot+1)
}

// Key is the value identity of the item, suitable as a map or set key.
func (it *Item) Key() string {
	return fmt.Sprintf("%s|%d", it.Rule.Key(), it.Dot)
}

// String renders the item as "[action] lhs -> s1 ... • si ...".
func (it *Item) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(it.Action.String())
	sb.WriteString("] ")
	sb.WriteString(it.Rule.LHS.Name)
	sb.WriteString(" ->")
	for i, sym := range it.Rule.RHS {
		if i == it.Dot {
			sb.WriteString(" •")
		}
		sb.WriteByte(' ')
		sb.WriteString(sym.Name)
	}
	if it.Dot == len(it.Rule.RHS) {
		sb.WriteString(" •")
	}
	return sb.String()
}
