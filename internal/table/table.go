// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package table constructs the ACTION/GOTO parsing tables from a built
// LR(0) automaton, and renders them as text.
package table

import (
	"fmt"
	"sort"

	"github.com/ashgrove/lr0gen/internal/automaton"
	"github.com/ashgrove/lr0gen/internal/lr0grammar"
)

// Action is a single entry in an ACTION cell: shift to a state, reduce by a
// rule, or accept. A cell holds a slice of Actions rather than one, because
// an unresolved conflict leaves more than one action viable for the same
// state/symbol pair; collapsing to one would silently pick a winner.
type Action struct {
	Kind   automaton.ActionKind
	Target int              // state number for Shift, rule index for Reduce, unused for Accept
	Rule   *lr0grammar.Rule // set for Reduce, for display
}

// String renders a single action as sN, rN, or acc.
func (a Action) String() string {
	switch a.Kind {
	case automaton.ActionShift:
		return fmt.Sprintf("s%d", a.Target)
	case automaton.ActionReduce:
		return fmt.Sprintf("r%d", a.Target)
	case automaton.ActionAccept:
		return "acc"
	default:
		return "?"
	}
}

// Table is the ACTION/GOTO parsing table for an automaton: one row per
// state, one ACTION column per terminal (including the end-of-input
// marker), and one GOTO column per non-terminal other than the augmented
// start symbol.
type Table struct {
	Grammar *lr0grammar.Grammar
	Action  [][][]Action // [state][terminal column] -> actions (usually len 1)
	Goto    [][]int      // [state][non-terminal column] -> state, or -1
}

// Build constructs the ACTION/GOTO table for a. Rule numbers used in reduce
// actions are the index of the rule in a.Grammar.Rules. Multiple actions in
// the same cell are preserved in the order discovered: shifts and the
// accept action are installed before any reduce action is added to the
// same cell, matching the usual convention of resolving shift/reduce in
// favor of shift when a parser driver must pick one, while still recording
// that the table itself carries the conflict.
func Build(a *automaton.Automaton) *Table {
	g := a.Grammar
	ruleIndex := make(map[*lr0grammar.Rule]int, len(g.Rules))
	for i, r := range g.Rules {
		ruleIndex[r] = i
	}

	t := &Table{
		Grammar: g,
		Action:  make([][][]Action, len(a.States)),
		Goto:    make([][]int, len(a.States)),
	}

	numTerm := len(g.Terminals)
	numNonTerm := len(g.NonTerminals)
	if g.IsAugmented {
		numNonTerm--
	}

	for _, st := range a.States {
		row := make([][]Action, numTerm)
		gotoRow := make([]int, numNonTerm)
		for i := range gotoRow {
			gotoRow[i] = -1
		}

		for _, tr := range st.Transitions {
			if col := g.TerminalColumn(tr.Symbol.Name); col >= 0 {
				row[col] = append(row[col], Action{Kind: automaton.ActionShift, Target: tr.To})
			} else if col := g.NonTerminalColumn(tr.Symbol.Name); col >= 0 {
				gotoRow[col] = tr.To
			}
		}

		for _, it := range st.Items {
			switch it.Action {
			case automaton.ActionAccept:
				eofCol := g.TerminalColumn(lr0grammar.EndOfInput)
				if eofCol >= 0 {
					row[eofCol] = append(row[eofCol], Action{Kind: automaton.ActionAccept})
				}
			case automaton.ActionReduce:
				ruleNum := ruleIndex[it.Rule]
				// LR(0) reduces on every terminal column: with no lookahead,
				// a complete item is a candidate regardless of what follows.
				for col := 0; col < numTerm; col++ {
					row[col] = append(row[col], Action{Kind: automaton.ActionReduce, Target: ruleNum, Rule: it.Rule})
				}
			}
		}

		t.Action[st.ID] = row
		t.Goto[st.ID] = gotoRow
	}

	return t
}

// Conflicts returns the (state, terminal column) pairs whose ACTION cell
// holds more than one action, sorted by state then column.
func (t *Table) Conflicts() [][2]int {
	var cells [][2]int
	for s, row := range t.Action {
		for c, actions := range row {
			if len(actions) > 1 {
				cells = append(cells, [2]int{s, c})
			}
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i][0] != cells[j][0] {
			return cells[i][0] < cells[j][0]
		}
		return cells[i][1] < cells[j][1]
	})
	return cells
}
