// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/lr0gen/internal/automaton"
	"github.com/ashgrove/lr0gen/internal/lr0grammar"
)

func sym(name string) lr0grammar.Symbol { return lr0grammar.NewSymbol(name) }

func exprGrammar(t *testing.T) *lr0grammar.Grammar {
	t.Helper()
	exp, term, factor := sym("exp"), sym("term"), sym("factor")
	plus, star, lparen, rparen, number := sym("+"), sym("*"), sym("("), sym(")"), sym("number")
	rules := []*lr0grammar.Rule{
		lr0grammar.NewRule(exp, exp, plus, term),
		lr0grammar.NewRule(exp, term),
		lr0grammar.NewRule(term, term, star, factor),
		lr0grammar.NewRule(term, factor),
		lr0grammar.NewRule(factor, lparen, exp, rparen),
		lr0grammar.NewRule(factor, number),
	}
	g, err := lr0grammar.FromRules(rules)
	require.NoError(t, err)
	return g
}

func Test_Build_TableShape(t *testing.T) {
	g := exprGrammar(t)
	a, err := automaton.Build(g)
	require.NoError(t, err)

	tbl := Build(a)

	assert.Equal(t, len(a.States), len(tbl.Action))
	assert.Equal(t, len(a.States), len(tbl.Goto))

	numTerm := len(a.Grammar.Terminals) // includes $
	numNonTerm := len(a.Grammar.NonTerminals) - 1

	for _, row := range tbl.Action {
		assert.Len(t, row, numTerm)
	}
	for _, row := range tbl.Goto {
		assert.Len(t, row, numNonTerm)
	}
}

func Test_Build_AcceptCell(t *testing.T) {
	g := exprGrammar(t)
	a, err := automaton.Build(g)
	require.NoError(t, err)
	tbl := Build(a)

	eofCol := a.Grammar.TerminalColumn(lr0grammar.EndOfInput)
	require.GreaterOrEqual(t, eofCol, 0)

	var accepts int
	for _, row := range tbl.Action {
		for _, act := range row[eofCol] {
			if act.Kind == automaton.ActionAccept {
				accepts++
			}
		}
	}
	assert.Equal(t, 1, accepts, "expected exactly one acc cell in the $ column")
}

func Test_Conflicts_ShiftReduceGrammar(t *testing.T) {
	cycle, factor := sym("cycle"), sym("factor")
	id, plus, lparen, rparen := sym("id"), sym("+"), sym("("), sym(")")
	rules := []*lr0grammar.Rule{
		lr0grammar.NewRule(cycle, id, plus, id),
		lr0grammar.NewRule(cycle, factor),
		lr0grammar.NewRule(factor, lparen, cycle, rparen),
		lr0grammar.NewRule(factor, id),
	}
	g, err := lr0grammar.FromRules(rules)
	require.NoError(t, err)

	a, err := automaton.Build(g)
	require.NoError(t, err)
	tbl := Build(a)

	conflicts := tbl.Conflicts()
	require.NotEmpty(t, conflicts)

	state, col := conflicts[0][0], conflicts[0][1]
	cell := tbl.Action[state][col]
	assert.True(t, len(cell) > 1)
	assert.Equal(t, automaton.ActionShift, cell[0].Kind, "shift is recorded before reduce in a conflict cell")
}

func Test_Render_NoPanic(t *testing.T) {
	g := exprGrammar(t)
	a, err := automaton.Build(g)
	require.NoError(t, err)
	tbl := Build(a)

	out := tbl.Render(10)
	assert.NotEmpty(t, out)
	assert.NotEmpty(t, Rules(a.Grammar))
}
