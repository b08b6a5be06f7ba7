// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/lr0gen/internal/automaton"
	"github.com/ashgrove/lr0gen/internal/lr0grammar"
)

func sym(name string) lr0grammar.Symbol { return lr0grammar.NewSymbol(name) }

// shiftReduceGrammar: cycle -> id + id | factor, factor -> ( cycle ) | id.
// The state reached after shifting "id" holds both "cycle -> id . + id" and
// "factor -> id ." -- both items key on pre-dot symbol "id", one shift and
// one reduce, so Validate reports a shift/reduce conflict keyed on "id".
func shiftReduceGrammar(t *testing.T) *lr0grammar.Grammar {
	t.Helper()
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
	return g
}

// reduceReduceGrammar: S -> A | B, A -> c, B -> c.
// After shifting "c" the state holds both "A -> c ." and "B -> c .", both
// keyed on pre-dot symbol "c" -- a reduce/reduce conflict.
func reduceReduceGrammar(t *testing.T) *lr0grammar.Grammar {
	t.Helper()
	s, a, b := sym("S"), sym("A"), sym("B")
	c := sym("c")
	rules := []*lr0grammar.Rule{
		lr0grammar.NewRule(s, a),
		lr0grammar.NewRule(s, b),
		lr0grammar.NewRule(a, c),
		lr0grammar.NewRule(b, c),
	}
	g, err := lr0grammar.FromRules(rules)
	require.NoError(t, err)
	return g
}

func Test_Validate_ShiftReduceOnIdentifier(t *testing.T) {
	a, err := automaton.Build(shiftReduceGrammar(t))
	require.NoError(t, err)

	conflicts := Validate(a)
	require.NotEmpty(t, conflicts)

	var found bool
	for _, c := range conflicts {
		if c.Kind == ShiftReduceConflict && c.Symbol == "id" {
			found = true
		}
	}
	assert.True(t, found, "expected a shift/reduce conflict keyed on \"id\"")
}

func Test_Validate_ReduceReduceOnSharedTerminal(t *testing.T) {
	a, err := automaton.Build(reduceReduceGrammar(t))
	require.NoError(t, err)

	conflicts := Validate(a)
	require.NotEmpty(t, conflicts)

	var found bool
	for _, c := range conflicts {
		if c.Kind == ReduceReduceConflict {
			found = true
			assert.Equal(t, "c", c.Symbol)
			assert.Len(t, c.Items, 2)
		}
	}
	assert.True(t, found, "expected a reduce/reduce conflict")
}

func Test_Validate_NoConflictsOnUnambiguousGrammar(t *testing.T) {
	s, a := sym("S"), sym("a")
	rules := []*lr0grammar.Rule{
		lr0grammar.NewRule(s, a),
	}
	g, err := lr0grammar.FromRules(rules)
	require.NoError(t, err)

	aut, err := automaton.Build(g)
	require.NoError(t, err)
	assert.Empty(t, Validate(aut))
}
