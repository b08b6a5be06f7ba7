// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lr0grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sym(name string) Symbol { return NewSymbol(name) }

func exprGrammarRules() []*Rule {
	exp, term, factor := sym("exp"), sym("term"), sym("factor")
	plus, star, lparen, rparen, number := sym("+"), sym("*"), sym("("), sym(")"), sym("number")
	return []*Rule{
		NewRule(exp, exp, plus, term),
		NewRule(exp, term),
		NewRule(term, term, star, factor),
		NewRule(term, factor),
		NewRule(factor, lparen, exp, rparen),
		NewRule(factor, number),
	}
}

func Test_FromRules(t *testing.T) {
	t.Run("empty rules rejected", func(t *testing.T) {
		_, err := FromRules(nil)
		require.Error(t, err)
		ge, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, ErrEmptyRules, ge.Kind)
	})

	t.Run("expression grammar classifies symbols in first-seen order", func(t *testing.T) {
		g, err := FromRules(exprGrammarRules())
		require.NoError(t, err)

		gotNonTerms := make([]string, len(g.NonTerminals))
		for i, s := range g.NonTerminals {
			gotNonTerms[i] = s.Name
		}
		assert.Equal(t, []string{"exp", "term", "factor"}, gotNonTerms)

		gotTerms := make([]string, len(g.Terminals))
		for i, s := range g.Terminals {
			gotTerms[i] = s.Name
		}
		assert.Equal(t, []string{"+", "*", "(", ")", "number"}, gotTerms)

		assert.Equal(t, "exp", g.Start.Name)
		assert.NoError(t, g.Validate())
	})
}

func Test_Grammar_Validate_StartSymbol(t *testing.T) {
	t.Run("start symbol not found in any rule", func(t *testing.T) {
		g, err := FromRules(exprGrammarRules())
		require.NoError(t, err)
		g.Start = sym("nope")
		err = g.Validate()
		require.Error(t, err)
		assert.Equal(t, ErrStartSymbolNotFoundInRules, err.(*Error).Kind)
	})

	t.Run("start symbol is not classified as a non-terminal", func(t *testing.T) {
		g, err := FromRules(exprGrammarRules())
		require.NoError(t, err)
		g.Start = sym("number")
		err = g.Validate()
		require.Error(t, err)
		assert.Equal(t, ErrStartSymbolIsNotNonTerminal, err.(*Error).Kind)
	})
}

func Test_Grammar_Validate_Reachability(t *testing.T) {
	// orphan has its own rule but is never referenced from start or from
	// anything reachable from start.
	exp, term, orphan := sym("exp"), sym("term"), sym("orphan")
	number, tag := sym("number"), sym("tag")
	rules := []*Rule{
		NewRule(exp, term),
		NewRule(term, number),
		NewRule(orphan, tag),
	}
	g, err := FromRules(rules)
	require.NoError(t, err)

	err = g.Validate()
	require.Error(t, err)
	ge, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrUnreachableNonTerminal, ge.Kind)
	assert.Equal(t, "orphan", ge.Subject)
}

func Test_Grammar_Validate_Productivity(t *testing.T) {
	// loop is reachable from start (exp -> loop) but its only rule recurses
	// through itself with no terminal-grounded alternative, so it can never
	// derive a string of terminals.
	exp, term, loop := sym("exp"), sym("term"), sym("loop")
	number := sym("number")
	rules := []*Rule{
		NewRule(exp, term),
		NewRule(exp, loop),
		NewRule(term, number),
		NewRule(loop, loop),
	}
	g, err := FromRules(rules)
	require.NoError(t, err)

	err = g.Validate()
	require.Error(t, err)
	ge, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrNonProductiveNonTerminal, ge.Kind)
	assert.Equal(t, "loop", ge.Subject)
}

func Test_Augmented(t *testing.T) {
	g, err := FromRules(exprGrammarRules())
	require.NoError(t, err)

	ag, err := g.Augmented()
	require.NoError(t, err)

	assert.True(t, ag.IsAugmented)
	assert.Equal(t, AugmentedStart, ag.Rules[0].LHS.Name)
	assert.Equal(t, "exp", ag.Rules[0].RHS[0].Name)
	assert.Equal(t, len(g.Rules)+1, len(ag.Rules))
	assert.Equal(t, len(g.NonTerminals)+1, len(ag.NonTerminals))
	assert.Equal(t, len(g.Terminals)+1, len(ag.Terminals))
	assert.Equal(t, AugmentedStart, ag.NonTerminals[0].Name)
	assert.Equal(t, EndOfInput, ag.Terminals[len(ag.Terminals)-1].Name)

	startRule, err := ag.StartRule()
	require.NoError(t, err)
	assert.Same(t, ag.Rules[0], startRule)

	t.Run("already-augmented grammar is a no-op", func(t *testing.T) {
		again, err := ag.Augmented()
		require.NoError(t, err)
		assert.Same(t, ag, again)
	})

	t.Run("unaugmented grammar has no start rule", func(t *testing.T) {
		_, err := g.StartRule()
		require.Error(t, err)
		assert.Equal(t, ErrGrammarIsNotAugmented, err.(*Error).Kind)
	})
}

func Test_NonTerminalColumn_ExcludesAugmentedStart(t *testing.T) {
	g, err := FromRules(exprGrammarRules())
	require.NoError(t, err)
	ag, err := g.Augmented()
	require.NoError(t, err)

	assert.Equal(t, -1, ag.NonTerminalColumn(AugmentedStart))
	assert.Equal(t, 0, ag.NonTerminalColumn("exp"))
	assert.Equal(t, 1, ag.NonTerminalColumn("term"))
	assert.Equal(t, 2, ag.NonTerminalColumn("factor"))
	assert.Equal(t, -1, ag.NonTerminalColumn("nonexistent"))
}
