// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package grammarfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/lr0gen/internal/automaton"
	"github.com/ashgrove/lr0gen/internal/grammar"
	"github.com/ashgrove/lr0gen/internal/lex"
	"github.com/ashgrove/lr0gen/internal/lr0grammar"
	"github.com/ashgrove/lr0gen/internal/validator"
)

func build(t *testing.T, src string) *grammar.Grammar {
	t.Helper()
	tokens, err := lex.Tokenize("<test>", []byte(src))
	require.NoError(t, err)

	b := grammar.NewBuilder("<test>")
	sink := grammar.NewBuilderSink(b)
	Parse(sink, tokens)
	g := b.Finalize()
	if b.HasErrors() {
		for _, d := range b.Diagnostics() {
			t.Logf("diagnostic: %s", d.Error())
		}
		t.Fatalf("grammar has errors")
	}
	return g
}

func Test_Parse_SimpleRuleEndToEnd(t *testing.T) {
	src := `
%start_symbol expr .
expr ::= expr PLUS term .
expr ::= term .
term ::= term STAR factor .
term ::= factor .
factor ::= LPAREN expr RPAREN .
factor ::= NUMBER .
`
	g := build(t, src)
	assert.Equal(t, "expr", g.Start.Name)

	rules := g.Flatten()
	assert.Len(t, rules, 6)

	lg, err := lr0grammar.FromRules(rules)
	require.NoError(t, err)
	require.NoError(t, lg.Validate())

	a, err := automaton.Build(lg)
	require.NoError(t, err)
	assert.Equal(t, 12, len(a.States))
	// The expression grammar is not LR(0): expr ::= term . shares a state
	// with term ::= term . STAR factor, so the validator reports conflicts.
	assert.NotEmpty(t, validator.Validate(a))
}

func Test_Parse_Alternatives(t *testing.T) {
	src := `
cycle ::= ID PLUS ID | factor .
factor ::= LPAREN cycle RPAREN | ID .
`
	g := build(t, src)
	rules := g.Flatten()
	assert.Len(t, rules, 4)

	lg, err := lr0grammar.FromRules(rules)
	require.NoError(t, err)

	a, err := automaton.Build(lg)
	require.NoError(t, err)
	assert.NotEmpty(t, validator.Validate(a), "expected a shift/reduce conflict")
}

func Test_Parse_ExplicitTokenDeclaration(t *testing.T) {
	src := `
%token PLUS MINUS NUMBER .
expr ::= expr PLUS expr .
expr ::= expr MINUS expr .
expr ::= NUMBER .
`
	g := build(t, src)
	plus, ok := g.SymbolsByName["PLUS"]
	require.True(t, ok)
	assert.Equal(t, grammar.SymTerminal, plus.Kind)
	number, ok := g.SymbolsByName["NUMBER"]
	require.True(t, ok)
	assert.Equal(t, grammar.SymTerminal, number.Kind)
}

func Test_Parse_PassthroughDirectives(t *testing.T) {
	src := `
%include "common.h" .
%code { package foo } .
expr ::= NUMBER .
`
	g := build(t, src)
	_, hasInclude := g.Directives["%include"]
	assert.True(t, hasInclude)
	_, hasCode := g.Directives["%code"]
	assert.True(t, hasCode)
}
