// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lr0grammar

import "strings"

// Rule is a production lhs -> s1 s2 ... sn with n >= 1. Identity is derived
// from the lhs and the ordered rhs, symbol by symbol; two rules with the
// same lhs and rhs sequence are the same rule regardless of where they live.
type Rule struct {
	LHS Symbol
	RHS []Symbol
}

// NewRule builds a rule. The caller is responsible for ensuring rhs is
// non-empty; the grammar's non-goals exclude empty (epsilon) productions.
func NewRule(lhs Symbol, rhs ...Symbol) *Rule {
	cp := make([]Symbol, len(rhs))
	copy(cp, rhs)
	return &Rule{LHS: lhs, RHS: cp}
}

// Key returns a value identity for the rule, suitable for use as a map key
// or for deduplication.
func (r *Rule) Key() string {
	var sb strings.Builder
	sb.WriteString(r.LHS.Name)
	sb.WriteString(" ->")
	for _, sym := range r.RHS {
		sb.WriteByte(' ')
		sb.WriteString(sym.Name)
	}
	return sb.String()
}

func (r *Rule) String() string {
	return r.Key()
}
