// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package table

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/ashgrove/lr0gen/internal/lr0grammar"
)

// cellText joins the actions in a cell with a slash, the convention used
// for an unresolved conflict cell (e.g. "s4/r2"). An empty cell renders as
// "-": no action exists for that state/symbol pair.
func cellText(actions []Action) string {
	if len(actions) == 0 {
		return "-"
	}
	parts := make([]string, len(actions))
	for i, act := range actions {
		parts[i] = act.String()
	}
	return strings.Join(parts, "/")
}

// String renders the table at the default column width (10, matching the
// rest of the ictiobus-derived table renderers in the pack).
func (t *Table) String() string {
	return t.Render(10)
}

// Render renders the table as a fixed-width text grid: one header row of
// terminal and non-terminal column labels, one row per state, an "S"
// column giving the state number, and a "|" separator between the ACTION
// and GOTO halves. width is the column width handed to rosed.
func (t *Table) Render(width int) string {
	g := t.Grammar

	nonTerms := g.NonTerminals
	if g.IsAugmented {
		nonTerms = nonTerms[1:]
	}

	headers := []string{"S", "|"}
	for _, term := range g.Terminals {
		headers = append(headers, fmt.Sprintf("A:%s", term.Name))
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt.Name))
	}

	data := [][]string{headers}

	for s := range t.Action {
		row := []string{fmt.Sprintf("%d", s), "|"}
		for _, actions := range t.Action[s] {
			row = append(row, cellText(actions))
		}
		row = append(row, "|")
		for _, to := range t.Goto[s] {
			if to < 0 {
				row = append(row, "-")
			} else {
				row = append(row, fmt.Sprintf("%d", to))
			}
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, width, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// Rules renders the grammar's rule list numbered to match the reduce
// actions in the table ("0: S' -> S").
func Rules(g *lr0grammar.Grammar) string {
	var sb strings.Builder
	for i, r := range g.Rules {
		fmt.Fprintf(&sb, "%d: %s\n", i, r)
	}
	return sb.String()
}
