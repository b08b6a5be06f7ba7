// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lex

// tokenTypeNames is a hand-maintained display name table for TokenType, kept
// in sync with the const block in token.go.
var tokenTypeNames = [...]string{
	TOKEN_EOF:              "TOKEN_EOF",
	TOKEN_ERROR:            "TOKEN_ERROR",
	TOKEN_TERMINAL:         "TOKEN_TERMINAL",
	TOKEN_NONTERMINAL:      "TOKEN_NONTERMINAL",
	TOKEN_COLONCOLON_EQ:    "TOKEN_COLONCOLON_EQ",
	TOKEN_DOT:              "TOKEN_DOT",
	TOKEN_PIPE:             "TOKEN_PIPE",
	TOKEN_LPAREN:           "TOKEN_LPAREN",
	TOKEN_RPAREN:           "TOKEN_RPAREN",
	TOKEN_LBRACKET:         "TOKEN_LBRACKET",
	TOKEN_RBRACKET:         "TOKEN_RBRACKET",
	TOKEN_COMMA:            "TOKEN_COMMA",
	TOKEN_DIR_CODE:         "TOKEN_DIR_CODE",
	TOKEN_DIR_INCLUDE:      "TOKEN_DIR_INCLUDE",
	TOKEN_DIR_START_SYMBOL: "TOKEN_DIR_START_SYMBOL",
	TOKEN_DIR_TOKEN:        "TOKEN_DIR_TOKEN",
	TOKEN_DIR_TOKEN_TYPE:   "TOKEN_DIR_TOKEN_TYPE",
	TOKEN_DIR_FALLBACK:     "TOKEN_DIR_FALLBACK",
	TOKEN_DIR_GENERIC:      "TOKEN_DIR_GENERIC",
	TOKEN_CODE_BLOCK:       "TOKEN_CODE_BLOCK",
	TOKEN_STRING:           "TOKEN_STRING",
}

func (tt TokenType) String() string {
	if int(tt) < 0 || int(tt) >= len(tokenTypeNames) {
		return "TokenType(?)"
	}
	if s := tokenTypeNames[tt]; s != "" {
		return s
	}
	return "TokenType(?)"
}
