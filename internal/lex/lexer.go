// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package lex implements a lexer for grammar description files.
// Returns tokens that contain copies from the input buffer.
package lex

import (
	"bytes"
	"fmt"

	"github.com/ashgrove/lr0gen/internal/scanner"
)

// Tokenize scans the source and returns all tokens including a final TOKEN_EOF.
// The filename is used only for Position fields in the returned tokens.
func Tokenize(filename string, src []byte) (tokens []Token, err error) {
	r := bytes.NewReader(src)
	s := &scanner.Scanner{Mode: scanner.ScanIdents | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments}
	s.Filename = filename
	_, err = s.Init(r)
	if err != nil {
		return nil, err
	}
	for ch := s.Scan(); ch != scanner.EOF; ch = s.Scan() {
		pos := Position{File: filename, Line: s.Line, Column: s.Column}
		text := s.TokenText()

		tt := TOKEN_ERROR
		switch ch {
		case scanner.Is:
			tt = TOKEN_COLONCOLON_EQ
		case scanner.NonTerminal:
			tt = TOKEN_NONTERMINAL
		case scanner.Terminal:
			tt = TOKEN_TERMINAL
		case scanner.String:
			tt = TOKEN_STRING
		case scanner.Action:
			tt = TOKEN_CODE_BLOCK
		case scanner.StartSymbol:
			tt = TOKEN_DIR_START_SYMBOL
		case scanner.TokenDecl:
			tt = TOKEN_DIR_TOKEN
		case scanner.TokenType:
			tt = TOKEN_DIR_TOKEN_TYPE
		case scanner.Include:
			tt = TOKEN_DIR_INCLUDE
		case scanner.Code:
			tt = TOKEN_DIR_CODE
		case scanner.Fallback:
			tt = TOKEN_DIR_FALLBACK
		case scanner.Directive:
			tt = TOKEN_DIR_GENERIC
		case '.':
			tt = TOKEN_DOT
		case '|':
			tt = TOKEN_PIPE
		case '(':
			tt = TOKEN_LPAREN
		case ')':
			tt = TOKEN_RPAREN
		case '[':
			tt = TOKEN_LBRACKET
		case ']':
			tt = TOKEN_RBRACKET
		case ',':
			tt = TOKEN_COMMA
		default:
			tt = TOKEN_ERROR
		}
		tokens = append(tokens, Token{Type: tt, Literal: text, Pos: pos})
	}
	if s.ErrorCount > 0 {
		return tokens, fmt.Errorf("%s: %d lexical error(s)", filename, s.ErrorCount)
	}
	tokens = append(tokens, Token{Type: TOKEN_EOF, Pos: Position{File: filename, Line: s.Line, Column: s.Column}})
	return tokens, nil
}
