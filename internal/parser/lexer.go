package parser

import (
	"fmt"
	"unicode"

	"martianoff/depc/depcerr"
)

type tokenKind int

const (
	tEOF tokenKind = iota
	tName
	tNat
	tLambda   // \
	tPipe     // |
	tColon    // :
	tDot      // .
	tLParen   // (
	tRParen   // )
	tLBrace   // {
	tRBrace   // }
	tSemi     // ;
	tEquals   // =
	tArrow    // ->
	tQuestion // ?
	tType     // keyword "type"
	tLet      // keyword "let"
)

func (k tokenKind) String() string {
	switch k {
	case tEOF:
		return "end of input"
	case tName:
		return "name"
	case tNat:
		return "number"
	case tLambda:
		return "'\\'"
	case tPipe:
		return "'|'"
	case tColon:
		return "':'"
	case tDot:
		return "'.'"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tLBrace:
		return "'{'"
	case tRBrace:
		return "'}'"
	case tSemi:
		return "';'"
	case tEquals:
		return "'='"
	case tArrow:
		return "'->'"
	case tQuestion:
		return "'?'"
	case tType:
		return "'type'"
	case tLet:
		return "'let'"
	}
	return "unknown token"
}

type token struct {
	kind   tokenKind
	text   string
	line   int
	column int
}

// lex scans the whole input up front. Invalid characters are collected so a
// single pass can report every bad character at once.
func lex(input string) ([]token, []error) {
	var (
		toks   []token
		errs   []error
		line   = 1
		column = 1
	)

	runes := []rune(input)
	i := 0

	emit := func(kind tokenKind, text string, width int) {
		toks = append(toks, token{kind: kind, text: text, line: line, column: column})
		column += width
		i += width
	}

	for i < len(runes) {
		r := runes[i]

		switch {
		case r == '\n':
			line++
			column = 1
			i++
		case r == ' ' || r == '\t' || r == '\r':
			column++
			i++
		case r == '#':
			// Comment to end of line.
			for i < len(runes) && runes[i] != '\n' {
				i++
				column++
			}
		case r == '-' && i+1 < len(runes) && runes[i+1] == '>':
			emit(tArrow, "->", 2)
		case r == '\\':
			emit(tLambda, "\\", 1)
		case r == '|':
			emit(tPipe, "|", 1)
		case r == ':':
			emit(tColon, ":", 1)
		case r == '.':
			emit(tDot, ".", 1)
		case r == '(':
			emit(tLParen, "(", 1)
		case r == ')':
			emit(tRParen, ")", 1)
		case r == '{':
			emit(tLBrace, "{", 1)
		case r == '}':
			emit(tRBrace, "}", 1)
		case r == ';':
			emit(tSemi, ";", 1)
		case r == '=':
			emit(tEquals, "=", 1)
		case r == '?':
			emit(tQuestion, "?", 1)
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			emit(tNat, string(runes[i:j]), j-i)
		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			text := string(runes[i:j])
			kind := tName
			switch text {
			case "type":
				kind = tType
			case "let":
				kind = tLet
			}
			emit(kind, text, j-i)
		default:
			errs = append(errs, depcerr.NewSyntaxError(line, column, fmt.Sprintf("unexpected character %q", r)))
			column++
			i++
		}
	}

	toks = append(toks, token{kind: tEOF, line: line, column: column})
	return toks, errs
}
