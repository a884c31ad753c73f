// Package parser turns depc source text into a surface syntax tree.
//
// The grammar, fail-fast on the first parse error:
//
//	file  := decl* [expr]
//	decl  := "type" NAME param* "{" [ctor (";" ctor)* [";"]] "}"
//	       | "let" NAME ":" expr "=" expr
//	param := "(" NAME ":" expr ")"
//	ctor  := NAME ":" expr
//	expr  := app ("->" expr)?
//	app   := atom atom*
//	atom  := NAT | NAME | "?"
//	       | "\" NAME ":" expr "." expr
//	       | "|" NAME ":" expr "." expr
//	       | "(" NAME ":" expr ")" "->" expr
//	       | "(" expr ")"
package parser

import (
	"fmt"
	"strconv"

	"martianoff/depc/depcerr"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse parses one source unit. Lexing errors are collected into a
// MultiError; the parser itself stops at the first error.
func (p *Parser) Parse(input string) (*File, error) {
	toks, errs := lex(input)
	if len(errs) > 0 {
		return nil, &depcerr.MultiError{Errors: errs}
	}
	st := &parseState{toks: toks}
	file, err := st.parseFile()
	if err != nil {
		return nil, err
	}
	return file, nil
}

type parseState struct {
	toks []token
	pos  int
}

func (st *parseState) peek() token {
	return st.toks[st.pos]
}

func (st *parseState) peekAt(n int) token {
	if st.pos+n >= len(st.toks) {
		return st.toks[len(st.toks)-1]
	}
	return st.toks[st.pos+n]
}

func (st *parseState) next() token {
	t := st.toks[st.pos]
	if t.kind != tEOF {
		st.pos++
	}
	return t
}

func (st *parseState) expect(kind tokenKind) (token, error) {
	t := st.peek()
	if t.kind != kind {
		return t, st.errorf(t, "expected %s, found %s", kind, describe(t))
	}
	return st.next(), nil
}

func (st *parseState) errorf(t token, format string, args ...any) error {
	return depcerr.NewSyntaxError(t.line, t.column, fmt.Sprintf(format, args...))
}

func describe(t token) string {
	if t.kind == tName || t.kind == tNat {
		return fmt.Sprintf("%q", t.text)
	}
	return t.kind.String()
}

func (st *parseState) parseFile() (*File, error) {
	file := &File{}
	for {
		switch st.peek().kind {
		case tType:
			d, err := st.parseTypeDecl()
			if err != nil {
				return nil, err
			}
			file.Decls = append(file.Decls, d)
		case tLet:
			d, err := st.parseLetDecl()
			if err != nil {
				return nil, err
			}
			file.Decls = append(file.Decls, d)
		case tEOF:
			return file, nil
		default:
			expr, err := st.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := st.expect(tEOF); err != nil {
				return nil, err
			}
			file.Expr = expr
			return file, nil
		}
	}
}

func (st *parseState) parseTypeDecl() (*TypeDecl, error) {
	if _, err := st.expect(tType); err != nil {
		return nil, err
	}
	name, err := st.expect(tName)
	if err != nil {
		return nil, err
	}
	decl := &TypeDecl{Name: name.text}

	for st.peek().kind == tLParen {
		st.next()
		pname, err := st.expect(tName)
		if err != nil {
			return nil, err
		}
		if _, err := st.expect(tColon); err != nil {
			return nil, err
		}
		classifier, err := st.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := st.expect(tRParen); err != nil {
			return nil, err
		}
		decl.Params = append(decl.Params, TypeParam{Name: pname.text, Classifier: classifier})
	}

	if _, err := st.expect(tLBrace); err != nil {
		return nil, err
	}
	for st.peek().kind != tRBrace {
		cname, err := st.expect(tName)
		if err != nil {
			return nil, err
		}
		if _, err := st.expect(tColon); err != nil {
			return nil, err
		}
		classifier, err := st.parseExpr()
		if err != nil {
			return nil, err
		}
		decl.Ctors = append(decl.Ctors, CtorDecl{Name: cname.text, Classifier: classifier})
		if st.peek().kind == tSemi {
			st.next()
			continue
		}
		break
	}
	if _, err := st.expect(tRBrace); err != nil {
		return nil, err
	}
	return decl, nil
}

func (st *parseState) parseLetDecl() (*LetDecl, error) {
	if _, err := st.expect(tLet); err != nil {
		return nil, err
	}
	name, err := st.expect(tName)
	if err != nil {
		return nil, err
	}
	if _, err := st.expect(tColon); err != nil {
		return nil, err
	}
	annot, err := st.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := st.expect(tEquals); err != nil {
		return nil, err
	}
	value, err := st.parseExpr()
	if err != nil {
		return nil, err
	}
	return &LetDecl{Name: name.text, Annot: annot, Value: value}, nil
}

func (st *parseState) parseExpr() (Node, error) {
	left, err := st.parseApp()
	if err != nil {
		return nil, err
	}
	if st.peek().kind == tArrow {
		st.next()
		right, err := st.parseExpr()
		if err != nil {
			return nil, err
		}
		return &Arrow{From: left, To: right}, nil
	}
	return left, nil
}

// parseApp parses a juxtaposition chain. The chain never spans a line
// break, so a declaration's value does not swallow the expression on the
// next line; multi-line expressions need parentheses.
func (st *parseState) parseApp() (Node, error) {
	left, err := st.parseAtom()
	if err != nil {
		return nil, err
	}
	for startsAtom(st.peek().kind) && st.peek().line == st.toks[st.pos-1].line {
		arg, err := st.parseAtom()
		if err != nil {
			return nil, err
		}
		left = &Apply{Func: left, Arg: arg}
	}
	return left, nil
}

func startsAtom(kind tokenKind) bool {
	switch kind {
	case tNat, tName, tQuestion, tLambda, tPipe, tLParen:
		return true
	}
	return false
}

func (st *parseState) parseAtom() (Node, error) {
	t := st.peek()
	switch t.kind {
	case tNat:
		st.next()
		value, err := strconv.Atoi(t.text)
		if err != nil {
			return nil, st.errorf(t, "invalid number %q", t.text)
		}
		return &NatLit{Value: value}, nil

	case tName:
		st.next()
		return &Ident{Name: t.text}, nil

	case tQuestion:
		st.next()
		return &Wild{}, nil

	case tLambda:
		st.next()
		param, classifier, body, err := st.parseBinder()
		if err != nil {
			return nil, err
		}
		return &Lambda{Param: param, Classifier: classifier, Body: body}, nil

	case tPipe:
		st.next()
		param, classifier, body, err := st.parseBinder()
		if err != nil {
			return nil, err
		}
		return &DepAbs{Param: param, Classifier: classifier, Body: body}, nil

	case tLParen:
		// (x : T) -> B is a dependant type; anything else is grouping.
		if st.peekAt(1).kind == tName && st.peekAt(2).kind == tColon {
			return st.parseDepType()
		}
		st.next()
		expr, err := st.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := st.expect(tRParen); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, st.errorf(t, "expected expression, found %s", describe(t))
}

// parseBinder parses NAME ":" expr "." expr, shared by both abstraction
// forms.
func (st *parseState) parseBinder() (string, Node, Node, error) {
	name, err := st.expect(tName)
	if err != nil {
		return "", nil, nil, err
	}
	if _, err := st.expect(tColon); err != nil {
		return "", nil, nil, err
	}
	classifier, err := st.parseExpr()
	if err != nil {
		return "", nil, nil, err
	}
	if _, err := st.expect(tDot); err != nil {
		return "", nil, nil, err
	}
	body, err := st.parseExpr()
	if err != nil {
		return "", nil, nil, err
	}
	return name.text, classifier, body, nil
}

func (st *parseState) parseDepType() (Node, error) {
	if _, err := st.expect(tLParen); err != nil {
		return nil, err
	}
	name, err := st.expect(tName)
	if err != nil {
		return nil, err
	}
	if _, err := st.expect(tColon); err != nil {
		return nil, err
	}
	classifier, err := st.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := st.expect(tRParen); err != nil {
		return nil, err
	}
	if _, err := st.expect(tArrow); err != nil {
		return nil, err
	}
	body, err := st.parseExpr()
	if err != nil {
		return nil, err
	}
	return &DepType{Param: name.text, Classifier: classifier, Body: body}, nil
}
