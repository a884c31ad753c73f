// Package transform maps the surface syntax tree one-to-one onto term
// variants. It makes no typing decisions; the only judgement here is
// lexical: capitalized names are constructor references, lowercase names
// are variables.
package transform

import (
	"fmt"
	"unicode"

	"martianoff/depc/internal/checker/term"
	"martianoff/depc/internal/parser"
)

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform converts a syntax node into the corresponding term. Application
// of a constructor head folds into the constructor's argument list, so
// "List Nat" becomes Constructor("List", [Nat]) rather than an Application.
func (tr *Transformer) Transform(node parser.Node) (term.Term, error) {
	switch n := node.(type) {
	case *parser.Ident:
		if isConstructorName(n.Name) {
			return &term.Constructor{Name: n.Name}, nil
		}
		return &term.Variable{Name: n.Name}, nil

	case *parser.NatLit:
		return &term.Nat{Value: n.Value}, nil

	case *parser.Wild:
		return &term.WildCard{}, nil

	case *parser.Lambda:
		classifier, err := tr.Transform(n.Classifier)
		if err != nil {
			return nil, err
		}
		body, err := tr.Transform(n.Body)
		if err != nil {
			return nil, err
		}
		return &term.Abstraction{Param: n.Param, Classifier: classifier, Body: body}, nil

	case *parser.DepAbs:
		classifier, err := tr.Transform(n.Classifier)
		if err != nil {
			return nil, err
		}
		body, err := tr.Transform(n.Body)
		if err != nil {
			return nil, err
		}
		return &term.DependantType{Param: n.Param, Classifier: classifier, Body: body}, nil

	case *parser.DepType:
		classifier, err := tr.Transform(n.Classifier)
		if err != nil {
			return nil, err
		}
		body, err := tr.Transform(n.Body)
		if err != nil {
			return nil, err
		}
		return &term.DependantType{Param: n.Param, Classifier: classifier, Body: body}, nil

	case *parser.Arrow:
		from, err := tr.Transform(n.From)
		if err != nil {
			return nil, err
		}
		to, err := tr.Transform(n.To)
		if err != nil {
			return nil, err
		}
		return term.Arrow(from, to), nil

	case *parser.Apply:
		fn, err := tr.Transform(n.Func)
		if err != nil {
			return nil, err
		}
		arg, err := tr.Transform(n.Arg)
		if err != nil {
			return nil, err
		}
		if c, ok := fn.(*term.Constructor); ok && c.Name != "->" {
			args := make([]term.Term, 0, len(c.Args)+1)
			args = append(args, c.Args...)
			args = append(args, arg)
			return &term.Constructor{Name: c.Name, Args: args}, nil
		}
		return &term.Application{Func: fn, Arg: arg}, nil
	}

	return nil, fmt.Errorf("cannot transform node of kind %T", node)
}

func isConstructorName(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}
