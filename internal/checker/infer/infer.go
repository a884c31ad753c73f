// Package infer implements classifier inference and structural unification
// for depc terms.
package infer

import (
	"fmt"

	"martianoff/depc/depcerr"
	"martianoff/depc/internal/checker/term"
)

// Inferer holds the state for one top-level inference run: the counter used
// to generate fresh variable names. Using one Inferer per run guarantees
// fresh names never repeat within the run and keeps concurrent runs from
// sharing names.
type Inferer struct {
	nextID int
}

func NewInferer() *Inferer {
	return &Inferer{nextID: 0}
}

// NewVariable generates a fresh variable, distinct from every variable this
// Inferer produced before.
func (inf *Inferer) NewVariable() *term.Variable {
	inf.nextID++
	return &term.Variable{Name: fmt.Sprintf("t%d", inf.nextID)}
}

// Infer computes the principal classifier of t in ctx, together with the
// substitution discovered along the way. Errors short-circuit immediately;
// no diagnostics are aggregated.
func (inf *Inferer) Infer(t term.Term, ctx term.Context) (term.Substitution, term.Term, error) {
	switch x := t.(type) {
	case *term.Nat:
		return term.Substitution{}, &term.Constructor{Name: "Nat"}, nil

	case *term.Variable:
		if classifier, ok := ctx.Lookup(x.Name); ok {
			return term.Substitution{}, classifier, nil
		}
		return nil, nil, depcerr.NewUnboundError(x.Name)

	case *term.Constructor:
		// A constructor reference is classified like a bare name; its
		// arguments only matter structurally, during unification.
		if classifier, ok := ctx.Lookup(x.Name); ok {
			return term.Substitution{}, classifier, nil
		}
		return nil, nil, depcerr.NewUnboundError(x.Name)

	case *term.Abstraction:
		s, bodyClassifier, err := inf.Infer(x.Body, ctx.Extend(x.Param, x.Classifier))
		if err != nil {
			return nil, nil, err
		}
		return s, term.Arrow(x.Classifier, bodyClassifier), nil

	case *term.Application:
		// Func and arg are inferred independently against the original
		// context: arg inference does not see substitutions discovered
		// while inferring func.
		s1, funcClassifier, err := inf.Infer(x.Func, ctx)
		if err != nil {
			return nil, nil, err
		}
		s2, argClassifier, err := inf.Infer(x.Arg, ctx)
		if err != nil {
			return nil, nil, err
		}
		beta := inf.NewVariable()
		arrow := term.Arrow(argClassifier, beta)
		s3, ok := Unify(funcClassifier, arrow)
		if !ok {
			return nil, nil, depcerr.NewUnificationError(funcClassifier.String(), arrow.String())
		}
		return s3.Compose(s2.Compose(s1)), s3.Apply(beta), nil

	case *term.DependantType:
		s1, t1, err := inf.Infer(x.Classifier, ctx)
		if err != nil {
			return nil, nil, err
		}
		s2, t2, err := inf.Infer(x.Body, ctx.Extend(x.Param, t1))
		if err != nil {
			return nil, nil, err
		}
		return s2.Compose(s1), &term.DependantType{Param: x.Param, Classifier: t1, Body: t2}, nil

	case *term.WildCard:
		return term.Substitution{}, inf.NewVariable(), nil
	}

	return nil, nil, fmt.Errorf("cannot infer term of kind %T", t)
}
