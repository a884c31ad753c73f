package infer

import (
	"martianoff/depc/internal/checker/term"
)

// Unify computes the substitution making t1 and t2 syntactically identical,
// or reports that none exists. It is structural and symmetric, with no
// occurs-check; the first matching rule wins.
func Unify(t1, t2 term.Term) (term.Substitution, bool) {
	if _, ok := t1.(*term.WildCard); ok {
		return term.Substitution{}, true
	}
	if _, ok := t2.(*term.WildCard); ok {
		return term.Substitution{}, true
	}

	if a, ok := t1.(*term.Variable); ok {
		if b, ok := t2.(*term.Variable); ok && a.Name == b.Name {
			return term.Substitution{}, true
		}
	}
	// Variables are always bound via the right operand.
	if b, ok := t2.(*term.Variable); ok {
		return term.Substitution{b.Name: t1}, true
	}
	if _, ok := t1.(*term.Variable); ok {
		return Unify(t2, t1)
	}

	switch a := t1.(type) {
	case *term.Constructor:
		b, ok := t2.(*term.Constructor)
		if !ok {
			return nil, false
		}
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return nil, false
		}
		return unifyPairwise(a.Args, b.Args)

	case *term.DependantType:
		b, ok := t2.(*term.DependantType)
		if !ok {
			return nil, false
		}
		s1, ok := Unify(a.Classifier, b.Classifier)
		if !ok {
			return nil, false
		}
		s2, ok := Unify(a.Body, b.Body)
		if !ok {
			return nil, false
		}
		// Plain union of the raw mappings, later entries overwriting
		// earlier ones; unlike the constructor rule the accumulator is
		// not re-applied.
		res := make(term.Substitution, len(s1)+len(s2))
		for k, v := range s1 {
			res[k] = v
		}
		for k, v := range s2 {
			res[k] = v
		}
		return res, true

	case *term.Nat:
		b, ok := t2.(*term.Nat)
		if !ok {
			return nil, false
		}
		if a.Value != b.Value {
			return nil, false
		}
		return term.Substitution{}, true

	case *term.Abstraction:
		b, ok := t2.(*term.Abstraction)
		if !ok {
			return nil, false
		}
		// Parameter classifiers are deliberately ignored here.
		return Unify(a.Body, b.Body)

	case *term.Application:
		b, ok := t2.(*term.Application)
		if !ok {
			return nil, false
		}
		return unifyPairwise([]term.Term{a.Func, a.Arg}, []term.Term{b.Func, b.Arg})
	}

	return nil, false
}

// unifyPairwise unifies two equal-length argument lists left to right,
// folding each partial substitution into the accumulator and failing fast
// on the first pair with no unifier.
func unifyPairwise(args1, args2 []term.Term) (term.Substitution, bool) {
	s := term.Substitution{}
	for i := range args1 {
		next, ok := Unify(args1[i], args2[i])
		if !ok {
			return nil, false
		}
		s = s.Compose(next)
	}
	return s, true
}
