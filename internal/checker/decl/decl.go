// Package decl registers user declarations into the initial context before
// the first inference call: algebraic type declarations and annotated value
// bindings.
package decl

import (
	"martianoff/depc/depcerr"
	"martianoff/depc/internal/checker/infer"
	"martianoff/depc/internal/checker/term"
	"martianoff/depc/internal/parser"
)

// TermTransformer converts surface syntax into terms.
type TermTransformer interface {
	Transform(node parser.Node) (term.Term, error)
}

// Processor builds up a context from declarations. Declarations are trusted
// input: a value whose declared classifier disagrees with its inferred one
// is an invariant violation, not a recoverable type error.
type Processor struct {
	transformer TermTransformer
}

func NewProcessor(transformer TermTransformer) *Processor {
	return &Processor{transformer: transformer}
}

// Process extends a copy of ctx with every declared binding and returns it.
// The input context is never mutated.
func (p *Processor) Process(decls []parser.Decl, ctx term.Context) (term.Context, error) {
	res := make(term.Context, len(ctx)+len(decls))
	for k, v := range ctx {
		res[k] = v
	}

	for _, d := range decls {
		var err error
		switch x := d.(type) {
		case *parser.TypeDecl:
			err = p.processType(x, res)
		case *parser.LetDecl:
			err = p.processLet(x, res)
		}
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// processType binds the type name to a classifier built by wrapping the
// declared parameters as nested dependant types terminating in Type, and
// records each constructor's declared classifier verbatim.
func (p *Processor) processType(d *parser.TypeDecl, ctx term.Context) error {
	classifier := term.Term(&term.Constructor{Name: "Type"})
	for i := len(d.Params) - 1; i >= 0; i-- {
		paramClassifier, err := p.transformer.Transform(d.Params[i].Classifier)
		if err != nil {
			return err
		}
		classifier = &term.DependantType{
			Param:      d.Params[i].Name,
			Classifier: paramClassifier,
			Body:       classifier,
		}
	}
	ctx[d.Name] = classifier

	for _, c := range d.Ctors {
		ctorClassifier, err := p.transformer.Transform(c.Classifier)
		if err != nil {
			return err
		}
		ctx[c.Name] = ctorClassifier
	}
	return nil
}

// processLet infers the bound value's classifier and unifies it against the
// declared annotation. Disagreement is fatal to the whole run.
func (p *Processor) processLet(d *parser.LetDecl, ctx term.Context) error {
	annot, err := p.transformer.Transform(d.Annot)
	if err != nil {
		return err
	}
	value, err := p.transformer.Transform(d.Value)
	if err != nil {
		return err
	}

	_, inferred, err := infer.NewInferer().Infer(value, ctx)
	if err != nil {
		return err
	}
	s, ok := infer.Unify(inferred, annot)
	if !ok {
		return depcerr.NewInvariantError(
			"declared classifier '%s' for %s does not match inferred '%s'",
			annot, d.Name, inferred)
	}
	ctx[d.Name] = s.Apply(annot)
	return nil
}
