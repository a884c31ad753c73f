// Package checker orchestrates the depc pipeline: parse, register
// declarations, transform the final expression into a term tree, and infer
// its classifier.
package checker

import (
	"martianoff/depc/internal/checker/infer"
	"martianoff/depc/internal/checker/term"
	"martianoff/depc/internal/parser"
)

// SourceParser defines the interface for parsing depc source code.
type SourceParser interface {
	Parse(input string) (*parser.File, error)
}

// TermTransformer maps a surface syntax node onto a term.
type TermTransformer interface {
	Transform(node parser.Node) (term.Term, error)
}

// DeclProcessor registers declarations into a context.
type DeclProcessor interface {
	Process(decls []parser.Decl, ctx term.Context) (term.Context, error)
}

// Result is the outcome of checking one source unit. Classifier is nil when
// the unit contained only declarations.
type Result struct {
	Substitution term.Substitution
	Classifier   term.Term
}

// Checker wires the pipeline stages together.
type Checker struct {
	parser      SourceParser
	transformer TermTransformer
	decls       DeclProcessor
}

// NewChecker creates a new Checker with its dependencies.
func NewChecker(p SourceParser, tr TermTransformer, d DeclProcessor) *Checker {
	return &Checker{
		parser:      p,
		transformer: tr,
		decls:       d,
	}
}

// Check runs the full pipeline on one source unit against the built-in
// context.
func (c *Checker) Check(input string) (*Result, error) {
	res, _, err := c.run(input, term.NewBuiltinContext())
	return res, err
}

func (c *Checker) run(input string, ctx term.Context) (*Result, term.Context, error) {
	file, err := c.parser.Parse(input)
	if err != nil {
		return nil, ctx, err
	}

	extended, err := c.decls.Process(file.Decls, ctx)
	if err != nil {
		return nil, ctx, err
	}
	ctx = extended

	if file.Expr == nil {
		return &Result{}, ctx, nil
	}

	t, err := c.transformer.Transform(file.Expr)
	if err != nil {
		return nil, ctx, err
	}

	s, classifier, err := infer.NewInferer().Infer(t, ctx)
	if err != nil {
		return nil, ctx, err
	}
	return &Result{Substitution: s, Classifier: classifier}, ctx, nil
}

// Session is a Checker whose context persists between inputs, so
// declarations entered earlier stay in scope. Used by the REPL.
type Session struct {
	checker *Checker
	ctx     term.Context
}

// NewSession creates a session starting from the built-in context.
func NewSession(p SourceParser, tr TermTransformer, d DeclProcessor) *Session {
	return &Session{
		checker: NewChecker(p, tr, d),
		ctx:     term.NewBuiltinContext(),
	}
}

// Eval checks one input in the session's context. Declarations extend the
// context for later inputs even when the trailing expression fails.
func (s *Session) Eval(input string) (*Result, error) {
	res, ctx, err := s.checker.run(input, s.ctx)
	s.ctx = ctx
	return res, err
}

// Report renders the single-line outcome of a check: TYPE: <classifier>,
// ERROR: <message>, or an empty string for declaration-only input.
func Report(res *Result, err error) string {
	if err != nil {
		return "ERROR: " + err.Error()
	}
	if res == nil || res.Classifier == nil {
		return ""
	}
	return "TYPE: " + res.Classifier.String()
}
