// Package term defines the syntactic category shared by terms and types in
// the depc calculus. A type is just a term classifying another term, so the
// seven variants below double as both.
package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is the closed set of term variants. Every variant implements the
// unexported marker so infer and unify can switch exhaustively over it.
type Term interface {
	fmt.Stringer
	term()
}

// Variable represents a term variable (e.g. x, t1).
type Variable struct {
	Name string
}

func (t *Variable) term() {}

func (t *Variable) String() string {
	return t.Name
}

// Constructor represents a named constructor applied to ordered arguments.
// "->" is an ordinary constructor, special-cased only for display.
type Constructor struct {
	Name string
	Args []Term
}

func (t *Constructor) term() {}

func (t *Constructor) String() string {
	if t.Name == "->" && len(t.Args) == 2 {
		return fmt.Sprintf("%s -> %s", parenIfSpaced(t.Args[0].String()), parenIfSpaced(t.Args[1].String()))
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	for _, a := range t.Args {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	return sb.String()
}

// DependantType represents a pi introduction: a classifier whose body may
// reference the bound parameter. The same variant serves both the surface
// type form (x : T) -> B and the dependant abstraction |x: t. b.
type DependantType struct {
	Param      string
	Classifier Term
	Body       Term
}

func (t *DependantType) term() {}

func (t *DependantType) String() string {
	return fmt.Sprintf("(%s : %s) -> %s", t.Param, t.Classifier, t.Body)
}

// Nat represents a non-negative integer literal. Its classifier is always
// Constructor("Nat").
type Nat struct {
	Value int
}

func (t *Nat) term() {}

func (t *Nat) String() string {
	return strconv.Itoa(t.Value)
}

// Abstraction represents a function value \param: classifier. body.
type Abstraction struct {
	Param      string
	Classifier Term
	Body       Term
}

func (t *Abstraction) term() {}

func (t *Abstraction) String() string {
	return fmt.Sprintf("\\%s: %s. %s", t.Param, t.Classifier, t.Body)
}

// Application represents applying Func to Arg.
type Application struct {
	Func Term
	Arg  Term
}

func (t *Application) term() {}

func (t *Application) String() string {
	return fmt.Sprintf("%s %s", t.Func, parenIfSpaced(t.Arg.String()))
}

// WildCard matches anything during unification and is classified by a fresh
// unconstrained variable.
type WildCard struct{}

func (t *WildCard) term() {}

func (t *WildCard) String() string {
	return "?"
}

// Arrow builds the "->" constructor over from and to.
func Arrow(from, to Term) *Constructor {
	return &Constructor{Name: "->", Args: []Term{from, to}}
}

func parenIfSpaced(s string) string {
	if strings.Contains(s, " ") {
		return "(" + s + ")"
	}
	return s
}
