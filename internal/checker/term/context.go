package term

import (
	"fmt"
	"sort"
	"strings"
)

// Context maps in-scope names to their classifiers.
type Context map[string]Term

// NewBuiltinContext returns a context seeded with the four built-in
// bindings: Nat and Bool classified by the Type sentinel, true and false
// classified by Bool.
func NewBuiltinContext() Context {
	return Context{
		"Nat":   &Constructor{Name: "Type"},
		"Bool":  &Constructor{Name: "Type"},
		"true":  &Constructor{Name: "Bool"},
		"false": &Constructor{Name: "Bool"},
	}
}

// Lookup returns the classifier bound to name, if any.
func (c Context) Lookup(name string) (Term, bool) {
	t, ok := c[name]
	return t, ok
}

// Extend returns a copy of c with one extra binding. The receiver is never
// mutated, so sibling inference branches cannot see each other's bindings.
func (c Context) Extend(name string, classifier Term) Context {
	res := make(Context, len(c)+1)
	for k, v := range c {
		res[k] = v
	}
	res[name] = classifier
	return res
}

func (c Context) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("T(")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s |-> %s", k, c[k]))
	}
	sb.WriteString(")")
	return sb.String()
}
