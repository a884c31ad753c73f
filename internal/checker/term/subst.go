package term

import (
	"fmt"
	"sort"
	"strings"
)

// Substitution is a finite mapping from variable names to terms. The empty
// substitution is the identity for Apply and the unit for Compose.
type Substitution map[string]Term

// Apply rewrites every variable in t that has a mapping. The rewrite is
// structural and not capture-avoiding: binder scope is ignored.
func (s Substitution) Apply(t Term) Term {
	switch x := t.(type) {
	case *Variable:
		if next, ok := s[x.Name]; ok {
			return next
		}
		return x
	case *Constructor:
		var args []Term
		for _, a := range x.Args {
			args = append(args, s.Apply(a))
		}
		return &Constructor{Name: x.Name, Args: args}
	case *DependantType:
		return &DependantType{
			Param:      x.Param,
			Classifier: s.Apply(x.Classifier),
			Body:       s.Apply(x.Body),
		}
	case *Abstraction:
		return &Abstraction{
			Param:      x.Param,
			Classifier: s.Apply(x.Classifier),
			Body:       s.Apply(x.Body),
		}
	case *Application:
		return &Application{
			Func: s.Apply(x.Func),
			Arg:  s.Apply(x.Arg),
		}
	default:
		// Nat and WildCard carry no variables.
		return t
	}
}

// Compose returns s ∘ other: s is applied to every value in other, then
// every entry of s not shadowed by other is added. Compose(s2, s1).Apply(t)
// equals s2.Apply(s1.Apply(t)).
func (s Substitution) Compose(other Substitution) Substitution {
	res := make(Substitution, len(s)+len(other))
	for k, v := range other {
		res[k] = s.Apply(v)
	}
	for k, v := range s {
		if _, ok := res[k]; !ok {
			res[k] = v
		}
	}
	return res
}

func (s Substitution) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("S(")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s |-> %s", k, s[k]))
	}
	sb.WriteString(")")
	return sb.String()
}
