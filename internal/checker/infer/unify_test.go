package infer

import (
	"testing"

	"martianoff/depc/internal/checker/term"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func natC() *term.Constructor  { return &term.Constructor{Name: "Nat"} }
func boolC() *term.Constructor { return &term.Constructor{Name: "Bool"} }

func TestUnify(t *testing.T) {
	tests := []struct {
		name   string
		t1, t2 term.Term
		wantOK bool
	}{
		{
			name:   "wildcard left",
			t1:     &term.WildCard{},
			t2:     natC(),
			wantOK: true,
		},
		{
			name:   "wildcard right",
			t1:     natC(),
			t2:     &term.WildCard{},
			wantOK: true,
		},
		{
			name:   "equal variables",
			t1:     &term.Variable{Name: "a"},
			t2:     &term.Variable{Name: "a"},
			wantOK: true,
		},
		{
			name:   "variable binds against constructor",
			t1:     natC(),
			t2:     &term.Variable{Name: "a"},
			wantOK: true,
		},
		{
			name:   "variable on the left binds too",
			t1:     &term.Variable{Name: "a"},
			t2:     natC(),
			wantOK: true,
		},
		{
			name:   "matching constructors",
			t1:     &term.Constructor{Name: "List", Args: []term.Term{natC()}},
			t2:     &term.Constructor{Name: "List", Args: []term.Term{&term.Variable{Name: "a"}}},
			wantOK: true,
		},
		{
			name:   "constructor names differ",
			t1:     natC(),
			t2:     boolC(),
			wantOK: false,
		},
		{
			name:   "constructor arities differ",
			t1:     &term.Constructor{Name: "List", Args: []term.Term{natC()}},
			t2:     &term.Constructor{Name: "List"},
			wantOK: false,
		},
		{
			name:   "constructor argument mismatch fails fast",
			t1:     term.Arrow(natC(), natC()),
			t2:     term.Arrow(boolC(), &term.Variable{Name: "a"}),
			wantOK: false,
		},
		{
			name:   "equal literals",
			t1:     &term.Nat{Value: 3},
			t2:     &term.Nat{Value: 3},
			wantOK: true,
		},
		{
			name:   "unequal literals",
			t1:     &term.Nat{Value: 3},
			t2:     &term.Nat{Value: 4},
			wantOK: false,
		},
		{
			name: "dependant types",
			t1: &term.DependantType{
				Param:      "x",
				Classifier: natC(),
				Body:       &term.Variable{Name: "a"},
			},
			t2: &term.DependantType{
				Param:      "x",
				Classifier: natC(),
				Body:       boolC(),
			},
			wantOK: true,
		},
		{
			name: "dependant type classifier mismatch",
			t1: &term.DependantType{
				Param:      "x",
				Classifier: natC(),
				Body:       natC(),
			},
			t2: &term.DependantType{
				Param:      "x",
				Classifier: boolC(),
				Body:       natC(),
			},
			wantOK: false,
		},
		{
			name: "abstractions unify on bodies only",
			t1: &term.Abstraction{
				Param:      "x",
				Classifier: natC(),
				Body:       &term.Variable{Name: "y"},
			},
			t2: &term.Abstraction{
				Param:      "z",
				Classifier: boolC(),
				Body:       &term.Variable{Name: "y"},
			},
			wantOK: true,
		},
		{
			name: "abstraction bodies must unify",
			t1: &term.Abstraction{
				Param:      "x",
				Classifier: natC(),
				Body:       natC(),
			},
			t2: &term.Abstraction{
				Param:      "x",
				Classifier: natC(),
				Body:       boolC(),
			},
			wantOK: false,
		},
		{
			name: "applications",
			t1: &term.Application{
				Func: &term.Variable{Name: "f"},
				Arg:  natC(),
			},
			t2: &term.Application{
				Func: &term.Variable{Name: "f"},
				Arg:  &term.Variable{Name: "a"},
			},
			wantOK: true,
		},
		{
			name:   "mixed kinds fail",
			t1:     &term.Nat{Value: 1},
			t2:     natC(),
			wantOK: false,
		},
		{
			name: "literal against abstraction fails",
			t1:   &term.Nat{Value: 1},
			t2: &term.Abstraction{
				Param:      "x",
				Classifier: natC(),
				Body:       natC(),
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Unify(tt.t1, tt.t2)
			assert.Equal(t, tt.wantOK, ok)

			// Symmetry: swapping the operands never changes the outcome.
			_, ok2 := Unify(tt.t2, tt.t1)
			assert.Equal(t, ok, ok2, "unify is not symmetric for %s / %s", tt.t1, tt.t2)
		})
	}
}

// If a unifier exists, applying it makes both sides structurally equal.
// Wildcards and the body-only abstraction rule succeed without producing
// such a unifier, so they are not part of this property.
func TestUnifySoundness(t *testing.T) {
	pairs := []struct {
		name   string
		t1, t2 term.Term
	}{
		{
			name: "variable against constructor",
			t1:   natC(),
			t2:   &term.Variable{Name: "a"},
		},
		{
			name: "arrow with variables",
			t1:   term.Arrow(natC(), &term.Variable{Name: "b"}),
			t2:   term.Arrow(&term.Variable{Name: "a"}, boolC()),
		},
		{
			name: "repeated variable",
			t1: &term.Constructor{Name: "Pair", Args: []term.Term{
				&term.Variable{Name: "a"}, &term.Variable{Name: "a"},
			}},
			t2: &term.Constructor{Name: "Pair", Args: []term.Term{
				natC(), &term.Variable{Name: "b"},
			}},
		},
		{
			name: "application parts",
			t1: &term.Application{
				Func: &term.Variable{Name: "f"},
				Arg:  &term.Variable{Name: "a"},
			},
			t2: &term.Application{
				Func: &term.Variable{Name: "g"},
				Arg:  natC(),
			},
		},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Unify(tt.t1, tt.t2)
			require.True(t, ok)
			assert.Equal(t, s.Apply(tt.t1), s.Apply(tt.t2))
		})
	}
}

func TestUnifyBindsRightOperand(t *testing.T) {
	s, ok := Unify(natC(), &term.Variable{Name: "a"})
	require.True(t, ok)
	assert.Equal(t, "Nat", s["a"].String())

	// With the variable on the left the operands are swapped first, so the
	// binding lands on the same name.
	s, ok = Unify(&term.Variable{Name: "a"}, natC())
	require.True(t, ok)
	assert.Equal(t, "Nat", s["a"].String())
}

func TestUnifyAccumulatorThreadsBindings(t *testing.T) {
	t1 := &term.Constructor{Name: "Pair", Args: []term.Term{
		&term.Variable{Name: "a"}, &term.Variable{Name: "a"},
	}}
	t2 := &term.Constructor{Name: "Pair", Args: []term.Term{
		natC(), &term.Variable{Name: "b"},
	}}

	s, ok := Unify(t1, t2)
	require.True(t, ok)
	// The accumulated binding for a is applied to the later pair's result.
	assert.Equal(t, "Nat", s["a"].String())
	assert.Equal(t, "Nat", s["b"].String())
}

// The dependant-type rule takes the plain union of the two component
// substitutions, later entries overwriting earlier ones.
func TestUnifyDependantTypeUnion(t *testing.T) {
	t1 := &term.DependantType{
		Param:      "x",
		Classifier: natC(),
		Body:       boolC(),
	}
	t2 := &term.DependantType{
		Param:      "x",
		Classifier: &term.Variable{Name: "a"},
		Body:       &term.Variable{Name: "b"},
	}

	s, ok := Unify(t1, t2)
	require.True(t, ok)
	assert.Equal(t, "Nat", s["a"].String())
	assert.Equal(t, "Bool", s["b"].String())
}
