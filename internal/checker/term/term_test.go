package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendering(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want string
	}{
		{
			name: "variable",
			term: &Variable{Name: "x"},
			want: "x",
		},
		{
			name: "bare constructor",
			term: &Constructor{Name: "Nat"},
			want: "Nat",
		},
		{
			name: "constructor with arguments",
			term: &Constructor{Name: "List", Args: []Term{&Constructor{Name: "Nat"}}},
			want: "List Nat",
		},
		{
			name: "arrow renders infix",
			term: Arrow(&Constructor{Name: "Nat"}, &Constructor{Name: "Bool"}),
			want: "Nat -> Bool",
		},
		{
			name: "arrow parenthesizes spaced sides",
			term: Arrow(
				Arrow(&Constructor{Name: "Nat"}, &Constructor{Name: "Bool"}),
				&Constructor{Name: "List", Args: []Term{&Constructor{Name: "Nat"}}},
			),
			want: "(Nat -> Bool) -> (List Nat)",
		},
		{
			name: "literal",
			term: &Nat{Value: 5},
			want: "5",
		},
		{
			name: "application",
			term: &Application{Func: &Variable{Name: "f"}, Arg: &Variable{Name: "x"}},
			want: "f x",
		},
		{
			name: "application keeps left side bare",
			term: &Application{
				Func: &Application{Func: &Variable{Name: "f"}, Arg: &Variable{Name: "x"}},
				Arg:  &Variable{Name: "y"},
			},
			want: "f x y",
		},
		{
			name: "application parenthesizes spaced argument",
			term: &Application{
				Func: &Variable{Name: "f"},
				Arg:  &Application{Func: &Variable{Name: "g"}, Arg: &Variable{Name: "x"}},
			},
			want: "f (g x)",
		},
		{
			name: "abstraction",
			term: &Abstraction{
				Param:      "x",
				Classifier: &Constructor{Name: "Nat"},
				Body:       &Variable{Name: "x"},
			},
			want: "\\x: Nat. x",
		},
		{
			name: "dependant type",
			term: &DependantType{
				Param:      "x",
				Classifier: &Constructor{Name: "Nat"},
				Body:       &Constructor{Name: "Nat"},
			},
			want: "(x : Nat) -> Nat",
		},
		{
			name: "wildcard",
			term: &WildCard{},
			want: "?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.String())
		})
	}
}
