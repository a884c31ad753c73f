package transform

import (
	"testing"

	"martianoff/depc/internal/checker/term"
	"martianoff/depc/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, input string) parser.Node {
	t.Helper()
	file, err := parser.NewParser().Parse(input)
	require.NoError(t, err)
	require.NotNil(t, file.Expr)
	return file.Expr
}

func TestTransform(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		name  string
		input string
		want  term.Term
	}{
		{
			name:  "lowercase name becomes variable",
			input: `x`,
			want:  &term.Variable{Name: "x"},
		},
		{
			name:  "capitalized name becomes constructor",
			input: `Nat`,
			want:  &term.Constructor{Name: "Nat"},
		},
		{
			name:  "literal",
			input: `5`,
			want:  &term.Nat{Value: 5},
		},
		{
			name:  "wildcard",
			input: `?`,
			want:  &term.WildCard{},
		},
		{
			name:  "constructor application folds into arguments",
			input: `List Nat`,
			want: &term.Constructor{Name: "List", Args: []term.Term{
				&term.Constructor{Name: "Nat"},
			}},
		},
		{
			name:  "curried constructor application folds fully",
			input: `Pair Nat Bool`,
			want: &term.Constructor{Name: "Pair", Args: []term.Term{
				&term.Constructor{Name: "Nat"},
				&term.Constructor{Name: "Bool"},
			}},
		},
		{
			name:  "variable head stays an application",
			input: `f x`,
			want: &term.Application{
				Func: &term.Variable{Name: "f"},
				Arg:  &term.Variable{Name: "x"},
			},
		},
		{
			name:  "arrow becomes the arrow constructor",
			input: `Nat -> Bool`,
			want: term.Arrow(
				&term.Constructor{Name: "Nat"},
				&term.Constructor{Name: "Bool"},
			),
		},
		{
			name:  "abstraction",
			input: `\x: Nat. x`,
			want: &term.Abstraction{
				Param:      "x",
				Classifier: &term.Constructor{Name: "Nat"},
				Body:       &term.Variable{Name: "x"},
			},
		},
		{
			name:  "dependant abstraction",
			input: `|x: 5. x`,
			want: &term.DependantType{
				Param:      "x",
				Classifier: &term.Nat{Value: 5},
				Body:       &term.Variable{Name: "x"},
			},
		},
		{
			name:  "dependant type",
			input: `(x : Nat) -> Nat`,
			want: &term.DependantType{
				Param:      "x",
				Classifier: &term.Constructor{Name: "Nat"},
				Body:       &term.Constructor{Name: "Nat"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Transform(parseExpr(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Both surface binder forms map onto the same dependant-type variant.
func TestTransformBinderFormsCoincide(t *testing.T) {
	tr := NewTransformer()

	fromAbs, err := tr.Transform(parseExpr(t, `|x: Nat. x`))
	require.NoError(t, err)
	fromType, err := tr.Transform(parseExpr(t, `(x : Nat) -> x`))
	require.NoError(t, err)

	assert.Equal(t, fromType, fromAbs)
}
