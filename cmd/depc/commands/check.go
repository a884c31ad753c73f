package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"martianoff/depc/depcerr"
	"martianoff/depc/internal/checker"
	"martianoff/depc/internal/checker/decl"
	"martianoff/depc/internal/checker/transform"
	"martianoff/depc/internal/parser"
)

var (
	checkExpr  string
	checkSubst bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file.dep]",
	Short: "Infer the classifier of a depc source file",
	Long: `Infer the classifier of the expression in a depc source file.

The file may precede its final expression with type and let declarations.
The result is reported as a single line: TYPE: <classifier> on success,
ERROR: <message> otherwise.

Examples:
  depc check main.dep
  depc check -e '(\x: Nat. x) 5'
  depc check -e '|x: 5. x' --subst`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkExpr, "expr", "e", "", "Inline expression to check")
	checkCmd.Flags().BoolVar(&checkSubst, "subst", false, "Also print the final substitution")
}

// newChecker wires the default pipeline.
func newChecker() *checker.Checker {
	tr := transform.NewTransformer()
	return checker.NewChecker(parser.NewParser(), tr, decl.NewProcessor(tr))
}

func runCheck(cmd *cobra.Command, args []string) {
	src := checkExpr
	if src == "" {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: no input specified")
			fmt.Fprintln(os.Stderr, "Usage: depc check [file.dep] or depc check -e '<expr>'")
			os.Exit(1)
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read input file: %v\n", err)
			os.Exit(1)
		}
		src = string(content)
	}

	res, err := newChecker().Check(src)
	if err != nil {
		// A declared-vs-inferred mismatch means the trusted declarations
		// themselves are corrupt; abort with a distinct exit code.
		if de, ok := err.(depcerr.DepcError); ok && de.Type() == depcerr.TypeInvariant {
			fmt.Fprintln(os.Stderr, checker.Report(nil, err))
			os.Exit(2)
		}
		fmt.Println(checker.Report(nil, err))
		os.Exit(1)
	}

	if line := checker.Report(res, nil); line != "" {
		fmt.Println(line)
	}
	if checkSubst && res.Classifier != nil {
		fmt.Printf("SUBSTITUTION: %s\n", res.Substitution)
	}
}
