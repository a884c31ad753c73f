package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"martianoff/depc/internal/checker"
	"martianoff/depc/internal/checker/decl"
	"martianoff/depc/internal/checker/transform"
	"martianoff/depc/internal/parser"
)

const historyFile = ".depc_history"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive depc session",
	Long: `Start an interactive session. Each line is checked in a context that
persists across lines, so type and let declarations stay in scope.

Type :quit to exit.`,
	Args: cobra.NoArgs,
	Run:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) {
	fmt.Println("depc interactive session. Type :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	tr := transform.NewTransformer()
	session := checker.NewSession(parser.NewParser(), tr, decl.NewProcessor(tr))

	for {
		line, err := ln.Prompt("depc> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, ":") {
			switch strings.ToLower(input) {
			case ":quit":
				return
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		res, err := session.Eval(input)
		if out := checker.Report(res, err); out != "" {
			fmt.Println(out)
		}
		ln.AppendHistory(input)
	}
}
