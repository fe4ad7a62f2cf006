package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	truthtable "github.com/Usoy404/TruthTable-Generator"
)

const (
	appName     = "truthtable"
	historyFile = ".truthtable_history"
	promptMain  = ">> "
)

var banner = fmt.Sprintf("truthtable %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", truthtable.Version)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "expr":
		os.Exit(cmdExpr(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(truthtable.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`truthtable %s

Usage:
  %s expr [flags] "<expression>"    Print the truth table for one expression.
  %s repl [flags]                   Start the interactive REPL.
  %s version                        Print the version.

Flags (expr and repl):
  -steps        show a column per sub-expression
  -order string row ordering: "f" (false first, default) or "t" (true first)
  -binary       print 1/0 instead of T/F
  -index        show a row-index column
  -max int      variable-count limit (default %d)

Operators: & | ^ ! ~ -> => <-> <=>  ∧ ∨ ⊕ ¬ → ↔  and or xor not implies iff
Constants: true t 1 false f 0 (case-insensitive)

`, truthtable.Version, appName, appName, appName, truthtable.DefaultMaxVariables)
}

type tableFlags struct {
	opts  truthtable.Options
	ropts truthtable.RenderOptions
}

func parseTableFlags(name string, args []string) (tableFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	steps := fs.Bool("steps", false, "show a column per sub-expression")
	order := fs.String("order", "f", `row ordering: "f" or "t"`)
	binary := fs.Bool("binary", false, "print 1/0 instead of T/F")
	index := fs.Bool("index", false, "show a row-index column")
	max := fs.Int("max", truthtable.DefaultMaxVariables, "variable-count limit")
	if err := fs.Parse(args); err != nil {
		return tableFlags{}, nil, err
	}

	var tf tableFlags
	tf.opts.Steps = *steps
	tf.opts.MaxVariables = *max
	tf.ropts.Binary = *binary
	tf.ropts.ShowIndex = *index
	switch strings.ToLower(*order) {
	case "f", "":
		tf.opts.Order = truthtable.OrderFalseFirst
	case "t":
		tf.opts.Order = truthtable.OrderTrueFirst
	default:
		return tableFlags{}, nil, fmt.Errorf("invalid -order %q (want \"f\" or \"t\")", *order)
	}
	return tf, fs.Args(), nil
}

// runExpression generates and prints one table. Errors come back already
// wrapped with the caret snippet.
func runExpression(input string, tf tableFlags) error {
	tbl, err := truthtable.Generate(input, tf.opts)
	if err != nil {
		return truthtable.WrapErrorWithInput(err, input)
	}
	fmt.Print(truthtable.RenderText(tbl, tf.ropts))
	return nil
}

func cmdExpr(args []string) int {
	tf, rest, err := parseTableFlags("expr", args)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 2
	}
	if len(rest) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s expr [flags] \"<expression>\"\n", appName)
		return 2
	}

	input := strings.Join(rest, " ")
	if err := runExpression(input, tf); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	return 0
}

func cmdRepl(args []string) int {
	tf, _, err := parseTableFlags("repl", args)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 2
	}

	fmt.Println(banner)

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

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, ":") {
			switch strings.ToLower(input) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		// Every submission is re-tokenized and re-parsed from scratch.
		if err := runExpression(input, tf); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		ln.AppendHistory(input)
	}
}
