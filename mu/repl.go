package mu

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	defaultPrompt = "90> "
	contPrompt    = "... "
	historyFile   = ".mu_history"
)

// ReadEvalPrintLoop reads expressions with line editing, evaluates them
// and prints the results. Errors are printed and the loop goes on.
// It returns when the input ends. An empty histPath disables history.
func (in *Interpreter) ReadEvalPrintLoop(prompt, histPath string) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		src, ok := readExpression(ln, prompt)
		if !ok {
			fmt.Println()
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		x, err := in.Eval(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(Str(x))
	}
}

// readExpression reads lines until they make up complete expressions.
// It returns false at the end of input.
func readExpression(ln *liner.State, prompt string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = contPrompt
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true // Ctrl-C drops the pending input.
		}
		if err != nil { // io.EOF on Ctrl-D or the end of piped input
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if _, err := Parse(src); !IsIncomplete(err) {
			return src, true
		}
	}
}

// ReadEvalLoop evaluates all expressions from input.
// It returns the last value, or stops at the first error.
func (in *Interpreter) ReadEvalLoop(input io.Reader) (Any, error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}
	return in.Eval(string(src))
}

// Main runs each file named in args after the flags as a script.
// It ignores args[0].
// If there is no file name or some name is "-", it begins REPL.
func Main(args []string) int {
	fs := flag.NewFlagSet(filepath.Base(args[0]), flag.ContinueOnError)
	maxDepth := fs.Int("max-depth", DefaultMaxDepth, "limit of nested evaluations")
	prompt := fs.String("prompt", defaultPrompt, "REPL prompt")
	histPath := fs.String("history", defaultHistoryPath(), "REPL history file; empty disables history")
	version := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}
	if *version {
		fmt.Printf("mu %.2f\n", Version)
		return 0
	}

	in := NewInterpreter(WithMaxDepth(*maxDepth))
	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	var result Any
	for _, fileName := range files {
		if fileName == "-" {
			in.ReadEvalPrintLoop(*prompt, *histPath)
			fmt.Println("Goodbye")
			result = nil
			continue
		}
		file, err := os.Open(fileName)
		if err == nil {
			result, err = in.ReadEvalLoop(file)
			file.Close()
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if result != nil {
		fmt.Println(Str(result))
	}
	return 0
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
