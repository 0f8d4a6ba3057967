package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/you-not-fish/ezsharp/internal/compiler"
)

const (
	historyFile = ".ezsharp_history"
	promptMain  = "ez> "
	promptCont  = "... "
)

// runRepl reads programs interactively. Lines are collected until the text
// ends with the terminating '.', then the program is compiled and its
// diagnostics printed.
func runRepl(conf *compiler.Config) int {
	fmt.Printf("EZ# %s. End a program with '.', :quit to exit.\n", Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

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

	for {
		src, ok := readProgram(ln)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(src)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		checkSnippet(os.Stdout, src, conf)
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readProgram prompts until a complete program or a command has been read.
// It reports false at end of input.
func readProgram(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if b.Len() == len(line) && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return src, true
		}
		if programComplete(src) {
			return src, true
		}
	}
}

// programComplete reports whether src ends with the program terminator.
func programComplete(src string) bool {
	return strings.HasSuffix(strings.TrimSpace(src), ".")
}

// checkSnippet compiles src and writes its diagnostics to w. It reports
// whether the program was free of errors.
func checkSnippet(w io.Writer, src string, conf *compiler.Config) bool {
	res, err := compiler.Compile(strings.NewReader(src), conf)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return false
	}
	for _, group := range [][]string{res.LexErrors, res.SyntaxErrors, res.SemanticErrors} {
		for _, e := range group {
			fmt.Fprintln(w, e)
		}
	}
	if res.HadErrors() {
		return false
	}
	fmt.Fprintf(w, "ok: %d tokens, identifiers: %s\n", len(res.Tokens)-1, strings.Join(res.Identifiers, " "))
	for _, s := range res.Scopes {
		fmt.Fprint(w, s)
	}
	return true
}
