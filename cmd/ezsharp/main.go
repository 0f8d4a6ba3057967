// Package main implements the EZ# compiler entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/you-not-fish/ezsharp/internal/compiler"
	"github.com/you-not-fish/ezsharp/internal/syntax"
)

// Compiler flags
var (
	tablePath    = flag.String("table", "lexer_transition.txt", "Transition table file")
	builtinTable = flag.Bool("builtin-table", false, "Use the built-in transition table")
	emitTable    = flag.Bool("emit-table", false, "Print the built-in transition table and exit")
	emitTokens   = flag.Bool("emit-tokens", false, "Output token stream")
	jsonTokens   = flag.Bool("json", false, "Output the token stream as JSON (with -emit-tokens)")
	outDir       = flag.String("outdir", ".", "Directory for the log files")
	maxScopes    = flag.Int("max-scopes", 2, "Maximum scope depth")
	maxEntries   = flag.Int("max-entries", 100, "Maximum entries per scope")
	maxTokens    = flag.Int("max-tokens", 0, "Maximum number of tokens (0 = unlimited)")
	bufSize      = flag.Int("bufsize", syntax.DefaultBufferSize, "Size of each input buffer half")
	repl         = flag.Bool("repl", false, "Start an interactive session")
	version      = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "EZ# Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: ezsharp [options] <file.ez>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("ezsharp version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *emitTable {
		os.Exit(runEmitTable())
	}

	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *repl {
		os.Exit(runRepl(conf))
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: ezsharp [options] <file.ez>")
		os.Exit(1)
	}

	filename := args[0]

	if *emitTokens {
		os.Exit(runEmitTokens(filename, conf, *jsonTokens))
	}

	os.Exit(runCompile(filename, conf, *outDir))
}

// loadConfig builds the compiler configuration from the flags.
func loadConfig() (*compiler.Config, error) {
	conf := &compiler.Config{
		BufferSize:    *bufSize,
		MaxTokens:     *maxTokens,
		MaxScopeDepth: *maxScopes,
		MaxEntries:    *maxEntries,
	}
	if *builtinTable {
		return conf, nil
	}
	tbl, err := compiler.LoadTableFile(*tablePath)
	if err != nil {
		return nil, err
	}
	conf.Table = tbl
	return conf, nil
}

// runCompile compiles filename, writes the logs into dir and reports a
// summary. It fails if the front end recorded any error.
func runCompile(filename string, conf *compiler.Config, dir string) int {
	res, err := compiler.CompileFile(filename, conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if err := res.WriteLogs(dir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	printDiagnostics(res)

	if res.HadErrors() {
		fmt.Fprintf(os.Stderr, "%s: %d lexical, %d syntax, %d semantic errors; code generation skipped\n",
			filename, len(res.LexErrors), len(res.SyntaxErrors), len(res.SemanticErrors))
		return 1
	}
	fmt.Printf("%s: no errors (%d tokens, %d identifiers)\n", filename, len(res.Tokens)-1, len(res.Identifiers))
	return 0
}

// printDiagnostics writes every recorded error to stderr, grouped by phase.
func printDiagnostics(res *compiler.Result) {
	for _, group := range [][]string{res.LexErrors, res.SyntaxErrors, res.SemanticErrors} {
		for _, e := range group {
			fmt.Fprintln(os.Stderr, e)
		}
	}
}

// runEmitTokens lexes filename and prints the token stream.
func runEmitTokens(filename string, conf *compiler.Config, asJSON bool) int {
	res, err := compiler.CompileFile(filename, conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if asJSON {
		err = syntax.FprintJSON(os.Stdout, res.Tokens)
	} else {
		err = syntax.Fprint(os.Stdout, res.Tokens)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	for _, e := range res.LexErrors {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(res.LexErrors) > 0 {
		return 1
	}
	return 0
}

// runEmitTable prints the built-in transition table.
func runEmitTable() int {
	if _, err := syntax.DefaultTable().WriteTo(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
