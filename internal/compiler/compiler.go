// Package compiler runs the EZ# front end: lexing, then parsing with
// semantic analysis, and writes the diagnostic logs.
package compiler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/you-not-fish/ezsharp/internal/parser"
	"github.com/you-not-fish/ezsharp/internal/report"
	"github.com/you-not-fish/ezsharp/internal/syntax"
	"github.com/you-not-fish/ezsharp/internal/types"
)

// Names of the files written by WriteLogs.
const (
	LexErrorsFile      = "lexical_analysis_errors.txt"
	TokensFile         = "token_lexeme_pairs.txt"
	SyntaxErrorsFile   = "syntax_analysis_errors.txt"
	SemanticErrorsFile = "semantic_errors.txt"
	SymbolTableFile    = "symbol_table.txt"
)

// Config configures a compilation. The zero value uses the built-in
// transition table and default limits.
type Config struct {
	Table         *syntax.Table // nil selects syntax.DefaultTable
	BufferSize    int           // size of each input buffer half
	MaxTokens     int           // 0 means unlimited
	MaxScopeDepth int
	MaxEntries    int
}

// Result holds the output of the front end.
type Result struct {
	Tokens []syntax.Token // terminated by $

	LexErrors      []string
	SyntaxErrors   []string
	SemanticErrors []string

	Identifiers []string
	Scopes      []*types.Scope
	AtEnd       bool // parsing stopped on $
}

// HadErrors reports whether any lexical, syntax or semantic error was
// recorded. Code generation must be skipped when it is true.
func (r *Result) HadErrors() bool {
	return len(r.LexErrors)+len(r.SyntaxErrors)+len(r.SemanticErrors) > 0
}

// Compile runs the front end over src. The error is non-nil only if the
// input could not be read; diagnostics are returned in the Result.
func Compile(src io.Reader, conf *Config) (*Result, error) {
	if conf == nil {
		conf = &Config{}
	}
	res := &Result{}

	lexErrh := func(pos syntax.Pos, msg string) {
		res.LexErrors = append(res.LexErrors, "Lexical Error: "+msg)
	}
	l := syntax.NewLexer(src, conf.Table, lexErrh)
	if conf.BufferSize > 0 {
		l.SetBufferSize(conf.BufferSize)
	}
	l.SetMaxTokens(conf.MaxTokens)
	toks, err := l.Lex()
	if err != nil {
		return nil, err
	}
	res.Tokens = syntax.Terminate(toks)

	pconf := &parser.Config{
		Error: func(err *parser.Error) {
			if err.Semantic {
				res.SemanticErrors = append(res.SemanticErrors, err.Error())
			} else {
				res.SyntaxErrors = append(res.SyntaxErrors, err.Error())
			}
		},
		MaxScopeDepth: conf.MaxScopeDepth,
		MaxEntries:    conf.MaxEntries,
	}
	info := &parser.Info{}
	parser.Parse(res.Tokens, pconf, info)

	res.Identifiers = info.Identifiers
	res.Scopes = info.Scopes
	res.AtEnd = info.AtEnd
	return res, nil
}

// CompileFile opens path and compiles it.
func CompileFile(path string, conf *Config) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open source: %w", err)
	}
	defer f.Close()
	return Compile(f, conf)
}

// LoadTableFile reads a transition table file.
func LoadTableFile(path string) (*syntax.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open transition table: %w", err)
	}
	defer f.Close()
	tbl, err := syntax.LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// WriteLogs writes the three error logs, the token/lexeme dump and the
// symbol table dump into dir, replacing earlier contents.
func (r *Result) WriteLogs(dir string) error {
	logs := []struct {
		name  string
		lines []string
	}{
		{LexErrorsFile, r.LexErrors},
		{SyntaxErrorsFile, r.SyntaxErrors},
		{SemanticErrorsFile, r.SemanticErrors},
		{SymbolTableFile, r.Identifiers},
	}
	var errs []error
	for _, lg := range logs {
		errs = append(errs, report.WriteFile(filepath.Join(dir, lg.name), lg.lines))
	}
	errs = append(errs, r.writeTokens(filepath.Join(dir, TokensFile)))
	return errors.Join(errs...)
}

func (r *Result) writeTokens(path string) error {
	s, err := report.Create(path, 0)
	if err != nil {
		return err
	}
	if err := syntax.Dump(s.Writer(), r.Tokens); err != nil {
		s.Close()
		return err
	}
	return s.Close()
}
