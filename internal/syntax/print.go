package syntax

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes the token/lexeme pairs for toks to w, one token per line:
// "<kind> <lexeme>" for identifiers and keywords, "<kind>" otherwise.
// The $ sentinel is not written.
func Dump(w io.Writer, toks []Token) error {
	bw := bufio.NewWriter(w)
	for _, t := range toks {
		if t.Kind == EOF {
			continue
		}
		if t.Kind.HasLexeme() {
			fmt.Fprintf(bw, "%d %s\n", t.Kind, t.Lit)
		} else {
			fmt.Fprintf(bw, "%d\n", t.Kind)
		}
	}
	return bw.Flush()
}

// Fprint writes a readable listing of toks to w, one token per line with its
// source line.
func Fprint(w io.Writer, toks []Token) error {
	bw := bufio.NewWriter(w)
	for _, t := range toks {
		fmt.Fprintf(bw, "%4d  %s\n", t.Line, t)
	}
	return bw.Flush()
}
