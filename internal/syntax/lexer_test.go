package syntax

import (
	"fmt"
	"strings"
	"testing"
)

type lexResult struct {
	toks []Token
	errs []string
}

func lex(t *testing.T, src string) lexResult {
	t.Helper()
	var res lexResult
	l := NewLexer(strings.NewReader(src), nil, func(pos Pos, msg string) {
		res.errs = append(res.errs, msg)
	})
	toks, err := l.Lex()
	if err != nil {
		t.Fatalf("Lex(%q): %v", src, err)
	}
	res.toks = toks
	return res
}

func tokenStrings(toks []Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.String()
	}
	return out
}

func TestLexTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"program", "int a; a = 3 + 4 .", "KEYWORD(int) ID(a) ; ID(a) = INT(3) + INT(4) ."},
		{"relational", "< <= > >= == <> =", "< <= > >= == <> ="},
		{"relational no space", "a<=b<>c", "ID(a) <= ID(b) <> ID(c)"},
		{"eq then assign", "===", "== ="},
		{"arith", "+-*/%", "+ - * / %"},
		{"punct", ",;()[].", ", ; ( ) [ ] ."},
		{"int", "0 42 007", "INT(0) INT(42) INT(007)"},
		{"double", "1.5 3.0e-2 2e10 1E+5 6.25E3", "DOUBLE(1.5) DOUBLE(3.0e-2) DOUBLE(2e10) DOUBLE(1E+5) DOUBLE(6.25E3)"},
		{"double then dot", "1.5.", "DOUBLE(1.5) ."},
		{"int then space dot", "3 .", "INT(3) ."},
		{"identifiers", "x x1 _y a_b Int", "ID(x) ID(x1) ID(_y) ID(a_b) ID(Int)"},
		{"keywords", "def fed if then else fi while do od", "KEYWORD(def) KEYWORD(fed) KEYWORD(if) KEYWORD(then) KEYWORD(else) KEYWORD(fi) KEYWORD(while) KEYWORD(do) KEYWORD(od)"},
		{"keyword prefix", "iff fedx int1", "ID(iff) ID(fedx) ID(int1)"},
		{"call", "f(a,b[1])", "ID(f) ( ID(a) , ID(b) [ INT(1) ] )"},
		{"trailing word flushed", "print x", "KEYWORD(print) ID(x)"},
		{"trailing number flushed", "a = 12", "ID(a) = INT(12)"},
		{"trailing partial number dropped", "a = 1e", "ID(a) ="},
		{"only whitespace", " \t\r\n ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := lex(t, tt.src)
			if len(res.errs) > 0 {
				t.Fatalf("unexpected errors: %v", res.errs)
			}
			got := strings.Join(tokenStrings(res.toks), " ")
			if got != tt.want {
				t.Errorf("tokens = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLexLines(t *testing.T) {
	res := lex(t, "int a;\n\n  a = 1\n.")
	wantLines := []int{1, 1, 1, 3, 3, 3, 4}
	if len(res.toks) != len(wantLines) {
		t.Fatalf("got %d tokens, want %d", len(res.toks), len(wantLines))
	}
	for i, tok := range res.toks {
		if tok.Line != wantLines[i] {
			t.Errorf("token %d (%s) line = %d, want %d", i, tok, tok.Line, wantLines[i])
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		toks string
		errs []string
	}{
		{
			name: "bad char between tokens",
			src:  "a @ b",
			toks: "ID(a) ID(b)",
			errs: []string{"Unexpected character '@' at line 1, column 3!"},
		},
		{
			name: "bad char ends a token",
			src:  "ab!c",
			toks: "ID(ab) ID(c)",
			errs: []string{"Unexpected character '!' at line 1, column 3!"},
		},
		{
			name: "valid char rescanned",
			src:  "3.x",
			toks: "ID(x)",
			errs: []string{"Unexpected character 'x' at line 1, column 3!"},
		},
		{
			name: "invalid char not rescanned",
			src:  "3.@ y",
			toks: "ID(y)",
			errs: []string{"Unexpected character '@' at line 1, column 3!"},
		},
		{
			name: "second line",
			src:  "a\n  #",
			toks: "ID(a)",
			errs: []string{"Unexpected character '#' at line 2, column 3!"},
		},
		{
			name: "control char escaped",
			src:  "a\x01b",
			toks: "ID(a) ID(b)",
			errs: []string{`Unexpected character '\x01' at line 1, column 2!`},
		},
		{
			name: "non-ASCII",
			src:  "é",
			toks: "",
			errs: []string{
				`Unexpected character '\xc3' at line 1, column 1!`,
				`Unexpected character '\xa9' at line 1, column 2!`,
			},
		},
		{
			name: "bad exponent",
			src:  "1e+;",
			toks: ";",
			errs: []string{"Unexpected character ';' at line 1, column 4!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := lex(t, tt.src)
			got := strings.Join(tokenStrings(res.toks), " ")
			if got != tt.toks {
				t.Errorf("tokens = %q, want %q", got, tt.toks)
			}
			if strings.Join(res.errs, "\n") != strings.Join(tt.errs, "\n") {
				t.Errorf("errors = %q, want %q", res.errs, tt.errs)
			}
		})
	}
}

func TestLexWhitespaceInsensitive(t *testing.T) {
	srcs := []string{
		"int a;a=3+4.",
		"int a ; a = 3 + 4 .",
		"int\ta;\t\ta  =   3\t+4 .",
	}
	var want string
	for i, src := range srcs {
		res := lex(t, src)
		got := strings.Join(tokenStrings(res.toks), " ")
		if i == 0 {
			want = got
			continue
		}
		if got != want {
			t.Errorf("%q lexed to %q, want %q", src, got, want)
		}
	}
}

func TestLexSmallBuffers(t *testing.T) {
	src := "def int gcd(int a, int b)\n  if (b == 0) then return a\n  else return gcd(b, a % b) fi\nfed;\nprint gcd(21, 15) ."
	want := lex(t, src).toks
	for _, size := range []int{2, 3, 5, 8, 13} {
		l := NewLexer(strings.NewReader(src), nil, nil)
		l.SetBufferSize(size)
		got, err := l.Lex()
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("size %d:\n got %v\nwant %v", size, got, want)
		}
		for i := range got {
			if got[i].Line != want[i].Line {
				t.Errorf("size %d: token %d line %d, want %d", size, i, got[i].Line, want[i].Line)
			}
		}
	}
}

func TestLexMaxTokens(t *testing.T) {
	var errs []string
	l := NewLexer(strings.NewReader("a b c d"), nil, func(pos Pos, msg string) {
		errs = append(errs, msg)
	})
	l.SetMaxTokens(2)
	toks, err := l.Lex()
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 {
		t.Errorf("got %d tokens, want 2", len(toks))
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "Token limit of 2") {
		t.Errorf("errors = %q, want one token limit error", errs)
	}
}

func TestLexReadError(t *testing.T) {
	l := NewLexer(&failingReader{data: "int a", err: fmt.Errorf("broken pipe")}, nil, nil)
	if _, err := l.Lex(); err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Errorf("Lex() error = %v, want read error", err)
	}
}

func TestLexCustomTable(t *testing.T) {
	// A table that only knows digits and spaces.
	tbl := &Table{rows: make([][NumCols]State, NumStates)}
	for s := range tbl.rows {
		for c := range tbl.rows[s] {
			tbl.rows[s][c] = StateError
		}
	}
	tbl.setFunc(StateStart, isDigit, StateInt)
	tbl.setFunc(StateInt, isDigit, StateInt)
	tbl.set(StateInt, ' ', StateStart)
	tbl.set(StateStart, ' ', StateStart)

	var errs []string
	l := NewLexer(strings.NewReader("12 34 x"), tbl, func(pos Pos, msg string) {
		errs = append(errs, msg)
	})
	toks, err := l.Lex()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(tokenStrings(toks), " "); got != "INT(12) INT(34)" {
		t.Errorf("tokens = %q", got)
	}
	if len(errs) != 1 {
		t.Errorf("errors = %q, want one", errs)
	}
}

func TestDump(t *testing.T) {
	toks := Terminate(lex(t, "int a; a = 3.5 .").toks)
	var sb strings.Builder
	if err := Dump(&sb, toks); err != nil {
		t.Fatal(err)
	}
	want := "22 int\n21 a\n10\n21 a\n12\n20\n11\n"
	if sb.String() != want {
		t.Errorf("Dump =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestFprintJSON(t *testing.T) {
	var sb strings.Builder
	if err := FprintJSON(&sb, lex(t, "x").toks); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{`"kind": 21`, `"name": "ID"`, `"lexeme": "x"`, `"line": 1`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}
