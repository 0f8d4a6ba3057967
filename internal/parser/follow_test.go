package parser

import (
	"testing"

	"github.com/you-not-fish/ezsharp/internal/syntax"
)

func TestFollows(t *testing.T) {
	kw := func(w string) syntax.Token { return syntax.Token{Kind: syntax.Keyword, Lit: w} }
	tok := func(k syntax.Kind) syntax.Token { return syntax.Token{Kind: k} }

	tests := []struct {
		nt   nonterminal
		tok  syntax.Token
		want bool
	}{
		{ntProg, tok(syntax.Dot), false},

		{ntFns, tok(syntax.Semi), true},
		{ntFns, tok(syntax.ID), true},
		{ntFns, kw("def"), true},
		{ntFns, kw("int"), true},
		{ntFns, kw("fed"), false},

		{ntFn, tok(syntax.Semi), true},
		{ntFn, kw("fed"), false},

		{ntParams, tok(syntax.Rparen), true},
		{ntParams, tok(syntax.Comma), false},

		{ntFname, tok(syntax.Lparen), true},

		{ntDecl, tok(syntax.Semi), true},
		{ntDecl, tok(syntax.ID), false},
		{ntDecl, kw("double"), true},
		{ntDecl, kw("return"), true},

		{ntType, tok(syntax.ID), true},
		{ntType, tok(syntax.Int), false},

		{ntStmt, kw("od"), true},
		{ntStmt, kw("else"), true},
		{ntStmt, kw("then"), false},
		{ntStmt, tok(syntax.Dot), true},

		{ntFactor, tok(syntax.Geq), true},
		{ntFactor, tok(syntax.Rbrack), true},
		{ntFactor, tok(syntax.Mod), true},
		{ntFactor, kw("fi"), true},
		{ntFactor, tok(syntax.ID), false},
		{ntFactor, tok(syntax.Assign), false},

		{ntBfactor, kw("then"), true},
		{ntBfactor, kw("and"), true},
		{ntBfactor, tok(syntax.Rparen), false},

		{ntComp, tok(syntax.Double), true},
		{ntComp, tok(syntax.Lparen), true},
		{ntComp, tok(syntax.Semi), false},

		{ntVar, tok(syntax.Assign), true},
		{ntVar, tok(syntax.Rbrack), true},
		{ntVar, tok(syntax.Dot), false},
	}

	for _, tt := range tests {
		p := &parser{tok: tt.tok}
		if got := p.follows(tt.nt); got != tt.want {
			t.Errorf("follows(%s) on %s = %v, want %v", tt.nt, tt.tok, got, tt.want)
		}
	}
}

func TestSyncStopsAtFollow(t *testing.T) {
	toks := syntax.Terminate([]syntax.Token{
		{Kind: syntax.ID, Lit: "b"},
		{Kind: syntax.Int, Lit: "1"},
		{Kind: syntax.Semi, Lit: ";"},
		{Kind: syntax.ID, Lit: "c"},
	})
	p := &parser{toks: toks, tok: toks[0], info: &Info{}, seen: map[string]bool{}}

	p.sync(ntDecl)
	if p.tok.Kind != syntax.Semi {
		t.Fatalf("sync stopped on %s, want ;", p.tok)
	}
	// Already on a FOLLOW token: nothing is discarded.
	p.sync(ntDecl)
	if p.pos != 2 {
		t.Errorf("pos = %d, want 2", p.pos)
	}
	// Skipped identifiers are not recorded.
	if len(p.info.Identifiers) != 0 {
		t.Errorf("Identifiers = %v, want none", p.info.Identifiers)
	}

	p.sync(ntProg)
	if !p.atEnd() {
		t.Errorf("sync(prog) stopped on %s, want $", p.tok)
	}
}
