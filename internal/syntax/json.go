package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of toks to w.
func FprintJSON(w io.Writer, toks []Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(toks))
}

func toJSON(toks []Token) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(toks))
	for _, t := range toks {
		m := map[string]interface{}{
			"kind": int(t.Kind),
			"name": t.Kind.String(),
			"line": t.Line,
		}
		if t.Lit != "" {
			m["lexeme"] = t.Lit
		}
		out = append(out, m)
	}
	return out
}
