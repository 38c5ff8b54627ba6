package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/HF-Foundation/HF-CLI/internal/token"
)

// TokenOutput is the JSON shape of one dumped token.
type TokenOutput struct {
	Kind string `json:"kind"`
	Char string `json:"char,omitempty"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// FormatTokensPretty dumps tokens one per line for human reading.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-6s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if r := tok.Kind.Rune(); r != 0 {
			if _, err := fmt.Fprintf(w, " %q", r); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d\n", tok.Loc.Line+1, tok.Loc.Col+1); err != nil {
			return err
		}
	}
	return nil
}

// TokensOutput converts a token sequence to its JSON shape.
func TokensOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Line: tok.Loc.Line,
			Col:  tok.Loc.Col,
		}
		if r := tok.Kind.Rune(); r != 0 {
			out.Char = string(r)
		}
		output = append(output, out)
	}
	return output
}

// FormatTokensJSON dumps tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(TokensOutput(tokens))
}
