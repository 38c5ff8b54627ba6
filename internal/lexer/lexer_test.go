package lexer

import (
	"testing"

	"github.com/HF-Foundation/HF-CLI/internal/source"
	"github.com/HF-Foundation/HF-CLI/internal/token"
)

func tokenize(t *testing.T, text string) []token.Token {
	t.Helper()
	tokens, err := Tokenize(source.NewVirtual("test.hf", []byte(text)))
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", text, err)
	}
	return tokens
}

func TestTokenize_AllOps(t *testing.T) {
	tokens := tokenize(t, "+-<>[].,")
	want := []token.Kind{
		token.Inc, token.Dec, token.Left, token.Right,
		token.Open, token.Close, token.Out, token.In,
		token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Errorf("token[%d].Kind = %s, want %s", i, tokens[i].Kind, kind)
		}
	}
	for i, tok := range tokens[:8] {
		wantLoc := source.Location{Line: 0, Col: uint32(i)}
		if tok.Loc != wantLoc {
			t.Errorf("token[%d].Loc = %v, want %v", i, tok.Loc, wantLoc)
		}
		if tok.Span != source.Single(1) {
			t.Errorf("token[%d].Span = %v, want single column", i, tok.Span)
		}
	}
}

func TestTokenize_Locations(t *testing.T) {
	tokens := tokenize(t, "+\n  -\n>")
	want := []struct {
		kind token.Kind
		loc  source.Location
	}{
		{token.Inc, source.Location{Line: 0, Col: 0}},
		{token.Dec, source.Location{Line: 1, Col: 2}},
		{token.Right, source.Location{Line: 2, Col: 0}},
		{token.EOF, source.Location{Line: 2, Col: 1}},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Loc != w.loc {
			t.Errorf("token[%d] = %s at %v, want %s at %v",
				i, tokens[i].Kind, tokens[i].Loc, w.kind, w.loc)
		}
	}
}

func TestTokenize_CommentsAndWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "comment to end of line",
			input: "+ # moves nothing\n-",
			want:  []token.Kind{token.Inc, token.Dec, token.EOF},
		},
		{
			name:  "comment at end of input",
			input: "+ # trailing",
			want:  []token.Kind{token.Inc, token.EOF},
		},
		{
			name:  "comment only",
			input: "# nothing here\n",
			want:  []token.Kind{token.EOF},
		},
		{
			name:  "ops inside comment ignored",
			input: "#+++\n-",
			want:  []token.Kind{token.Dec, token.EOF},
		},
		{
			name:  "interleaved whitespace",
			input: " \t+\r\n ,\v.",
			want:  []token.Kind{token.Inc, token.In, token.Out, token.EOF},
		},
		{
			name:  "empty input",
			input: "",
			want:  []token.Kind{token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenize(t, tt.input)
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.want))
			}
			for i, kind := range tt.want {
				if tokens[i].Kind != kind {
					t.Errorf("token[%d].Kind = %s, want %s", i, tokens[i].Kind, kind)
				}
			}
		})
	}
}

func TestTokenize_UnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCh   rune
		wantLine uint32
		wantCol  uint32
	}{
		{
			name:     "letter at start",
			input:    "x",
			wantCh:   'x',
			wantLine: 0,
			wantCol:  0,
		},
		{
			name:     "symbol after ops",
			input:    "++%",
			wantCh:   '%',
			wantLine: 0,
			wantCol:  2,
		},
		{
			name:     "on a later line",
			input:    "+\n- !",
			wantCh:   '!',
			wantLine: 1,
			wantCol:  2,
		},
		{
			name:     "comment hides rest of line",
			input:    "# x\n;",
			wantCh:   ';',
			wantLine: 1,
			wantCol:  0,
		},
		{
			name:     "non-ascii rune",
			input:    "+é",
			wantCh:   'é',
			wantLine: 0,
			wantCol:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(source.NewVirtual("test.hf", []byte(tt.input)))
			if err == nil {
				t.Fatalf("Tokenize(%q) expected error", tt.input)
			}
			if err.Char() != tt.wantCh {
				t.Errorf("Char() = %q, want %q", err.Char(), tt.wantCh)
			}
			loc := err.Location()
			if loc.Line != tt.wantLine || loc.Col != tt.wantCol {
				t.Errorf("Location() = %v, want %d:%d", loc, tt.wantLine, tt.wantCol)
			}
			if err.Span() != source.Single(1) {
				t.Errorf("Span() = %v, want single column", err.Span())
			}
		})
	}
}

func TestLexer_NextAfterEOF(t *testing.T) {
	lx := New(source.NewVirtual("test.hf", []byte("+")))
	if tok, err := lx.Next(); err != nil || tok.Kind != token.Inc {
		t.Fatalf("Next() = %v, %v", tok, err)
	}
	for i := 0; i < 3; i++ {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if tok.Kind != token.EOF {
			t.Errorf("Next() after end = %s, want eof", tok.Kind)
		}
	}
}
