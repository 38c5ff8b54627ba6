package token

import (
	"testing"
)

func TestKind_RoundTrip(t *testing.T) {
	ops := []Kind{Inc, Dec, Left, Right, Open, Close, Out, In}
	seen := make(map[rune]bool, len(ops))
	for _, k := range ops {
		r := k.Rune()
		if r == 0 {
			t.Errorf("%s.Rune() = 0, want an operation character", k)
		}
		if seen[r] {
			t.Errorf("duplicate rune %q", r)
		}
		seen[r] = true
	}
	if EOF.Rune() != 0 {
		t.Errorf("EOF.Rune() = %q, want 0", EOF.Rune())
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{EOF, "eof"},
		{Inc, "inc"},
		{Dec, "dec"},
		{Left, "left"},
		{Right, "right"},
		{Open, "open"},
		{Close, "close"},
		{Out, "out"},
		{In, "in"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestToken_IsOp(t *testing.T) {
	if (Token{Kind: EOF}).IsOp() {
		t.Error("EOF token reported as operation")
	}
	if !(Token{Kind: Inc}).IsOp() {
		t.Error("Inc token not reported as operation")
	}
}
