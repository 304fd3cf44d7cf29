package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	g := NewUUIDGenerator()

	first, err := g.NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected uuid, got %q: %v", first, err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected version 7, got %d", parsed.Version())
	}

	second, _ := g.NewID()
	if first == second {
		t.Fatalf("expected distinct ids")
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"":                      false,
		"abc-123_DEF.4":         true,
		"has space":             false,
		"newline\n":             false,
		strings.Repeat("a", 64): true,
		strings.Repeat("a", 65): false,
	}
	for raw, want := range cases {
		if got := Valid(raw); got != want {
			t.Fatalf("Valid(%q) = %v, want %v", raw, got, want)
		}
	}
}
