package infra

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestSQLRunnerRejectsUnmarkedQuery(t *testing.T) {
	r := NewSQLRunner(nil, zerolog.Nop())

	if _, err := r.Exec(context.Background(), "select 1"); err == nil {
		t.Fatal("expected marker error for unmarked query")
	}
	if _, err := r.Query(context.Background(), "--sql not-a-uuid\nselect 1"); err == nil {
		t.Fatal("expected marker error for malformed marker")
	}
	if err := r.QueryRow(context.Background(), "select 1").Scan(); err == nil {
		t.Fatal("expected marker error surfaced through Scan")
	}
}

func TestExtractMarker(t *testing.T) {
	marker, trimmed, err := extractMarker("--sql fdd8c0e3-3e0b-41ef-8654-1aab5f8d20ed\nselect 1;")
	if err != nil {
		t.Fatalf("extractMarker: %v", err)
	}
	if marker != "fdd8c0e3-3e0b-41ef-8654-1aab5f8d20ed" {
		t.Fatalf("marker mismatch: %q", marker)
	}
	if trimmed != "select 1;" {
		t.Fatalf("trimmed query mismatch: %q", trimmed)
	}
}
