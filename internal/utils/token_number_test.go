package utils

import (
	"regexp"
	"testing"
)

var tokenNumberPattern = regexp.MustCompile(`^MF-\d{8}-\d{3}$`)

func TestNewTokenNumberFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		tok := NewTokenNumber()
		if !tokenNumberPattern.MatchString(tok) {
			t.Fatalf("token %q does not match MF-\\d{8}-\\d{3}", tok)
		}
	}
}

func TestNewTokenNumberVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewTokenNumber()] = true
	}
	// The random suffix alone gives 1000 possibilities; 50 draws collapsing
	// to a single value would mean the generator is broken.
	if len(seen) < 2 {
		t.Fatalf("expected varied token numbers, got %d distinct of 50", len(seen))
	}
}
