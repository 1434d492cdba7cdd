package common

import "testing"

func TestBookEquality(t *testing.T) {
	a := NewBook("Name1", "Author1", 2011)
	b := NewBook("Name1", "Author1", 2011)
	c := NewBook("Name1", "Author1", 2012)
	if !a.Equal(b) || a != b {
		t.Fatalf("expected value equality")
	}
	if a.Equal(c) {
		t.Fatalf("different year must not be equal")
	}
	m := map[Book]int{a: 1}
	m[b]++
	if m[a] != 2 {
		t.Fatalf("book should work as a map key, got %d", m[a])
	}
}

func TestFingerprintSeparatesFields(t *testing.T) {
	if NewBook("ab", "c", 1).Fingerprint() == NewBook("a", "bc", 1).Fingerprint() {
		t.Fatalf("field boundary collision")
	}
	if NewBook("a", "b", 1).Fingerprint() != NewBook("a", "b", 1).Fingerprint() {
		t.Fatalf("fingerprint must be deterministic")
	}
}

func TestBookString(t *testing.T) {
	if got := NewBook("Name4", "Author4", 2014).String(); got != "Name4 Author4 2014" {
		t.Fatalf("unexpected string %q", got)
	}
}
