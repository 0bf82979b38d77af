package version

import (
	"strings"
	"testing"
)

func TestVersionStringNonEmpty(t *testing.T) {
	if s := String(); s == "" {
		t.Fatalf("version string is empty")
	}
}

func TestVersionStringIncludesInjectedCommit(t *testing.T) {
	old := Commit
	t.Cleanup(func() { Commit = old })
	Commit = "0123456789abcdef"
	s := String()
	if !strings.HasPrefix(s, Version) || !strings.Contains(s, "(0123456789ab)") {
		t.Fatalf("unexpected version string: %q", s)
	}
}
