package version

import (
	"strings"
	"testing"
)

func TestShortCommit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc123", "abc123"},
		{"0123456789ab", "0123456789ab"},
		{"0123456789abcdef0123", "0123456789ab"},
	}
	for _, tc := range tests {
		if got := shortCommit(tc.in); got != tc.want {
			t.Errorf("shortCommit(%q): got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	if Resolve().Version == "" {
		t.Fatal("resolved version is empty")
	}
	if s := String(); s == "" || strings.HasPrefix(s, " ") {
		t.Fatalf("unexpected version string %q", s)
	}
}
