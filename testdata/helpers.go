package testdata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Join renders lines as a newline terminated stream.
func Join(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Split is the inverse of Join. Every line must be newline terminated.
func Split(t *testing.T, stream []byte) []string {
	t.Helper()
	if len(stream) == 0 {
		return []string{}
	}
	if stream[len(stream)-1] != '\n' {
		t.Fatalf("stream does not end with a newline: %q", stream)
	}
	parts := bytes.Split(stream[:len(stream)-1], []byte("\n"))
	ret := make([]string, len(parts))
	for i, p := range parts {
		ret[i] = string(p)
	}
	return ret
}

// FirstOccurrences is the expected output of deduplicating lines.
func FirstOccurrences(lines []string) []string {
	seen := map[string]bool{}
	ret := []string{}
	for _, l := range lines {
		if seen[l] {
			continue
		}
		seen[l] = true
		ret = append(ret, l)
	}
	return ret
}

// LinesEqual fails the test with a diff if the lines differ.
func LinesEqual(t *testing.T, want, got []string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines differ (-want +got):\n%s", diff)
	}
}
