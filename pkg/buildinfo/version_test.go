package buildinfo

import (
	"strings"
	"testing"
)

func TestStringUsesLinkerValues(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v0.3.0", "abc1234", "2026-01-02T03:04:05Z"

	want := "version: v0.3.0\ncommit: abc1234\nbuilt: 2026-01-02T03:04:05Z"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := Template(); !strings.Contains(got, "v0.3.0 (abc1234") {
		t.Errorf("Template() = %q", got)
	}
}
