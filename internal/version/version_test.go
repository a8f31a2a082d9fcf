package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origCommit, origDate := Commit, Date
	t.Cleanup(func() { Commit, Date = origCommit, origDate })

	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{"abbreviated commit", "0123456789abcdef", "2025-01-01T00:00:00Z", "(commit: 01234567, built: 2025-01-01T00:00:00Z, "},
		{"short commit kept", "abc", "2025-01-01T00:00:00Z", "(commit: abc, built: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Commit, Date = tt.commit, tt.date
			got := String()
			if !strings.HasPrefix(got, "swatch version dev ") {
				t.Errorf("String() = %q, want swatch version dev prefix", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
			if !strings.HasSuffix(got, runtime.GOOS+"/"+runtime.GOARCH+")") {
				t.Errorf("String() = %q, want platform suffix", got)
			}
		})
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("0123456789"); got != "01234567" {
		t.Errorf("shortCommit() = %q, want %q", got, "01234567")
	}
	if got := shortCommit(""); got != "" {
		t.Errorf("shortCommit(\"\") = %q, want empty", got)
	}
}
