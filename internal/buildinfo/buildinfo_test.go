package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	tests := []struct {
		version, commit string
		want            string
	}{
		{"dev", "unknown", "dev"},
		{"dev", "abc123", "abc123"},
		{"v1.2.0", "abc123", "v1.2.0"},
		{"", "", "dev"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Fatalf("Short() with (%q, %q) = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v0.1.0", "abc123", "2026-10-19"
	if got, want := String(), "spherenav v0.1.0 (commit abc123, built 2026-10-19)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
