// SPDX-License-Identifier: MPL-2.0

package python

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "3", want: "3"},
		{input: "3.11", want: "3.11"},
		{input: "3.11.2", want: "3.11.2"},
		{input: " v3.9.1 ", want: "3.9.1"},
		{input: "3.13.0rc1", want: "3.13.0rc1"},
		{input: "3.12.0+local", want: "3.12.0+local"},
		{input: "", wantErr: true},
		{input: "python", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("ParseVersion(%q) error = %v, want ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseVersion(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"3.11", "3.11.0", 0},
		{"3.9", "3.10", -1},
		{"3.10.1", "3.10", 1},
		{"4", "3.99.99", 1},
		{"3.13.0rc1", "3.13.0", -1},
		{"3.13.0rc1", "3.12.7", 1},
		{"3.13.0b2", "3.13.0rc1", -1},
	}

	for _, tt := range tests {
		got := MustParseVersion(tt.a).Compare(MustParseVersion(tt.b))
		if got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVersion_HasPrefix(t *testing.T) {
	t.Parallel()

	v := MustParseVersion("3.11.2")
	if !v.HasPrefix(MustParseVersion("3.11")) {
		t.Error("3.11.2 should have prefix 3.11")
	}
	if !v.HasPrefix(MustParseVersion("3")) {
		t.Error("3.11.2 should have prefix 3")
	}
	if v.HasPrefix(MustParseVersion("3.1")) {
		t.Error("3.11.2 should not have prefix 3.1")
	}
	if v.HasPrefix(MustParseVersion("3.11.2.1")) {
		t.Error("a longer prefix must not match")
	}
	if !MustParseVersion("3.13.0rc1").HasPrefix(MustParseVersion("3.13")) {
		t.Error("3.13.0rc1 should have prefix 3.13")
	}
	if v.HasPrefix(Version{}) {
		t.Error("the unknown version is not a prefix")
	}
}

func TestVersion_ZeroSortsFirst(t *testing.T) {
	t.Parallel()

	var zero Version
	if !zero.IsZero() || zero.String() != "" {
		t.Errorf("zero Version = %q, want unknown", zero)
	}
	if zero.Compare(MustParseVersion("2.7")) != -1 || MustParseVersion("2.7").Compare(zero) != 1 {
		t.Error("the unknown version must sort before every parsed version")
	}
	if zero.Compare(Version{}) != 0 {
		t.Error("two unknown versions compare equal")
	}
}

func TestVersion_Segments(t *testing.T) {
	t.Parallel()

	v := MustParseVersion("3.8")
	if v.Major() != 3 || v.Minor() != 8 || v.Patch() != 0 {
		t.Errorf("segments of 3.8 = %d.%d.%d, want 3.8.0", v.Major(), v.Minor(), v.Patch())
	}

	rc := MustParseVersion("1!3.13.0rc1")
	if got := rc.Release(); len(got) != 3 || got[0] != 3 || got[1] != 13 || got[2] != 0 {
		t.Errorf("Release() of 1!3.13.0rc1 = %v, want [3 13 0]", got)
	}
}
