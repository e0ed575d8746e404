package semver

import (
	"errors"
	"strings"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    SemVersion
		wantErr bool
	}{
		{input: "1.2.3", want: SemVersion{Major: 1, Minor: 2, Patch: 3}},
		{input: "v1.2.3", want: SemVersion{Major: 1, Minor: 2, Patch: 3}},
		{input: "1.9", want: SemVersion{Major: 1, Minor: 9}},
		{input: "7", want: SemVersion{Major: 7}},
		{input: "1.0.0-alpha.1", want: SemVersion{Major: 1, PreRelease: "alpha.1"}},
		{input: "31.1-jre", want: SemVersion{Major: 31, Minor: 1, PreRelease: "jre"}},
		{input: "2.0.0.RC1", want: SemVersion{Major: 2, PreRelease: "RC1"}},
		{input: "1.2.3+build.5", want: SemVersion{Major: 1, Minor: 2, Patch: 3, Build: "build.5"}},
		{input: " 4.11.0 ", want: SemVersion{Major: 4, Minor: 11}},
		{input: "", wantErr: true},
		{input: "latest", wantErr: true},
		{input: "x.1", wantErr: true},
		{input: strings.Repeat("1", 200), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				if !errors.Is(err, errInvalidVersion) {
					t.Errorf("expected errInvalidVersion, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSemVersion_String(t *testing.T) {
	v := SemVersion{Major: 1, Minor: 2, Patch: 3, PreRelease: "rc.1", Build: "42"}
	if got := v.String(); got != "1.2.3-rc.1+42" {
		t.Errorf("String() = %q", got)
	}
}

func TestSemVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"1.10.0", "1.9.0", 1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha.beta", -1},
		{"1.0.0-rc.2", "1.0.0-rc.10", -1},
		{"1.0.0+a", "1.0.0+b", 0},
	}

	for _, tt := range tests {
		a, err := ParseVersion(tt.a)
		if err != nil {
			t.Fatal(err)
		}
		b, err := ParseVersion(tt.b)
		if err != nil {
			t.Fatal(err)
		}
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClassifyUpdate(t *testing.T) {
	tests := []struct {
		current, update string
		want            UpdateKind
	}{
		{"1.9.0", "2.0.0", UpdateMajor},
		{"1.9.0", "1.9.10", UpdatePatch},
		{"4.11.0", "4.12.0", UpdateMinor},
		{"1.9", "1.9.1", UpdatePatch},
		{"2.0.0-RC1", "2.0.0", UpdatePreRelease},
		{"2.0.0-RC1", "2.0.0-RC2", UpdatePreRelease},
		{"2.0.0", "1.0.0", UpdateOther},
		{"2.0.0", "2.0.0", UpdateOther},
		{"latest", "2.0.0", UpdateOther},
		{"1.0.0", "nightly", UpdateOther},
	}

	for _, tt := range tests {
		if got := ClassifyUpdate(tt.current, tt.update); got != tt.want {
			t.Errorf("ClassifyUpdate(%q, %q) = %q, want %q", tt.current, tt.update, got, tt.want)
		}
	}
}
