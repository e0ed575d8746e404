package versionsfile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \n\n \t\n", nil},
		{"single section", "\nversion.a=1\n", []string{"version.a=1"}},
		{"two sections", "\n\nversion.a=1\n\nversion.b=2\n", []string{"version.a=1", "version.b=2"}},
		{"consecutive blank lines", "version.a=1\n\n\n\nversion.b=2", []string{"version.a=1", "", "version.b=2"}},
		{"odd newline run", "version.a=1\n\n\nversion.b=2", []string{"version.a=1", "\nversion.b=2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSections(tt.body)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitSections() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadSection(t *testing.T) {
	tests := []struct {
		name     string
		prefixes []string
		text     string
		want     Section
		wantOK   bool
	}{
		{
			name:   "empty fragment",
			text:   "",
			wantOK: false,
		},
		{
			name:   "whitespace only fragment",
			text:   "  \n\t",
			wantOK: false,
		},
		{
			name:   "comment block kept verbatim",
			text:   "# Some notes\n  # indented note",
			want:   Comment{Lines: "# Some notes\n  # indented note"},
			wantOK: true,
		},
		{
			name: "plain version line",
			text: "version.okhttp3=4.11.0",
			want: VersionEntry{
				LeadingCommentLines:  []string{},
				Key:                  "version.okhttp3",
				CurrentVersion:       "4.11.0",
				AvailableUpdates:     []string{},
				TrailingCommentLines: []string{},
			},
			wantOK: true,
		},
		{
			name:     "custom prefix",
			prefixes: []string{"some"},
			text:     "some.lib=1.2.3",
			want: VersionEntry{
				LeadingCommentLines:  []string{},
				Key:                  "some.lib",
				CurrentVersion:       "1.2.3",
				AvailableUpdates:     []string{},
				TrailingCommentLines: []string{},
			},
			wantOK: true,
		},
		{
			name: "available updates in order",
			text: "plugin.kotlin=1.9.0\n##  # available=2.0.0\n##  # available=3.0.0",
			want: VersionEntry{
				LeadingCommentLines:  []string{},
				Key:                  "plugin.kotlin",
				CurrentVersion:       "1.9.0",
				AvailableUpdates:     []string{"2.0.0", "3.0.0"},
				TrailingCommentLines: []string{},
			},
			wantOK: true,
		},
		{
			name: "leading and trailing comments are trimmed",
			text: "  # why we pin\n# see issue 12\n  version.retrofit=2.9.0  \n  ##   # available=2.11.0\n# keep in sync with okhttp  ",
			want: VersionEntry{
				LeadingCommentLines:  []string{"# why we pin", "# see issue 12"},
				Key:                  "version.retrofit",
				CurrentVersion:       "2.9.0",
				AvailableUpdates:     []string{"2.11.0"},
				TrailingCommentLines: []string{"# keep in sync with okhttp"},
			},
			wantOK: true,
		},
		{
			name: "value keeps everything after the first equals sign",
			text: "version.weird=1.0=beta",
			want: VersionEntry{
				LeadingCommentLines:  []string{},
				Key:                  "version.weird",
				CurrentVersion:       "1.0=beta",
				AvailableUpdates:     []string{},
				TrailingCommentLines: []string{},
			},
			wantOK: true,
		},
		{
			name: "double hash line without available key is a trailing comment",
			text: "version.a=1\n## just a note",
			want: VersionEntry{
				LeadingCommentLines:  []string{},
				Key:                  "version.a",
				CurrentVersion:       "1",
				AvailableUpdates:     []string{},
				TrailingCommentLines: []string{"## just a note"},
			},
			wantOK: true,
		},
		{
			name: "single hash available line is a trailing comment",
			text: "version.a=1\n# available=2",
			want: VersionEntry{
				LeadingCommentLines:  []string{},
				Key:                  "version.a",
				CurrentVersion:       "1",
				AvailableUpdates:     []string{},
				TrailingCommentLines: []string{"# available=2"},
			},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(nil, WithVersionKeyPrefixes(tt.prefixes...))
			got, ok, err := r.readSection(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readSection() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadSection_Errors(t *testing.T) {
	tests := []struct {
		name     string
		prefixes []string
		text     string
		wantKind ErrKind
		wantKey  string
	}{
		{
			name:     "missing value",
			prefixes: []string{"some"},
			text:     "some.lib=",
			wantKind: ErrKindMissingVersionValue,
			wantKey:  "some.lib",
		},
		{
			name:     "no equals sign",
			text:     "# comment\nversion.lonely",
			wantKind: ErrKindMissingVersionValue,
			wantKey:  "version.lonely",
		},
		{
			name:     "custom comment before available update",
			text:     "version.a=1\n# mine\n##  # available=2",
			wantKind: ErrKindMisplacedAvailableUpdate,
			wantKey:  "version.a",
		},
		{
			name:     "custom comment between available updates",
			text:     "version.a=1\n##  # available=2\n# mine\n##  # available=3",
			wantKind: ErrKindMisplacedAvailableUpdate,
			wantKey:  "version.a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(nil, WithVersionKeyPrefixes(tt.prefixes...))
			_, _, err := r.readSection(tt.text)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if vErr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", vErr.Kind, tt.wantKind)
			}
			if vErr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", vErr.Key, tt.wantKey)
			}
		})
	}
}

func TestCheckUniqueKeys(t *testing.T) {
	entry := func(key string) VersionEntry {
		return VersionEntry{Key: key, CurrentVersion: "1"}
	}

	t.Run("unique", func(t *testing.T) {
		sections := []Section{entry("version.a"), Comment{Lines: "# x"}, entry("version.b")}
		if err := checkUniqueKeys(sections); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("comments are ignored", func(t *testing.T) {
		sections := []Section{Comment{Lines: "# x"}, Comment{Lines: "# x"}}
		if err := checkUniqueKeys(sections); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("first duplicate in file order", func(t *testing.T) {
		sections := []Section{entry("b"), entry("a"), entry("a"), entry("b")}
		err := checkUniqueKeys(sections)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if vErr.Kind != ErrKindDuplicateKey || vErr.Key != "a" {
			t.Errorf("got %v/%q, want duplicate-key/a", vErr.Kind, vErr.Key)
		}
	})
}
