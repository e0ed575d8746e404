package versionsfile

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/starsep/refreshVersions/internal/core"
	"github.com/starsep/refreshVersions/internal/ctxlog"
)

// Option configures a Reader.
type Option func(*Reader)

// WithVersionKeyPrefixes replaces the prefixes identifying version lines.
// Blank prefixes are ignored; when none remain DefaultVersionKeyPrefixes
// are kept.
func WithVersionKeyPrefixes(prefixes ...string) Option {
	return func(r *Reader) {
		kept := slices.DeleteFunc(slices.Clone(prefixes), func(p string) bool {
			return strings.TrimSpace(p) == ""
		})
		if len(kept) > 0 {
			r.versionKeyPrefixes = kept
		}
	}
}

// Reader parses versions files. It holds no parse state and is safe for
// concurrent use.
type Reader struct {
	fs                 core.FileSystem
	versionKeyPrefixes []string
}

// NewReader creates a Reader reading files through fs.
// A nil fs falls back to the OS filesystem.
func NewReader(fs core.FileSystem, opts ...Option) *Reader {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	r := &Reader{
		fs:                 fs,
		versionKeyPrefixes: slices.Clone(DefaultVersionKeyPrefixes),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultReader = NewReader(nil)

// ReadFromText parses text with the default version key prefixes.
func ReadFromText(text string) (Model, error) {
	return defaultReader.ReadFromText(text)
}

// Read reads and parses the versions file at path.
func (r *Reader) Read(ctx context.Context, path string) (Model, error) {
	if path == "" {
		return Model{}, fmt.Errorf("file path is required")
	}

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return Model{}, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	hdr, model, err := r.parse(string(data))
	if err != nil {
		return Model{}, &UnreadableFileError{Path: path, Err: err}
	}

	ctxlog.FromContext(ctx).Debug("versions file parsed",
		"path", path,
		"legacyHeader", hdr.legacy,
		"generatedBy", model.GeneratedByVersion,
		"sections", len(model.Sections),
	)
	return model, nil
}

// ReadFromText parses the content of a versions file. Any validation failure
// is returned as an *UnreadableFileError wrapping a *ValidationError.
func (r *Reader) ReadFromText(text string) (Model, error) {
	_, model, err := r.parse(text)
	if err != nil {
		return Model{}, &UnreadableFileError{Err: err}
	}
	return model, nil
}

func (r *Reader) parse(text string) (header, Model, error) {
	hdr, err := detectHeader(text)
	if err != nil {
		return header{}, Model{}, err
	}

	rawSections := splitSections(hdr.body)
	sections := make([]Section, 0, len(rawSections))
	for _, raw := range rawSections {
		section, ok, err := r.readSection(raw)
		if err != nil {
			return header{}, Model{}, err
		}
		if ok {
			sections = append(sections, section)
		}
	}

	if err := checkUniqueKeys(sections); err != nil {
		return header{}, Model{}, err
	}

	return hdr, Model{
		PreHeaderContent:   hdr.preHeaderContent,
		GeneratedByVersion: hdr.generatedByVersion,
		Legacy:             hdr.legacy,
		Sections:           sections,
	}, nil
}
