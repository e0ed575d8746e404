package versionsfile

import "strings"

const (
	// HeaderLinesPrefix starts every line of the current header.
	HeaderLinesPrefix = "####"

	// GeneratedByLineStart precedes the generating tool version in the current header.
	GeneratedByLineStart = "#### Generated by `./gradlew refreshVersions` version "

	// AvailableComment is the key of an available update comment line,
	// e.g. "##   # available=2.0.0".
	AvailableComment = "# available"

	// LegacyGeneratedByVersion is reported for files using LegacyHeader,
	// which carries no version of its own.
	LegacyGeneratedByVersion = "0.9.7"

	sectionSeparator          = "\n\n"
	availableUpdateLinePrefix = "##"
	keyValueSeparator         = "="
	pluginKeyPrefix           = "plugin"
)

// LegacyHeader is the fixed header written by releases up to 0.9.7.
const LegacyHeader = `## suppress inspection "SpellCheckingInspection" for whole file
## suppress inspection "UnusedProperty" for whole file
##
## Dependencies and Plugin versions with their available updates
## Generated by $ ./gradlew refreshVersions
## Please, don't put extra comments in that file yet, keeping them is not supported yet.`

// DefaultVersionKeyPrefixes identify the lines declaring a version.
var DefaultVersionKeyPrefixes = []string{"plugin", "version"}

// Model is the parsed content of a versions file.
type Model struct {
	// PreHeaderContent is the raw text found before the header, if any.
	PreHeaderContent string

	// GeneratedByVersion is the version of the tool that wrote the file.
	GeneratedByVersion string

	// Legacy is set when the file starts with LegacyHeader.
	Legacy bool

	// Sections are kept in file order.
	Sections []Section
}

// Section is either a Comment or a VersionEntry.
type Section interface {
	isSection()
}

// Comment is a section without any version line, kept verbatim.
type Comment struct {
	Lines string
}

// VersionEntry is a section declaring the version of one dependency or plugin.
type VersionEntry struct {
	LeadingCommentLines  []string
	Key                  string
	CurrentVersion       string
	AvailableUpdates     []string
	TrailingCommentLines []string
}

func (Comment) isSection()      {}
func (VersionEntry) isSection() {}

// EntryKind tells plugin entries apart from library version entries.
type EntryKind string

const (
	KindPlugin  EntryKind = "plugin"
	KindVersion EntryKind = "version"
)

// Kind returns KindPlugin for keys starting with "plugin", KindVersion otherwise.
func (e VersionEntry) Kind() EntryKind {
	if strings.HasPrefix(e.Key, pluginKeyPrefix) {
		return KindPlugin
	}
	return KindVersion
}

// HasUpdates reports whether newer versions are listed for the entry.
func (e VersionEntry) HasUpdates() bool {
	return len(e.AvailableUpdates) > 0
}

// VersionEntries returns the version entries in file order.
func (m Model) VersionEntries() []VersionEntry {
	entries := make([]VersionEntry, 0, len(m.Sections))
	for _, s := range m.Sections {
		if entry, ok := s.(VersionEntry); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Entry returns the version entry with the given key.
func (m Model) Entry(key string) (VersionEntry, bool) {
	for _, s := range m.Sections {
		if entry, ok := s.(VersionEntry); ok && entry.Key == key {
			return entry, true
		}
	}
	return VersionEntry{}, false
}

// Keys returns the keys of all version entries in file order.
func (m Model) Keys() []string {
	entries := m.VersionEntries()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// String renders the model in the canonical file layout.
func (m Model) String() string {
	return Render(m)
}
