package versionsfile

import (
	"slices"
	"strings"
)

// splitSections splits the text following the header into raw section texts.
func splitSections(body string) []string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, sectionSeparator)
}

// readSection parses one raw section. It returns false when the section is
// blank and must be dropped.
func (r *Reader) readSection(text string) (Section, bool, error) {
	rawLines := strings.Split(text, "\n")
	lines := make([]string, len(rawLines))
	for i, line := range rawLines {
		lines[i] = strings.TrimSpace(line)
	}

	versionLineIndex := slices.IndexFunc(lines, r.isVersionLine)
	if versionLineIndex < 0 {
		if strings.TrimSpace(text) == "" {
			return nil, false, nil
		}
		return Comment{Lines: text}, true, nil
	}

	key, currentVersion, _ := strings.Cut(lines[versionLineIndex], keyValueSeparator)
	if currentVersion == "" {
		return nil, false, &ValidationError{Kind: ErrKindMissingVersionValue, Key: key}
	}

	entry := VersionEntry{
		LeadingCommentLines:  append([]string{}, lines[:versionLineIndex]...),
		Key:                  key,
		CurrentVersion:       currentVersion,
		AvailableUpdates:     []string{},
		TrailingCommentLines: []string{},
	}

	// Available update lines must come first, right after the version line.
	inAvailableUpdates := true
	for _, line := range lines[versionLineIndex+1:] {
		if !isAvailableUpdateLine(line) {
			inAvailableUpdates = false
			entry.TrailingCommentLines = append(entry.TrailingCommentLines, line)
			continue
		}
		if !inAvailableUpdates {
			return nil, false, &ValidationError{Kind: ErrKindMisplacedAvailableUpdate, Key: key}
		}
		_, update, _ := strings.Cut(line, keyValueSeparator)
		entry.AvailableUpdates = append(entry.AvailableUpdates, update)
	}

	return entry, true, nil
}

func (r *Reader) isVersionLine(line string) bool {
	for _, prefix := range r.versionKeyPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func isAvailableUpdateLine(line string) bool {
	return strings.HasPrefix(line, availableUpdateLinePrefix) &&
		strings.Contains(line, AvailableComment+keyValueSeparator)
}

// checkUniqueKeys fails on the first version key declared twice, in file order.
func checkUniqueKeys(sections []Section) error {
	seen := make(map[string]struct{}, len(sections))
	for _, s := range sections {
		entry, ok := s.(VersionEntry)
		if !ok {
			continue
		}
		if _, dup := seen[entry.Key]; dup {
			return &ValidationError{Kind: ErrKindDuplicateKey, Key: entry.Key}
		}
		seen[entry.Key] = struct{}{}
	}
	return nil
}
