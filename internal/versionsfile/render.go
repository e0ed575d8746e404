package versionsfile

import "strings"

// CurrentHeader returns the current header block stamped with
// generatedByVersion. Every line, including the last, ends with a newline.
func CurrentHeader(generatedByVersion string) string {
	lines := []string{
		HeaderLinesPrefix + " Dependencies and Plugin versions with their available updates.",
		GeneratedByLineStart + generatedByVersion,
		HeaderLinesPrefix,
		HeaderLinesPrefix + " Don't manually edit or split the comments that start with four hashtags (####),",
		HeaderLinesPrefix + " they will be overwritten by refreshVersions.",
		HeaderLinesPrefix,
		HeaderLinesPrefix + ` suppress inspection "SpellCheckingInspection" for whole file`,
		HeaderLinesPrefix + ` suppress inspection "UnusedProperty" for whole file`,
	}
	return strings.Join(lines, "\n") + "\n"
}

// Render writes m in the canonical layout: pre-header content, the current
// header, then each section preceded by a blank line. Legacy files are
// rendered with the current header.
func Render(m Model) string {
	var sb strings.Builder
	sb.WriteString(m.PreHeaderContent)
	sb.WriteString(CurrentHeader(m.GeneratedByVersion))

	for _, section := range m.Sections {
		sb.WriteString("\n")
		switch s := section.(type) {
		case Comment:
			sb.WriteString(s.Lines)
			sb.WriteString("\n")
		case VersionEntry:
			writeVersionEntry(&sb, s)
		}
	}
	return sb.String()
}

func writeVersionEntry(sb *strings.Builder, e VersionEntry) {
	for _, line := range e.LeadingCommentLines {
		writeCommentLine(sb, line)
	}
	sb.WriteString(e.Key)
	sb.WriteString(keyValueSeparator)
	sb.WriteString(e.CurrentVersion)
	sb.WriteString("\n")
	for _, update := range e.AvailableUpdates {
		sb.WriteString(AvailableUpdateLine(e.Key, update))
		sb.WriteString("\n")
	}
	for _, line := range e.TrailingCommentLines {
		writeCommentLine(sb, line)
	}
}

// writeCommentLine writes an empty line as a single space so it cannot form
// a section separator. Parsing trims it back to "".
func writeCommentLine(sb *strings.Builder, line string) {
	if line == "" {
		line = " "
	}
	sb.WriteString(line)
	sb.WriteString("\n")
}

// AvailableUpdateLine formats an available update comment so that its "="
// lines up with the "=" of the version line when the key is long enough.
func AvailableUpdateLine(key, version string) string {
	padding := max(len(key)-len(availableUpdateLinePrefix)-len(AvailableComment), 1)
	return availableUpdateLinePrefix + strings.Repeat(" ", padding) + AvailableComment + keyValueSeparator + version
}
