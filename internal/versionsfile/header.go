package versionsfile

import "strings"

// header is the result of header detection: everything before the first
// section and where the sections start.
type header struct {
	legacy             bool
	preHeaderContent   string
	generatedByVersion string
	body               string
}

// detectHeader recognizes either the legacy fixed header or the current
// "####" header.
func detectHeader(text string) (header, error) {
	if body, ok := strings.CutPrefix(text, LegacyHeader); ok {
		return header{
			legacy:             true,
			generatedByVersion: LegacyGeneratedByVersion,
			body:               body,
		}, nil
	}

	start := indexOfLineStartingWith(text, HeaderLinesPrefix)
	if start < 0 {
		start = len(text)
	}

	_, afterMarker, found := strings.Cut(text[start:], GeneratedByLineStart)
	if !found {
		return header{}, &ValidationError{Kind: ErrKindMalformedHeader}
	}
	version, _, _ := strings.Cut(afterMarker, "\n")

	return header{
		preHeaderContent:   text[:start],
		generatedByVersion: strings.TrimSuffix(version, "\r"),
		body:               textAfterLastLineStartingWith(text, HeaderLinesPrefix),
	}, nil
}

// indexOfLineStartingWith returns the offset of the first line of text that
// starts with prefix, or -1.
func indexOfLineStartingWith(text, prefix string) int {
	for offset := 0; offset < len(text); {
		if strings.HasPrefix(text[offset:], prefix) {
			return offset
		}
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			break
		}
		offset += nl + 1
	}
	return -1
}

// textAfterLastLineStartingWith returns the text following the last line that
// starts with prefix. Text without such a line is returned unchanged.
func textAfterLastLineStartingWith(text, prefix string) string {
	after := -1
	for offset := 0; offset < len(text); {
		next := len(text)
		if nl := strings.IndexByte(text[offset:], '\n'); nl >= 0 {
			next = offset + nl + 1
		}
		if strings.HasPrefix(text[offset:], prefix) {
			after = next
		}
		offset = next
	}
	if after < 0 {
		return text
	}
	return text[after:]
}
