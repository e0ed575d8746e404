package export

import (
	"fmt"
	"strings"
)

// Format represents the supported output formats.
type Format string

const (
	// FormatText is human-readable, styled output.
	FormatText Format = "text"

	// FormatJSON is an indented JSON document.
	FormatJSON Format = "json"

	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"

	// FormatTOML is a TOML document with one [[entries]] table per entry.
	FormatTOML Format = "toml"

	// FormatProperties is the canonical versions.properties layout.
	FormatProperties Format = "properties"
)

// Formats lists every valid format, in the order shown in help texts.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML, FormatProperties}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML, FormatProperties:
		return true
	default:
		return false
	}
}

// ParseFormat converts a case-insensitive string to a Format. An empty
// string selects FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(s))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid format %q (valid: %s)", s, formatNames())
	}
	return f, nil
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
