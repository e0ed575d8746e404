package export

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/starsep/refreshVersions/internal/versionsfile"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Encode renders m in one of the machine-readable formats. FormatText is
// styled terminal output and is not handled here.
func Encode(m versionsfile.Model, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(NewDocument(m))
	case FormatYAML:
		return encodeYAML(NewDocument(m))
	case FormatTOML:
		return encodeTOML(NewDocument(m))
	case FormatProperties:
		return []byte(versionsfile.Render(m)), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// encodeJSON builds the document field by field with sjson so keys keep
// their declaration order.
func encodeJSON(doc Document) ([]byte, error) {
	data := []byte(`{}`)

	set := func(path string, value any) error {
		updated, err := sjson.SetBytes(data, path, value)
		if err != nil {
			return fmt.Errorf("failed to set %q: %w", path, err)
		}
		data = updated
		return nil
	}

	if err := set("generatedByVersion", doc.GeneratedByVersion); err != nil {
		return nil, err
	}
	if err := set("entries", []any{}); err != nil {
		return nil, err
	}

	for i, e := range doc.Entries {
		prefix := fmt.Sprintf("entries.%d.", i)
		fields := []struct {
			name  string
			value any
			skip  bool
		}{
			{"key", e.Key, false},
			{"kind", e.Kind, false},
			{"currentVersion", e.CurrentVersion, false},
			{"availableUpdates", e.AvailableUpdates, false},
			{"latestUpdate", e.LatestUpdate, e.LatestUpdate == ""},
			{"updateKind", e.UpdateKind, e.UpdateKind == ""},
			{"comments", e.Comments, len(e.Comments) == 0},
		}
		for _, f := range fields {
			if f.skip {
				continue
			}
			if err := set(prefix+f.name, f.value); err != nil {
				return nil, err
			}
		}
	}

	return pretty.Pretty(data), nil
}

func encodeYAML(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}

func encodeTOML(doc Document) ([]byte, error) {
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return data, nil
}
