// Package export converts a parsed versions file into machine-readable
// documents (JSON, YAML, TOML) or back into the properties layout.
package export
