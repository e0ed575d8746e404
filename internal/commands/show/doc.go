// Package show implements the "show" command, which prints the parsed
// versions file as styled text or as a JSON, YAML, TOML or properties
// document.
package show
