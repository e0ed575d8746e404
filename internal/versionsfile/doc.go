// Package versionsfile reads versions.properties files into a Model.
//
// A versions file is a header followed by blank-line separated sections. A
// section is either a free-form comment block or a version entry: optional
// leading comments, one "key=version" line, the "## # available=" lines listing
// newer versions, then optional trailing comments. Comments and ordering are
// kept so that a Model can be rendered back to an equivalent file.
//
// Two header generations are recognized: the legacy fixed block written by
// early releases, and the current "####" header carrying the version of the
// tool that generated the file.
package versionsfile
