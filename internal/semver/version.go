package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SemVersion represents a version as major.minor.patch-preRelease+build.
// Missing minor or patch components parse as zero.
type SemVersion struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
	Build      string
}

var (
	// versionRegex matches dependency version strings with optional "v" prefix.
	// Unlike strict SemVer, minor and patch are optional ("1.9") and the
	// pre-release may follow a dot or dash ("31.1-jre", "2.0.0.RC1").
	// It captures:
	//   1. Major version
	//   2. (optional) Minor version
	//   3. (optional) Patch version
	//   4. (optional) Pre-release identifier
	//   5. (optional) Build metadata
	versionRegex = regexp.MustCompile(
		`^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?` + // major[.minor[.patch]]
			`(?:[-.]([0-9A-Za-z][0-9A-Za-z\-\.]*))?` + // optional pre-release
			`(?:\+([0-9A-Za-z\-\.]+))?$`, // optional build metadata
	)

	// errInvalidVersion is returned when a version string cannot be parsed.
	errInvalidVersion = errors.New("invalid version format")
)

// String returns the string representation of the version.
func (v SemVersion) String() string {
	var sb strings.Builder
	sb.Grow(20)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Build)
	}
	return sb.String()
}

// maxVersionLength is the maximum allowed length for a version string.
// This prevents potential ReDoS attacks on the regex parser.
const maxVersionLength = 128

// ParseVersion parses a dependency version string.
//
// Supported formats:
//   - "1.2.3", "v1.2.3"
//   - "1.9" (patch defaults to 0)
//   - "1.2.3-alpha.1", "31.1-jre", "2.0.0.RC1"
//   - "1.2.3+build.123"
//
// Returns errInvalidVersion (wrapped) when the input is too long or does not
// start with a numeric major component.
func ParseVersion(s string) (SemVersion, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return SemVersion{}, fmt.Errorf("%w: version string exceeds maximum length of %d", errInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return SemVersion{}, fmt.Errorf("%w: %q", errInvalidVersion, trimmed)
	}

	var parts [3]int
	for i := range parts {
		if matches[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return SemVersion{}, fmt.Errorf("%w: %s", errInvalidVersion, err.Error())
		}
		parts[i] = n
	}

	return SemVersion{
		Major:      parts[0],
		Minor:      parts[1],
		Patch:      parts[2],
		PreRelease: matches[4],
		Build:      matches[5],
	}, nil
}

// Compare compares two versions.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
// Pre-release versions have lower precedence than the associated normal version
// (e.g., 1.0.0-alpha < 1.0.0). Build metadata is ignored for comparison purposes.
func (v SemVersion) Compare(other SemVersion) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	switch {
	case v.PreRelease == "" && other.PreRelease == "":
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	default:
		return comparePreRelease(v.PreRelease, other.PreRelease)
	}
}

// IsPreRelease reports whether the version carries a pre-release label.
func (v SemVersion) IsPreRelease() bool {
	return v.PreRelease != ""
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePreRelease(a, b string) int {
	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")

	n := min(len(aIDs), len(bIDs))
	for i := range n {
		if c := compareIdentifier(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}

	// If equal so far, shorter list has lower precedence.
	switch {
	case len(aIDs) < len(bIDs):
		return -1
	case len(aIDs) > len(bIDs):
		return 1
	default:
		return 0
	}
}

func compareIdentifier(a, b string) int {
	aNum, aIsNum := parseNumericIdentifier(a)
	bNum, bIsNum := parseNumericIdentifier(b)

	switch {
	case aIsNum && bIsNum:
		return compareInt(aNum, bNum)
	case aIsNum && !bIsNum:
		return -1 // numeric < non-numeric
	case !aIsNum && bIsNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// SemVer numeric identifiers: only digits, no leading zeros unless exactly "0".
func parseNumericIdentifier(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
