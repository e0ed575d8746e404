package semver

// UpdateKind describes how far an available update is from the current version.
type UpdateKind string

const (
	UpdateMajor      UpdateKind = "major"
	UpdateMinor      UpdateKind = "minor"
	UpdatePatch      UpdateKind = "patch"
	UpdatePreRelease UpdateKind = "pre-release"

	// UpdateOther is used when either version cannot be parsed or the
	// update is not newer than the current version.
	UpdateOther UpdateKind = "other"
)

// ClassifyUpdate returns the kind of change from current to update.
func ClassifyUpdate(current, update string) UpdateKind {
	from, err := ParseVersion(current)
	if err != nil {
		return UpdateOther
	}
	to, err := ParseVersion(update)
	if err != nil {
		return UpdateOther
	}
	if to.Compare(from) <= 0 {
		return UpdateOther
	}

	switch {
	case to.Major != from.Major:
		return UpdateMajor
	case to.Minor != from.Minor:
		return UpdateMinor
	case to.Patch != from.Patch:
		return UpdatePatch
	default:
		return UpdatePreRelease
	}
}
