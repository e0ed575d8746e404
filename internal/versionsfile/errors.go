package versionsfile

import "fmt"

// ErrKind enumerates the reasons a versions file fails validation.
type ErrKind int

const (
	// ErrKindMalformedHeader means the current header has no generated-by line.
	ErrKindMalformedHeader ErrKind = iota + 1

	// ErrKindMissingVersionValue means a version line has nothing after "=".
	ErrKindMissingVersionValue

	// ErrKindMisplacedAvailableUpdate means an available update comment follows a custom comment.
	ErrKindMisplacedAvailableUpdate

	// ErrKindDuplicateKey means two sections declare the same key.
	ErrKindDuplicateKey
)

// String returns a stable name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindMalformedHeader:
		return "malformed-header"
	case ErrKindMissingVersionValue:
		return "missing-version-value"
	case ErrKindMisplacedAvailableUpdate:
		return "misplaced-available-update"
	case ErrKindDuplicateKey:
		return "duplicate-key"
	default:
		return "unknown"
	}
}

// ValidationError describes why the content of a versions file is invalid.
// Key names the offending version key when the failure concerns an entry.
type ValidationError struct {
	Kind ErrKind
	Key  string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrKindMalformedHeader:
		return fmt.Sprintf("malformed header: no line starting with %q", GeneratedByLineStart)
	case ErrKindMissingVersionValue:
		return fmt.Sprintf("didn't find the value of the version for the following key: %s", e.Key)
	case ErrKindMisplacedAvailableUpdate:
		return fmt.Sprintf("putting custom comments between available updates comments is not supported (key %s)", e.Key)
	case ErrKindDuplicateKey:
		return fmt.Sprintf("the version with key %s has been found twice", e.Key)
	default:
		return "invalid versions file"
	}
}

// Is matches another *ValidationError of the same kind. An empty Key in the
// target matches any key.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Key == "" || t.Key == e.Key)
}

// UnreadableFileError is returned when a versions file cannot be parsed.
// Err holds the underlying *ValidationError.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unreadable versions file: %v", e.Err)
	}
	return fmt.Sprintf("unreadable versions file %q: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}
