package fontsel

import "errors"

// Sentinel errors for fontsel package.
var (
	// ErrNoFamily is returned when the style names no font family.
	ErrNoFamily = errors.New("fontsel: empty font family")

	// ErrNoFace is returned when no family can render the codepoint.
	ErrNoFace = errors.New("fontsel: no font found")

	// ErrClosed is returned by operations on a closed Resolver.
	ErrClosed = errors.New("fontsel: resolver closed")
)

// NotFoundError reports a request that no tier could satisfy.
type NotFoundError struct {
	Family    string
	Codepoint rune
}

func (e *NotFoundError) Error() string {
	return "fontsel: no font found for family " + e.Family + ", codepoint " + formatCodepoint(e.Codepoint)
}

// Unwrap lets errors.Is match ErrNoFace.
func (e *NotFoundError) Unwrap() error {
	return ErrNoFace
}
