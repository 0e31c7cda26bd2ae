package facecache

import "errors"

// Sentinel errors for facecache package.
var (
	// ErrInvalidSize is returned when the pixel size or width is not positive.
	ErrInvalidSize = errors.New("facecache: invalid pixel size")

	// ErrBadAttachment is returned when an attachment index is out of range.
	ErrBadAttachment = errors.New("facecache: invalid font attachment index")

	// ErrNoStreams is returned for stream sources when no stream provider is set.
	ErrNoStreams = errors.New("facecache: no font stream provider")

	// ErrNoCharmap is returned when an opened face has no Unicode character map.
	ErrNoCharmap = errors.New("facecache: no unicode charmap")

	// ErrPixelSize is returned when an opened face rejects the pixel size.
	ErrPixelSize = errors.New("facecache: failed to set font size")
)

// OpenError reports a failed open together with the face identity.
type OpenError struct {
	Key Key
	Err error
}

func (e *OpenError) Error() string {
	return "facecache: error creating face for " + e.Key.String() + ": " + e.Err.Error()
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
