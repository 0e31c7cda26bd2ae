// Package engine is the font engine boundary of fontsel.
//
// An Engine turns raw font data into a Face that can answer coverage
// questions and be configured to a pixel size. The two built-in backends are:
//
//   - "ximage": golang.org/x/image/font/sfnt and font/opentype (default)
//   - "gotext": github.com/go-text/typesetting/font
//
// Custom engines can be registered with Register and selected by name:
//
//	engine.Register("myengine", myEngine)
//	e := engine.Get("myengine")
package engine

import (
	"errors"
	"io"
)

var (
	// ErrEmptyFontData is returned when a resource holds no bytes.
	ErrEmptyFontData = errors.New("engine: empty font data")

	// ErrFaceIndex is returned when a face index is outside the collection.
	ErrFaceIndex = errors.New("engine: face index out of range")
)

// Resource is a readable, seekable font source.
// *bytes.Reader and *io.SectionReader both satisfy it.
type Resource interface {
	io.Reader
	io.ReaderAt
	io.Seeker
}

// Engine opens faces from font resources.
type Engine interface {
	// Name returns the registered name of the engine.
	Name() string

	// Open parses the face at index inside r. Single-font files only
	// have index 0; collections (TTC/OTC) have one index per member.
	Open(r Resource, index int) (Face, error)
}

// Face is an opened font face.
// A Face is not safe for concurrent use.
type Face interface {
	// HasGlyph reports whether the face maps r to a glyph.
	HasGlyph(r rune) bool

	// SelectUnicodeCharmap reports whether the face exposes a Unicode
	// character map usable for HasGlyph lookups.
	SelectUnicodeCharmap() bool

	// SetPixelSize configures the face to the given pixel width and height.
	// It returns false when the size cannot be applied.
	SetPixelSize(width, height int) bool

	// PixelSize returns the last size accepted by SetPixelSize.
	PixelSize() (width, height int)

	// Close releases the face.
	Close() error
}

// DefaultName is the name of the default engine.
const DefaultName = "ximage"

// engines holds registered font engines.
var engines = map[string]Engine{
	"ximage": ximageEngine{},
	"gotext": gotextEngine{},
}

// Register registers a custom engine under name, replacing any previous one.
func Register(name string, e Engine) {
	engines[name] = e
}

// Get returns the engine by name, or the default engine if name is unknown.
func Get(name string) Engine {
	if e, ok := engines[name]; ok {
		return e
	}
	return engines[DefaultName]
}

// Names returns the registered engine names.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	return names
}

// checkSize validates a pixel size for the uint16 ppem range used by
// both backends.
func checkSize(width, height int) bool {
	return width > 0 && height > 0 && width <= 0xFFFF && height <= 0xFFFF
}
