package fontsel

import (
	"fmt"

	"github.com/gogpu/fontsel/facecache"
)

// StyleFlags is a set of text style flags.
type StyleFlags uint16

// Style flags understood by the resolver.
const (
	Bold StyleFlags = 1 << iota
	Italic
	Monospaced
	HalfWidth
	DoubleWidth
)

// Has reports whether all flags in f are set.
func (s StyleFlags) Has(f StyleFlags) bool {
	return s&f == f
}

// DefaultFontSize is the pixel size used when a style gives none.
const DefaultFontSize = 20

// Style is the style record a text renderer passes to the resolver.
type Style struct {
	// FontName is a family specification, e.g. `Arial, "DejaVu Sans"`.
	FontName string

	// MonoFontName is used instead of FontName when Monospaced is set.
	MonoFontName string

	Flags StyleFlags

	// FontSize is an absolute size in pixels. Zero means unset.
	FontSize int

	// RelSize is a size in percent of the output height, used when
	// FontSize is unset. Zero means unset.
	RelSize float64
}

// familySpec returns the family specification the style selects.
func (s Style) familySpec() string {
	if s.Flags.Has(Monospaced) {
		return s.MonoFontName
	}
	return s.FontName
}

// liveSize converts the style size to pixels, applying the global
// scale percentage.
func liveSize(s Style, outputHeight, scale int) int {
	size := DefaultFontSize
	switch {
	case s.FontSize != 0:
		size = s.FontSize
	case s.RelSize != 0:
		size = int(float64(outputHeight) * s.RelSize / 100)
	}
	if scale != 100 {
		size = size * scale / 100
	}
	return size
}

// pixelSize returns the effective size and width a face is opened at.
func pixelSize(s Style, outputHeight, scale int) facecache.PixelSize {
	size := liveSize(s, outputHeight, scale)
	width := size
	switch {
	case s.Flags.Has(HalfWidth):
		width /= 2
	case s.Flags.Has(DoubleWidth):
		width *= 2
	}
	return facecache.PixelSize{Height: size, Width: width}
}

func formatCodepoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
