package engine

import (
	"fmt"

	"github.com/go-text/typesetting/font"
)

// gotextEngine implements Engine using go-text/typesetting.
type gotextEngine struct{}

// Name implements Engine.Name.
func (gotextEngine) Name() string { return "gotext" }

// Open implements Engine.Open.
// ParseTTC accepts both collections and single font files.
func (gotextEngine) Open(r Resource, index int) (Face, error) {
	faces, err := font.ParseTTC(r)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to parse font: %w", err)
	}
	if index < 0 || index >= len(faces) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFaceIndex, index, len(faces))
	}
	return &gotextFace{face: faces[index]}, nil
}

// gotextFace implements Face on top of a go-text font.Face.
// font.Face is not safe for concurrent use, which matches Face.
type gotextFace struct {
	face          *font.Face
	width, height int
}

// HasGlyph implements Face.HasGlyph.
func (f *gotextFace) HasGlyph(r rune) bool {
	_, ok := f.face.NominalGlyph(r)
	return ok
}

// SelectUnicodeCharmap implements Face.SelectUnicodeCharmap.
// The loader picks the best Unicode subtable while parsing; a nil Cmap
// means none was found.
func (f *gotextFace) SelectUnicodeCharmap() bool {
	return f.face.Cmap != nil
}

// SetPixelSize implements Face.SetPixelSize.
func (f *gotextFace) SetPixelSize(width, height int) bool {
	if !checkSize(width, height) {
		return false
	}
	f.face.SetPpem(uint16(width), uint16(height)) //nolint:gosec // range checked by checkSize
	f.width, f.height = width, height
	return true
}

// PixelSize implements Face.PixelSize.
func (f *gotextFace) PixelSize() (width, height int) {
	return f.width, f.height
}

// Close implements Face.Close.
func (f *gotextFace) Close() error {
	f.face = nil
	return nil
}
