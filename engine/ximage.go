package engine

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ximageEngine implements Engine using golang.org/x/image/font/sfnt.
type ximageEngine struct{}

// Name implements Engine.Name.
func (ximageEngine) Name() string { return "ximage" }

// Open implements Engine.Open.
func (ximageEngine) Open(r Resource, index int) (Face, error) {
	c, err := sfnt.ParseCollectionReaderAt(r)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to parse font: %w", err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFaceIndex, index, c.NumFonts())
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to load face %d: %w", index, err)
	}
	return &ximageFace{font: f}, nil
}

// ximageFace implements Face on top of sfnt.Font.
type ximageFace struct {
	font *sfnt.Font
	buf  sfnt.Buffer

	// face is the sized opentype face, created by SetPixelSize.
	face          font.Face
	width, height int
}

// HasGlyph implements Face.HasGlyph.
func (f *ximageFace) HasGlyph(r rune) bool {
	gid, err := f.font.GlyphIndex(&f.buf, r)
	return err == nil && gid != 0
}

// SelectUnicodeCharmap implements Face.SelectUnicodeCharmap.
// sfnt only keeps a cmap subtable it can decode as Unicode, so a lookup
// that errors means there is no usable map.
func (f *ximageFace) SelectUnicodeCharmap() bool {
	_, err := f.font.GlyphIndex(&f.buf, ' ')
	return err == nil
}

// SetPixelSize implements Face.SetPixelSize.
// opentype faces are isotropic: the height sets the em size at 72 DPI,
// so one point is one pixel. The width is kept for callers that apply
// horizontal scaling on their own.
func (f *ximageFace) SetPixelSize(width, height int) bool {
	if !checkSize(width, height) {
		return false
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(height),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return false
	}
	if f.face != nil {
		_ = f.face.Close()
	}
	f.face = face
	f.width, f.height = width, height
	return true
}

// PixelSize implements Face.PixelSize.
func (f *ximageFace) PixelSize() (width, height int) {
	return f.width, f.height
}

// Metrics returns the metrics of the sized face.
// The zero value is returned before SetPixelSize succeeds.
func (f *ximageFace) Metrics() font.Metrics {
	if f.face == nil {
		return font.Metrics{}
	}
	return f.face.Metrics()
}

// Close implements Face.Close.
func (f *ximageFace) Close() error {
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}
