// Package family holds the in-memory font registry: families, their font
// variants, and the forests that order them for lookup and fallback.
//
// Every Family lives in the Registry arena and is addressed by ID. Forests
// (the registry's discovery order and every fallback list) store IDs only,
// so a Family reachable from several forests is shared, never copied.
package family

import (
	"github.com/gogpu/fontsel/engine"
	"github.com/gogpu/fontsel/facecache"
)

// ID addresses a Family inside its Registry.
type ID int

// Font is one variant of a Family.
type Font struct {
	Source facecache.Source
	Index  int
	Bold   bool
	Italic bool

	face   engine.Face
	family ID
}

// Regular reports whether the variant is neither bold nor italic.
func (f *Font) Regular() bool {
	return !f.Bold && !f.Italic
}

// Style returns the style label of the variant.
func (f *Font) Style() string {
	return engine.StyleName(f.Bold, f.Italic)
}

// Family returns the ID of the family that created the variant.
func (f *Font) Family() ID {
	return f.family
}

// Face returns the lazily opened face, or nil if none was opened yet.
func (f *Font) Face() engine.Face {
	return f.face
}

// SetFace stores face if the variant has none yet. The first stored face
// wins; SetFace reports whether face was kept.
func (f *Font) SetFace(face engine.Face) bool {
	if f.face != nil || face == nil {
		return false
	}
	f.face = face
	return true
}

// Family is a named group of font variants.
type Family struct {
	id    ID
	name  string
	fonts []*Font

	// alias is the family the fonts were borrowed from, or -1.
	alias ID
}

// ID returns the arena ID of the family.
func (f *Family) ID() ID {
	return f.id
}

// Name returns the case-folded family name. It is never empty.
func (f *Family) Name() string {
	return f.name
}

// Fonts returns the variants, regular first.
func (f *Family) Fonts() []*Font {
	return f.fonts
}

// Len returns the number of variants.
func (f *Family) Len() int {
	return len(f.fonts)
}

// First returns the first variant, or nil for an empty family.
func (f *Family) First() *Font {
	if len(f.fonts) == 0 {
		return nil
	}
	return f.fonts[0]
}

// Alias returns the family whose variants this family borrows.
func (f *Family) Alias() (ID, bool) {
	return f.alias, f.alias >= 0
}

// AddFont adds a variant to the family.
//
// A regular variant added while the first variant is bold or italic is
// moved to the front; every other variant is appended.
func (f *Family) AddFont(src facecache.Source, index int, bold, italic bool) *Font {
	font := &Font{
		Source: src,
		Index:  index,
		Bold:   bold,
		Italic: italic,
		family: f.id,
	}
	if len(f.fonts) > 0 && !f.fonts[0].Regular() && font.Regular() {
		f.fonts = append([]*Font{font}, f.fonts...)
	} else {
		f.fonts = append(f.fonts, font)
	}
	return font
}
