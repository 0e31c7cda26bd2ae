package platform

import (
	"path/filepath"

	"golang.org/x/text/cases"

	"github.com/gogpu/fontsel"
	"github.com/gogpu/fontsel/facecache"
	"github.com/gogpu/fontsel/family"
)

// Built-in font files used when no file is configured.
const (
	SystemFontPath           = "/usr/share/fonts/truetype/freefont"
	DefaultFontFile          = "FreeSerifBold.ttf"
	DefaultMonospaceFontFile = "FreeMono.ttf"
)

// StaticMap maps family names to single font files.
type StaticMap struct {
	files map[string]string
	dir   string
}

// NewStaticMap creates a map from family name to font file. Relative
// file names are resolved against SystemFontPath.
func NewStaticMap(files map[string]string) *StaticMap {
	fold := cases.Fold()
	m := &StaticMap{
		files: make(map[string]string, len(files)),
		dir:   SystemFontPath,
	}
	for name, file := range files {
		m.files[fold.String(name)] = file
	}
	return m
}

// DefaultStaticMap maps fontsel.DefaultFamily to fontFile and
// fontsel.DefaultMonospaceFamily to monoFile. Empty file names select
// the built-in defaults.
func DefaultStaticMap(fontFile, monoFile string) *StaticMap {
	if fontFile == "" {
		fontFile = DefaultFontFile
	}
	if monoFile == "" {
		monoFile = DefaultMonospaceFontFile
	}
	return NewStaticMap(map[string]string{
		fontsel.DefaultFamily:          fontFile,
		fontsel.DefaultMonospaceFamily: monoFile,
	})
}

// Family implements fontsel.Enumerator.
func (m *StaticMap) Family(reg *family.Registry, name string) *family.Family {
	if f := reg.Lookup(name); f != nil {
		return f
	}
	file, ok := m.files[reg.Key(name)]
	if !ok {
		return nil
	}
	f, _ := reg.Register(name)
	f.AddFont(facecache.FileSource(MakeFilePath(m.dir, file)), 0, false, false)
	return f
}

// MakeFilePath returns file if it is absolute, or file inside dir.
func MakeFilePath(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// Chain tries each enumerator in order and returns the first family found.
type Chain []fontsel.Enumerator

// Family implements fontsel.Enumerator.
func (c Chain) Family(reg *family.Registry, name string) *family.Family {
	for _, e := range c {
		if f := e.Family(reg, name); f != nil {
			return f
		}
	}
	return nil
}
