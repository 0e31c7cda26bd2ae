package engine

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// Description summarizes one face of a font resource.
type Description struct {
	// Index is the face index inside the resource.
	Index int

	// Family is the family name from the name table.
	// Empty if the font does not carry one.
	Family string

	// Subfamily is the style name, e.g. "Bold Italic".
	Subfamily string

	Bold   bool
	Italic bool
}

// Style returns the canonical style label of the description.
func (d Description) Style() string {
	return StyleName(d.Bold, d.Italic)
}

// StyleName returns "Regular", "Bold", "Italic" or "Bold Italic".
func StyleName(bold, italic bool) string {
	switch {
	case bold && italic:
		return "Bold Italic"
	case bold:
		return "Bold"
	case italic:
		return "Italic"
	default:
		return "Regular"
	}
}

// DescribeAll describes every face of the resource.
// Name lookups that fail leave the corresponding fields empty; only a
// resource that cannot be parsed at all is an error.
func DescribeAll(r Resource) ([]Description, error) {
	c, err := sfnt.ParseCollectionReaderAt(r)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to parse font: %w", err)
	}

	var buf sfnt.Buffer
	descs := make([]Description, 0, c.NumFonts())
	for i := 0; i < c.NumFonts(); i++ {
		f, err := c.Font(i)
		if err != nil {
			continue
		}
		descs = append(descs, describe(f, &buf, i))
	}
	return descs, nil
}

func describe(f *sfnt.Font, buf *sfnt.Buffer, index int) Description {
	d := Description{Index: index}
	if name, err := f.Name(buf, sfnt.NameIDFamily); err == nil {
		d.Family = strings.TrimSpace(name)
	}
	if name, err := f.Name(buf, sfnt.NameIDSubfamily); err == nil {
		d.Subfamily = strings.TrimSpace(name)
	}
	d.Bold, d.Italic = parseSubfamily(d.Subfamily)
	return d
}

// parseSubfamily derives style flags from a subfamily name.
func parseSubfamily(s string) (bold, italic bool) {
	s = strings.ToLower(s)
	bold = strings.Contains(s, "bold") || strings.Contains(s, "black") || strings.Contains(s, "heavy")
	italic = strings.Contains(s, "italic") || strings.Contains(s, "oblique")
	return bold, italic
}
