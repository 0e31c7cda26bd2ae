package family

import (
	"fmt"
	"io"
)

// Dump writes the discovered families and every fallback list to w.
// With fonts set, each variant is listed under its family. maxFamilies
// limits the families printed per forest; a negative value prints all.
func (r *Registry) Dump(w io.Writer, fonts bool, maxFamilies int) error {
	if _, err := fmt.Fprintln(w, "Key: registry"); err != nil {
		return err
	}
	if err := r.DumpForest(w, &r.forest, fonts, maxFamilies); err != nil {
		return err
	}
	for _, key := range r.Lists() {
		if _, err := fmt.Fprintf(w, "Key: %s\n", key); err != nil {
			return err
		}
		if err := r.DumpForest(w, r.lists[key], fonts, maxFamilies); err != nil {
			return err
		}
	}
	return nil
}

// DumpForest writes the families of one forest to w.
func (r *Registry) DumpForest(w io.Writer, f *Forest, fonts bool, maxFamilies int) error {
	n := 0
	for fam := range r.Walk(f) {
		if maxFamilies >= 0 && n >= maxFamilies {
			break
		}
		n++

		line := fmt.Sprintf("\t[%d] %s", fam.id, fam.name)
		if alias, ok := fam.Alias(); ok {
			line += fmt.Sprintf(" -> [%d]", alias)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if !fonts {
			continue
		}
		for _, font := range fam.fonts {
			if _, err := fmt.Fprintf(w, "\t\t(%s): %s - %d\n", font.Style(), font.Source, font.Index); err != nil {
				return err
			}
		}
	}
	return nil
}
