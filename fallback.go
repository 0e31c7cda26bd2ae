package fontsel

import (
	"log/slog"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/fontsel/family"
)

// searchFallbacks returns the first family of list whose first variant
// has a glyph for cp. Families still waiting for their variants are
// populated by name; those that stay empty are skipped.
func (r *Resolver) searchFallbacks(list *family.Forest, cp rune) *family.Family {
	for fam := range r.reg.Walk(list) {
		if fam.Len() == 0 {
			src := r.lookup(fam.Name())
			if src == nil || !r.reg.Populate(fam, src) {
				continue
			}
		}
		if r.FaceForFont(fam.First(), cp) != nil {
			return fam
		}
	}
	return nil
}

// searchByFamilyName returns the family of list named name whose first
// variant has a glyph for cp.
func (r *Resolver) searchByFamilyName(list *family.Forest, name string, cp rune) *family.Family {
	key := r.reg.Key(name)
	for fam := range r.reg.Walk(list) {
		if fam.Name() == key && fam.Len() > 0 && r.FaceForFont(fam.First(), cp) != nil {
			return fam
		}
	}
	return nil
}

// familyByName returns the attachment family named name, or else the
// installed family of that name.
func (r *Resolver) familyByName(name string) *family.Family {
	if attachments, ok := r.reg.List(family.ListAttachments); ok {
		key := r.reg.Key(name)
		for fam := range r.reg.Walk(attachments) {
			if fam.Name() == key && fam.Len() > 0 {
				return fam
			}
		}
	}
	return r.lookup(name)
}

// defaultList returns the memoized default fallback list, building it
// from the configured default families on first use. Names that do not
// resolve to a family are left out.
func (r *Resolver) defaultList() *family.Forest {
	if list, ok := r.reg.List(family.ListDefault); ok {
		return list
	}
	list := family.NewForest()
	for _, name := range r.config.defaultFamilies {
		if fam := r.lookup(name); fam != nil {
			list.Append(fam.ID())
		}
	}
	r.logger.Debug("fontsel: built default fallback list",
		slog.Int("configured", len(r.config.defaultFamilies)),
		slog.Int("families", list.Len()))
	return r.reg.SetList(family.ListDefault, list)
}

// systemList returns the memoized system fallback list for a family name
// and the script of cp. Its families are placeholders populated lazily by
// searchFallbacks.
func (r *Resolver) systemList(name string, cp rune) *family.Forest {
	key := family.ScriptList(name, language.LookupScript(cp))
	if list, ok := r.reg.List(key); ok {
		return list
	}
	list := family.NewForest()
	for _, n := range r.config.systemFallbacks.Fallbacks(name, cp) {
		if n == "" {
			continue
		}
		list.Append(r.reg.NewFamily(n).ID())
	}
	r.logger.Debug("fontsel: built system fallback list",
		slog.String("key", string(key)),
		slog.Int("families", list.Len()))
	return r.reg.SetList(key, list)
}
