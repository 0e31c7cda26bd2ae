package fontsel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/fontsel/engine"
	"github.com/gogpu/fontsel/family"
	"github.com/gogpu/fontsel/familyspec"
)

// SelectAndLoad returns the face to render cp with style.
//
// The family is chosen by SelectFont; the chosen variant is then opened
// at the size and width of style. A zero cp selects by style only.
//
// A variant that cannot be opened at the requested style is reported like
// a missing font: the error matches ErrNoFace and wraps the
// *facecache.OpenError.
func (r *Resolver) SelectAndLoad(style Style, cp rune) (engine.Face, error) {
	f, err := r.SelectFont(style, cp)
	if err != nil {
		if errors.Is(err, ErrNoFace) {
			r.logger.Warn("fontsel: no font found",
				slog.String("family", style.familySpec()),
				slog.String("codepoint", formatCodepoint(cp)))
		}
		return nil, err
	}
	face, err := r.acquire(f.Source, f.Index, style)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoFace, err)
	}
	return face, nil
}

// SelectFont returns the variant that SelectAndLoad would open.
//
// With a codepoint, the requested families are searched in four tiers:
//  1. attachment families and installed families of each requested name
//  2. every attachment family
//  3. platform fallbacks of each requested name, if configured
//  4. the default fallback list
//
// The first family whose first variant has the glyph wins. Without a
// codepoint the first requested family is used, looked up among the
// attachment families before the installed ones, or the default family if
// it is unknown. The best variant of the family is then scored.
func (r *Resolver) SelectFont(style Style, cp rune) (*family.Font, error) {
	if r.closed {
		return nil, ErrClosed
	}
	spec := style.familySpec()
	names := familyspec.Parse(spec)
	if len(names) == 0 {
		return nil, ErrNoFamily
	}

	var fam *family.Family
	if cp != 0 {
		if fam = r.searchTiers(names, cp); fam == nil {
			return nil, &NotFoundError{Family: spec, Codepoint: cp}
		}
	} else {
		fam = r.familyByName(names[0])
	}

	if fam == nil || fam.Len() == 0 {
		fam = r.lookup(r.defaultFamilyFor(style))
	}
	if fam == nil || fam.Len() == 0 {
		return nil, &NotFoundError{Family: spec, Codepoint: cp}
	}

	return r.bestFont(fam, style.Flags.Has(Bold), style.Flags.Has(Italic), cp), nil
}

// searchTiers runs the tiered fallback search for cp.
func (r *Resolver) searchTiers(names []string, cp rune) *family.Family {
	attachments, hasAttachments := r.reg.List(family.ListAttachments)

	// Only the first variant of a requested family is probed.
	for _, name := range names {
		if hasAttachments {
			if fam := r.searchByFamilyName(attachments, name, cp); fam != nil {
				return r.found(fam, "attachment family", cp)
			}
		}
		if fam := r.lookup(name); fam != nil && fam.Len() > 0 && r.FaceForFont(fam.First(), cp) != nil {
			return r.found(fam, "family", cp)
		}
	}

	if hasAttachments {
		if fam := r.searchFallbacks(attachments, cp); fam != nil {
			return r.found(fam, "attachment fallback", cp)
		}
	}

	if r.config.systemFallbacks != nil {
		for _, name := range names {
			if fam := r.searchFallbacks(r.systemList(name, cp), cp); fam != nil && fam.Len() > 0 {
				return r.found(fam, "system fallback", cp)
			}
		}
	}

	if fam := r.searchFallbacks(r.defaultList(), cp); fam != nil {
		return r.found(fam, "default fallback", cp)
	}
	return nil
}

func (r *Resolver) found(fam *family.Family, tier string, cp rune) *family.Family {
	r.logger.Debug("fontsel: family selected",
		slog.String("tier", tier),
		slog.String("family", fam.Name()),
		slog.String("codepoint", formatCodepoint(cp)))
	return fam
}

// defaultFamilyFor returns the default family name for style.
func (r *Resolver) defaultFamilyFor(style Style) string {
	if style.Flags.Has(Monospaced) {
		return r.config.defaultMono
	}
	return r.config.defaultFamily
}
