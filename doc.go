// Package fontsel resolves which font face renders a character.
//
// # Overview
//
// Given a style (a font family specification such as
// `Arial, "DejaVu Sans"`, bold/italic flags and a size) and a codepoint,
// a Resolver picks a concrete face able to render the codepoint and
// returns it opened at the requested size. Opened faces are cached by
// (source, face index, pixel size, pixel width), so the same face is
// never opened twice.
//
// # Quick Start
//
//	dir := platform.NewDirectory([]string{"/usr/share/fonts"})
//	r := fontsel.New(
//	    fontsel.WithEnumerator(dir),
//	    fontsel.WithSystemFallbacks(platform.DefaultScriptTable()),
//	)
//	defer r.Close()
//
//	face, err := r.SelectAndLoad(fontsel.Style{FontName: "DejaVu Sans", FontSize: 24}, 'ж')
//
// # Resolution
//
// The requested families are tried first, then the document's embedded
// fonts, then platform fallbacks, then the default fallback list. Within
// a family the variant is scored: glyph coverage (1000) dominates a bold
// match (100), which dominates an italic match (10).
//
// # Architecture
//
//   - familyspec: family specification parsing
//   - family: registry arena of families and fonts, fallback lists
//   - facecache: face opening and the composite-key face cache
//   - engine: font engine backends (golang.org/x/image, go-text/typesetting)
//   - platform: family enumeration and fallback collaborators
//   - config: TOML configuration
//
// # Concurrency
//
// A Resolver and everything it owns is single-goroutine. Use one Resolver
// per rendering goroutine.
package fontsel
