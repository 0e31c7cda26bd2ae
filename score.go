package fontsel

import (
	"github.com/gogpu/fontsel/engine"
	"github.com/gogpu/fontsel/family"
)

// Scoring weights of the best-font heuristic. Coverage outweighs any
// style match: a variant of the wrong style that has the glyph beats a
// matching style that does not.
const (
	ScoreCoverage = 1000
	ScoreBold     = 100
	ScoreItalic   = 10
)

// Score returns the score of a variant for the desired style. covers
// reports whether the variant has the requested glyph.
func Score(f *family.Font, bold, italic, covers bool) int {
	score := 0
	if covers {
		score += ScoreCoverage
	}
	if f.Bold == bold {
		score += ScoreBold
	}
	if f.Italic == italic {
		score += ScoreItalic
	}
	return score
}

// bestFont returns the variant of fam that best matches the style.
// The first variant wins ties and is returned when nothing scores.
// A zero codepoint skips the coverage check.
func (r *Resolver) bestFont(fam *family.Family, bold, italic bool, cp rune) *family.Font {
	best := fam.First()
	bestScore := 0
	for _, f := range fam.Fonts() {
		covers := cp != 0 && r.FaceForFont(f, cp) != nil
		if score := Score(f, bold, italic, covers); score > bestScore {
			best, bestScore = f, score
		}
	}
	return best
}

// FaceForFont returns the face of a variant if it has a glyph for cp.
//
// The face is opened on first use at the default style and stored on
// the variant; the first successful open is kept. Nil is returned when
// the face cannot be opened or lacks the glyph.
func (r *Resolver) FaceForFont(f *family.Font, cp rune) engine.Face {
	if f == nil || r.closed {
		return nil
	}
	face := f.Face()
	if face == nil {
		opened, err := r.acquire(f.Source, f.Index, r.config.defaultStyle)
		if err != nil {
			return nil
		}
		f.SetFace(opened)
		face = f.Face()
	}
	if !face.HasGlyph(cp) {
		return nil
	}
	return face
}
