package platform

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"

	"github.com/gogpu/fontsel/engine"
	"github.com/gogpu/fontsel/facecache"
	"github.com/gogpu/fontsel/family"
	"github.com/gogpu/fontsel/internal/logging"
)

// DefaultPattern matches font files anywhere below a directory.
const DefaultPattern = "**/*.{ttf,otf,ttc,otc,TTF,OTF,TTC,OTC}"

// DirectoryOption configures a Directory.
type DirectoryOption func(*Directory)

// WithPatterns replaces the file patterns matched below each root.
func WithPatterns(patterns ...string) DirectoryOption {
	return func(d *Directory) {
		d.patterns = append([]string(nil), patterns...)
	}
}

// WithLogger sets the logger reporting unreadable font files.
func WithLogger(l *slog.Logger) DirectoryOption {
	return func(d *Directory) {
		if l != nil {
			d.logger = l
		}
	}
}

type face struct {
	path string
	desc engine.Description
}

// Directory discovers families by scanning font directories. The scan
// runs once, on the first lookup or an explicit Scan.
type Directory struct {
	roots    []string
	patterns []string
	logger   *slog.Logger
	fold     cases.Caser

	scanned bool
	faces   map[string][]face
	order   []string
}

// NewDirectory creates a scanner over roots.
func NewDirectory(roots []string, opts ...DirectoryOption) *Directory {
	d := &Directory{
		roots:    append([]string(nil), roots...),
		patterns: []string{DefaultPattern},
		logger:   logging.Nop(),
		fold:     cases.Fold(),
		faces:    make(map[string][]face),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Scan walks the roots and indexes every face by family name.
// Missing roots are skipped. Scan is a no-op after the first call.
func (d *Directory) Scan() {
	if d.scanned {
		return
	}
	d.scanned = true

	seen := make(map[string]bool)
	for _, root := range d.roots {
		fsys := os.DirFS(root)
		var matches []string
		for _, pattern := range d.patterns {
			m, err := doublestar.Glob(fsys, pattern)
			if err != nil {
				d.logger.Warn("platform: bad font pattern",
					slog.String("pattern", pattern),
					slog.String("error", err.Error()))
				continue
			}
			matches = append(matches, m...)
		}
		slices.Sort(matches)
		for _, m := range matches {
			path := filepath.Join(root, filepath.FromSlash(m))
			if seen[path] {
				continue
			}
			seen[path] = true
			d.index(path)
		}
	}
	d.logger.Debug("platform: scanned font directories",
		slog.Int("roots", len(d.roots)),
		slog.Int("families", len(d.order)))
}

// index describes the faces of one font file.
func (d *Directory) index(path string) {
	// #nosec G304 -- path comes from scanning configured font directories
	f, err := os.Open(path)
	if err != nil {
		d.logger.Warn("platform: cannot open font", slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	defer func() { _ = f.Close() }()

	descs, err := engine.DescribeAll(f)
	if err != nil {
		d.logger.Warn("platform: cannot parse font", slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	for _, desc := range descs {
		if desc.Family == "" {
			continue
		}
		key := d.fold.String(desc.Family)
		if _, ok := d.faces[key]; !ok {
			d.order = append(d.order, desc.Family)
		}
		d.faces[key] = append(d.faces[key], face{path: path, desc: desc})
	}
}

// Families returns the discovered family names in discovery order.
func (d *Directory) Families() []string {
	d.Scan()
	return slices.Clone(d.order)
}

// Family implements fontsel.Enumerator.
func (d *Directory) Family(reg *family.Registry, name string) *family.Family {
	if f := reg.Lookup(name); f != nil {
		return f
	}
	d.Scan()
	faces := d.faces[d.fold.String(name)]
	if len(faces) == 0 {
		return nil
	}
	f, _ := reg.Register(name)
	for _, fc := range faces {
		f.AddFont(facecache.FileSource(fc.path), fc.desc.Index, fc.desc.Bold, fc.desc.Italic)
	}
	return f
}
