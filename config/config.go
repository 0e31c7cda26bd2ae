// Package config loads resolver settings from a TOML file.
//
// A minimal file:
//
//	engine = "gotext"
//	default_family = "DejaVu Serif"
//	font_dirs = ["/usr/share/fonts", "~/.fonts"]
//
//	[[fallback]]
//	script = "Han"
//	families = ["Noto Sans CJK SC", "WenQuanYi Zen Hei"]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/gogpu/fontsel"
	"github.com/gogpu/fontsel/platform"
)

// ErrBadScript is returned for a fallback entry naming an unknown script.
var ErrBadScript = errors.New("config: unknown script")

// Fallback lists the families tried for the codepoints of one script.
// The script is given by name or by a sample character.
type Fallback struct {
	Script   string   `toml:"script"`
	Sample   string   `toml:"sample"`
	Families []string `toml:"families"`
}

// File is the content of a configuration file. Zero values keep the
// resolver defaults.
type File struct {
	Engine            string     `toml:"engine"`
	Scale             int        `toml:"scale"`
	OutputHeight      int        `toml:"output_height"`
	DefaultFamily     string     `toml:"default_family"`
	MonospaceFamily   string     `toml:"monospace_family"`
	DefaultFamilies   []string   `toml:"default_families"`
	FontFile          string     `toml:"font_file"`
	MonospaceFontFile string     `toml:"monospace_font_file"`
	FontDirs          []string   `toml:"font_dirs"`
	FontPatterns      []string   `toml:"font_patterns"`
	Fallback          []Fallback `toml:"fallback"`
}

// Load reads and parses a configuration file.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a configuration. Unknown keys are an error.
func Parse(r io.Reader) (*File, error) {
	var f File
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		return nil, err
	}
	if _, err := f.ScriptTable(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ScriptTable returns the fallback table of the file, or nil if the file
// defines no fallbacks.
func (f *File) ScriptTable() (platform.ScriptTable, error) {
	if len(f.Fallback) == 0 {
		return nil, nil
	}
	table := make(platform.ScriptTable, len(f.Fallback))
	for _, fb := range f.Fallback {
		script, err := fb.script()
		if err != nil {
			return nil, err
		}
		table[script] = append(table[script], fb.Families...)
	}
	return table, nil
}

func (fb Fallback) script() (language.Script, error) {
	if fb.Sample != "" {
		r, _ := utf8.DecodeRuneInString(fb.Sample)
		return language.LookupScript(r), nil
	}
	if s, ok := platform.ScriptByName(fb.Script); ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadScript, fb.Script)
}

// Options converts the file to resolver options. Font directories are
// scanned lazily, logging unreadable files to logger.
func (f *File) Options(logger *slog.Logger) ([]fontsel.Option, error) {
	table, err := f.ScriptTable()
	if err != nil {
		return nil, err
	}

	var opts []fontsel.Option
	if f.Engine != "" {
		opts = append(opts, fontsel.WithEngine(f.Engine))
	}
	if f.Scale != 0 {
		opts = append(opts, fontsel.WithScale(f.Scale))
	}
	if f.OutputHeight != 0 {
		opts = append(opts, fontsel.WithOutputHeight(f.OutputHeight))
	}
	if f.DefaultFamilies != nil {
		opts = append(opts, fontsel.WithDefaultFamilies(f.DefaultFamilies...))
	}
	if table != nil {
		opts = append(opts, fontsel.WithSystemFallbacks(table))
	}
	opts = append(opts,
		fontsel.WithDefaultFamily(f.DefaultFamily, f.MonospaceFamily),
		fontsel.WithEnumerator(f.enumerator(logger)))
	if logger != nil {
		opts = append(opts, fontsel.WithLogger(logger))
	}
	return opts, nil
}

// enumerator chains the font directories before the static default files.
func (f *File) enumerator(logger *slog.Logger) fontsel.Enumerator {
	var chain platform.Chain
	if len(f.FontDirs) > 0 {
		dirOpts := []platform.DirectoryOption{platform.WithLogger(logger)}
		if len(f.FontPatterns) > 0 {
			dirOpts = append(dirOpts, platform.WithPatterns(f.FontPatterns...))
		}
		chain = append(chain, platform.NewDirectory(expandDirs(f.FontDirs), dirOpts...))
	}

	family := orDefault(f.DefaultFamily, fontsel.DefaultFamily)
	mono := orDefault(f.MonospaceFamily, fontsel.DefaultMonospaceFamily)
	chain = append(chain, platform.NewStaticMap(map[string]string{
		family: orDefault(f.FontFile, platform.DefaultFontFile),
		mono:   orDefault(f.MonospaceFontFile, platform.DefaultMonospaceFontFile),
	}))
	return chain
}

func expandDirs(dirs []string) []string {
	home, _ := os.UserHomeDir()
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if home != "" && (d == "~" || strings.HasPrefix(d, "~/")) {
			d = filepath.Join(home, d[1:])
		}
		out = append(out, d)
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
