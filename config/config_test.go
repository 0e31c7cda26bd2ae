package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontsel"
	"github.com/gogpu/fontsel/platform"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	const src = `
engine = "gotext"
scale = 150
output_height = 720
default_family = "Go"
monospace_family = "Go Mono"
default_families = ["Go", "DejaVu Sans"]
font_file = "/opt/fonts/Default.ttf"
font_dirs = ["/usr/share/fonts"]

[[fallback]]
script = "Han"
families = ["Noto Sans CJK SC"]

[[fallback]]
sample = "中"
families = ["WenQuanYi Zen Hei"]

[[fallback]]
script = "cyrillic"
families = ["DejaVu Sans"]
`
	f, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &File{
		Engine:          "gotext",
		Scale:           150,
		OutputHeight:    720,
		DefaultFamily:   "Go",
		MonospaceFamily: "Go Mono",
		DefaultFamilies: []string{"Go", "DejaVu Sans"},
		FontFile:        "/opt/fonts/Default.ttf",
		FontDirs:        []string{"/usr/share/fonts"},
		Fallback: []Fallback{
			{Script: "Han", Families: []string{"Noto Sans CJK SC"}},
			{Sample: "中", Families: []string{"WenQuanYi Zen Hei"}},
			{Script: "cyrillic", Families: []string{"DejaVu Sans"}},
		},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}

	table, err := f.ScriptTable()
	if err != nil {
		t.Fatalf("ScriptTable failed: %v", err)
	}
	wantTable := platform.ScriptTable{
		language.Han:      {"Noto Sans CJK SC", "WenQuanYi Zen Hei"},
		language.Cyrillic: {"DejaVu Sans"},
	}
	if diff := cmp.Diff(wantTable, table); diff != "" {
		t.Errorf("ScriptTable mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", `colour = "red"`},
		{"bad syntax", `engine = `},
		{"wrong type", `scale = "big"`},
		{"unknown script", "[[fallback]]\nscript = \"Klingon\"\nfamilies = [\"x\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.src)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.src)
			}
		})
	}

	_, err := Parse(strings.NewReader("[[fallback]]\nscript = \"Klingon\""))
	if !errors.Is(err, ErrBadScript) {
		t.Errorf("error = %v, want ErrBadScript", err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadEmpty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.toml", nil)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(&File{}, f); diff != "" {
		t.Errorf("empty config mismatch (-want +got):\n%s", diff)
	}
	opts, err := f.Options(nil)
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	r := fontsel.New(opts...)
	defer func() { _ = r.Close() }()
}

func TestOptionsResolve(t *testing.T) {
	fonts := t.TempDir()
	writeFile(t, fonts, "Go-Regular.ttf", goregular.TTF)
	writeFile(t, fonts, "Go-Bold.ttf", gobold.TTF)
	single := writeFile(t, t.TempDir(), "Single.ttf", goregular.TTF)

	dir := t.TempDir()
	path := writeFile(t, dir, "fontsel.toml", []byte(`
engine = "gotext"
default_family = "Fixed"
default_families = ["Go"]
font_file = "`+filepath.ToSlash(single)+`"
font_dirs = ["`+filepath.ToSlash(fonts)+`"]
`))

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	opts, err := f.Options(nil)
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	r := fontsel.New(opts...)
	defer func() { _ = r.Close() }()

	tests := []struct {
		name  string
		style fontsel.Style
		cp    rune
		want  string
	}{
		{"directory family", fontsel.Style{FontName: "Go", Flags: fontsel.Bold}, 'A', "Go-Bold.ttf"},
		{"default fallback", fontsel.Style{FontName: "Nothing"}, 'A', "Go-Regular.ttf"},
		{"static default family", fontsel.Style{FontName: "Nothing"}, 0, "Single.ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			font, err := r.SelectFont(tt.style, tt.cp)
			if err != nil {
				t.Fatalf("SelectFont failed: %v", err)
			}
			if got := filepath.Base(font.Source.Path); got != tt.want {
				t.Errorf("selected %s, want %s", got, tt.want)
			}
		})
	}

	face, err := r.SelectAndLoad(fontsel.Style{FontName: "Go", FontSize: 18}, 'A')
	if err != nil {
		t.Fatalf("SelectAndLoad failed: %v", err)
	}
	if w, h := face.PixelSize(); w != 18 || h != 18 {
		t.Errorf("PixelSize() = %d, %d, want 18, 18", w, h)
	}
}
