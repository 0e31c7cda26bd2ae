// Command fontsel reports which font face renders each given codepoint.
//
// Usage:
//
//	fontsel [flags] U+4E2D 0x41 text
//
// Arguments of the form U+XXXX or 0xXXXX are codepoints; any other
// argument stands for each of its characters.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/fontsel"
	"github.com/gogpu/fontsel/config"
	"github.com/gogpu/fontsel/engine"
	"github.com/gogpu/fontsel/familyspec"
	"github.com/gogpu/fontsel/platform"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		dirs       = flag.String("dir", "", "comma-separated font directories to scan")
		family     = flag.String("family", "Sans", "family specification")
		monoFamily = flag.String("mono-family", "Monospace", "monospace family specification")
		bold       = flag.Bool("bold", false, "request a bold face")
		italic     = flag.Bool("italic", false, "request an italic face")
		mono       = flag.Bool("mono", false, "request a monospaced face")
		size       = flag.Int("size", 0, "font size in pixels (0 = default)")
		engineName = flag.String("engine", "", "font engine: ximage or gotext")
		scripts    = flag.Bool("scripts", false, "use the built-in per-script fallbacks")
		dump       = flag.Bool("dump", false, "dump the font registry after resolving")
		verbose    = flag.Bool("v", false, "log resolution steps to stderr")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	fontsel.SetLogger(logger)

	cfg := &config.File{}
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *dirs != "" {
		cfg.FontDirs = append(cfg.FontDirs, strings.Split(*dirs, ",")...)
	}
	if *engineName != "" {
		cfg.Engine = *engineName
	}

	opts, err := cfg.Options(logger)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if *scripts && len(cfg.Fallback) == 0 {
		opts = append(opts, fontsel.WithSystemFallbacks(platform.DefaultScriptTable()))
	}

	r := fontsel.New(opts...)
	defer func() { _ = r.Close() }()

	style := fontsel.Style{
		FontName:     *family,
		MonoFontName: *monoFamily,
		FontSize:     *size,
	}
	if *bold {
		style.Flags |= fontsel.Bold
	}
	if *italic {
		style.Flags |= fontsel.Italic
	}
	if *mono {
		style.Flags |= fontsel.Monospaced
	}

	cps, err := parseCodepoints(flag.Args())
	if err != nil {
		log.Fatalf("Invalid codepoint: %v", err)
	}
	if len(cps) == 0 {
		cps = []rune{0}
	}

	spec := style.FontName
	if *mono {
		spec = style.MonoFontName
	}
	fmt.Printf("family: %s (%s)\n", familyspec.Join(familyspec.Parse(spec)), engine.Get(cfg.Engine).Name())

	failed := false
	for _, cp := range cps {
		line, err := resolve(r, style, cp)
		if err != nil {
			failed = true
			fmt.Printf("%s\t%v\n", label(cp), err)
			continue
		}
		fmt.Println(line)
	}

	if *dump {
		if err := r.Registry().Dump(os.Stdout, true, -1); err != nil {
			log.Fatalf("Failed to dump registry: %v", err)
		}
	}
	if failed {
		_ = r.Close()
		os.Exit(1)
	}
}

// resolve selects and opens the face for cp and describes it.
func resolve(r *fontsel.Resolver, style fontsel.Style, cp rune) (string, error) {
	font, err := r.SelectFont(style, cp)
	if err != nil {
		return "", err
	}
	face, err := r.SelectAndLoad(style, cp)
	if err != nil {
		return "", err
	}
	w, h := face.PixelSize()
	name := ""
	if fam := r.Registry().Family(font.Family()); fam != nil {
		name = fam.Name()
	}
	return fmt.Sprintf("%s\t%s\t%s - %d\t(%s)\t%dx%d",
		label(cp), name, font.Source, font.Index, font.Style(), w, h), nil
}

func label(cp rune) string {
	if cp == 0 {
		return "-"
	}
	if strconv.IsPrint(cp) {
		return fmt.Sprintf("U+%04X %c", cp, cp)
	}
	return fmt.Sprintf("U+%04X", cp)
}

var errCodepointRange = errors.New("codepoint out of range")

// parseCodepoints expands arguments into codepoints.
func parseCodepoints(args []string) ([]rune, error) {
	var cps []rune
	for _, arg := range args {
		hex, ok := strings.CutPrefix(strings.ToUpper(arg), "U+")
		if !ok {
			hex, ok = strings.CutPrefix(strings.ToLower(arg), "0x")
		}
		if !ok || hex == "" {
			cps = append(cps, []rune(arg)...)
			continue
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", arg, err)
		}
		if v == 0 || v > 0x10FFFF {
			return nil, fmt.Errorf("%q: %w", arg, errCodepointRange)
		}
		cps = append(cps, rune(v))
	}
	return cps, nil
}
