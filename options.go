package fontsel

import (
	"log/slog"

	"github.com/gogpu/fontsel/engine"
	"github.com/gogpu/fontsel/facecache"
)

// Default family names.
const (
	// DefaultFamily is substituted when a style-only request names no
	// known family.
	DefaultFamily = "Serif Bold"

	// DefaultMonospaceFamily plays the same role for monospaced styles.
	DefaultMonospaceFamily = "Monospace"
)

// DefaultFallbackFamilies is the default fallback list, tried last.
var DefaultFallbackFamilies = []string{
	"DejaVu Sans",
	"Noto Sans",
	"Liberation Sans",
	"FreeSans",
}

// Option configures a Resolver.
type Option func(*config)

// config holds Resolver configuration.
type config struct {
	enumerator      Enumerator
	systemFallbacks SystemFallbacks
	defaultFamilies []string
	defaultFamily   string
	defaultMono     string
	defaultStyle    Style
	scale           int
	outputHeight    int
	engineName      string
	streams         facecache.Streams
	logger          *slog.Logger
}

// defaultConfig returns the default resolver configuration.
func defaultConfig() config {
	return config{
		defaultFamilies: DefaultFallbackFamilies,
		defaultFamily:   DefaultFamily,
		defaultMono:     DefaultMonospaceFamily,
		scale:           100,
		outputHeight:    0,
		engineName:      engine.DefaultName,
	}
}

// WithEnumerator sets the family enumeration collaborator.
func WithEnumerator(e Enumerator) Option {
	return func(c *config) {
		c.enumerator = e
	}
}

// WithSystemFallbacks sets the platform fallback collaborator.
// Without one the system fallback tier is skipped.
func WithSystemFallbacks(s SystemFallbacks) Option {
	return func(c *config) {
		c.systemFallbacks = s
	}
}

// WithDefaultFamilies sets the family names of the default fallback list.
func WithDefaultFamilies(names ...string) Option {
	return func(c *config) {
		c.defaultFamilies = append([]string(nil), names...)
	}
}

// WithDefaultFamily sets the families substituted for style-only requests.
// An empty name keeps the current value.
func WithDefaultFamily(family, monospace string) Option {
	return func(c *config) {
		if family != "" {
			c.defaultFamily = family
		}
		if monospace != "" {
			c.defaultMono = monospace
		}
	}
}

// WithDefaultStyle sets the style at which variants are opened for
// coverage checks.
func WithDefaultStyle(s Style) Option {
	return func(c *config) {
		c.defaultStyle = s
	}
}

// WithScale sets the global size scale in percent. The default is 100.
func WithScale(percent int) Option {
	return func(c *config) {
		c.scale = percent
	}
}

// WithOutputHeight sets the output height used by relative font sizes.
func WithOutputHeight(h int) Option {
	return func(c *config) {
		c.outputHeight = h
	}
}

// WithEngine selects the font engine by registered name.
// Unknown names fall back to the default "ximage" engine.
func WithEngine(name string) Option {
	return func(c *config) {
		c.engineName = name
	}
}

// WithStreams sets the provider of platform font streams.
func WithStreams(s facecache.Streams) Option {
	return func(c *config) {
		c.streams = s
	}
}

// WithLogger sets the resolver logger. By default the package logger
// (see SetLogger) at construction time is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
