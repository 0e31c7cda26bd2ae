package fontsel

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/gogpu/fontsel/engine"
	"github.com/gogpu/fontsel/facecache"
	"github.com/gogpu/fontsel/family"
)

var (
	// ErrAttachmentsLoaded is returned when LoadAttachments is called twice.
	ErrAttachmentsLoaded = errors.New("fontsel: attachments already loaded")

	// ErrNilAttachments is returned by LoadAttachments for a nil provider.
	ErrNilAttachments = errors.New("fontsel: nil attachment provider")
)

// Enumerator looks up installed or configured families by name.
//
// Family must match name case-insensitively, create the family through
// reg (Register keeps the name cache consistent) and add variants with
// Family.AddFont so that regular faces come first. It returns nil when no
// such family exists.
type Enumerator interface {
	Family(reg *family.Registry, name string) *family.Family
}

// SystemFallbacks proposes family names likely to cover a codepoint.
// The lists are memoized per family name and script of the codepoint.
type SystemFallbacks interface {
	Fallbacks(name string, r rune) []string
}

// Resolver picks and opens the face used to render a codepoint.
//
// A Resolver owns its registry and face cache for its whole lifetime.
// It is not safe for concurrent use: hosts that render on several
// goroutines create one Resolver per goroutine.
type Resolver struct {
	reg    *family.Registry
	faces  *facecache.Cache
	config config
	logger *slog.Logger
	closed bool
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = Logger()
	}

	cacheOpts := []facecache.Option{facecache.WithLogger(logger)}
	if cfg.streams != nil {
		cacheOpts = append(cacheOpts, facecache.WithStreams(cfg.streams))
	}

	return &Resolver{
		reg:    family.NewRegistry(),
		faces:  facecache.New(engine.Get(cfg.engineName), cacheOpts...),
		config: cfg,
		logger: logger,
	}
}

// Registry returns the family registry of the resolver.
func (r *Resolver) Registry() *family.Registry {
	return r.reg
}

// Faces returns the face cache of the resolver.
func (r *Resolver) Faces() *facecache.Cache {
	return r.faces
}

// LoadAttachments registers the fonts embedded in a document.
//
// Every face of every attachment is described and grouped by family name
// into the attachments fallback list. Attachments that cannot be parsed
// are skipped. Faces without a family name each get their own family.
//
// Attachment families stay out of the name cache: they are found by name
// in the first search tier and for style-only requests, and as fallbacks
// in the second tier.
func (r *Resolver) LoadAttachments(att facecache.Attachments) error {
	if r.closed {
		return ErrClosed
	}
	if att == nil {
		return ErrNilAttachments
	}
	if _, ok := r.reg.List(family.ListAttachments); ok {
		return ErrAttachmentsLoaded
	}
	r.faces.SetAttachments(att)

	list := family.NewForest()
	byName := make(map[string]*family.Family)
	for i := 0; i < att.Len(); i++ {
		data, err := att.Attachment(i)
		if err != nil || len(data) == 0 {
			r.logger.Warn("fontsel: skipping font attachment", slog.Int("index", i))
			continue
		}
		descs, err := engine.DescribeAll(bytes.NewReader(data))
		if err != nil {
			r.logger.Warn("fontsel: skipping font attachment",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			continue
		}
		for _, d := range descs {
			key := r.reg.Key(d.Family)
			fam := byName[key]
			if fam == nil {
				fam = r.reg.NewFamily(d.Family)
				if key != "" {
					byName[key] = fam
				}
			}
			fam.AddFont(facecache.AttachmentSource(i), d.Index, d.Bold, d.Italic)
			list.Append(fam.ID())
		}
	}

	r.reg.SetList(family.ListAttachments, list)
	r.logger.Debug("fontsel: loaded font attachments",
		slog.Int("attachments", att.Len()),
		slog.Int("families", list.Len()))
	return nil
}

// Close closes every cached face and drops the registry.
// Close is idempotent.
func (r *Resolver) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.faces.Close()
	r.reg.Reset()
	return err
}

// lookup returns the family of the given name from the name cache or,
// failing that, from the enumerator.
func (r *Resolver) lookup(name string) *family.Family {
	if f := r.reg.Lookup(name); f != nil {
		return f
	}
	if r.config.enumerator == nil {
		return nil
	}
	return r.config.enumerator.Family(r.reg, name)
}

// acquire opens the face of a variant at the size of style.
func (r *Resolver) acquire(src facecache.Source, index int, style Style) (engine.Face, error) {
	return r.faces.Acquire(src, index, pixelSize(style, r.config.outputHeight, r.config.scale))
}
