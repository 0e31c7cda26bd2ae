// Package facecache opens font faces and caches them by composite identity.
//
// A face is identified by its Key: the source, the face index inside the
// source, and the effective pixel size and width. The cache never opens
// the same Key twice while it lives; failed opens are not cached, so a
// later identical request retries.
//
// Cache is not safe for concurrent use.
package facecache

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/fontsel/engine"
	"github.com/gogpu/fontsel/internal/logging"
)

// Option configures a Cache.
type Option func(*config)

type config struct {
	attachments Attachments
	streams     Streams
	logger      *slog.Logger
	open        func(path string) (engine.Resource, error)
}

func defaultConfig() config {
	return config{
		logger: logging.Nop(),
		open:   readFile,
	}
}

// WithAttachments sets the provider of SourceAttachment data.
func WithAttachments(a Attachments) Option {
	return func(c *config) {
		c.attachments = a
	}
}

// WithStreams sets the provider of SourceStream data.
func WithStreams(s Streams) Option {
	return func(c *config) {
		c.streams = s
	}
}

// WithLogger sets the logger used to report open failures.
// A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = logging.OrNop(l)
	}
}

// WithFileOpener replaces the loader of SourceFile data.
func WithFileOpener(open func(path string) (engine.Resource, error)) Option {
	return func(c *config) {
		if open != nil {
			c.open = open
		}
	}
}

// Cache maps Keys to opened faces. The cache owns every face it stores.
type Cache struct {
	engine engine.Engine
	faces  map[Key]engine.Face
	config config
}

// New creates an empty cache that opens faces with e.
func New(e engine.Engine, opts ...Option) *Cache {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Cache{
		engine: e,
		faces:  make(map[Key]engine.Face),
		config: cfg,
	}
}

// SetAttachments replaces the attachment provider.
// Faces already opened from attachments stay cached.
func (c *Cache) SetAttachments(a Attachments) {
	c.config.attachments = a
}

// Lookup returns the cached face for key, if any.
func (c *Cache) Lookup(key Key) (engine.Face, bool) {
	face, ok := c.faces[key]
	return face, ok
}

// Acquire returns the face for (src, index) at size, opening it on a miss.
//
// A freshly opened face must expose a Unicode charmap and accept the
// pixel size; otherwise it is closed and an *OpenError is returned.
func (c *Cache) Acquire(src Source, index int, size PixelSize) (engine.Face, error) {
	key := NewKey(src, index, size)
	if !size.Valid() {
		return nil, &OpenError{Key: key, Err: ErrInvalidSize}
	}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}

	face, err := c.open(src, index)
	if err != nil {
		return nil, c.fail(key, err)
	}
	if !face.SelectUnicodeCharmap() {
		_ = face.Close()
		return nil, c.fail(key, ErrNoCharmap)
	}
	if !face.SetPixelSize(size.Width, size.Height) {
		_ = face.Close()
		return nil, c.fail(key, ErrPixelSize)
	}

	c.faces[key] = face
	return face, nil
}

// open loads the resource of src and opens the face at index.
func (c *Cache) open(src Source, index int) (engine.Face, error) {
	var (
		res engine.Resource
		err error
	)
	switch src.Kind {
	case SourceAttachment:
		res, err = c.attachment(src.Ref)
	case SourceStream:
		if c.config.streams == nil {
			return nil, ErrNoStreams
		}
		res, err = c.config.streams.Stream(src.Ref)
	default:
		res, err = c.config.open(src.Path)
	}
	if err != nil {
		return nil, err
	}
	return c.engine.Open(res, index)
}

func (c *Cache) attachment(i int) (engine.Resource, error) {
	a := c.config.attachments
	if a == nil || i < 0 || i >= a.Len() {
		return nil, fmt.Errorf("%w: %d", ErrBadAttachment, i)
	}
	data, err := a.Attachment(i)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, engine.ErrEmptyFontData
	}
	return bytes.NewReader(data), nil
}

func (c *Cache) fail(key Key, err error) error {
	c.config.logger.Warn("facecache: open failed",
		slog.String("key", key.String()),
		slog.String("error", err.Error()))
	return &OpenError{Key: key, Err: err}
}

// Len returns the number of cached faces.
func (c *Cache) Len() int {
	return len(c.faces)
}

// Close closes every cached face and empties the cache.
func (c *Cache) Close() error {
	var errs []error
	for key, face := range c.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, fmt.Errorf("facecache: close %s: %w", key, err))
		}
	}
	clear(c.faces)
	return errors.Join(errs...)
}
