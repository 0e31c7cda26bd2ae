package facecache

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceKind identifies where the bytes of a face come from.
type SourceKind uint8

const (
	// SourceFile is a font file on disk.
	SourceFile SourceKind = iota

	// SourceAttachment is a font embedded in the document being rendered.
	SourceAttachment

	// SourceStream is a platform font stream.
	SourceStream
)

// String returns the kind name.
func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceAttachment:
		return "attachment"
	case SourceStream:
		return "stream"
	default:
		return "SourceKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Textual prefixes of non-file sources.
const (
	attachmentPrefix = ":/"
	streamPrefix     = ":dw/"
)

// Source identifies font data. Source is comparable and is part of Key.
type Source struct {
	Kind SourceKind

	// Path is the file path of a SourceFile.
	Path string

	// Ref is the attachment or stream index of the other kinds.
	Ref int
}

// FileSource returns a source for the font file at path.
func FileSource(path string) Source {
	return Source{Kind: SourceFile, Path: path}
}

// AttachmentSource returns a source for attachment i.
func AttachmentSource(i int) Source {
	return Source{Kind: SourceAttachment, Ref: i}
}

// StreamSource returns a source for platform stream i.
func StreamSource(i int) Source {
	return Source{Kind: SourceStream, Ref: i}
}

// IsZero reports whether s identifies nothing.
func (s Source) IsZero() bool {
	return s == Source{}
}

// String renders s as a path, ":/N" for attachments or ":dw/N" for streams.
func (s Source) String() string {
	switch s.Kind {
	case SourceAttachment:
		return attachmentPrefix + strconv.Itoa(s.Ref)
	case SourceStream:
		return streamPrefix + strconv.Itoa(s.Ref)
	default:
		return s.Path
	}
}

// ParseSource parses the textual form produced by Source.String.
func ParseSource(s string) (Source, error) {
	parseRef := func(kind SourceKind, rest string) (Source, error) {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return Source{}, fmt.Errorf("facecache: invalid %s source %q", kind, s)
		}
		return Source{Kind: kind, Ref: n}, nil
	}

	switch {
	case s == "":
		return Source{}, fmt.Errorf("facecache: empty source")
	case strings.HasPrefix(s, streamPrefix):
		return parseRef(SourceStream, s[len(streamPrefix):])
	case strings.HasPrefix(s, attachmentPrefix):
		return parseRef(SourceAttachment, s[len(attachmentPrefix):])
	default:
		return FileSource(s), nil
	}
}

// PixelSize is the effective size a face is opened at.
type PixelSize struct {
	Height int
	Width  int
}

// Valid reports whether both dimensions are positive.
func (p PixelSize) Valid() bool {
	return p.Height > 0 && p.Width > 0
}

// Key identifies a uniquely configured opened face.
type Key struct {
	Source Source
	Index  int
	Size   int
	Width  int
}

// NewKey builds the cache key of a face.
func NewKey(src Source, index int, size PixelSize) Key {
	return Key{Source: src, Index: index, Size: size.Height, Width: size.Width}
}

// String renders the key as "source - index - size - width".
func (k Key) String() string {
	return fmt.Sprintf("%s - %d - %d - %d", k.Source, k.Index, k.Size, k.Width)
}
