package facecache

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gogpu/fontsel/engine"
)

// Attachments gives access to font blobs embedded in a document.
type Attachments interface {
	// Len returns the number of attachments.
	Len() int

	// Attachment returns the data of attachment i.
	Attachment(i int) ([]byte, error)
}

// AttachmentList is an in-memory Attachments.
type AttachmentList [][]byte

// Len implements Attachments.Len.
func (l AttachmentList) Len() int { return len(l) }

// Attachment implements Attachments.Attachment.
func (l AttachmentList) Attachment(i int) ([]byte, error) {
	if i < 0 || i >= len(l) {
		return nil, fmt.Errorf("%w: %d", ErrBadAttachment, i)
	}
	return l[i], nil
}

// Streams gives access to platform font streams.
type Streams interface {
	Stream(i int) (engine.Resource, error)
}

// readFile is the default loader of SourceFile data.
func readFile(path string) (engine.Resource, error) {
	// #nosec G304 -- font file paths come from the font registry
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, engine.ErrEmptyFontData
	}
	return bytes.NewReader(data), nil
}
