// document loads README files for checking
package document

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Document is an immutable snapshot of the file under test. Checks treat
// Content as opaque UTF-8 text; no normalization is applied beyond decoding.
type Document struct {
	Path       string
	Content    string
	Bytes      int
	Characters int
	Lines      int
}

// Load reads the file at path into a Document. A missing file is reported
// with an error satisfying errors.Is(err, os.ErrNotExist) so callers can
// distinguish "skip the suite" from a real read failure.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	doc := FromString(path, string(data))
	return doc, nil
}

// FromString builds a Document from in-memory content. Used by tests and by
// callers that already hold the file bytes.
func FromString(path, content string) Document {
	return Document{
		Path:       path,
		Content:    content,
		Bytes:      len(content),
		Characters: utf8.RuneCountInString(content),
		Lines:      strings.Count(content, "\n") + 1,
	}
}

// SizeKB returns the content size in kilobytes.
func (d Document) SizeKB() float64 {
	return float64(d.Bytes) / 1024.0
}

// TextLines splits the content into lines. The slice is recomputed on each
// call; checks are expected to derive what they need and discard it.
func (d Document) TextLines() []string {
	return strings.Split(d.Content, "\n")
}
