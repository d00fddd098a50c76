package engine

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasttemplate"
)

// TimestampLayout formats the {{timestamp}} placeholder.
const TimestampLayout = "2006-01-02-15:04"

// Filename placeholders. Surrounding spaces inside the braces are ignored,
// so {{ index }} and {{index}} are the same tag.
const (
	TagTimestamp = "timestamp"
	TagIndex     = "index"
	TagSeed      = "seed"
	TagID        = "id"
)

var knownTags = []string{TagTimestamp, TagIndex, TagSeed, TagID}

// FileNamer expands the output filename template for each image.
type FileNamer struct {
	tmpl      *fasttemplate.Template
	dir       string
	timestamp string
}

// NewFileNamer parses tmpl. The timestamp is fixed at construction so every
// image of a run shares it.
func NewFileNamer(dir, tmpl string, now time.Time) (*FileNamer, error) {
	t, err := fasttemplate.NewTemplate(tmpl, "{{", "}}")
	if err != nil {
		return nil, err
	}
	if _, err := tagsOf(t); err != nil {
		return nil, err
	}
	return &FileNamer{
		tmpl:      t,
		dir:       dir,
		timestamp: now.Format(TimestampLayout),
	}, nil
}

// Name returns the image path for the image at index with the given seed.
func (n *FileNamer) Name(index int, seed int64) string {
	name := n.tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		switch strings.TrimSpace(tag) {
		case TagTimestamp:
			return io.WriteString(w, n.timestamp)
		case TagIndex:
			return io.WriteString(w, strconv.Itoa(index))
		case TagSeed:
			return io.WriteString(w, strconv.FormatInt(seed, 10))
		case TagID:
			return io.WriteString(w, uuid.NewString())
		}
		// rejected by NewFileNamer
		return 0, nil
	})
	return filepath.Join(n.dir, name)
}

// TemplateTags returns the trimmed placeholder names used by tmpl, in
// order of appearance. Unknown placeholders are an error.
func TemplateTags(tmpl string) ([]string, error) {
	t, err := fasttemplate.NewTemplate(tmpl, "{{", "}}")
	if err != nil {
		return nil, err
	}
	return tagsOf(t)
}

func tagsOf(t *fasttemplate.Template) ([]string, error) {
	var tags []string
	_, err := t.ExecuteFunc(io.Discard, func(_ io.Writer, tag string) (int, error) {
		name := strings.TrimSpace(tag)
		switch name {
		case TagTimestamp, TagIndex, TagSeed, TagID:
			tags = append(tags, name)
			return 0, nil
		}
		return 0, fmt.Errorf("unknown filename placeholder {{%s}} (known: %v)", tag, knownTags)
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// ExprPath returns the sidecar path for an image path.
func ExprPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".json"
}
