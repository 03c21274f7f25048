package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/raggedy/internal/dialect"
	derrors "git.home.luguber.info/inful/raggedy/internal/docs/errors"
	"git.home.luguber.info/inful/raggedy/internal/foundation/errors"
)

// HeadLength is the number of characters (runes, not bytes) kept in Document.Head.
const HeadLength = 500

// Document is the record emitted for one documentation file.
type Document struct {
	RelPath  string          `json:"rel_path" yaml:"rel_path"` // Slash-separated path relative to the scan root
	Content  string          `json:"content" yaml:"content"`   // Verbatim file content
	Head     string          `json:"head" yaml:"head"`         // First HeadLength runes of Content
	Headings []string        `json:"headings" yaml:"headings"` // Heading lines in file order
	Dialect  dialect.Dialect `json:"-" yaml:"-"`
}

// ReadDocument builds the Document for one collected file below root.
func ReadDocument(path, root string) (Document, error) {
	// #nosec G304 -- path comes from CollectPaths below the user-supplied root.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.ReadError("failed to read document").
			WithContext("path", path).
			WithCause(fmt.Errorf("%w: %w", derrors.ErrFileReadFailed, err)).
			Build()
	}
	if !utf8.Valid(raw) {
		return Document{}, errors.ReadError("document is not valid UTF-8 text").
			WithContext("path", path).
			WithCause(derrors.ErrInvalidEncoding).
			Build()
	}

	relPath, err := RelativePath(root, path)
	if err != nil {
		return Document{}, err
	}

	d := dialect.ForFile(filepath.Base(path))
	if d == dialect.None {
		return Document{}, errors.InternalError("file has no documentation dialect").
			WithContext("path", path).
			WithCause(derrors.ErrUnrecognizedDialect).
			Build()
	}

	content := string(raw)
	return Document{
		RelPath:  relPath,
		Content:  content,
		Head:     TruncateRunes(content, HeadLength),
		Headings: d.Headings(content),
		Dialect:  d,
	}, nil
}

// RelativePath expresses path relative to root with "/" separators. A path
// that is not strictly below root is a consistency error.
func RelativePath(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err == nil && (rel == "." || rel == ".." || filepath.IsAbs(rel) ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		err = fmt.Errorf("%q is outside %q", path, root)
	}
	if err != nil {
		return "", errors.InternalError("collected path is not under the scan root").
			WithContext("path", path).
			WithContext("root", root).
			WithCause(fmt.Errorf("%w: %w", derrors.ErrInvalidRelativePath, err)).
			Build()
	}
	return filepath.ToSlash(rel), nil
}

// TruncateRunes returns the first n runes of s, or s itself when it is shorter.
func TruncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
