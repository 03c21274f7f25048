// Package dialect identifies the supported documentation markup dialects and
// extracts their heading lines.
//
// Only two dialects exist, so a Dialect is a plain tagged value rather than a
// pluggable interface. Each carries the line rule for its headings: one or
// more marker characters at the start of a line followed by at least one
// whitespace character.
package dialect

import (
	"regexp"
	"strings"
)

// Dialect is one of the supported markup conventions.
type Dialect int

const (
	// None marks a file that is not a recognized documentation file.
	None Dialect = iota
	Markdown
	AsciiDoc
)

// Whitespace follows the Unicode White_Space property: \s covers the ASCII
// set minus \v, so \v, NEL and the Z categories are added explicitly.
const whitespace = `[\s\v\x{85}\p{Z}]`

var (
	markdownHeading = regexp.MustCompile(`^#+` + whitespace)
	asciidocHeading = regexp.MustCompile(`^=+` + whitespace)
)

// FromExtension maps an extension without its leading dot ("md", "adoc") to a
// dialect. The comparison is case-sensitive.
func FromExtension(ext string) Dialect {
	switch ext {
	case "md":
		return Markdown
	case "adoc":
		return AsciiDoc
	default:
		return None
	}
}

// Extension returns the text after the final "." of a base file name, and
// false when the name has none. A name whose only dot is the leading one
// (".md") has no extension.
func Extension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}

// ForFile returns the dialect of a base file name, or None.
func ForFile(name string) Dialect {
	ext, ok := Extension(name)
	if !ok {
		return None
	}
	return FromExtension(ext)
}

// String returns the dialect name used in logs and metrics labels.
func (d Dialect) String() string {
	switch d {
	case Markdown:
		return "markdown"
	case AsciiDoc:
		return "asciidoc"
	default:
		return "none"
	}
}

// IsHeading reports whether a single line (without its terminator) is a
// heading in this dialect.
func (d Dialect) IsHeading(line string) bool {
	switch d {
	case Markdown:
		return markdownHeading.MatchString(line)
	case AsciiDoc:
		return asciidocHeading.MatchString(line)
	default:
		return false
	}
}

// Headings returns every heading line of content, verbatim and in file order.
// The result is never nil.
func (d Dialect) Headings(content string) []string {
	headings := make([]string, 0)
	for _, line := range Lines(content) {
		if d.IsHeading(line) {
			headings = append(headings, line)
		}
	}
	return headings
}

// Lines splits content on "\n" and drops the "\r" of every "\r\n" pair. A
// final line terminator does not produce an empty trailing line. A "\r" at
// the very end of content, with no "\n" after it, stays on the last line.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		lines = lines[:last]
	}
	for i := range lines {
		if i < last {
			lines[i] = strings.TrimSuffix(lines[i], "\r")
		}
	}
	return lines
}
