package dialect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestForFile(t *testing.T) {
	cases := []struct {
		name string
		want Dialect
	}{
		{"README.md", Markdown},
		{"guide.adoc", AsciiDoc},
		{"archive.tar.md", Markdown},
		{"README.MD", None},
		{"guide.ADOC", None},
		{"notes.markdown", None},
		{"notes.txt", None},
		{"Makefile", None},
		{".md", None},
		{"..md", Markdown},
		{"trailing.", None},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ForFile(tc.name))
		})
	}
}

func TestExtension(t *testing.T) {
	ext, ok := Extension("a.b.adoc")
	require.True(t, ok)
	assert.Equal(t, "adoc", ext)

	_, ok = Extension("noext")
	assert.False(t, ok)

	ext, ok = Extension("dot.")
	require.True(t, ok)
	assert.Equal(t, "", ext)
}

func TestString(t *testing.T) {
	assert.Equal(t, "markdown", Markdown.String())
	assert.Equal(t, "asciidoc", AsciiDoc.String())
	assert.Equal(t, "none", None.String())
}

func TestMarkdownHeadings(t *testing.T) {
	content := "# Title\nsome text\n## Sub\n####nospace\n"
	assert.Equal(t, []string{"# Title", "## Sub"}, Markdown.Headings(content))
}

func TestMarkdownIsHeading(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"# Title", true},
		{"###### Deep", true},
		{"####### Seven is still a line match", true},
		{"#\tTabbed", true},
		{"# ", true},
		{"#\u00a0Non-breaking space", true},
		{"#\u3000Ideographic space", true},
		{"#NoSpace", false},
		{"#", false},
		{" # Indented", false},
		{"text # not at start", false},
		{"== Asciidoc", false},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, Markdown.IsHeading(tc.line))
		})
	}
}

func TestAsciiDocDialectIsolation(t *testing.T) {
	content := "# not a heading\n== Real Heading\nbody\n"
	assert.Equal(t, []string{"== Real Heading"}, AsciiDoc.Headings(content))
	assert.Equal(t, []string{"# not a heading"}, Markdown.Headings(content))
}

func TestAsciiDocIsHeading(t *testing.T) {
	assert.True(t, AsciiDoc.IsHeading("= Document Title"))
	assert.True(t, AsciiDoc.IsHeading("=== Level 2"))
	assert.False(t, AsciiDoc.IsHeading("====")) // block delimiter
	assert.False(t, AsciiDoc.IsHeading("==NoSpace"))
}

func TestNoneNeverMatches(t *testing.T) {
	assert.False(t, None.IsHeading("# Title"))
	assert.Empty(t, None.Headings("# Title\n== Sec\n"))
	assert.NotNil(t, None.Headings("# Title"))
}

func TestHeadings_CRLF(t *testing.T) {
	content := "# One\r\ntext\r\n## Two\r\n"
	assert.Equal(t, []string{"# One", "## Two"}, Markdown.Headings(content))
}

func TestHeadings_EmptyContent(t *testing.T) {
	headings := Markdown.Headings("")
	require.NotNil(t, headings)
	assert.Empty(t, headings)
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a"}, Lines("a"))
	assert.Equal(t, []string{"a"}, Lines("a\n"))
	assert.Equal(t, []string{"a", ""}, Lines("a\n\n"))
	assert.Equal(t, []string{"a", "b"}, Lines("a\r\nb"))
	assert.Equal(t, []string{""}, Lines("\n"))
	assert.Equal(t, []string{"a", "b\r"}, Lines("a\r\nb\r"))
	assert.Equal(t, []string{"\r"}, Lines("\r"))
}

func TestHeadings_UnterminatedCarriageReturn(t *testing.T) {
	assert.Equal(t, []string{"# a\r"}, Markdown.Headings("# a\r"))
	assert.Equal(t, []string{"# a"}, Markdown.Headings("# a\r\n"))
	assert.Equal(t, []string{"= a\r"}, AsciiDoc.Headings("text\n= a\r"))
}

// TestMarkdownAgreesWithCommonMark cross-checks the line rule against a
// CommonMark parser for plain ATX headings outside code blocks.
func TestMarkdownAgreesWithCommonMark(t *testing.T) {
	src := []byte("# Intro\n\nParagraph text.\n\n## Install\n\nMore text.\n\n### Linux\n\n#### Notes\n")

	root := goldmark.New().Parser().Parse(text.NewReader(src))
	var parsed []string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			lines := h.Lines()
			if lines.Len() > 0 {
				seg := lines.At(0)
				// Expand the text segment to the full source line.
				start := bytes.LastIndexByte(src[:seg.Start], '\n') + 1
				end := seg.Start + bytes.IndexByte(src[seg.Start:], '\n')
				parsed = append(parsed, string(src[start:end]))
			}
		}
		return ast.WalkContinue, nil
	})

	assert.Equal(t, parsed, Markdown.Headings(string(src)))
	assert.Len(t, parsed, 4)
}
