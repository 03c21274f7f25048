package docs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	derrors "git.home.luguber.info/inful/raggedy/internal/docs/errors"
	"git.home.luguber.info/inful/raggedy/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byRelPath(docs []Document) map[string]Document {
	out := make(map[string]Document, len(docs))
	for _, d := range docs {
		out[d.RelPath] = d
	}
	return out
}

func TestScan_EndToEnd(t *testing.T) {
	root := filepath.Join(t.TempDir(), "docs")
	writeTree(t, root, map[string]string{
		"a.md":       "# Hi\nbody",
		"sub/b.adoc": "== Sec\ntext",
		"c.txt":      "ignored",
	})

	docs, err := NewScanner().Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	got := byRelPath(docs)
	a, ok := got["a.md"]
	require.True(t, ok)
	assert.Equal(t, []string{"# Hi"}, a.Headings)
	assert.Equal(t, "# Hi\nbody", a.Content)
	assert.Equal(t, "# Hi\nbody", a.Head)

	b, ok := got["sub/b.adoc"]
	require.True(t, ok)
	assert.Equal(t, []string{"== Sec"}, b.Headings)
}

func TestScan_RelativeRoot(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"nested/deep/x.md": "# X"})

	chdir(t, root)

	docs, err := NewScanner().Scan(context.Background(), "nested")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "deep/x.md", docs[0].RelPath)
}

func TestScan_OneDocumentPerFileAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{}
	want := []string{}
	dir := ""
	for i := 0; i < 8; i++ {
		dir = filepath.ToSlash(filepath.Join(dir, "level"))
		md := dir + "/page.md"
		adoc := dir + "/page.adoc"
		files[md] = "# Page"
		files[adoc] = "= Page"
		files[dir+"/page.txt"] = "skip"
		want = append(want, md, adoc)
	}
	writeTree(t, root, files)

	docs, err := NewScanner().Scan(context.Background(), root)
	require.NoError(t, err)

	got := make([]string, 0, len(docs))
	for _, d := range docs {
		got = append(got, d.RelPath)
	}
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestScan_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.md":         "# A\n## A2\n",
		"x/y/b.adoc":   "= B\ntext\n",
		"x/c.md":       "no headings",
		"x/y/z/d.adoc": "== D",
	})

	first, err := NewScanner().Scan(context.Background(), root)
	require.NoError(t, err)
	second, err := NewScanner().Scan(context.Background(), root)
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
	assert.Equal(t, ComputeDigest(first), ComputeDigest(second))
}

func TestScan_EmptyResultIsNotNil(t *testing.T) {
	docs, err := NewScanner().Scan(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestScan_MissingRootFails(t *testing.T) {
	rec := newCountingRecorder()
	docs, err := NewScanner().WithRecorder(rec).Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Nil(t, docs)
	assert.ErrorIs(t, err, derrors.ErrDocsPathNotFound)
	assert.Equal(t, 1, rec.outcomes[metrics.ScanFailed])
	assert.Equal(t, 0, rec.outcomes[metrics.ScanSuccess])
}

func TestScan_OneBadFileFailsEverything(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.md":   "# Fine",
		"z.adoc": "= Fine too",
	})
	require.NoError(t, os.WriteFile(filepath.Join(root, "m.md"), []byte{0xff, 0xfe, '#'}, 0o600))

	docs, err := NewScanner().Scan(context.Background(), root)
	require.Error(t, err)
	assert.Nil(t, docs)
	assert.ErrorIs(t, err, derrors.ErrInvalidEncoding)
}

func TestScan_RecordsMetrics(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.md":     "# A",
		"b.md":     "# B",
		"c.adoc":   "= C",
		"skip.txt": "",
	})

	rec := newCountingRecorder()
	_, err := NewScanner().WithRecorder(rec).Scan(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 3, rec.files[metrics.FileMatched])
	assert.Equal(t, 1, rec.files[metrics.FileSkipped])
	assert.Equal(t, 2, rec.documents["markdown"])
	assert.Equal(t, 1, rec.documents["asciidoc"])
	assert.Equal(t, 1, rec.outcomes[metrics.ScanSuccess])
}

func TestScanner_WithNilRecorder(t *testing.T) {
	s := NewScanner().WithRecorder(nil)
	_, err := s.Scan(context.Background(), t.TempDir())
	require.NoError(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
