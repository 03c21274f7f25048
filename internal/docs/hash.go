package docs

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ComputeDigest computes a deterministic hash for a set of documents. The
// hash covers relative paths, content and headings, and ignores the order of
// the input, so two scans of an unchanged tree produce the same digest.
func ComputeDigest(docs []Document) string {
	if len(docs) == 0 {
		// Empty set has a known hash
		h := sha256.Sum256([]byte("empty-docs-set"))
		return hex.EncodeToString(h[:])
	}

	sorted := make([]Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RelPath < sorted[j].RelPath
	})

	h := sha256.New()
	for _, doc := range sorted {
		contentHash := sha256.Sum256([]byte(doc.Content))
		h.Write([]byte(doc.RelPath))
		h.Write([]byte("|"))
		h.Write([]byte(hex.EncodeToString(contentHash[:])))
		h.Write([]byte("|"))
		h.Write([]byte(strings.Join(doc.Headings, "\x00")))
		h.Write([]byte("\n"))
	}

	return hex.EncodeToString(h.Sum(nil))
}
