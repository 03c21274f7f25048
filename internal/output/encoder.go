// Package output encodes scan results as structured text.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/raggedy/internal/docs"
	"git.home.luguber.info/inful/raggedy/internal/foundation/errors"
)

// Format selects the encoding of the document list.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name (case-insensitive; "yml" is accepted).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.ValidationError(fmt.Sprintf("unsupported output format %q (want json or yaml)", name)).Build()
	}
}

// Encode renders docs in the given format. The result always ends with a
// newline, and an empty or nil list encodes as an empty array.
func Encode(list []docs.Document, format Format) ([]byte, error) {
	list = normalize(list)

	var (
		buf bytes.Buffer
		err error
	)
	switch format {
	case FormatJSON, "":
		err = encodeJSON(&buf, list)
	case FormatYAML:
		err = encodeYAML(&buf, list)
	default:
		return nil, errors.ValidationError(fmt.Sprintf("unsupported output format %q", format)).Build()
	}
	if err != nil {
		return nil, errors.OutputError("failed to encode documents").
			WithContext("format", string(format)).
			WithCause(err).
			Build()
	}
	return buf.Bytes(), nil
}

// encodeJSON pretty-prints with two-space indentation and leaves <, > and &
// unescaped so content round-trips byte for byte.
func encodeJSON(buf *bytes.Buffer, list []docs.Document) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func encodeYAML(buf *bytes.Buffer, list []docs.Document) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return err
	}
	return enc.Close()
}

// normalize guarantees arrays rather than nulls in the encoded output.
func normalize(list []docs.Document) []docs.Document {
	out := make([]docs.Document, len(list))
	copy(out, list)
	for i := range out {
		if out[i].Headings == nil {
			out[i].Headings = []string{}
		}
	}
	return out
}
