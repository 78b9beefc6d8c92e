package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// PrintJSON writes data as indented JSON. HTML characters are not escaped.
func PrintJSON(w io.Writer, data any) error {
	return newJSONEncoder(w).Encode(data)
}

// WriteJSONFile writes data as indented JSON to path, replacing the file if
// it exists.
func WriteJSONFile(path string, data any) error {
	var buf bytes.Buffer
	if err := newJSONEncoder(&buf).Encode(data); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func newJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc
}
