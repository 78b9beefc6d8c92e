package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// PrintYAML writes data as YAML. The value goes through its JSON form
// first, so field names follow json tags; API types carry no yaml tags.
// Mapping keys come out sorted.
func PrintYAML(w io.Writer, data any) error {
	doc, err := jsonValue(data)
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(doc)
}

// jsonValue converts data to the generic value its JSON encoding decodes
// to. Integers are kept exact as int64 instead of being rounded through
// float64.
func jsonValue(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return numbers(v), nil
}

// numbers replaces every json.Number in v with an int64, or a float64 when
// the number is not integral or does not fit.
func numbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = numbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = numbers(e)
		}
		return t
	default:
		return v
	}
}
