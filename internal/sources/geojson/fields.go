package geojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// NameFieldPriority lists the property names that conventionally carry the
// province name, most preferred first.
var NameFieldPriority = []string{
	"propinsi",
	"Propinsi",
	"PROVINSI",
	"NAME_1",
	"province",
	"name",
	"NAME",
}

// Field describes one feature property across a collection.
type Field struct {
	Name string `json:"name" yaml:"name"`
	// Text is true when every non-null value of the property is a string.
	Text bool `json:"text" yaml:"text"`
}

// DetectNameField picks the property holding region names. The first entry
// of priority present among fields wins (exact, case-sensitive match). When
// none is present, the first text field in document order is used. The
// second result is false when no field qualifies.
func DetectNameField(fields []Field, priority []string) (string, bool) {
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[f.Name] = true
	}
	for _, want := range priority {
		if present[want] {
			return want, true
		}
	}
	for _, f := range fields {
		if f.Text {
			return f.Name, true
		}
	}
	return "", false
}

func describeFields(order []string, features []*geojson.Feature) []Field {
	fields := make([]Field, 0, len(order))
	for _, name := range order {
		text, seen := true, false
		for _, f := range features {
			v, ok := f.Properties[name]
			if !ok || v == nil {
				continue
			}
			seen = true
			if _, isString := v.(string); !isString {
				text = false
				break
			}
		}
		fields = append(fields, Field{Name: name, Text: text && seen})
	}
	return fields
}

func displayValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	default:
		return fmt.Sprint(v)
	}
}

// propertyOrder returns the property keys of all features in order of first
// appearance in the document.
func propertyOrder(data []byte) ([]string, error) {
	var doc struct {
		Features []struct {
			Properties orderedKeys `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var order []string
	for _, f := range doc.Features {
		for _, k := range f.Properties {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}
	return order, nil
}

// orderedKeys captures the keys of a JSON object in document order.
type orderedKeys []string

func (o *orderedKeys) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("properties must be an object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		*o = append(*o, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
	return nil
}
