package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FieldError reports a template.json field that is missing or has the wrong shape.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// scalarFields are the string fields every template.json must set, in check order.
var scalarFields = []string{"name", "description", "version", "author"}

// RawMetadata is a decoded template.json object prior to field checks.
type RawMetadata map[string]any

// ParseMetadataFile reads and decodes a template.json file. It only fails on
// I/O errors or when the file is not a JSON object; field checks happen in
// RawMetadata.Metadata.
func ParseMetadataFile(path string) (RawMetadata, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMetadata(data, path)
}

// ParseMetadata decodes template.json content. path is used in error messages.
func ParseMetadata(data []byte, path string) (RawMetadata, error) {
	var raw RawMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parsing %s: expected a JSON object", path)
	}
	return raw, nil
}

// Metadata checks the required fields and returns the typed metadata.
// name, description, version and author must be non-empty strings; tags must
// be a non-empty array of strings.
func (r RawMetadata) Metadata() (*TemplateMetadata, error) {
	values := make(map[string]string, len(scalarFields))
	for _, field := range scalarFields {
		s, ok := r[field].(string)
		if !ok || s == "" {
			return nil, &FieldError{
				Field:   field,
				Message: fmt.Sprintf("missing/invalid %q", field),
			}
		}
		values[field] = s
	}

	tagsErr := &FieldError{Field: "tags", Message: `must include non-empty "tags"`}
	list, ok := r["tags"].([]any)
	if !ok || len(list) == 0 {
		return nil, tagsErr
	}
	tags := make([]string, 0, len(list))
	for _, item := range list {
		tag, ok := item.(string)
		if !ok {
			return nil, &FieldError{Field: "tags", Message: `"tags" must contain only strings`}
		}
		tags = append(tags, tag)
	}

	return &TemplateMetadata{
		Name:        values["name"],
		Description: values["description"],
		Version:     values["version"],
		Author:      values["author"],
		Tags:        tags,
	}, nil
}

// LoadPrevious reads a previously generated registry. A missing file returns
// (nil, nil). A file that cannot be read, is not valid JSON, or is not a JSON
// object returns a nil registry and the error; callers treat both cases as "no
// previous registry". JSON null also decodes to a nil registry.
//
// Individual keys are read leniently: a value of the wrong type is treated as
// absent, so one bad field does not discard the rest of the document.
func LoadPrevious(path string) (*PreviousRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading previous registry %s: %w", path, err)
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing previous registry %s: %w", path, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parsing previous registry %s: unexpected data after JSON value", path)
	}
	if doc == nil {
		return nil, nil
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parsing previous registry %s: expected a JSON object", path)
	}
	return previousFromObject(obj), nil
}

func previousFromObject(obj map[string]any) *PreviousRegistry {
	prev := &PreviousRegistry{
		Name:        stringField(obj, "name"),
		Description: stringField(obj, "description"),
		Author:      stringField(obj, "author"),
		URL:         stringField(obj, "url"),
	}

	// A numeric version keeps its literal form ("2" stays "2").
	switch v := obj["version"].(type) {
	case string:
		prev.Version = &v
	case json.Number:
		s := v.String()
		prev.Version = &s
	}

	list, _ := obj["templates"].([]any)
	for _, item := range list {
		t, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := t["id"].(string); ok {
			prev.Templates = append(prev.Templates, PreviousTemplate{ID: id})
		}
	}
	return prev
}

// stringField returns obj[key] when it is a string, else nil.
func stringField(obj map[string]any, key string) *string {
	s, ok := obj[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
