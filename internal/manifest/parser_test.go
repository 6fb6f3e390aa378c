package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestRawMetadata_Valid(t *testing.T) {
	raw, err := ParseMetadata([]byte(`{
		"name": "Gitea",
		"description": "Self-hosted Git service",
		"version": "1.21.0",
		"author": "OFKM",
		"tags": ["git", "devtools"],
		"extra": true
	}`), "template.json")
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}

	m, err := raw.Metadata()
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}

	want := &TemplateMetadata{
		Name:        "Gitea",
		Description: "Self-hosted Git service",
		Version:     "1.21.0",
		Author:      "OFKM",
		Tags:        []string{"git", "devtools"},
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("Metadata() = %+v, want %+v", m, want)
	}
}

func TestRawMetadata_InvalidFields(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		field string
	}{
		{"missing name", `{"description":"d","version":"1","author":"a","tags":["x"]}`, "name"},
		{"empty description", `{"name":"n","description":"","version":"1","author":"a","tags":["x"]}`, "description"},
		{"numeric version", `{"name":"n","description":"d","version":1,"author":"a","tags":["x"]}`, "version"},
		{"null author", `{"name":"n","description":"d","version":"1","author":null,"tags":["x"]}`, "author"},
		{"missing tags", `{"name":"n","description":"d","version":"1","author":"a"}`, "tags"},
		{"empty tags", `{"name":"n","description":"d","version":"1","author":"a","tags":[]}`, "tags"},
		{"string tags", `{"name":"n","description":"d","version":"1","author":"a","tags":"x"}`, "tags"},
		{"non-string tag", `{"name":"n","description":"d","version":"1","author":"a","tags":["x",2]}`, "tags"},
		{"name checked before tags", `{"tags":[]}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ParseMetadata([]byte(tt.json), "template.json")
			if err != nil {
				t.Fatalf("ParseMetadata: %v", err)
			}
			_, err = raw.Metadata()
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected *FieldError, got %v", err)
			}
			if fieldErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", fieldErr.Field, tt.field)
			}
		})
	}
}

func TestParseMetadata_NotAnObject(t *testing.T) {
	for _, input := range []string{`null`, `[]`, `"x"`, `{`} {
		if _, err := ParseMetadata([]byte(input), "template.json"); err == nil {
			t.Errorf("ParseMetadata(%s): expected error", input)
		}
	}
}

func TestParseMetadataFile_NotFound(t *testing.T) {
	_, err := ParseMetadataFile(testPath("nonexistent.json"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestLoadPrevious_Missing(t *testing.T) {
	prev, err := LoadPrevious(filepath.Join(t.TempDir(), "registry.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != nil {
		t.Errorf("expected nil registry, got %+v", prev)
	}
}

func TestLoadPrevious_Valid(t *testing.T) {
	prev, err := LoadPrevious(testPath("valid-registry.json"))
	if err != nil {
		t.Fatalf("LoadPrevious: %v", err)
	}
	if prev == nil {
		t.Fatal("expected registry, got nil")
	}
	if prev.Version == nil || *prev.Version != "1.2.0" {
		t.Errorf("Version = %v, want 1.2.0", prev.Version)
	}
	ids := prev.IDs()
	if len(ids) != 2 || !ids["gitea"] || !ids["nginx"] {
		t.Errorf("IDs() = %v, want gitea and nginx", ids)
	}
}

func TestLoadPrevious_AbsentVersusEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	if err := os.WriteFile(path, []byte(`{"name": "", "templates": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	prev, err := LoadPrevious(path)
	if err != nil {
		t.Fatalf("LoadPrevious: %v", err)
	}
	if prev.Name == nil || *prev.Name != "" {
		t.Errorf("Name = %v, want present and empty", prev.Name)
	}
	if prev.Author != nil {
		t.Errorf("Author = %v, want absent", *prev.Author)
	}
}

func TestLoadPrevious_Unusable(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"invalid json", `{"name": `, true},
		{"array", `[]`, true},
		{"trailing data", `{} {}`, true},
		{"string", `"registry"`, true},
		{"null", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "registry.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			prev, err := LoadPrevious(path)
			if prev != nil {
				t.Errorf("expected nil registry, got %+v", prev)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadPrevious_WrongFieldTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	content := `{
  "name": "Kept Name",
  "description": 42,
  "author": null,
  "url": "https://kept.example.com",
  "version": "1.4.0",
  "templates": [{"id": "a"}, {"id": 7}, "b", {"name": "no id"}, {"id": "c"}]
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	prev, err := LoadPrevious(path)
	if err != nil {
		t.Fatalf("LoadPrevious: %v", err)
	}
	if prev.Name == nil || *prev.Name != "Kept Name" {
		t.Errorf("Name = %v, want Kept Name", prev.Name)
	}
	if prev.Description != nil {
		t.Errorf("Description = %q, want absent for a number", *prev.Description)
	}
	if prev.Author != nil {
		t.Errorf("Author = %q, want absent for null", *prev.Author)
	}
	if prev.Version == nil || *prev.Version != "1.4.0" {
		t.Errorf("Version = %v, want 1.4.0", prev.Version)
	}
	ids := prev.IDs()
	if len(ids) != 2 || !ids["a"] || !ids["c"] {
		t.Errorf("IDs() = %v, want a and c", ids)
	}
}

func TestLoadPrevious_NumericVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	if err := os.WriteFile(path, []byte(`{"version": 2, "templates": {"id": "a"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	prev, err := LoadPrevious(path)
	if err != nil {
		t.Fatalf("LoadPrevious: %v", err)
	}
	if prev.Version == nil || *prev.Version != "2" {
		t.Errorf("Version = %v, want \"2\"", prev.Version)
	}
	if len(prev.Templates) != 0 {
		t.Errorf("Templates = %v, want none when not an array", prev.Templates)
	}
}

func TestPreviousRegistry_NilIDs(t *testing.T) {
	var prev *PreviousRegistry
	if ids := prev.IDs(); len(ids) != 0 {
		t.Errorf("IDs() on nil = %v, want empty", ids)
	}
}
