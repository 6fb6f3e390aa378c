package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ofkm/arcane-templates/internal/config"
	"github.com/ofkm/arcane-templates/internal/manifest"
)

const validMetadata = `{
  "name": "Example",
  "description": "An example template",
  "version": "1.0.0",
  "author": "tester",
  "tags": ["example"]
}`

// testConfig returns a config rooted in a fresh temp directory.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Defaults()
	cfg.TemplatesDir = filepath.Join(root, "templates")
	cfg.OutputPath = filepath.Join(root, "registry.json")
	cfg.PublicBase = "https://cdn.example.com/templates"
	cfg.DocsBase = "https://docs.example.com/templates"
	cfg.SchemaURL = "https://cdn.example.com/schema.json"
	if err := os.MkdirAll(cfg.TemplatesDir, 0755); err != nil {
		t.Fatal(err)
	}
	return cfg
}

// writeTemplate creates a complete template directory with compose.yaml.
func writeTemplate(t *testing.T, root, dir string) string {
	t.Helper()
	return writeTemplateFiles(t, root, dir, map[string]string{
		manifest.MetadataFile:   validMetadata,
		"compose.yaml":          "services:\n  app:\n    image: nginx\n",
		manifest.EnvExampleFile: "PORT=8080\n",
	})
}

// writeTemplateFiles creates dir under root containing exactly files.
func writeTemplateFiles(t *testing.T, root, dir string, files map[string]string) string {
	t.Helper()
	tdir := filepath.Join(root, dir)
	if err := os.MkdirAll(tdir, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tdir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return tdir
}

func writePrevious(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
