//go:build integration

package integration_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ofkm/arcane-templates/internal/config"
	"github.com/ofkm/arcane-templates/internal/manifest"
	"github.com/spf13/viper"
)

// testEnv holds paths to an isolated registry workspace.
type testEnv struct {
	RootDir      string // working directory stand-in
	TemplatesDir string // TEMPLATES_DIR
	OutputPath   string // REGISTRY_OUTPUT
}

// setupTestEnv creates an isolated workspace and points the environment at it.
// Every registry-related variable is reset so the host environment cannot leak in.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	env := &testEnv{
		RootDir:      root,
		TemplatesDir: filepath.Join(root, "templates"),
		OutputPath:   filepath.Join(root, "registry.json"),
	}
	if err := os.MkdirAll(env.TemplatesDir, 0755); err != nil {
		t.Fatalf("creating templates dir: %v", err)
	}

	for _, v := range []string{
		"REGISTRY_NAME", "REGISTRY_DESCRIPTION", "REGISTRY_AUTHOR", "REGISTRY_URL",
		"PUBLIC_BASE", "DOCS_BASE", "SCHEMA_URL", "REGISTRY_VERSION", "BUMP_PART",
	} {
		t.Setenv(v, "")
	}
	t.Setenv("TEMPLATES_DIR", env.TemplatesDir)
	t.Setenv("REGISTRY_OUTPUT", env.OutputPath)

	return env
}

// loadConfig resolves configuration from the current environment.
func loadConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load(viper.New(), "")
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	return cfg
}

// addTemplate writes a complete template directory using composeName as the
// compose file.
func addTemplate(t *testing.T, env *testEnv, dir, composeName string, tags ...string) {
	t.Helper()
	if len(tags) == 0 {
		tags = []string{"test"}
	}
	quoted := make([]string, len(tags))
	for i, tag := range tags {
		quoted[i] = `"` + tag + `"`
	}

	writeFile(t, filepath.Join(env.TemplatesDir, dir, "template.json"), `{
  "name": "`+dir+`",
  "description": "Template `+dir+`",
  "version": "1.0.0",
  "author": "integration",
  "tags": [`+strings.Join(quoted, ", ")+`]
}`)
	writeFile(t, filepath.Join(env.TemplatesDir, dir, composeName), "services:\n  app:\n    image: busybox\n")
	writeFile(t, filepath.Join(env.TemplatesDir, dir, ".env.example"), "TZ=UTC\n")
}

// writeFile creates parent directories and writes content to path.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readRegistry parses the registry file at path.
func readRegistry(t *testing.T, path string) manifest.Registry {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading registry: %v", err)
	}
	var reg manifest.Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		t.Fatalf("parsing registry: %v", err)
	}
	return reg
}

func templateIDs(reg manifest.Registry) []string {
	ids := make([]string, len(reg.Templates))
	for i, e := range reg.Templates {
		ids[i] = e.ID
	}
	return ids
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected file to not exist: %s", path)
	}
}
