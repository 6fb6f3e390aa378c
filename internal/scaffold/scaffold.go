package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ofkm/arcane-templates/internal/manifest"
)

// skeletonDir is the embedded directory holding the template skeleton.
const skeletonDir = "scaffolds/template"

// ScaffoldData holds all variables available to the skeleton files.
type ScaffoldData struct {
	ID          string   // directory name and registry id, e.g. "uptime-kuma"
	Name        string   // display name, e.g. "Uptime Kuma"
	Description string   // one-line summary
	Version     string   // version of the packaged software
	Author      string   // template author
	Image       string   // container image used in compose.yaml
	Tags        []string // at least one
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewScaffoldData creates a ScaffoldData with placeholder values for
// everything but the id and display name.
func NewScaffoldData(id, name, author string) *ScaffoldData {
	if name == "" {
		name = id
	}
	if author == "" {
		author = "Unknown"
	}
	return &ScaffoldData{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("%s deployed with Docker Compose", name),
		Version:     "latest",
		Author:      author,
		Image:       id + ":latest",
		Tags:        []string{id},
	}
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	},
}

// Generate writes a new template directory at outputDir. The directory must
// not exist or be empty. The generated template.json is checked with the same
// field rules the registry build applies; failures are reported as warnings.
func Generate(data *ScaffoldData, outputDir string) (*Result, error) {
	entries, err := fs.ReadDir(scaffoldFS, skeletonDir)
	if err != nil {
		return nil, fmt.Errorf("reading skeleton: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{
		OutputDir: outputDir,
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := path.Join(skeletonDir, entry.Name())
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading skeleton %s: %w", tmplPath, err)
		}

		tmpl, err := template.New(entry.Name()).Funcs(funcs).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing skeleton %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing skeleton %s: %w", entry.Name(), err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	metaPath := filepath.Join(outputDir, manifest.MetadataFile)
	raw, err := manifest.ParseMetadataFile(metaPath)
	if err == nil {
		_, err = raw.Metadata()
	}
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	}

	return result, nil
}
