package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ofkm/arcane-templates/internal/config"
	"github.com/ofkm/arcane-templates/internal/manifest"
)

// Collect scans the immediate subdirectories of cfg.TemplatesDir and returns
// one entry per template in directory order. The first invalid directory
// aborts the scan with a *TemplateError.
func Collect(cfg config.Config) ([]manifest.TemplateEntry, error) {
	dirEntries, err := os.ReadDir(cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("reading templates directory %s: %w", cfg.TemplatesDir, err)
	}

	var entries []manifest.TemplateEntry
	for _, d := range dirEntries {
		if !d.IsDir() {
			continue
		}
		entry, err := collectOne(cfg, d.Name())
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// collectOne builds the entry for a single template directory.
func collectOne(cfg config.Config, dir string) (*manifest.TemplateEntry, error) {
	id := Slug(dir)
	tdir := filepath.Join(cfg.TemplatesDir, dir)

	metaPath := filepath.Join(tdir, manifest.MetadataFile)
	if !fileExists(metaPath) {
		return nil, &TemplateError{
			Kind:    MissingFile,
			Dir:     dir,
			Path:    metaPath,
			Message: fmt.Sprintf("missing %s (required)", metaPath),
		}
	}
	raw, err := manifest.ParseMetadataFile(metaPath)
	if err != nil {
		return nil, &TemplateError{
			Kind:    InvalidMetadata,
			Dir:     dir,
			Path:    metaPath,
			Message: err.Error(),
			Cause:   err,
		}
	}

	composeFile, ok := FindFirst(tdir, manifest.ComposeCandidates)
	if !ok {
		return nil, &TemplateError{
			Kind: MissingFile,
			Dir:  dir,
			Path: tdir,
			Message: fmt.Sprintf("no compose file found in %s (looked for %s)",
				tdir, strings.Join(manifest.ComposeCandidates, ", ")),
		}
	}

	envPath := filepath.Join(tdir, manifest.EnvExampleFile)
	if !fileExists(envPath) {
		return nil, &TemplateError{
			Kind:    MissingFile,
			Dir:     dir,
			Path:    envPath,
			Message: "missing " + envPath,
		}
	}

	meta, err := raw.Metadata()
	if err != nil {
		te := &TemplateError{
			Kind:    InvalidMetadata,
			Dir:     dir,
			Path:    metaPath,
			Message: metaPath + " " + err.Error(),
			Cause:   err,
		}
		var fieldErr *manifest.FieldError
		if errors.As(err, &fieldErr) {
			te.Field = fieldErr.Field
		}
		return nil, te
	}

	return &manifest.TemplateEntry{
		ID:               id,
		Name:             meta.Name,
		Description:      meta.Description,
		Version:          meta.Version,
		Author:           meta.Author,
		ComposeURL:       joinURL(cfg.PublicBase, id, composeFile),
		EnvURL:           joinURL(cfg.PublicBase, id, manifest.EnvExampleFile),
		DocumentationURL: joinURL(cfg.DocsBase, id),
		Tags:             meta.Tags,
	}, nil
}

// FindFirst returns the first name in candidates that exists as a file in dir.
func FindFirst(dir string, candidates []string) (string, bool) {
	for _, name := range candidates {
		if fileExists(filepath.Join(dir, name)) {
			return name, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func joinURL(base string, parts ...string) string {
	return base + "/" + strings.Join(parts, "/")
}
