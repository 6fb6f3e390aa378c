package registry

import (
	"slices"
	"strings"

	"github.com/ofkm/arcane-templates/internal/config"
	"github.com/ofkm/arcane-templates/internal/manifest"
)

// Assemble builds the registry document. Registry-level name, description,
// author and url come from prev when it carries the key, otherwise from cfg.
// $schema always comes from cfg. Templates are sorted by id.
func Assemble(cfg config.Config, prev *manifest.PreviousRegistry, entries []manifest.TemplateEntry, version string) *manifest.Registry {
	reg := &manifest.Registry{
		Schema:      cfg.SchemaURL,
		Name:        cfg.Name,
		Description: cfg.Description,
		Author:      cfg.Author,
		URL:         cfg.URL,
		Version:     version,
		Templates:   SortEntries(entries),
	}

	if prev != nil {
		inherit(&reg.Name, prev.Name)
		inherit(&reg.Description, prev.Description)
		inherit(&reg.Author, prev.Author)
		inherit(&reg.URL, prev.URL)
	}
	return reg
}

func inherit(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// SortEntries returns a copy of entries ordered by id (byte-wise, case-sensitive).
// The result is never nil.
func SortEntries(entries []manifest.TemplateEntry) []manifest.TemplateEntry {
	sorted := make([]manifest.TemplateEntry, len(entries))
	copy(sorted, entries)
	slices.SortStableFunc(sorted, func(a, b manifest.TemplateEntry) int {
		return strings.Compare(a.ID, b.ID)
	})
	return sorted
}
