// Package branding provides compile-time identity values for the CLI and the
// registry defaults that ship with it.
//
// Forkers edit branding.yaml in this package to publish their own registry
// without touching code; Go's //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName             string `yaml:"cli_name"`
	DisplayName         string `yaml:"display_name"`
	Description         string `yaml:"description"`
	EnvPrefix           string `yaml:"env_prefix"`
	GoModule            string `yaml:"go_module"`
	RegistryName        string `yaml:"registry_name"`
	RegistryDescription string `yaml:"registry_description"`
	RegistryAuthor      string `yaml:"registry_author"`
	RegistryURL         string `yaml:"registry_url"`
	PublicBase          string `yaml:"public_base"`
	SchemaURL           string `yaml:"schema_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:             "arcane-registry",
			DisplayName:         "Arcane Templates Registry",
			Description:         "Static registry generator for Arcane compose templates",
			EnvPrefix:           "ARCANE",
			GoModule:            "github.com/ofkm/arcane-templates",
			RegistryName:        "Arcane Community Templates",
			RegistryDescription: "Community Docker Compose Templates for Arcane",
			RegistryAuthor:      "OFKM",
			RegistryURL:         "https://github.com/ofkm/arcane-templates",
			PublicBase:          "https://templates.arcane.ofkm.dev/templates",
			SchemaURL:           "https://templates.arcane.ofkm.dev/schema.json",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "arcane-registry").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "ARCANE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// RegistryName returns the default registry display name.
func RegistryName() string { load(); return defaults.RegistryName }

// RegistryDescription returns the default registry description.
func RegistryDescription() string { load(); return defaults.RegistryDescription }

// RegistryAuthor returns the default registry author.
func RegistryAuthor() string { load(); return defaults.RegistryAuthor }

// RegistryURL returns the canonical registry repository URL.
func RegistryURL() string { load(); return defaults.RegistryURL }

// PublicBase returns the public base URL that template files are served from.
func PublicBase() string { load(); return defaults.PublicBase }

// SchemaURL returns the URL of the published registry JSON schema.
func SchemaURL() string { load(); return defaults.SchemaURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("config") → "ARCANE_CONFIG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
