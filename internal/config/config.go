package config

import (
	"fmt"
	"strings"

	"github.com/ofkm/arcane-templates/internal/branding"
	"github.com/spf13/viper"
)

// Configuration keys. Each key is bound to the environment variable named in
// envBindings and may also appear in a YAML config file under the same name.
const (
	KeyName            = "registry_name"
	KeyDescription     = "registry_description"
	KeyAuthor          = "registry_author"
	KeyURL             = "registry_url"
	KeyPublicBase      = "public_base"
	KeyDocsBase        = "docs_base"
	KeySchemaURL       = "schema_url"
	KeyFallbackVersion = "registry_version"
	KeyBumpPart        = "bump_part"
	KeyTemplatesDir    = "templates_dir"
	KeyOutputPath      = "registry_output"
)

var envBindings = map[string]string{
	KeyName:            "REGISTRY_NAME",
	KeyDescription:     "REGISTRY_DESCRIPTION",
	KeyAuthor:          "REGISTRY_AUTHOR",
	KeyURL:             "REGISTRY_URL",
	KeyPublicBase:      "PUBLIC_BASE",
	KeyDocsBase:        "DOCS_BASE",
	KeySchemaURL:       "SCHEMA_URL",
	KeyFallbackVersion: "REGISTRY_VERSION",
	KeyBumpPart:        "BUMP_PART",
	KeyTemplatesDir:    "TEMPLATES_DIR",
	KeyOutputPath:      "REGISTRY_OUTPUT",
}

const (
	// DefaultTemplatesDir is the templates root relative to the working directory.
	DefaultTemplatesDir = "templates"
	// DefaultOutputPath is the manifest path relative to the working directory.
	DefaultOutputPath = "registry.json"
	// docsSuffix is appended to the registry URL when DOCS_BASE is unset.
	docsSuffix = "/tree/main/templates"
)

// BumpPart selects which semantic version segment is incremented.
type BumpPart string

const (
	BumpMajor BumpPart = "major"
	BumpMinor BumpPart = "minor"
	BumpPatch BumpPart = "patch"
)

// ParseBumpPart parses a bump part case-insensitively.
func ParseBumpPart(s string) (BumpPart, error) {
	switch p := BumpPart(strings.ToLower(strings.TrimSpace(s))); p {
	case BumpMajor, BumpMinor, BumpPatch:
		return p, nil
	}
	return "", fmt.Errorf("unknown bump part %q (expected major, minor, or patch)", s)
}

// Config holds every setting the registry build needs. It is populated once at
// process start and passed by value. The yaml names match the config file keys.
type Config struct {
	// Registry-level metadata used when no previous manifest provides it.
	Name        string `yaml:"registry_name"`
	Description string `yaml:"registry_description"`
	Author      string `yaml:"registry_author"`
	URL         string `yaml:"registry_url"`

	// PublicBase prefixes compose and env-example URLs.
	PublicBase string `yaml:"public_base"`
	// DocsBase prefixes documentation URLs.
	DocsBase string `yaml:"docs_base"`
	// SchemaURL is written to the manifest's $schema field.
	SchemaURL string `yaml:"schema_url"`
	// FallbackVersion is the base version when no previous manifest exists.
	// Empty means "1.0.0".
	FallbackVersion string   `yaml:"registry_version"`
	BumpPart        BumpPart `yaml:"bump_part"`

	TemplatesDir string `yaml:"templates_dir"`
	OutputPath   string `yaml:"registry_output"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Name:         branding.RegistryName(),
		Description:  branding.RegistryDescription(),
		Author:       branding.RegistryAuthor(),
		URL:          branding.RegistryURL(),
		PublicBase:   branding.PublicBase(),
		DocsBase:     branding.RegistryURL() + docsSuffix,
		SchemaURL:    branding.SchemaURL(),
		BumpPart:     BumpMinor,
		TemplatesDir: DefaultTemplatesDir,
		OutputPath:   DefaultOutputPath,
	}
}

// Bind registers defaults and environment bindings on v. Flags are bound by
// the caller with v.BindPFlag using the Key constants.
func Bind(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyName, d.Name)
	v.SetDefault(KeyDescription, d.Description)
	v.SetDefault(KeyAuthor, d.Author)
	v.SetDefault(KeyURL, d.URL)
	v.SetDefault(KeyPublicBase, d.PublicBase)
	v.SetDefault(KeySchemaURL, d.SchemaURL)
	v.SetDefault(KeyBumpPart, string(d.BumpPart))
	v.SetDefault(KeyTemplatesDir, d.TemplatesDir)
	v.SetDefault(KeyOutputPath, d.OutputPath)

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
}

// Load reads the optional config file at path (empty means none) and resolves
// all keys on v into a validated Config.
func Load(v *viper.Viper, path string) (Config, error) {
	Bind(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, &ConfigError{Message: "reading config file " + path, Cause: err}
		}
	}

	cfg := Config{
		Name:            v.GetString(KeyName),
		Description:     v.GetString(KeyDescription),
		Author:          v.GetString(KeyAuthor),
		URL:             v.GetString(KeyURL),
		PublicBase:      strings.TrimRight(v.GetString(KeyPublicBase), "/"),
		DocsBase:        strings.TrimRight(v.GetString(KeyDocsBase), "/"),
		SchemaURL:       v.GetString(KeySchemaURL),
		FallbackVersion: v.GetString(KeyFallbackVersion),
		TemplatesDir:    v.GetString(KeyTemplatesDir),
		OutputPath:      v.GetString(KeyOutputPath),
	}

	// DOCS_BASE follows whatever registry URL was resolved.
	if cfg.DocsBase == "" {
		cfg.DocsBase = strings.TrimRight(cfg.URL, "/") + docsSuffix
	}

	part, err := ParseBumpPart(v.GetString(KeyBumpPart))
	if err != nil {
		return Config{}, &ConfigError{Key: KeyBumpPart, Message: err.Error()}
	}
	cfg.BumpPart = part

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings the build cannot run without.
func (c Config) Validate() error {
	if c.TemplatesDir == "" {
		return &ConfigError{Key: KeyTemplatesDir, Message: "templates directory is required"}
	}
	if c.OutputPath == "" {
		return &ConfigError{Key: KeyOutputPath, Message: "output path is required"}
	}
	if c.PublicBase == "" {
		return &ConfigError{Key: KeyPublicBase, Message: "public base URL is required"}
	}
	if _, err := ParseBumpPart(string(c.BumpPart)); err != nil {
		return &ConfigError{Key: KeyBumpPart, Message: err.Error()}
	}
	return nil
}
