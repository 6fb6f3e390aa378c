package manifest

// File names inside a template directory.
const (
	MetadataFile   = "template.json"
	EnvExampleFile = ".env.example"
)

// ComposeCandidates lists accepted compose file names in precedence order.
var ComposeCandidates = []string{
	"compose.yaml",
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
}

// TemplateMetadata is the author-supplied content of template.json.
type TemplateMetadata struct {
	Name        string
	Description string
	Version     string
	Author      string
	Tags        []string
}

// TemplateEntry is one template as published in the registry.
type TemplateEntry struct {
	ID               string   `json:"id" jsonschema:"pattern=^[a-z0-9-]*$"`
	Name             string   `json:"name" jsonschema:"minLength=1"`
	Description      string   `json:"description" jsonschema:"minLength=1"`
	Version          string   `json:"version" jsonschema:"minLength=1"`
	Author           string   `json:"author" jsonschema:"minLength=1"`
	ComposeURL       string   `json:"compose_url" jsonschema:"format=uri"`
	EnvURL           string   `json:"env_url" jsonschema:"format=uri"`
	DocumentationURL string   `json:"documentation_url" jsonschema:"format=uri"`
	Tags             []string `json:"tags" jsonschema:"minItems=1"`
}

// Registry is the registry.json document. Field order is the serialized key order.
type Registry struct {
	Schema      string          `json:"$schema"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Author      string          `json:"author"`
	URL         string          `json:"url"`
	Version     string          `json:"version" jsonschema:"pattern=^[0-9]+\\.[0-9]+\\.[0-9]+"`
	Templates   []TemplateEntry `json:"templates"`
}

// PreviousRegistry is the subset of an earlier registry.json that a new build
// carries forward. Pointer fields distinguish an absent key from an empty one.
type PreviousRegistry struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Author      *string            `json:"author"`
	URL         *string            `json:"url"`
	Version     *string            `json:"version"`
	Templates   []PreviousTemplate `json:"templates"`
}

// PreviousTemplate is a template listed in a previous registry.
type PreviousTemplate struct {
	ID string `json:"id"`
}

// IDs returns the set of template ids listed in the previous registry.
// A nil receiver yields an empty set.
func (p *PreviousRegistry) IDs() map[string]bool {
	ids := make(map[string]bool)
	if p == nil {
		return ids
	}
	for _, t := range p.Templates {
		ids[t.ID] = true
	}
	return ids
}
