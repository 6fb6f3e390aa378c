package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const (
	schemaTitle       = "Template Registry"
	schemaDescription = "Aggregated manifest of compose templates (registry.json)"
)

// GenerateSchema reflects the Registry type into a JSON Schema document.
// id becomes the schema's $id; an empty id omits it.
func GenerateSchema(id string) ([]byte, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	schema := reflector.Reflect(&Registry{})
	schema.ID = jsonschema.ID(id)
	schema.Title = schemaTitle
	schema.Description = schemaDescription

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling registry schema: %w", err)
	}
	return append(data, '\n'), nil
}
