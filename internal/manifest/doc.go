// Package manifest defines the registry data model: per-template metadata
// read from template.json, the derived template entries, and the aggregated
// registry.json document. It parses and checks template metadata, loads a
// previously generated registry, writes new ones, and generates and validates
// against the registry JSON Schema.
package manifest
