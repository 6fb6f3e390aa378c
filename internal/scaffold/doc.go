// Package scaffold generates new template directories from embedded
// skeletons. It powers the "new" command, producing a template.json, a
// compose.yaml and a .env.example that pass the registry's required checks.
package scaffold
