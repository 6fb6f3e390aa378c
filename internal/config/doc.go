// Package config resolves the registry generator's settings into an explicit
// Config value. Settings come from (highest priority first) command-line
// flags, environment variables such as REGISTRY_NAME or BUMP_PART, an
// optional YAML config file, and the branding defaults.
package config
