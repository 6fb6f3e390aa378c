// Package cli defines the Cobra command tree for the arcane-registry CLI. Each
// file in this package registers one top-level command (build, schema,
// validate, new, config, version) with the root command. Commands resolve
// configuration and delegate to the registry, manifest and scaffold packages.
package cli
