// Package registry builds the template registry. It collects template
// directories into entries, decides the registry version by comparing against
// the previously generated registry, and assembles and writes the result.
package registry
