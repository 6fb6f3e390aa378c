package registry

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ofkm/arcane-templates/internal/config"
	"github.com/ofkm/arcane-templates/internal/manifest"
)

// Options controls where Build reports and whether it writes.
type Options struct {
	// Log receives progress lines. Nil discards them.
	Log io.Writer
	// Warn receives non-fatal warnings. Nil discards them.
	Warn io.Writer
	// DryRun writes the registry JSON to Output instead of cfg.OutputPath.
	DryRun bool
	Output io.Writer
}

// Result is the outcome of a successful build.
type Result struct {
	Registry *manifest.Registry
	Decision VersionDecision
}

// Build runs the full pipeline: collect templates, load the previous registry
// at cfg.OutputPath, resolve the version, assemble, and write. Nothing is
// written unless every step before the write succeeds.
func Build(cfg config.Config, opts Options) (*Result, error) {
	logw := writerOrDiscard(opts.Log)
	warnw := writerOrDiscard(opts.Warn)

	entries, err := Collect(cfg)
	if err != nil {
		return nil, err
	}

	prev, err := manifest.LoadPrevious(cfg.OutputPath)
	if err != nil {
		fmt.Fprintf(warnw, "Warning: ignoring previous registry: %v\n", err)
		prev = nil
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	decision, err := ResolveVersion(prev, ids, cfg.FallbackVersion, cfg.BumpPart)
	if err != nil {
		return nil, err
	}
	if decision.Bumped() {
		fmt.Fprintf(logw, "Detected %d new template(s): %s -> bumping %s to %s\n",
			len(decision.NewIDs), strings.Join(decision.NewIDs, ", "), decision.Part, decision.Next)
	} else {
		fmt.Fprintf(logw, "No new templates detected -> keeping version %s\n", decision.Base)
	}

	reg := Assemble(cfg, prev, entries, decision.Next)

	if opts.DryRun {
		if err := manifest.Encode(writerOrDiscard(opts.Output), reg); err != nil {
			return nil, err
		}
		fmt.Fprintf(logw, "Dry run: %d templates, %s not written\n", len(reg.Templates), cfg.OutputPath)
	} else {
		if err := manifest.WriteFile(cfg.OutputPath, reg); err != nil {
			return nil, fmt.Errorf("writing registry: %w", err)
		}
		fmt.Fprintf(logw, "Generated %s with %d templates\n", filepath.Base(cfg.OutputPath), len(reg.Templates))
	}

	return &Result{Registry: reg, Decision: decision}, nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
