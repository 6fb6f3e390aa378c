package cli

import (
	"github.com/ofkm/arcane-templates/internal/config"
	"github.com/ofkm/arcane-templates/internal/registry"
	"github.com/spf13/cobra"
)

var buildDryRun bool

var buildFlagKeys = map[string]string{
	config.KeyTemplatesDir: "templates-dir",
	config.KeyOutputPath:   "output",
	config.KeyBumpPart:     "bump",
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate registry.json from the templates directory",
	Long: `Scan every subdirectory of the templates directory and write registry.json.

Each template directory must contain template.json (name, description, version,
author, tags), one compose file (compose.yaml, docker-compose.yml,
docker-compose.yaml, or compose.yml, in that order of precedence), and
.env.example. The first invalid directory aborts the build and the existing
registry is left untouched.

When templates are found that the existing registry does not list, the registry
version is bumped (minor by default, see --bump / BUMP_PART).`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("templates-dir", "", "Templates root directory (env: TEMPLATES_DIR, default \"templates\")")
	buildCmd.Flags().StringP("output", "o", "", "Registry file to write (env: REGISTRY_OUTPUT, default \"registry.json\")")
	buildCmd.Flags().String("bump", "", "Version part to bump on new templates: major, minor, patch (env: BUMP_PART)")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "Print the registry to stdout instead of writing it")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, buildFlagKeys)
	if err != nil {
		return err
	}

	opts := registry.Options{
		Log:    progress(cmd.OutOrStdout()),
		Warn:   cmd.ErrOrStderr(),
		DryRun: buildDryRun,
		Output: cmd.OutOrStdout(),
	}
	// Keep stdout pure JSON on dry runs.
	if buildDryRun {
		opts.Log = progress(cmd.ErrOrStderr())
	}

	_, err = registry.Build(cfg, opts)
	return err
}
