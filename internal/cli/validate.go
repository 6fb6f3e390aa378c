package cli

import (
	"fmt"

	"github.com/ofkm/arcane-templates/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [registry.json]",
	Short: "Validate a generated registry file",
	Long: `Check a registry file against the registry JSON schema and verify that its
version is a semantic version and its templates are sorted by unique id.
Defaults to the configured output path (REGISTRY_OUTPUT, "registry.json").`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		path := cfg.OutputPath
		if len(args) == 1 {
			path = args[0]
		}

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		if !result.Valid {
			for _, issue := range result.Issues {
				location := issue.Path
				if location == "" {
					location = "/"
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s (%s)\n", location, issue.Message, issue.Keyword)
			}
			return fmt.Errorf("%s is invalid: %d issue(s)", path, len(result.Issues))
		}

		fmt.Fprintf(progress(cmd.OutOrStdout()), "%s is valid\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
