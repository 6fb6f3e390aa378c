package cli

import (
	"fmt"
	"os"

	"github.com/ofkm/arcane-templates/internal/manifest"
	"github.com/spf13/cobra"
)

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the registry JSON schema",
	Long: `Generate the JSON schema describing registry.json. The schema's $id is the
configured SCHEMA_URL, which is also written to every registry's $schema field.
Publish the output at that URL.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}

		data, err := manifest.GenerateSchema(cfg.SchemaURL)
		if err != nil {
			return err
		}

		if schemaOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(schemaOutput, data, 0644); err != nil {
			return fmt.Errorf("writing schema to %s: %w", schemaOutput, err)
		}
		fmt.Fprintf(progress(cmd.OutOrStdout()), "Wrote schema to %s\n", schemaOutput)
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "Write the schema to a file instead of stdout")
	rootCmd.AddCommand(schemaCmd)
}
