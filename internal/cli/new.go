package cli

import (
	"fmt"
	"path/filepath"

	"github.com/ofkm/arcane-templates/internal/config"
	"github.com/ofkm/arcane-templates/internal/registry"
	"github.com/ofkm/arcane-templates/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	newName   string
	newAuthor string
	newImage  string
	newTags   []string
)

var newFlagKeys = map[string]string{
	config.KeyTemplatesDir: "templates-dir",
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new template directory",
	Long: `Create a template directory under the templates root with a template.json,
compose.yaml and .env.example ready to edit.

The directory name is the template id derived from <name> (lowercased, runs of
other characters replaced with "-").

Examples:
  arcane-registry new uptime-kuma --image louislam/uptime-kuma:1 --tag monitoring
  arcane-registry new "Home Assistant" --author ofkm`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().String("templates-dir", "", "Templates root directory (env: TEMPLATES_DIR, default \"templates\")")
	newCmd.Flags().StringVar(&newName, "name", "", "Display name written to template.json (default: <name>)")
	newCmd.Flags().StringVar(&newAuthor, "author", "", "Template author")
	newCmd.Flags().StringVar(&newImage, "image", "", "Container image for compose.yaml (default: <id>:latest)")
	newCmd.Flags().StringSliceVar(&newTags, "tag", nil, "Tag for template.json, repeatable (default: <id>)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, newFlagKeys)
	if err != nil {
		return err
	}

	id := registry.Slug(args[0])
	if id == "" {
		return fmt.Errorf("invalid name %q: no letters or digits", args[0])
	}

	displayName := newName
	if displayName == "" {
		displayName = args[0]
	}
	data := scaffold.NewScaffoldData(id, displayName, newAuthor)
	if newImage != "" {
		data.Image = newImage
	}
	if len(newTags) > 0 {
		data.Tags = newTags
	}

	result, err := scaffold.Generate(data, filepath.Join(cfg.TemplatesDir, id))
	if err != nil {
		return err
	}

	out := progress(cmd.OutOrStdout())
	fmt.Fprintf(out, "Created template %s at %s/\n", id, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", w)
		}
	}
	return nil
}
