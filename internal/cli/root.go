package cli

import (
	"io"
	"os"

	"github.com/ofkm/arcane-templates/internal/branding"
	"github.com/ofkm/arcane-templates/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	configFile string
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scans a directory of compose templates, validates each one, and
writes a single registry.json describing them. The registry version is bumped
automatically when new templates appear.

Settings come from flags, environment variables (REGISTRY_NAME, PUBLIC_BASE,
BUMP_PART, ...), and an optional YAML file given with --config or ` + branding.EnvVar("CONFIG") + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// loadConfig resolves configuration for cmd. flagKeys maps config keys to the
// names of cmd's flags that override them.
func loadConfig(cmd *cobra.Command, flagKeys map[string]string) (config.Config, error) {
	v := viper.New()
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return config.Config{}, err
			}
		}
	}

	path := configFile
	if path == "" {
		path = os.Getenv(branding.EnvVar("CONFIG"))
	}
	return config.Load(v, path)
}

// progress returns the writer for informational lines.
func progress(w io.Writer) io.Writer {
	if quiet {
		return io.Discard
	}
	return w
}
