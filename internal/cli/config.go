package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/verum-omnis/ruleforge/internal/generate"
)

// effectiveConfig is what `config show` displays: ambient settings plus the
// fixed output layout. Asset content is not configurable.
type effectiveConfig struct {
	Verbose bool `yaml:"verbose"`
	Output  struct {
		RulesDir     string `yaml:"rules_dir"`
		MatrixFile   string `yaml:"matrix_file"`
		ProtocolFile string `yaml:"protocol_file"`
	} `yaml:"output"`
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Ruleforge configuration",
	Long: `Manage Ruleforge configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (RULEFORGE_*)
3. Config file (~/.ruleforge/config.yaml)
4. Defaults

Configuration never affects generated asset bytes.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration including all sources (defaults, config file, env vars, flags).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := effectiveConfig{Verbose: viper.GetBool("verbose")}
		cfg.Output.RulesDir = generate.RulesDir
		cfg.Output.MatrixFile = generate.MatrixFile
		cfg.Output.ProtocolFile = generate.ProtocolFile

		configFile := viper.ConfigFileUsed()
		if configFile != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		fmt.Println(string(yamlData))

		fmt.Println("Configuration hierarchy (highest to lowest priority):")
		fmt.Println("  1. CLI flags")
		fmt.Println("  2. Environment variables (RULEFORGE_*)")
		fmt.Println("  3. Config file (~/.ruleforge/config.yaml)")
		fmt.Println("  4. Defaults (shown above)")
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
