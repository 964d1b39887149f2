package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verum-omnis/ruleforge/internal/generate"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the rule asset files",
	Long: `Generate writes both rule assets under app/src/main/assets/rules,
relative to the current directory:

- dishonesty_matrix.json: weighted category-to-pattern mapping
- extraction_protocol.json: keywords, tags, and severity scoring

The directory is created if missing (including parents); existing asset
files are overwritten and unrelated files are left untouched. Output is
byte-identical on every run.

Example:
  ruleforge generate`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Root: %s\n", root)
		fmt.Fprintf(os.Stderr, "Rules dir: %s\n", generate.RulesDir)
		fmt.Fprintln(os.Stderr)
	}

	g := generate.New(os.Stdout)
	if err := g.Run(root); err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	return nil
}
