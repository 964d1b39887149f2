package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verum-omnis/ruleforge/internal/generate"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write JSON Schema documents for the rule assets",
	Long: `Schema writes a JSON Schema document for each rule asset type,
next to the assets as <name>.schema.json.

The schemas are reflected from the asset types and are meant for editor
autocomplete and downstream tooling. They play no role in generation and
nothing in Ruleforge validates the assets against them.

Example:
  ruleforge schema`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	g := generate.New(os.Stdout)
	if err := g.WriteSchemas(root); err != nil {
		return fmt.Errorf("schema failed: %w", err)
	}

	return nil
}
