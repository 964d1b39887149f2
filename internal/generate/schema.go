package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/verum-omnis/ruleforge/internal/model"
)

// WriteSchemas reflects a JSON Schema document for each asset type and
// writes it next to the assets as <name>.schema.json. The schemas describe
// the files for editor tooling; they are not consulted at generation time.
func (g *Generator) WriteSchemas(root string) error {
	dir := filepath.Join(root, filepath.FromSlash(RulesDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create rules dir: %w", err)
	}

	targets := []struct {
		file  string
		title string
		typ   interface{}
	}{
		{MatrixFile, "Dishonesty Matrix", &model.DishonestyMatrix{}},
		{ProtocolFile, "Extraction Protocol", &model.ExtractionProtocol{}},
	}

	r := &jsonschema.Reflector{
		DoNotReference: true,
	}

	for _, t := range targets {
		s := r.Reflect(t.typ)
		s.Title = t.title
		s.Description = "Schema for the " + t.file + " rule asset"

		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema for %s: %w", t.file, err)
		}
		data = append(data, '\n')

		name := strings.TrimSuffix(t.file, ".json") + ".schema.json"
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return fmt.Errorf("write schema %s: %w", name, err)
		}
		fmt.Fprintf(g.out, "✓ Created: %s\n", filepath.Join(dir, name))
	}

	return nil
}
