// Package generate materializes the rule assets on disk.
package generate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/verum-omnis/ruleforge/internal/assets"
	"github.com/verum-omnis/ruleforge/internal/model"
)

// RulesDir is the asset directory, relative to the invocation root. The
// layout mirrors what the engine's Android app expects at runtime.
const RulesDir = "app/src/main/assets/rules"

// Fixed asset filenames within RulesDir.
const (
	MatrixFile   = "dishonesty_matrix.json"
	ProtocolFile = "extraction_protocol.json"
)

// Generator writes the two rule assets as indented JSON. It is a one-shot
// batch writer: no retries, no partial-success state, any filesystem error
// is fatal to the run.
type Generator struct {
	matrix   model.DishonestyMatrix
	protocol model.ExtractionProtocol
	out      io.Writer
}

// New creates a generator over the shipped asset definitions, with
// confirmation lines going to out.
func New(out io.Writer) *Generator {
	return &Generator{
		matrix:   assets.DefaultDishonestyMatrix(),
		protocol: assets.DefaultExtractionProtocol(),
		out:      out,
	}
}

// Run creates <root>/app/src/main/assets/rules if needed and overwrites both
// asset files. Repeated runs produce byte-identical output; unrelated files
// in the directory are left alone.
func (g *Generator) Run(root string) error {
	dir := filepath.Join(root, filepath.FromSlash(RulesDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create rules dir: %w", err)
	}

	if err := writeAsset(dir, MatrixFile, g.matrix); err != nil {
		return err
	}
	fmt.Fprintf(g.out, "✓ Created: %s\n", filepath.Join(dir, MatrixFile))

	if err := writeAsset(dir, ProtocolFile, g.protocol); err != nil {
		return err
	}
	fmt.Fprintf(g.out, "✓ Created: %s\n", filepath.Join(dir, ProtocolFile))

	fmt.Fprintf(g.out, "\n✓ Rule assets generated successfully\n")
	return nil
}

// writeAsset marshals v with 2-space indentation and overwrites dir/name.
func writeAsset(dir, name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
