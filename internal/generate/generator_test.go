package generate

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/verum-omnis/ruleforge/internal/assets"
	"github.com/verum-omnis/ruleforge/internal/model"
)

func TestGenerator_Run_CreatesBothFiles(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	g := New(&out)
	if err := g.Run(root); err != nil {
		t.Fatalf("Run: %v", err)
	}

	dir := filepath.Join(root, filepath.FromSlash(RulesDir))
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read rules dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected exactly 2 files, got %d", len(entries))
	}

	for _, name := range []string{MatrixFile, ProtocolFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}

	if !strings.Contains(out.String(), MatrixFile) || !strings.Contains(out.String(), ProtocolFile) {
		t.Errorf("Expected confirmation line per file, got:\n%s", out.String())
	}
}

func TestGenerator_Run_RoundTripsToDefaults(t *testing.T) {
	root := t.TempDir()

	g := New(new(bytes.Buffer))
	if err := g.Run(root); err != nil {
		t.Fatalf("Run: %v", err)
	}
	dir := filepath.Join(root, filepath.FromSlash(RulesDir))

	matrixData, err := os.ReadFile(filepath.Join(dir, MatrixFile))
	if err != nil {
		t.Fatalf("read matrix: %v", err)
	}
	var matrix model.DishonestyMatrix
	if err := json.Unmarshal(matrixData, &matrix); err != nil {
		t.Fatalf("unmarshal matrix: %v", err)
	}
	if !reflect.DeepEqual(matrix, assets.DefaultDishonestyMatrix()) {
		t.Errorf("Matrix on disk differs from definition: %+v", matrix)
	}

	protocolData, err := os.ReadFile(filepath.Join(dir, ProtocolFile))
	if err != nil {
		t.Fatalf("read protocol: %v", err)
	}
	var protocol model.ExtractionProtocol
	if err := json.Unmarshal(protocolData, &protocol); err != nil {
		t.Fatalf("unmarshal protocol: %v", err)
	}
	if !reflect.DeepEqual(protocol, assets.DefaultExtractionProtocol()) {
		t.Errorf("Protocol on disk differs from definition: %+v", protocol)
	}

	if protocol.Step3Scoring.High.Color != "#F44336" {
		t.Errorf("Expected high color #F44336, got %q", protocol.Step3Scoring.High.Color)
	}
	if matrix.Contradictions.Weight != 3 {
		t.Errorf("Expected contradictions weight 3, got %d", matrix.Contradictions.Weight)
	}
}

func TestGenerator_Run_Deterministic(t *testing.T) {
	root := t.TempDir()
	g := New(new(bytes.Buffer))

	if err := g.Run(root); err != nil {
		t.Fatalf("first run: %v", err)
	}
	dir := filepath.Join(root, filepath.FromSlash(RulesDir))

	first := map[string][]byte{}
	for _, name := range []string{MatrixFile, ProtocolFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		first[name] = data
	}

	if err := g.Run(root); err != nil {
		t.Fatalf("second run: %v", err)
	}
	for _, name := range []string{MatrixFile, ProtocolFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reread %s: %v", name, err)
		}
		if !bytes.Equal(data, first[name]) {
			t.Errorf("%s not byte-identical across runs", name)
		}
	}
}

func TestGenerator_Run_Indentation(t *testing.T) {
	root := t.TempDir()
	g := New(new(bytes.Buffer))
	if err := g.Run(root); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(RulesDir), MatrixFile))
	if err != nil {
		t.Fatalf("read matrix: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 3 {
		t.Fatalf("Expected multi-line indented output, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], `  "`) {
		t.Errorf("Expected 2-space indent, got line %q", lines[1])
	}
}

func TestGenerator_Run_LeavesUnrelatedFiles(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, filepath.FromSlash(RulesDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	unrelated := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep me"), 0644); err != nil {
		t.Fatalf("write unrelated: %v", err)
	}

	g := New(new(bytes.Buffer))
	if err := g.Run(root); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(unrelated)
	if err != nil {
		t.Fatalf("unrelated file gone: %v", err)
	}
	if string(data) != "keep me" {
		t.Errorf("Unrelated file modified: %q", data)
	}
}

func TestGenerator_Run_UnwritableParent(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	if err := os.Chmod(root, 0555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer func() { _ = os.Chmod(root, 0755) }()

	g := New(new(bytes.Buffer))
	if err := g.Run(root); err == nil {
		t.Fatal("Expected error for unwritable parent, got nil")
	}

	if _, err := os.Stat(filepath.Join(root, "app")); !os.IsNotExist(err) {
		t.Errorf("Expected no files created, stat err: %v", err)
	}
}
