package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScenarioParsesNodesAndEdges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	contents := `
node_count: 4
edges:
  - [0, 1]
  - [1, 2]
  - [2, 3]
  - [3, 0]
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	sc, err := loadScenario(path)
	if err != nil {
		t.Fatalf("loadScenario: %v", err)
	}
	if sc.NodeCount != 4 {
		t.Errorf("NodeCount = %d, want 4", sc.NodeCount)
	}
	if len(sc.Edges) != 4 {
		t.Errorf("len(Edges) = %d, want 4", len(sc.Edges))
	}
}

func TestLoadScenarioRejectsOutOfRangeEdge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	contents := `
node_count: 2
edges:
  - [0, 5]
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadScenario(path); err == nil {
		t.Fatal("expected out-of-range edge to error")
	}
}

func TestLoadScenarioRejectsNonPositiveNodeCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte("node_count: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadScenario(path); err == nil {
		t.Fatal("expected non-positive node_count to error")
	}
}
