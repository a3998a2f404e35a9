package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scenario describes a graph to load from a YAML file, as an alternative to
// the synthetic ring buildRingStore generates. Node ids are 0-based and
// contiguous; edges reference them directly.
type scenario struct {
	NodeCount int64      `yaml:"node_count"`
	Edges     [][2]int64 `yaml:"edges"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if s.NodeCount <= 0 {
		return nil, fmt.Errorf("scenario node_count must be positive, got %d", s.NodeCount)
	}
	for _, e := range s.Edges {
		if e[0] < 0 || e[0] >= s.NodeCount || e[1] < 0 || e[1] >= s.NodeCount {
			return nil, fmt.Errorf("scenario edge %v out of range [0,%d)", e, s.NodeCount)
		}
	}
	return &s, nil
}
