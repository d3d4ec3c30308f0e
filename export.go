package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// exportTable serializes the canonical model of a parsed table. The JSON
// and YAML forms carry the same field names and nesting, so either can feed
// compatibility-sensitive consumers.
func exportTable(t *Table, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q (must be json or yaml)", format)
	}
}
