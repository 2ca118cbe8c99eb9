package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// idRecord is the structured form of one retrieved ID.
type idRecord struct {
	Kind    string `json:"kind" yaml:"kind"`
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	App     string `json:"app,omitempty" yaml:"app,omitempty"`
	Version int    `json:"version,omitempty" yaml:"version,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// render writes v as JSON or YAML, or calls text for plain output.
func (o *options) render(w io.Writer, v any, text func(io.Writer) error) error {
	switch o.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)

	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()

	default:
		return text(w)
	}
}
