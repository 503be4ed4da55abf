package knowledge

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogSchema is the top-level catalog document.
type CatalogSchema struct {
	Version   string           `yaml:"version"`
	Entries   []EntryConfig    `yaml:"entries"`
	Chemicals []ChemicalConfig `yaml:"chemicals"`
}

type EntryConfig struct {
	ID       string   `yaml:"id"`
	Category string   `yaml:"category"`
	Before   string   `yaml:"before"`
	After    string   `yaml:"after"`
	Themes   []string `yaml:"themes"`
	Keywords []string `yaml:"keywords,omitempty"`
	Outcome  string   `yaml:"outcome,omitempty"`
	Fallback bool     `yaml:"fallback,omitempty"`
}

type ChemicalConfig struct {
	Mechanism string   `yaml:"mechanism"`
	Rationale string   `yaml:"rationale"`
	Keywords  []string `yaml:"keywords"`
}

// LoadCatalog reads and parses a catalog YAML file.
func LoadCatalog(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog parses catalog YAML. Unknown fields are rejected so typos in
// hand-edited catalogs surface at startup.
func ParseCatalog(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &schema, nil
}
