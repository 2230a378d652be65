// Package config loads the external inputs of a benchmark run: the models
// list document and the provider credential. Only the outermost entry point
// reads the environment; everything below receives explicit values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ModelsMetadata is optional bookkeeping carried by the models document.
type ModelsMetadata struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
}

// ModelsFile is the models list document: {models: string[], metadata?: ...}.
type ModelsFile struct {
	Models   []string        `json:"models" yaml:"models"`
	Metadata *ModelsMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// LoadModels reads the models document at path. JSON is the canonical
// format; YAML is accepted by extension. A missing file is a fatal
// configuration error reported with the fully qualified path.
func LoadModels(path string) (*ModelsFile, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("models file not found: %s", absPath)
		}
		return nil, fmt.Errorf("failed to read models file %s: %w", absPath, err)
	}

	var cfg ModelsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse models file %s: %w", absPath, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse models file %s: %w", absPath, err)
		}
	}

	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("models file %s declares no models", absPath)
	}

	return &cfg, nil
}
