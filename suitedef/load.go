package suitedef

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSuiteFile reads a suite definition. Files ending in .yaml or .yml are parsed as YAML,
// anything else as JSON; both use the JSON field names.
func LoadSuiteFile(path string) (SuiteParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SuiteParams{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

func ParseJSON(data []byte) (SuiteParams, error) {
	var params SuiteParams
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		return SuiteParams{}, fmt.Errorf("malformed suite definition: %w", err)
	}
	return params, nil
}

// ParseYAML converts YAML to JSON first so that the JSON field names and the JSON handling
// of optional values apply to both formats.
func ParseYAML(data []byte) (SuiteParams, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return SuiteParams{}, fmt.Errorf("failed to parse suite YAML: %w", err)
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return SuiteParams{}, fmt.Errorf("suite YAML cannot be represented as JSON: %w", err)
	}
	return ParseJSON(jsonData)
}
