package lintconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// packageJSONKeys are the top-level package.json fields that may hold an
// embedded lint configuration, checked in order.
var packageJSONKeys = []string{"comlint", "commitlint"}

// ParseJSON decodes a configuration from JSON.
func ParseJSON(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseYAML decodes a configuration from YAML.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseFile reads a configuration file, picking the decoder from the file
// name. A package.json is treated as a host file with the configuration
// embedded under a well-known key.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if filepath.Base(path) == "package.json" {
		cfg, ok := parsePackageJSON(data)
		if !ok {
			return nil, errNoConfig
		}
		return cfg, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err := ParseYAML(data)
		if err != nil {
			return nil, errFailedToParse(path, err)
		}
		return cfg, nil
	default:
		cfg, err := ParseJSON(data)
		if err != nil {
			return nil, errFailedToParse(path, err)
		}
		return cfg, nil
	}
}

// parsePackageJSON extracts an embedded configuration from package.json
// contents. The second return value reports whether any of the recognized
// keys was present.
func parsePackageJSON(data []byte) (*Config, bool) {
	for _, key := range packageJSONKeys {
		val := gjson.GetBytes(data, key)
		if !val.Exists() || !val.IsObject() {
			continue
		}
		cfg, err := ParseJSON([]byte(val.Raw))
		if err != nil {
			continue
		}
		return cfg, true
	}
	return nil, false
}
