package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySource  = "source"
	keyServer  = "server"
	keyLogging = "logging"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. A key present in the file replaces that whole section.
// Unknown keys are ignored.
func ShallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q from %s: %w", key, path, err)
		}
	}
	return nil
}

// unmarshalSection decodes one section into a fresh value so the section is
// replaced rather than merged field by field.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keySource:
		var v SourceConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Source = v
	case keyServer:
		var v ServerConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Server = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
