package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// OrbitSchema reflects OrbitConfig into a JSON Schema for editor validation
// of orbit.yaml files.
func OrbitSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(OrbitConfig))
	schema.Title = "Orbit Breaker configuration"
	schema.Description = "Validates orbit.yaml files loaded by the orbit command"
	return schema
}

// MarshalSchema renders the schema as indented JSON with a trailing newline.
func MarshalSchema(schema *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteSchema writes the schema to outPath through a temp file so readers
// never observe a partial document.
func WriteSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := MarshalSchema(schema)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("config: create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("config: write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("config: replace schema: %w", err)
	}
	return nil
}
