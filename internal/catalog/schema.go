package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://keydrill/catalog.json"

// catalogSchema describes the embedded catalog document. Each entry must
// carry exactly one correct option.
var catalogSchema = map[string]any{
	"type":     "object",
	"required": []any{"shortcuts"},
	"properties": map[string]any{
		"shortcuts": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"key", "action", "description", "category", "hint", "options"},
				"properties": map[string]any{
					"key":         map[string]any{"type": "string", "minLength": 1},
					"action":      map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"tips":        map[string]any{"type": "string"},
					"category": map[string]any{
						"type": "string",
						"enum": []any{"cursor", "edit", "history", "control", "advanced"},
					},
					"hint": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"text", "correct"},
							"properties": map[string]any{
								"text":    map[string]any{"type": "string", "minLength": 1},
								"correct": map[string]any{"type": "boolean"},
							},
							"additionalProperties": false,
						},
						"contains": map[string]any{
							"properties": map[string]any{
								"correct": map[string]any{"const": true},
							},
						},
						"minContains": 1,
						"maxContains": 1,
					},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

// compileSchema compiles catalogSchema.
func compileSchema() (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON value, so round-trip through JSON to
	// normalize the Go literal.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

// validateDocument checks raw catalog JSON against the schema.
func validateDocument(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := compileSchema()
	if err != nil {
		return fmt.Errorf("catalog schema: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
