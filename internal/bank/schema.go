package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-bank.json"

// bankSchema defines the JSON schema every question bank must satisfy.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "string",
			"description": "Semantic version of the bank content, e.g. v1.0.0",
		},
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"prompt":      map[string]any{"type": "string", "minLength": 1},
					"option_a":    map[string]any{"type": "string", "minLength": 1},
					"option_b":    map[string]any{"type": "string", "minLength": 1},
					"type":        map[string]any{"type": "string", "enum": []any{"image", "text"}},
					"correct":     map[string]any{"type": "string", "enum": []any{"A", "B"}},
					"explanation": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"id", "prompt", "option_a", "option_b", "type", "correct", "explanation"},
				"additionalProperties": false,
			},
		},
		"tiers": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"min_fraction": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					"title":        map[string]any{"type": "string", "minLength": 1},
					"description":  map[string]any{"type": "string", "minLength": 1},
					"emblem":       map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"min_fraction", "title", "description", "emblem"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "title", "questions", "tiers"},
	"additionalProperties": false,
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSchema checks a decoded JSON document against bankSchema.
func validateSchema(doc any) error {
	compiledOnce.Do(func() {
		compiledSchema, compileErr = compileSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile bank schema: %w", compileErr)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	// The compiler wants a parsed JSON value, so round-trip the Go literal.
	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
