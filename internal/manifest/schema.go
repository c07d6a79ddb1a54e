package manifest

// lessonSchemaDef is the JSON Schema every lesson manifest must satisfy
// before decoding. Structural problems surface here with a path into
// the document; semantic checks (unique IDs, per-type expected shapes)
// happen after decoding.
var lessonSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"description": map[string]any{
			"type": "string",
		},
		"widgets": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    widgetSchemaDef,
		},
	},
	"required":             []any{"id", "title", "widgets"},
	"additionalProperties": false,
}

var widgetSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"type": map[string]any{
			"type": "string",
			"enum": []any{TypeBalancer, TypePlaceValue, TypeFlashcards},
		},
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"attempt_ceiling": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"auto_advance": map[string]any{
			"type": "boolean",
		},
		"auto_advance_delay_ms": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"require_all_correct": map[string]any{
			"type": "boolean",
		},
		"guided_available": map[string]any{
			"type": "boolean",
		},
		"challenges": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    challengeSchemaDef,
		},
	},
	"required":             []any{"id", "type", "title", "challenges"},
	"additionalProperties": false,
}

var challengeSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"kind": map[string]any{
			"type": "string",
		},
		"instruction": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"hint": map[string]any{
			"type": "string",
		},
		"expected": map[string]any{},
		"difficulty": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
	},
	"required":             []any{"id", "instruction", "expected"},
	"additionalProperties": false,
}
