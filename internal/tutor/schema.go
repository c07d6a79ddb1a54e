package tutor

import "github.com/abhisek/primer/internal/llm"

// CommentSchema defines the JSON schema for tutor commentary.
var CommentSchema = &llm.Schema{
	Name:        "tutor-comment",
	Description: "A short spoken comment from the tutor to the learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"comment": map[string]any{
				"type":        "string",
				"description": "One or two encouraging sentences. Plain ASCII text, no markdown.",
			},
		},
		"required":             []any{"comment"},
		"additionalProperties": false,
	},
}
