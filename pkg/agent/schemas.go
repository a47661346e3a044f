package agent

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/hackfleet/hackfleet/pkg/llm"
)

// roleSchema pairs the provider-facing contract with a compiled validator.
// The contract is what the gateway encodes natively per provider; the
// validator is our own check on whatever text comes back.
type roleSchema struct {
	contract *llm.JSONSchema
	compiled *jsonschema.Schema
}

func (rs *roleSchema) validate(content string) error {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("reply is not valid JSON: %w", err)
	}
	if err := rs.compiled.Validate(doc); err != nil {
		return fmt.Errorf("reply does not match %s schema: %w", rs.contract.Name, err)
	}
	return nil
}

// mustCompileSchema panics on a malformed schema; the role schemas are
// static so a failure here is a programming error caught at startup.
func mustCompileSchema(name, description string, doc map[string]any) *roleSchema {
	compiler := jsonschema.NewCompiler()
	url := name + ".json"
	if err := compiler.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	return &roleSchema{
		contract: &llm.JSONSchema{Name: name, Description: description, Schema: doc},
		compiled: compiled,
	}
}

var plannerSchema = mustCompileSchema(
	"planner_actions",
	"The planner's decisions for this cycle: project, phase, and todo actions.",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"thinking": map[string]any{"type": "string"},
			"actions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{
								"create_todo", "update_todo", "delete_todo",
								"clear_all_todos", "update_project", "update_phase",
							},
						},
						"content":     map[string]any{"type": "string"},
						"new_content": map[string]any{"type": "string"},
						"priority":    map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"phase":       map[string]any{"type": "string"},
					},
					"required":             []any{"type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"thinking", "actions"},
		"additionalProperties": false,
	},
)

var builderSchema = mustCompileSchema(
	"builder_artifact",
	"The builder's output: a complete HTML artifact for the current task.",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"thinking": map[string]any{"type": "string"},
			"results": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"artifact": map[string]any{"type": "string"},
				},
				"required":             []any{"artifact"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"thinking", "results"},
		"additionalProperties": false,
	},
)

var communicatorSchema = mustCompileSchema(
	"communicator_reply",
	"The communicator's reply to a visitor or peer message.",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"thinking": map[string]any{"type": "string"},
			"results": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"message":   map[string]any{"type": "string"},
					"recipient": map[string]any{"type": "string"},
					"type": map[string]any{
						"type": "string",
						"enum": []any{"direct", "broadcast"},
					},
				},
				"required":             []any{"message", "type"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"thinking", "results"},
		"additionalProperties": false,
	},
)

var reviewerSchema = mustCompileSchema(
	"reviewer_audit",
	"The reviewer's audit of the latest artifact: recommendations and issues.",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"thinking": map[string]any{"type": "string"},
			"results": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"recommendations": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"issues": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"severity": map[string]any{
									"type": "string",
									"enum": []any{"critical", "major", "minor"},
								},
								"description": map[string]any{"type": "string"},
							},
							"required":             []any{"severity", "description"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"recommendations", "issues"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"thinking", "results"},
		"additionalProperties": false,
	},
)
