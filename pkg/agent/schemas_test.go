package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlannerSchema(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{
			name: "full action set",
			content: `{
				"thinking": "cold start, pick a project",
				"actions": [
					{"type": "update_project", "title": "Pixel Garden", "description": "A clickable plant sim"},
					{"type": "update_phase", "phase": "building"},
					{"type": "create_todo", "content": "build landing page", "priority": 8},
					{"type": "clear_all_todos"}
				]
			}`,
			valid: true,
		},
		{
			name:    "empty actions",
			content: `{"thinking": "nothing to change", "actions": []}`,
			valid:   true,
		},
		{
			name:    "missing thinking",
			content: `{"actions": []}`,
			valid:   false,
		},
		{
			name:    "unknown action type",
			content: `{"thinking": "x", "actions": [{"type": "launch_rocket"}]}`,
			valid:   false,
		},
		{
			name:    "priority out of range",
			content: `{"thinking": "x", "actions": [{"type": "create_todo", "content": "y", "priority": 11}]}`,
			valid:   false,
		},
		{
			name:    "not json",
			content: `plan: do stuff`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := plannerSchema.validate(tt.content)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBuilderSchema(t *testing.T) {
	require.NoError(t, builderSchema.validate(
		`{"thinking": "rewrite the hero section", "results": {"artifact": "<html></html>"}}`))
	require.NoError(t, builderSchema.validate(
		`{"thinking": "task is unbuildable", "results": {"artifact": ""}}`))
	assert.Error(t, builderSchema.validate(
		`{"thinking": "missing results"}`))
	assert.Error(t, builderSchema.validate(
		`{"thinking": "x", "results": {}}`))
}

func TestCommunicatorSchema(t *testing.T) {
	require.NoError(t, communicatorSchema.validate(
		`{"thinking": "visitor asked about dark mode", "results": {"message": "On it!", "recipient": "stack-1", "type": "direct"}}`))
	require.NoError(t, communicatorSchema.validate(
		`{"thinking": "announce", "results": {"message": "We shipped v2", "type": "broadcast"}}`))
	assert.Error(t, communicatorSchema.validate(
		`{"thinking": "x", "results": {"message": "hi", "type": "visitor"}}`),
		"only direct and broadcast are valid reply types")
}

func TestReviewerSchema(t *testing.T) {
	require.NoError(t, reviewerSchema.validate(`{
		"thinking": "v3 looks solid",
		"results": {
			"recommendations": ["add a favicon", "compress the hero image"],
			"issues": [{"severity": "minor", "description": "footer overflows on mobile"}]
		}
	}`))
	require.NoError(t, reviewerSchema.validate(
		`{"thinking": "clean", "results": {"recommendations": [], "issues": []}}`))
	assert.Error(t, reviewerSchema.validate(
		`{"thinking": "x", "results": {"recommendations": [], "issues": [{"severity": "catastrophic", "description": "y"}]}}`))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Len(t, truncate(string(make([]byte, 5000)), MaxThinkingChars), MaxThinkingChars)
}
