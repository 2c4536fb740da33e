package transcript

import "github.com/abhisek/gradpath/internal/llm"

// CourseListSchema defines the JSON schema for LLM transcript
// extraction responses.
var CourseListSchema = &llm.Schema{
	Name:        "course-list",
	Description: "Courses identified in a student's transcript or course plan text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"courses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"code": map[string]any{
							"type":        "string",
							"description": "Course code, e.g. 'CSE 2215'. Uppercase prefix, a space, then the number.",
						},
						"name": map[string]any{
							"type":        "string",
							"description": "Course title as written in the transcript, or empty if absent",
						},
						"credit": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     6,
							"description": "Credit hours, or 0 if not stated",
						},
					},
					"required":             []any{"code", "name", "credit"},
					"additionalProperties": false,
				},
				"description": "Every distinct course found, in document order",
			},
		},
		"required":             []any{"courses"},
		"additionalProperties": false,
	},
}
