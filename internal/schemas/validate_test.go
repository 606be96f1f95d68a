package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		jsonText  string
		wantError bool
	}{
		{
			name: "Complete document",
			jsonText: `{
				"name": "Jane Doe",
				"title": "Engineer",
				"summary": "Seasoned engineer.",
				"contact": {"email": "jane@example.com", "phone": "123", "linkedin": "linkedin.com/in/jane"},
				"skills": ["Go", "SQL"],
				"education": [{"degree": "BSc", "institution": "MIT", "year": "2019"}],
				"experience": [{"company": "Acme", "role": "Engineer", "details": ["Did things"]}]
			}`,
		},
		{
			name:     "All fields absent",
			jsonText: `{}`,
		},
		{
			name:     "Empty detail lists",
			jsonText: `{"experience": [{"company": "Acme", "role": "Engineer", "details": []}]}`,
		},
		{
			name:      "Skills not an array",
			jsonText:  `{"skills": "Go"}`,
			wantError: true,
		},
		{
			name:      "Unknown top-level field",
			jsonText:  `{"hobbies": ["chess"]}`,
			wantError: true,
		},
		{
			name:      "Experience entry with wrong shape",
			jsonText:  `{"experience": [{"employer": "Acme"}]}`,
			wantError: true,
		},
		{
			name:      "Not JSON at all",
			jsonText:  `not json`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.jsonText)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := Validate(`{"skills": 42}`)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "skills")
}

func TestPromptSkeletonCoversEveryField(t *testing.T) {
	skeleton := PromptSkeleton()

	for _, name := range []string{
		"name", "title", "summary", "contact", "email", "phone", "linkedin",
		"skills", "education", "degree", "institution", "year",
		"experience", "company", "role", "details",
	} {
		assert.Contains(t, skeleton, `"`+name+`"`)
	}

	assert.Contains(t, skeleton, "Optional")
}

func TestDefinitionMatchesSkeleton(t *testing.T) {
	// The skeleton itself must be valid JSON once the type hints are treated
	// as string values, and the schema derived from the same fields must be
	// serializable.
	var shape map[string]any
	require.NoError(t, json.Unmarshal([]byte(PromptSkeleton()), &shape))

	_, err := json.Marshal(Definition())
	require.NoError(t, err)

	def := Definition()
	assert.Equal(t, "object", def["type"])
	props, ok := def["properties"].(map[string]any)
	require.True(t, ok)
	for name := range shape {
		assert.Contains(t, props, name)
	}
}
