package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Plain label", "skills", "skills", false},
		{"Uppercase", "SKILLS", "skills", false},
		{"Surrounding whitespace", "  education \n", "education", false},
		{"Backtick fencing", "`projects`", "projects", false},
		{"Quoted", `"contact"`, "contact", false},
		{"Trailing period", "summary.", "summary", false},
		{"Greeting label", "greeting", "greeting", false},
		{"Other label", "other", "other", false},
		{"Achievements", "achievements", "achievements", false},
		{"Unknown label", "pricing", "", true},
		{"Sentence instead of label", "The intent is skills", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := CleanLabel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
