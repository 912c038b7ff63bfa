package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocJSON = `{
	"basicInfo": {
		"name": "Jane Doe",
		"role": "Engineer",
		"contact": {"email": "jane@example.com"}
	},
	"professionalSummary": "Engineer who ships.",
	"education": [
		{"degree": "B.Sc. Computer Science", "university": "Example University", "duration": "2020 - 2024", "cgpa": "8.1"}
	],
	"projects": [
		{"name": "Notable", "description": "A note-taking app.", "techStack": ["Go"]}
	],
	"skills": {"languages": ["Go", "Python"]}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStore(t *testing.T) {
	t.Run("Loads both sources", func(t *testing.T) {
		jsonPath := writeTemp(t, "resume.json", validDocJSON)
		textPath := writeTemp(t, "resume.txt", sampleText)

		s := LoadStore(jsonPath, textPath)
		assert.True(t, s.HasDocument())
		assert.Equal(t, "Jane Doe", s.Document().BasicInfo.Name)
		assert.Equal(t, sampleText, s.RawText())
	})

	t.Run("Missing JSON degrades to raw text only", func(t *testing.T) {
		textPath := writeTemp(t, "resume.txt", sampleText)

		s := LoadStore(filepath.Join(t.TempDir(), "absent.json"), textPath)
		assert.False(t, s.HasDocument())
		assert.Nil(t, s.Document())
		assert.Equal(t, sampleText, s.RawText())
	})

	t.Run("Missing text degrades to document only", func(t *testing.T) {
		jsonPath := writeTemp(t, "resume.json", validDocJSON)

		s := LoadStore(jsonPath, filepath.Join(t.TempDir(), "absent.txt"))
		assert.True(t, s.HasDocument())
		assert.Empty(t, s.RawText())
	})

	t.Run("Both missing yields an empty store", func(t *testing.T) {
		dir := t.TempDir()
		s := LoadStore(filepath.Join(dir, "a.json"), filepath.Join(dir, "b.txt"))
		assert.False(t, s.HasDocument())
		assert.Empty(t, s.RawText())
	})

	t.Run("Invalid JSON syntax is rejected", func(t *testing.T) {
		jsonPath := writeTemp(t, "resume.json", "{not json")

		s := LoadStore(jsonPath, "")
		assert.False(t, s.HasDocument())
	})

	t.Run("Schema violation is rejected", func(t *testing.T) {
		// basicInfo.name is required.
		jsonPath := writeTemp(t, "resume.json", `{"basicInfo": {"role": "Engineer"}}`)

		s := LoadStore(jsonPath, "")
		assert.False(t, s.HasDocument())
	})

	t.Run("Empty paths skip loading", func(t *testing.T) {
		s := LoadStore("", "")
		assert.False(t, s.HasDocument())
		assert.Empty(t, s.RawText())
	})
}

func TestProjectByName(t *testing.T) {
	doc := &Document{Projects: []Project{
		{Name: "Writify"},
		{Name: "Keeper"},
	}}

	t.Run("Substring match is case-insensitive", func(t *testing.T) {
		p := doc.ProjectByName("tell me about writify please")
		require.NotNil(t, p)
		assert.Equal(t, "Writify", p.Name)
	})

	t.Run("No match returns nil", func(t *testing.T) {
		assert.Nil(t, doc.ProjectByName("something else"))
	})

	t.Run("Nil document returns nil", func(t *testing.T) {
		var d *Document
		assert.Nil(t, d.ProjectByName("writify"))
	})
}

func TestEducationHelpers(t *testing.T) {
	uni := Education{Degree: "B.Tech", University: "Integral University", Duration: "2023 - 2027"}
	school := Education{Degree: "HSC", School: "La Martiniere", Graduation: "2023"}

	assert.Equal(t, "Integral University", uni.Institution())
	assert.Equal(t, "2023 - 2027", uni.When())
	assert.Equal(t, "La Martiniere", school.Institution())
	assert.Equal(t, "2023", school.When())
}
