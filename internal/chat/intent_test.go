package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubHinter is a deterministic IntentHinter for classifier tests.
type stubHinter struct {
	label string
	err   error
	asked bool
}

func (s *stubHinter) ClassifyIntent(_ context.Context, _ string) (string, error) {
	s.asked = true
	return s.label, s.err
}

func classify(t *testing.T, raw string, hinter IntentHinter) Classification {
	t.Helper()
	return Classify(context.Background(), raw, Normalize(raw), testDocument(), hinter)
}

func TestClassify_KeywordBuckets(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Intent
	}{
		{"Skills question", "What are your top skills?", IntentSkills},
		{"Stack question routes to skills", "what is your tech stack", IntentSkills},
		{"Education question", "Tell me about your education", IntentEducation},
		{"Degree question", "What degree do you hold?", IntentEducation},
		{"Projects question", "What projects have you built?", IntentProjects},
		{"Achievements question", "Any awards or prizes?", IntentAchievements},
		{"Contact question", "What is your email?", IntentContact},
		{"Summary question", "Tell me about your background", IntentSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := classify(t, tt.query, nil)
			assert.Equal(t, tt.expected, cls.Intent)
			assert.Greater(t, cls.Score, 0)
		})
	}
}

func TestClassify_EducationalBackgroundDisambiguation(t *testing.T) {
	// "educational background" must not drift to summary on the generic
	// "background" keyword.
	cls := classify(t, "What is your educational background?", nil)
	assert.Equal(t, IntentEducation, cls.Intent)

	cls = classify(t, "Tell me about your academics", nil)
	assert.Equal(t, IntentEducation, cls.Intent)
}

func TestClassify_ProjectNameBoost(t *testing.T) {
	cls := classify(t, "Tell me about Writify", nil)
	assert.Equal(t, IntentProjects, cls.Intent)
	assert.GreaterOrEqual(t, cls.Score, 2)
}

func TestClassify_HinterBias(t *testing.T) {
	t.Run("Greeting short-circuits", func(t *testing.T) {
		hinter := &stubHinter{label: "greeting"}
		cls := classify(t, "hey what's up", hinter)
		assert.True(t, cls.Greeting)
		assert.True(t, hinter.asked)
	})

	t.Run("Closed-set label biases selection", func(t *testing.T) {
		// Ambiguous query; the +3 bias should decide it.
		hinter := &stubHinter{label: "achievements"}
		cls := classify(t, "what are you proud of", hinter)
		assert.Equal(t, IntentAchievements, cls.Intent)
	})

	t.Run("Bias does not override a strong deterministic signal", func(t *testing.T) {
		hinter := &stubHinter{label: "contact"}
		cls := classify(t, "education degree university cgpa graduation", hinter)
		assert.Equal(t, IntentEducation, cls.Intent)
	})

	t.Run("Hinter failure is invisible", func(t *testing.T) {
		hinter := &stubHinter{err: errors.New("quota exceeded")}
		cls := classify(t, "What are your top skills?", hinter)
		assert.Equal(t, IntentSkills, cls.Intent)
	})

	t.Run("Other label adds no bias", func(t *testing.T) {
		hinter := &stubHinter{label: "other"}
		cls := classify(t, "What are your top skills?", hinter)
		assert.Equal(t, IntentSkills, cls.Intent)
	})
}

func TestClassify_TieBreakIsStable(t *testing.T) {
	// A query with no signal at all: every intent scores zero and the fixed
	// priority order decides, repeatably.
	first := classify(t, "zzz qqq", nil)
	assert.Equal(t, 0, first.Score)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classify(t, "zzz qqq", nil))
	}
}
