package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abrar/portfolio-chat/internal/resume"
)

// stubModel scripts both generative capabilities for pipeline tests.
type stubModel struct {
	hint        string
	hintErr     error
	completion  string
	completeErr error

	completeCalls int
}

func (m *stubModel) ClassifyIntent(_ context.Context, _ string) (string, error) {
	return m.hint, m.hintErr
}

func (m *stubModel) Complete(_ context.Context, _, _ string) (string, error) {
	m.completeCalls++
	return m.completion, m.completeErr
}

func TestRespond_GreetingPrecedence(t *testing.T) {
	// A greeting never reaches classification, the model, or the heuristics.
	model := &stubModel{completion: "generated"}
	r := NewResponder(resume.NewStore(testDocument(), testRawText), model)

	assert.Equal(t, GreetingReply, r.Respond(context.Background(), "hello"))
	assert.Equal(t, GreetingReply, r.Respond(context.Background(), ""))
	assert.Zero(t, model.completeCalls)
}

func TestRespond_IrrelevanceGate(t *testing.T) {
	r := NewResponder(resume.NewStore(testDocument(), testRawText), nil)

	assert.Equal(t, DeclineReply, r.Respond(context.Background(), "What do you think about the election?"))
}

func TestRespond_StructuredPath(t *testing.T) {
	store := resume.NewStore(testDocument(), testRawText)

	t.Run("Skills question is answered from the document", func(t *testing.T) {
		r := NewResponder(store, nil)
		out := r.Respond(context.Background(), "What are your top skills?")
		assert.Contains(t, out, "Languages")
		assert.Contains(t, out, "Python")
	})

	t.Run("Hire question returns the pitch", func(t *testing.T) {
		r := NewResponder(store, nil)
		out := r.Respond(context.Background(), "Why should I hire you?")
		assert.Contains(t, out, "Core stack:")
	})

	t.Run("Completion never runs when a document is loaded", func(t *testing.T) {
		model := &stubModel{hint: "skills", completion: "generated"}
		r := NewResponder(store, model)
		out := r.Respond(context.Background(), "What frameworks do you know?")
		assert.NotEqual(t, "generated", out)
		assert.Zero(t, model.completeCalls)
	})

	t.Run("Model greeting hint yields the greeting reply", func(t *testing.T) {
		model := &stubModel{hint: "greeting"}
		r := NewResponder(store, model)
		assert.Equal(t, GreetingReply, r.Respond(context.Background(), "how goes it"))
	})

	t.Run("Zero-score question gets the closest section, not a decline", func(t *testing.T) {
		r := NewResponder(store, nil)
		out := r.Respond(context.Background(), "zzz qqq")
		assert.NotEqual(t, DeclineReply, out)
		assert.NotEmpty(t, out)
	})
}

func TestRespond_GenerativePath(t *testing.T) {
	store := resume.NewStore(nil, testRawText)

	t.Run("Completion answers when no document is loaded", func(t *testing.T) {
		model := &stubModel{completion: "I built Writify in React."}
		r := NewResponder(store, model)
		assert.Equal(t, "I built Writify in React.", r.Respond(context.Background(), "What did you build?"))
	})

	t.Run("Completion failure falls back to the raw-text heuristics", func(t *testing.T) {
		model := &stubModel{completeErr: errors.New("quota exceeded")}
		r := NewResponder(store, model)
		out := r.Respond(context.Background(), "What skills do you have?")
		assert.Contains(t, out, "Languages: Python, Java, JavaScript")
	})

	t.Run("Empty completion falls back too", func(t *testing.T) {
		model := &stubModel{completion: ""}
		r := NewResponder(store, model)
		out := r.Respond(context.Background(), "What is your education?")
		assert.Contains(t, out, "Integral University")
	})

	t.Run("Nil model goes straight to the heuristics", func(t *testing.T) {
		r := NewResponder(store, nil)
		out := r.Respond(context.Background(), "Tell me about Writify")
		assert.Contains(t, out, "• Writify")
	})

	t.Run("Nothing matches yields the decline reply", func(t *testing.T) {
		r := NewResponder(store, nil)
		assert.Equal(t, DeclineReply, r.Respond(context.Background(), "What do you like to eat?"))
	})
}

func TestRespond_Idempotent(t *testing.T) {
	r := NewResponder(resume.NewStore(testDocument(), testRawText), nil)

	first := r.Respond(context.Background(), "Tell me about your education")
	second := r.Respond(context.Background(), "Tell me about your education")
	assert.Equal(t, first, second)
}

func TestRespond_NeverEmpty(t *testing.T) {
	queries := []string{
		"", "hi", "what are your skills", "zzz", "election", "Tell me about Writify",
	}

	for _, variant := range []struct {
		name  string
		store *resume.Store
	}{
		{"With document", resume.NewStore(testDocument(), testRawText)},
		{"Raw text only", resume.NewStore(nil, testRawText)},
		{"Nothing loaded", resume.NewStore(nil, "")},
	} {
		t.Run(variant.name, func(t *testing.T) {
			r := NewResponder(variant.store, nil)
			for _, q := range queries {
				assert.NotEmpty(t, r.Respond(context.Background(), q))
			}
		})
	}
}
