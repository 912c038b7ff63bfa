package chat

import (
	"context"
	"log"
	"time"

	"github.com/abrar/portfolio-chat/internal/resume"
)

// Model is the narrow generative-model capability the responder depends on.
// Both methods are best-effort: any error simply advances the fallback chain.
type Model interface {
	IntentHinter
	Complete(ctx context.Context, contextText, question string) (string, error)
}

// completeTimeout bounds the generative completion call. The source relied on
// the platform's request timeout; here the bound is explicit.
const completeTimeout = 10 * time.Second

// Responder answers résumé questions through the fallback chain
// structured → generative → raw-text heuristic → decline.
type Responder struct {
	store *resume.Store
	model Model
}

// NewResponder creates a responder over the given store. model may be nil
// when no generative credential is configured; the chain skips those stages.
func NewResponder(store *resume.Store, model Model) *Responder {
	return &Responder{store: store, model: model}
}

// Respond answers a single question. It always returns a usable string and
// never an error: every internal failure advances to the next fallback stage.
func (r *Responder) Respond(ctx context.Context, raw string) string {
	if IsGreeting(raw) {
		return GreetingReply
	}
	if IsIrrelevant(raw) {
		return DeclineReply
	}

	if r.store.HasDocument() {
		return r.structuredAnswer(ctx, raw)
	}

	if answer := r.generativeAnswer(ctx, raw); answer != "" {
		return answer
	}

	if answer := heuristicAnswer(r.store.RawText(), raw); answer != "" {
		return answer
	}

	return DeclineReply
}

// structuredAnswer runs classification and formatting against the structured
// document. Formatters carry their own fallback text, so a loaded document
// always yields an answer.
func (r *Responder) structuredAnswer(ctx context.Context, raw string) string {
	doc := r.store.Document()

	if IsHireQuery(raw) {
		return hirePitch(doc)
	}

	normalized := Normalize(raw)

	var hinter IntentHinter
	if r.model != nil {
		hinter = r.model
	}

	cls := Classify(ctx, raw, normalized, doc, hinter)
	if cls.Greeting {
		return GreetingReply
	}

	if cls.Score > 0 {
		return formatters[cls.Intent](doc, raw, normalized)
	}

	// Weak signal: answer with the closest non-empty section instead of
	// declining.
	for _, intent := range fallbackOrder {
		if answer := formatters[intent](doc, raw, normalized); answer != "" {
			return answer
		}
	}
	return formatSummary(doc, raw, normalized)
}

// generativeAnswer runs the external completion over the sanitized raw text.
// It only applies when no structured document is loaded, which keeps the
// structured formatters the single source of truth whenever they can serve.
func (r *Responder) generativeAnswer(ctx context.Context, raw string) string {
	if r.model == nil || r.store.RawText() == "" {
		return ""
	}

	cctx, cancel := context.WithTimeout(ctx, completeTimeout)
	defer cancel()

	answer, err := r.model.Complete(cctx, resume.SanitizeContext(r.store.RawText()), raw)
	if err != nil {
		log.Printf("chat: generative completion unavailable (%v), falling back", err)
		return ""
	}
	return answer
}
