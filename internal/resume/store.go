package resume

import (
	"encoding/json"
	"log"
	"os"

	"github.com/abrar/portfolio-chat/internal/schemas"
)

// Store holds the résumé data for the lifetime of the process. It is loaded
// once at startup and never mutated afterwards, so concurrent readers need no
// locking.
type Store struct {
	doc     *Document
	rawText string
}

// NewStore creates a store from already-loaded data. Intended for tests and
// for callers that assemble fixtures in memory.
func NewStore(doc *Document, rawText string) *Store {
	return &Store{doc: doc, rawText: rawText}
}

// LoadStore reads the structured résumé JSON and the raw résumé text from the
// given paths. Every failure is non-fatal: a missing or invalid file degrades
// the store to "no structured data" and/or empty raw text, and the responder's
// fallback chain absorbs the gap.
func LoadStore(jsonPath, textPath string) *Store {
	s := &Store{}

	if jsonPath != "" {
		doc, err := loadDocument(jsonPath)
		if err != nil {
			log.Printf("resume: structured document unavailable (%v), continuing without it", err)
		} else {
			s.doc = doc
		}
	}

	if textPath != "" {
		data, err := os.ReadFile(textPath)
		if err != nil {
			log.Printf("resume: raw text unavailable (%v), continuing without it", err)
		} else {
			s.rawText = string(data)
		}
	}

	return s
}

// loadDocument reads, schema-validates, and parses the structured résumé.
// Documents failing schema validation are rejected so the responder never
// formats answers from a shape it does not understand.
func loadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateResumeDocument(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Document returns the structured résumé, or nil when none was loaded.
func (s *Store) Document() *Document {
	return s.doc
}

// HasDocument reports whether a structured résumé is available.
func (s *Store) HasDocument() bool {
	return s.doc != nil
}

// RawText returns the raw résumé text, empty when none was loaded.
func (s *Store) RawText() string {
	return s.rawText
}
