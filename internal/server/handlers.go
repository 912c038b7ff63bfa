package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/abrar/portfolio-chat/internal/chat"
)

// maxChatBodyBytes caps the request body; chat turns are tiny.
const maxChatBodyBytes = 1 << 20

// RateLimitReply is served with HTTP 429 when a client exceeds its budget.
const RateLimitReply = "You're sending messages too quickly. Please wait a moment and try again."

// ChatMessage is one turn of the widget conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content"`
}

// ChatRequest represents the request body for /api/chat. Only the last
// message's content is ever consulted.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"dive"`
}

// ChatResponse represents the response for /api/chat.
type ChatResponse struct {
	Message string `json:"message"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleChat answers one chat turn. The response contract is deliberately
// uniform: except for the method guard, every outcome is HTTP 200 with a
// message string, so the widget's rendering path never branches on status.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.jsonResponse(w, http.StatusMethodNotAllowed, ChatResponse{Message: "Method not allowed"})
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("chat handler panic: %v", rec)
			s.jsonResponse(w, http.StatusOK, ChatResponse{Message: chat.ErrorReply})
		}
	}()

	question := lastUserContent(r)

	if chat.IsCollaborationQuery(question) {
		s.jsonResponse(w, http.StatusOK, ChatResponse{Message: chat.CollaborationReply})
		return
	}

	answer := s.responder.Respond(r.Context(), question)
	s.jsonResponse(w, http.StatusOK, ChatResponse{Message: answer})
}

// lastUserContent extracts the last message's content from the request body.
// Malformed bodies degrade to an empty question, which the responder treats
// as a greeting; they never produce an error status.
func lastUserContent(r *http.Request) string {
	var req ChatRequest
	body := http.MaxBytesReader(nil, r.Body, maxChatBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return ""
	}
	if err := req.Validate(); err != nil {
		return ""
	}
	if len(req.Messages) == 0 {
		return ""
	}
	return req.Messages[len(req.Messages)-1].Content
}
