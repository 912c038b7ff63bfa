package chat

import (
	"regexp"
	"strings"
)

// Fixed replies. The chat UI renders these verbatim, so they are defined once
// here rather than composed.
const (
	// GreetingReply answers pure greetings and empty input.
	GreetingReply = "Hi, I'm Syed Abrar Husain's AI assistant. You can ask me about my skills, projects, or experience."

	// DeclineReply answers off-topic questions.
	DeclineReply = "I prefer to keep this chatbot focused on my professional experience."

	// CollaborationReply answers collaboration inquiries; served at the HTTP
	// boundary before the responder runs.
	CollaborationReply = "I'd be glad to collaborate on meaningful projects. You can reach me at husainabrar870@gmail.com, connect with me on LinkedIn, or explore my work on GitHub. Feel free to share your idea, and we can see how to build something impactful together."

	// ErrorReply is the only thing a caller ever sees when something truly
	// unexpected happens inside the request handler.
	ErrorReply = "Sorry, something went wrong. Please try again."
)

var (
	greetingRe      = regexp.MustCompile(`(?i)^(hi|hello|hey|yo|hola|namaste|salam)[!.,\s]*$`)
	greetingThereRe = regexp.MustCompile(`(?i)\b(hi|hello|hey) there\b`)
	irrelevantRe    = regexp.MustCompile(`(?i)\b(politics|election|religion|cricket|football|soccer|nba|meme|joke|weather|lottery|stock tip|relationship)\b`)
	hireRe          = regexp.MustCompile(`(?i)\b(hire|hiring|work with you|why should i hire|offer you|join our team)\b`)
)

// collaborationPhrases trigger the outreach reply on plain substring match.
var collaborationPhrases = []string{
	"collaborate",
	"collaboration",
	"work together",
	"partner",
	"team up",
}

// IsGreeting reports whether the raw query is a pure greeting. Empty input
// counts as a greeting so the widget opens with the assistant introduction.
func IsGreeting(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return true
	}
	return greetingRe.MatchString(trimmed) || greetingThereRe.MatchString(trimmed)
}

// IsIrrelevant reports whether the raw query is about a fixed list of
// off-topic subjects the bot declines to discuss.
func IsIrrelevant(raw string) bool {
	return irrelevantRe.MatchString(raw)
}

// IsHireQuery reports whether the raw query expresses hiring intent, which
// bypasses normal intent routing in favor of a pitch.
func IsHireQuery(raw string) bool {
	return hireRe.MatchString(raw)
}

// IsCollaborationQuery reports whether the raw query asks about working
// together. Checked at the request-handler boundary before the pipeline.
func IsCollaborationQuery(raw string) bool {
	lower := strings.ToLower(raw)
	for _, p := range collaborationPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
