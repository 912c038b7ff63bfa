package chat

import (
	"context"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abrar/portfolio-chat/internal/resume"
)

// Intent is the classified topical category of a question.
type Intent string

// The closed intent label set.
const (
	IntentSkills       Intent = "skills"
	IntentEducation    Intent = "education"
	IntentProjects     Intent = "projects"
	IntentAchievements Intent = "achievements"
	IntentContact      Intent = "contact"
	IntentSummary      Intent = "summary"
)

// intentPriority breaks score ties. The order mirrors the candidate order the
// fallback formatter walk uses, so tie-breaking and weak-score fallback agree.
var intentPriority = []Intent{
	IntentEducation,
	IntentSkills,
	IntentProjects,
	IntentAchievements,
	IntentSummary,
	IntentContact,
}

// intentKeywords are the per-intent keyword buckets scored against the
// normalized query. Each bucket word present as a substring scores one point.
var intentKeywords = map[Intent][]string{
	IntentSkills:       {"skill", "skills", "technology", "technologies", "tech", "stack", "languages", "frameworks", "tools", "libraries"},
	IntentEducation:    {"education", "educational background", "academic", "academics", "schooling", "degree", "university", "college", "school", "cgpa", "gpa", "graduation", "duration"},
	IntentProjects:     {"project", "projects", "app", "application", "built", "developed"},
	IntentAchievements: {"achievement", "achievements", "award", "awards", "prize", "hackathon", "leadership", "extracurricular"},
	IntentContact:      {"email", "e-mail", "mail", "phone", "mobile", "contact", "location", "city", "live", "based", "linkedin", "github", "address"},
	IntentSummary:      {"summary", "background", "who are you", "experience"},
}

// intentBonuses are word-boundary regexes matched against the RAW query. They
// are a deliberate backup layer independent of normalization, so an obvious
// signal still lands when the normalizer misses it.
var intentBonuses = []struct {
	intent Intent
	re     *regexp.Regexp
	points int
}{
	{IntentSkills, regexp.MustCompile(`(?i)\b(skill|stack|tech|technology|technologies|framework|tools|library|libraries)\b`), 2},
	{IntentEducation, regexp.MustCompile(`(?i)\b(education|educational background|academic|academics|degree|university|college|school|schooling|cgpa|gpa|graduation|study|qualification)\b`), 2},
	{IntentProjects, regexp.MustCompile(`(?i)\b(project|app|application)\b`), 2},
	{IntentAchievements, regexp.MustCompile(`(?i)\b(achievement|award|prize|hackathon|leadership|extracurricular)\b`), 2},
	{IntentContact, regexp.MustCompile(`(?i)\b(email|e-mail|mail|phone|mobile|contact|location|city|live|based|linkedin|github|address)\b`), 2},
	{IntentSummary, regexp.MustCompile(`(?i)\b(who are you|about yourself|background|summary|experience)\b`), 1},
}

// academicsRe disambiguates "educational background" from generic
// "background" phrasing, which would otherwise drift toward summary.
var academicsRe = regexp.MustCompile(`(?i)\beducational background\b|\bacademics?\b`)

// IntentHinter obtains an intent label from a generative model. Labels are
// the closed set plus "greeting" and "other"; any error means no hint.
type IntentHinter interface {
	ClassifyIntent(ctx context.Context, question string) (string, error)
}

// classifyTimeout bounds the generative hint so a slow model never stalls a
// chat turn.
const classifyTimeout = 5 * time.Second

// Classification is the outcome of intent selection.
type Classification struct {
	Intent Intent
	Score  int

	// Greeting is set when the generative classifier recognized the query as
	// a greeting, which short-circuits to the fixed greeting reply.
	Greeting bool
}

// Classify scores the query against every intent and selects the best one.
// The deterministic keyword and regex layers always run; when hinter is
// non-nil its label is fetched concurrently and applied as a +3 bias before
// final selection, so deterministic signals can still outweigh it.
func Classify(ctx context.Context, raw, normalized string, doc *resume.Document, hinter IntentHinter) Classification {
	scores := make(map[Intent]int, len(intentPriority))

	var hint string
	g, hintCtx := errgroup.WithContext(ctx)
	if hinter != nil {
		g.Go(func() error {
			hctx, cancel := context.WithTimeout(hintCtx, classifyTimeout)
			defer cancel()
			label, err := hinter.ClassifyIntent(hctx, raw)
			if err == nil {
				hint = label
			}
			// Hint failures are invisible: the bias is simply absent.
			return nil
		})
	}

	for intent, bucket := range intentKeywords {
		for _, w := range bucket {
			if strings.Contains(normalized, w) {
				scores[intent]++
			}
		}
	}

	for _, b := range intentBonuses {
		if b.re.MatchString(raw) {
			scores[b.intent] += b.points
		}
	}

	if academicsRe.MatchString(raw) {
		scores[IntentEducation] += 2
		scores[IntentSummary]--
	}

	if doc != nil {
		for _, p := range doc.Projects {
			name := strings.ToLower(strings.TrimSpace(p.Name))
			if name != "" && strings.Contains(normalized, name) {
				scores[IntentProjects] += 2
			}
		}
	}

	_ = g.Wait()
	switch hint {
	case "greeting":
		return Classification{Greeting: true}
	case "", "other":
		// No bias.
	default:
		if _, ok := intentKeywords[Intent(hint)]; ok {
			scores[Intent(hint)] += 3
		}
	}

	// Ties resolve to the earlier entry in intentPriority. The order is a
	// stable implementation choice, not business logic.
	best := Classification{Intent: intentPriority[0], Score: scores[intentPriority[0]]}
	for _, intent := range intentPriority[1:] {
		if scores[intent] > best.Score {
			best = Classification{Intent: intent, Score: scores[intent]}
		}
	}
	return best
}
