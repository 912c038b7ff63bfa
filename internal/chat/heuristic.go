package chat

import (
	"regexp"
	"strings"

	"github.com/abrar/portfolio-chat/internal/resume"
)

// heuristicCheck is one raw-text fallback rule: when the query matches, the
// answer is rendered from a named section of the raw résumé. Checks run in
// declaration order and the first match wins, so specific rules (a named
// project, "backend") sit above the generic ones.
type heuristicCheck struct {
	matches func(rawText, q string) bool
	answer  func(rawText, q string) string
}

func matchRe(re *regexp.Regexp) func(string, string) bool {
	return func(_, q string) bool { return re.MatchString(q) }
}

var (
	whoAreYouRe  = regexp.MustCompile(`(?i)who are (you|u)|who am i`)
	heurEduRe    = regexp.MustCompile(`(?i)qualification|education|degree`)
	backendRe    = regexp.MustCompile(`(?i)backend`)
	hackathonRe  = regexp.MustCompile(`(?i)hackathon`)
	heurProjRe   = regexp.MustCompile(`(?i)project`)
	heurSkillRe  = regexp.MustCompile(`(?i)skill|stack|tech`)
	experienceRe = regexp.MustCompile(`(?i)experience|work|employment|career`)
	skillLineRe  = regexp.MustCompile(`(?im)^(?:Technologies|Backend|Languages).*$`)
)

var heuristicChecks = []heuristicCheck{
	{
		matches: matchRe(whoAreYouRe),
		answer: func(text, _ string) string {
			summary := resume.ExtractSection(text, "Professional Summary")
			if s := resume.FirstSentences(summary, 2); s != "" {
				return s
			}
			return "I am a software engineer. Ask about my background, skills, projects, or experience."
		},
	},
	{
		matches: matchRe(heurEduRe),
		answer: func(text, _ string) string {
			if edu := resume.ExtractSection(text, "Education"); edu != "" {
				return edu
			}
			return "You can find my education details in the resume text provided."
		},
	},
	{
		// A query naming a specific project, matched against the title lines
		// of Projects-section blocks.
		matches: func(text, q string) bool { return namedProjectBlock(text, q) != "" },
		answer: func(text, q string) string {
			return resume.BulletLines(namedProjectBlock(text, q), 4)
		},
	},
	{
		matches: matchRe(backendRe),
		answer: func(text, _ string) string {
			skills := resume.ExtractSection(text, "Technical Skills")
			if lines := skillLineRe.FindAllString(skills, -1); len(lines) > 0 {
				return strings.Join(lines, "\n")
			}
			if skills != "" {
				return skills
			}
			return "I have listed my backend experience and tools in the skills section."
		},
	},
	{
		matches: matchRe(hackathonRe),
		answer: func(text, _ string) string {
			lead := resume.ExtractSection(text, "Leadership / Extracurricular")
			block := blockMatching(lead, hackathonRe)
			if b := resume.BulletLines(block, 4); b != "" {
				return b
			}
			return "I have participated in hackathons; see the relevant section in my résumé."
		},
	},
	{
		matches: matchRe(heurProjRe),
		answer: func(text, _ string) string {
			proj := resume.ExtractSection(text, "Projects")
			if b := resume.BulletLines(proj, 6); b != "" {
				return b
			}
			return "My projects are listed in the Projects section of my résumé."
		},
	},
	{
		matches: matchRe(heurSkillRe),
		answer: func(text, _ string) string {
			skills := resume.ExtractSection(text, "Technical Skills")
			var lines []string
			for _, l := range strings.Split(skills, "\n") {
				if l = strings.TrimSpace(l); l != "" {
					lines = append(lines, l)
				}
				if len(lines) == 4 {
					break
				}
			}
			if len(lines) > 0 {
				return strings.Join(lines, "\n")
			}
			return "My skills are listed in the Skills section of my résumé."
		},
	},
	{
		matches: matchRe(experienceRe),
		answer: func(text, _ string) string {
			summary := resume.ExtractSection(text, "Professional Summary")
			if s := resume.FirstSentences(summary, 2); s != "" {
				return s
			}
			return "You can find my work experience in the Experience section."
		},
	},
}

// heuristicAnswer matches the query against the fixed ordered checks and
// extracts the corresponding section of the raw résumé text. Returns "" when
// nothing matches so the pipeline can decline.
func heuristicAnswer(rawText, query string) string {
	q := strings.ToLower(query)

	for _, check := range heuristicChecks {
		if !check.matches(rawText, q) {
			continue
		}
		if a := check.answer(rawText, q); a != "" {
			return a
		}
	}
	return ""
}

// namedProjectBlock finds a Projects-section block whose title appears in the
// query, so "tell me about writify" works even without structured data.
func namedProjectBlock(rawText, q string) string {
	if rawText == "" || q == "" {
		return ""
	}
	projects := resume.ExtractSection(rawText, "Projects")
	if projects == "" {
		return ""
	}
	for _, block := range strings.Split(projects, "\n\n") {
		title := strings.TrimSpace(strings.SplitN(block, "\n", 2)[0])
		for _, word := range strings.Fields(strings.ToLower(title)) {
			word = strings.Trim(word, ".,:;()–-")
			if len(word) >= 4 && strings.Contains(q, word) {
				return block
			}
		}
	}
	return ""
}

// blockMatching returns the first blank-line-separated block of text matching
// re, falling back to the whole text.
func blockMatching(text string, re *regexp.Regexp) string {
	for _, block := range strings.Split(text, "\n\n") {
		if re.MatchString(block) {
			return block
		}
	}
	return text
}
