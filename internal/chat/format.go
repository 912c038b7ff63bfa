package chat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abrar/portfolio-chat/internal/resume"
)

// formatter renders an answer for one intent from the structured document.
// Formatters are pure and never fail: a document missing the relevant fields
// yields the formatter's generic fallback sentence.
type formatter func(doc *resume.Document, raw, normalized string) string

// formatters dispatches by intent.
var formatters = map[Intent]formatter{
	IntentSkills:       formatSkills,
	IntentEducation:    formatEducation,
	IntentProjects:     formatProjects,
	IntentAchievements: formatAchievements,
	IntentContact:      formatContact,
	IntentSummary:      formatSummary,
}

// fallbackOrder is the candidate walk used when no intent scored: the first
// formatter producing non-empty output wins.
var fallbackOrder = []Intent{
	IntentEducation,
	IntentSkills,
	IntentProjects,
	IntentAchievements,
	IntentSummary,
}

const maxSkillCategories = 5

func formatSkills(doc *resume.Document, _, _ string) string {
	categories := []struct {
		label string
		items []string
	}{
		{"Languages", doc.Skills.Languages},
		{"Frameworks", doc.Skills.Frameworks},
		{"Developer Tools", doc.Skills.DeveloperTools},
		{"Technologies", doc.Skills.Technologies},
		{"Python Libraries", doc.Skills.PythonLibraries},
	}

	var parts []string
	for _, c := range categories {
		if len(c.items) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("**%s:**\n%s", c.label, strings.Join(c.items, ", ")))
		if len(parts) == maxSkillCategories {
			break
		}
	}
	if len(parts) == 0 {
		return "My skills are listed in my résumé."
	}
	return strings.Join(parts, "\n\n")
}

var (
	class12Re   = regexp.MustCompile(`(?i)class\s*12|12th|xii|higher\s*secondary|hsc|intermediate`)
	higherSecRe = regexp.MustCompile(`(?i)higher\s*secondary|intermediate|xii|12(th)?`)
	bachelorRe  = regexp.MustCompile(`(?i)b\.?tech|bachelor|bachelor of technology|b\. ?e\b|\bbe\b`)
)

func formatEducation(doc *resume.Document, raw, normalized string) string {
	entries := doc.Education
	if len(entries) == 0 {
		return "You can find my education details in my résumé."
	}

	var hs, ug *resume.Education
	for i := range entries {
		e := &entries[i]
		if hs == nil && (higherSecRe.MatchString(e.Degree) || e.School != "") {
			hs = e
		}
		if ug == nil && bachelorRe.MatchString(e.Degree) {
			ug = e
		}
	}
	if ug == nil {
		ug = &entries[0]
	}

	if (class12Re.MatchString(raw) || class12Re.MatchString(normalized)) && hs != nil {
		return educationSentence(*hs)
	}

	parts := []string{educationSentence(*ug)}
	if hs != nil && hs != ug {
		parts = append(parts, educationSentence(*hs))
	}
	return strings.Join(parts, " ")
}

// educationSentence renders one entry as a human sentence. Tense is keyed off
// the School field: school entries read as completed, university entries as
// in progress. That heuristic fits this résumé's data, not résumés in
// general; revisit it before reusing the formatter elsewhere.
func educationSentence(e resume.Education) string {
	degree := e.Degree
	place := e.Institution()
	when := e.When()

	if e.School != "" {
		if e.CGPA != "" {
			return fmt.Sprintf("I completed my %s at %s in %s with a CGPA of %s.", degree, place, when, e.CGPA)
		}
		return fmt.Sprintf("I completed my %s at %s in %s.", degree, place, when)
	}

	switch {
	case when != "" && e.CGPA != "":
		return fmt.Sprintf("I'm pursuing %s at %s (%s), with a current CGPA of %s.", degree, place, when, e.CGPA)
	case when != "":
		return fmt.Sprintf("I'm pursuing %s at %s (%s).", degree, place, when)
	default:
		return fmt.Sprintf("I'm pursuing %s at %s.", degree, place)
	}
}

var (
	allProjectsRe  = regexp.MustCompile(`(?i)\b(all|list|show (all|me) projects|projects list)\b`)
	otherProjectRe = regexp.MustCompile(`(?i)\b(other|another|else|more)\b`)
)

const (
	maxProjectOverview = 3
	maxProjectStack    = 5
	maxProjectWins     = 3
	maxOverviewStack   = 3
)

func formatProjects(doc *resume.Document, raw, normalized string) string {
	projects := doc.Projects
	if len(projects) == 0 {
		return "My projects are listed in my résumé."
	}

	if allProjectsRe.MatchString(raw) {
		var lines []string
		for _, p := range projects {
			if len(lines) == maxProjectOverview {
				break
			}
			line := "• " + p.Name
			if p.Description != "" {
				line += " – " + p.Description
			}
			if len(p.TechStack) > 0 {
				stack := p.TechStack
				if len(stack) > maxOverviewStack {
					stack = stack[:maxOverviewStack]
				}
				line += fmt.Sprintf(" (Stack: %s)", strings.Join(stack, ", "))
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")
	}

	proj := doc.ProjectByName(normalized)
	if proj == nil {
		proj = &projects[0]
	}
	// "tell me about another project" after the default match shifts to the
	// second project.
	if otherProjectRe.MatchString(raw) && len(projects) > 1 && proj == &projects[0] {
		proj = &projects[1]
	}

	return projectDetail(proj)
}

func projectDetail(p *resume.Project) string {
	var sb strings.Builder
	sb.WriteString("**" + p.Name + "**")
	if p.Description != "" {
		sb.WriteString("\n\n" + p.Description)
	}

	stack := p.TechStack
	if len(stack) > maxProjectStack {
		stack = stack[:maxProjectStack]
	}
	if len(stack) > 0 {
		sb.WriteString("\n\n**Tech Stack:**\n" + strings.Join(stack, ", "))
	}

	wins := p.Achievements
	if len(wins) > maxProjectWins {
		wins = wins[:maxProjectWins]
	}
	if len(wins) > 0 {
		sb.WriteString("\n\n**Key Achievements:**")
		for _, a := range wins {
			sb.WriteString("\n• " + a)
		}
	}

	if p.LiveLink != "" {
		sb.WriteString("\n\n**Link:** " + p.LiveLink)
	}
	return sb.String()
}

const maxLeadershipEntries = 3

func formatAchievements(doc *resume.Document, _, _ string) string {
	entries := doc.LeadershipExtracurricular
	if len(entries) == 0 {
		return "I participate in hackathons and university events."
	}

	var bullets []string
	for _, item := range entries {
		if len(bullets) == maxLeadershipEntries {
			break
		}
		b := fmt.Sprintf("• **%s** (%s)", item.Role, item.Date)
		if len(item.Details) > 0 {
			b += "\n  " + item.Details[0]
		}
		bullets = append(bullets, b)
	}
	return strings.Join(bullets, "\n\n")
}

const maxSummarySentences = 3

func formatSummary(doc *resume.Document, _, _ string) string {
	return resume.FirstSentences(doc.ProfessionalSummary, maxSummarySentences)
}

var (
	wantEmailRe    = regexp.MustCompile(`(?i)\b(email|e-mail|mail)\b`)
	wantPhoneRe    = regexp.MustCompile(`(?i)\b(phone|mobile)\b`)
	wantLocationRe = regexp.MustCompile(`(?i)\b(where.*live|where do you live|where are you based|location|city|live|based|address)\b`)
	wantLinkedInRe = regexp.MustCompile(`(?i)\blinkedin\b`)
	wantGitHubRe   = regexp.MustCompile(`(?i)\bgithub\b`)
)

const maxContactLines = 3

func formatContact(doc *resume.Document, raw, _ string) string {
	c := doc.BasicInfo.Contact

	switch {
	case wantEmailRe.MatchString(raw) && c.Email != "":
		return fmt.Sprintf("You can reach me at %s.", c.Email)
	case wantPhoneRe.MatchString(raw) && c.Phone != "":
		return fmt.Sprintf("My contact number is %s.", c.Phone)
	case wantLocationRe.MatchString(raw) && c.Location != "":
		return fmt.Sprintf("I'm based in %s.", c.Location)
	case wantLinkedInRe.MatchString(raw) && c.LinkedIn != "":
		return "Here is my LinkedIn: " + c.LinkedIn
	case wantGitHubRe.MatchString(raw) && c.GitHub != "":
		return "Here is my GitHub: " + c.GitHub
	}

	var lines []string
	add := func(label, v string) {
		if v != "" && len(lines) < maxContactLines {
			lines = append(lines, label+": "+v)
		}
	}
	add("Location", c.Location)
	add("Email", c.Email)
	add("Phone", c.Phone)
	add("LinkedIn", c.LinkedIn)
	add("GitHub", c.GitHub)

	if len(lines) == 0 {
		return "You can find my contact details in my résumé."
	}
	return strings.Join(lines, "\n")
}

const (
	pitchSummarySentences = 2
	pitchLanguages        = 3
	pitchFrameworks       = 2
	pitchStackItems       = 2
)

// hirePitch synthesizes a short pitch from the summary, top skills, and the
// first project. Hiring questions route here regardless of intent scores.
func hirePitch(doc *resume.Document) string {
	role := doc.BasicInfo.Role
	if role == "" {
		role = "Full-Stack Developer"
	}

	summary := resume.FirstSentences(doc.ProfessionalSummary, pitchSummarySentences)
	if summary == "" {
		summary = fmt.Sprintf("I'm a %s focused on building secure, scalable, and user-centric web apps.", role)
	}

	langs := doc.Skills.Languages
	if len(langs) > pitchLanguages {
		langs = langs[:pitchLanguages]
	}
	fws := doc.Skills.Frameworks
	if len(fws) > pitchFrameworks {
		fws = fws[:pitchFrameworks]
	}

	parts := []string{summary}
	var core []string
	if len(langs) > 0 {
		core = append(core, strings.Join(langs, ", "))
	}
	if len(fws) > 0 {
		core = append(core, strings.Join(fws, ", "))
	}
	if len(core) > 0 {
		parts = append(parts, "Core stack: "+strings.Join(core, " • ")+".")
	}

	if len(doc.Projects) > 0 {
		p := doc.Projects[0]
		stack := p.TechStack
		if len(stack) > pitchStackItems {
			stack = stack[:pitchStackItems]
		}
		parts = append(parts, fmt.Sprintf("Recent work: %s (%s).", p.Name, strings.Join(stack, ", ")))
	}

	return strings.Join(parts, " ")
}
