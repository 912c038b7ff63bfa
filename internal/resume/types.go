// Package resume provides the structured résumé data model and the read-only
// store the chat responder answers from.
package resume

import "strings"

// Contact holds the ways a visitor can reach the site owner. All fields are
// optional; an empty string means the field is absent from the résumé.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// BasicInfo identifies the résumé owner.
type BasicInfo struct {
	Name    string  `json:"name"`
	Role    string  `json:"role,omitempty"`
	Contact Contact `json:"contact"`
}

// Education is a single education entry. Entries carry either a University or
// a School field; the formatter uses that distinction to pick tense (see
// chat.educationSentence). Duration and Graduation are alternates; so are
// University and School.
type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university,omitempty"`
	School     string `json:"school,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Graduation string `json:"graduation,omitempty"`
	CGPA       string `json:"cgpa,omitempty"`
}

// Institution returns whichever of University or School is set.
func (e Education) Institution() string {
	if e.University != "" {
		return e.University
	}
	return e.School
}

// When returns whichever of Duration or Graduation is set.
func (e Education) When() string {
	if e.Duration != "" {
		return e.Duration
	}
	return e.Graduation
}

// Project is a portfolio project. Name doubles as the lookup key for
// project-specific questions and must be unique case-insensitively.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	TechStack    []string `json:"techStack,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	LiveLink     string   `json:"liveLink,omitempty"`
}

// Skills groups skill labels by category. Categories render in the declared
// order; empty categories are skipped.
type Skills struct {
	Languages       []string `json:"languages,omitempty"`
	Frameworks      []string `json:"frameworks,omitempty"`
	DeveloperTools  []string `json:"developerTools,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
	PythonLibraries []string `json:"pythonLibraries,omitempty"`
}

// Leadership is a leadership or extracurricular entry.
type Leadership struct {
	Role    string   `json:"role"`
	Date    string   `json:"date,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Document is the structured résumé. Education is ordered with the primary
// (university-level) entry first.
type Document struct {
	BasicInfo                 BasicInfo    `json:"basicInfo"`
	ProfessionalSummary       string       `json:"professionalSummary,omitempty"`
	Education                 []Education  `json:"education,omitempty"`
	Projects                  []Project    `json:"projects,omitempty"`
	Skills                    Skills       `json:"skills"`
	LeadershipExtracurricular []Leadership `json:"leadershipExtracurricular,omitempty"`
}

// ProjectByName returns the first project whose name appears as a
// case-insensitive substring of the query, or nil when none matches.
func (d *Document) ProjectByName(query string) *Project {
	if d == nil {
		return nil
	}
	lower := strings.ToLower(query)
	for i := range d.Projects {
		name := strings.ToLower(strings.TrimSpace(d.Projects[i].Name))
		if name != "" && strings.Contains(lower, name) {
			return &d.Projects[i]
		}
	}
	return nil
}
