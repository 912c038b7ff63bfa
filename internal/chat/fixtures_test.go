package chat

import "github.com/abrar/portfolio-chat/internal/resume"

// testDocument returns a small structured résumé shared across tests.
func testDocument() *resume.Document {
	return &resume.Document{
		BasicInfo: resume.BasicInfo{
			Name: "Syed Abrar Husain",
			Role: "Fullstack Developer",
			Contact: resume.Contact{
				Email:    "husainabrar870@gmail.com",
				Location: "Lucknow, Uttar Pradesh",
				LinkedIn: "https://linkedin.com/in/abrar",
				GitHub:   "https://github.com/abrar",
			},
		},
		ProfessionalSummary: "Fullstack developer focused on performant, user-centered web apps. I build secure and scalable applications. Every project solves a real problem. I also enjoy mentoring.",
		Education: []resume.Education{
			{
				Degree:     "Bachelor of Technology in Computer Science",
				University: "Integral University, Lucknow",
				Duration:   "Oct 2023 - Sep 2027",
				CGPA:       "7.9",
			},
			{
				Degree:     "Higher Secondary Education",
				School:     "La Martiniere College, Lucknow",
				Graduation: "April 2023",
				CGPA:       "8.3",
			},
		},
		Projects: []resume.Project{
			{
				Name:         "Writify",
				Description:  "University assignment platform with Google OAuth and PostgreSQL.",
				TechStack:    []string{"React", "TypeScript", "Node.js", "PostgreSQL", "TailwindCSS", "JWT"},
				Achievements: []string{"Saves students up to 8 hours weekly", "Google OAuth with JWT sessions"},
				LiveLink:     "https://writify.example.com",
			},
			{
				Name:        "Keeper",
				Description: "A Google Keep clone with real-time notes.",
				TechStack:   []string{"React", "Firebase"},
			},
		},
		Skills: resume.Skills{
			Languages:  []string{"Python", "Java", "JavaScript"},
			Frameworks: []string{"ReactJS", "ExpressJS"},
		},
		LeadershipExtracurricular: []resume.Leadership{
			{
				Role:    "Hackathon Finalist",
				Date:    "2024",
				Details: []string{"Built an AI teaching assistant in 48 hours."},
			},
		},
	}
}

const testRawText = `Syed Abrar Husain

Professional Summary
Fullstack developer focused on performant, user-centered web apps. I build secure and scalable applications. Every project solves a real problem.

Education
Bachelor of Technology in Computer Science - Integral University, Lucknow (Oct 2023 - Sep 2027). CGPA: 7.9
Higher Secondary Education - La Martiniere College, Lucknow (April 2023). CGPA: 8.3

Projects
Writify
University assignment platform with Google OAuth, JWT, PostgreSQL.
Responsive React and Tailwind UI.

Keeper
A Google Keep clone with real-time notes.

Technical Skills
Languages: Python, Java, JavaScript
Technologies: ReactJS, ExpressJS, REST API
Backend: Node.js, ExpressJS, PostgreSQL
Developer Tools: Git, GitHub, Postman

Leadership / Extracurricular
Hackathon Finalist (2024)
Built an AI teaching assistant in 48 hours.
`
