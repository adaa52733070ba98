package cv

// DefaultDocument returns the document every new session starts from. It is
// a pure factory: each call builds a fresh value so callers and tests can
// evolve their copies independently.
func DefaultDocument() Document {
	return Document{
		PersonalDetails: PersonalDetails{
			FullName: "Jane Doe",
			JobTitle: "Senior Frontend Developer",
			Email:    "jane.doe@example.com",
			Phone:    "123-456-7890",
			Address:  "San Francisco, CA",
			LinkedIn: "linkedin.com/in/janedoe",
			Photo:    "",
		},
		Summary: "Experienced Frontend Developer with a demonstrated history of working in the computer software industry. " +
			"Skilled in React, TypeScript, and UI/UX design. Strong engineering professional with a Bachelor's degree " +
			"focused in Computer Science from Example University.",
		WorkExperience: []WorkExperience{
			{
				ID:        1,
				JobTitle:  "Senior Frontend Developer",
				Company:   "Tech Solutions Inc.",
				StartDate: "2020-01-01",
				EndDate:   "Present",
				Description: "Led the development of a new user-facing analytics dashboard using React and D3.js. " +
					"Mentored junior developers and improved code quality through rigorous code reviews and pair " +
					"programming sessions. Optimized application performance, resulting in a 30% reduction in load times.",
			},
			{
				ID:        2,
				JobTitle:  "Frontend Developer",
				Company:   "Web Innovators",
				StartDate: "2017-06-01",
				EndDate:   "2019-12-31",
				Description: "Developed and maintained responsive web applications using React and Redux. " +
					"Collaborated with designers to create intuitive and visually appealing user interfaces. " +
					"Wrote unit and integration tests to ensure application stability.",
			},
		},
		Education: []Education{
			{
				ID:          1,
				Institution: "Example University",
				Degree:      "Bachelor of Science in Computer Science",
				StartDate:   "2013-09-01",
				EndDate:     "2017-05-31",
				Description: "Graduated with honors. Active member of the coding club and participated in multiple hackathons.",
			},
		},
		Skills: []Skill{
			{ID: 1, Name: "React"},
			{ID: 2, Name: "TypeScript"},
			{ID: 3, Name: "JavaScript (ES6+)"},
			{ID: 4, Name: "Tailwind CSS"},
			{ID: 5, Name: "UI/UX Design"},
			{ID: 6, Name: "State Management (Redux, Zustand)"},
			{ID: 7, Name: "REST APIs"},
			{ID: 8, Name: "Git & GitHub"},
		},
		AcademicWritings: []AcademicWriting{
			{
				ID:      1,
				Title:   "The Principles of Modern Frontend Development",
				Journal: "Journal of Web Technology",
				Year:    "2021",
				DOI:     "10.1234/jwt.2021.5678",
			},
		},
		ConferencePresentations: []ConferencePresentation{
			{
				ID:             1,
				Title:          "State Management in Large-Scale React Applications",
				ConferenceName: "ReactConf Global",
				Location:       "Virtual",
				Date:           "2022-10-15",
				Role:           RolePresenter,
			},
		},
		BookPublishings: []BookPublishing{
			{
				ID:        1,
				Title:     "Advanced TypeScript Patterns",
				Publisher: "O'Reilly Media",
				Year:      "2023",
				ISBN:      "978-1-492-05448-7",
			},
		},
		ProgrammesOrganised: []ProgrammeOrganised{
			{
				ID:            1,
				ProgrammeName: "Annual Tech Summit 2023",
				Organisation:  "Tech Innovators Hub",
				Location:      "Virtual",
				Date:          "2023-11-20",
				Role:          "Lead Coordinator",
			},
		},
	}
}
