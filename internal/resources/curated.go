package resources

// curatedDB is the hand-picked descriptor table consulted by the first
// fetcher stage, keyed by topic.
var curatedDB = map[string][]Descriptor{
	"Python": {
		{
			Title:          "Python for Everybody Specialization",
			Description:    "Complete Python programming course from University of Michigan",
			URL:            "https://www.coursera.org/specializations/python",
			Provider:       "Coursera",
			Type:           "course",
			Difficulty:     "beginner",
			Rating:         4.8,
			EstimatedHours: 60,
		},
		{
			Title:          "Automate the Boring Stuff with Python",
			Description:    "Practical Python programming for total beginners",
			URL:            "https://automatetheboringstuff.com/",
			Provider:       "Free Book",
			Type:           "book",
			Difficulty:     "beginner",
			Rating:         4.7,
			EstimatedHours: 40,
		},
	},
	"Machine Learning": {
		{
			Title:          "Machine Learning Course by Andrew Ng",
			Description:    "Comprehensive introduction to machine learning",
			URL:            "https://www.coursera.org/learn/machine-learning",
			Provider:       "Coursera",
			Type:           "course",
			Difficulty:     "intermediate",
			Rating:         4.9,
			EstimatedHours: 60,
		},
		{
			Title:          "Hands-On Machine Learning",
			Description:    "Practical machine learning with Python and Scikit-learn",
			URL:            "https://github.com/ageron/handson-ml2",
			Provider:       "GitHub",
			Type:           "tutorial",
			Difficulty:     "intermediate",
			Rating:         4.8,
			EstimatedHours: 80,
		},
	},
	"Data Analysis": {
		{
			Title:          "Python for Data Analysis",
			Description:    "Data wrangling with Pandas, NumPy, and IPython",
			URL:            "https://wesmckinney.com/pages/book.html",
			Provider:       "O'Reilly",
			Type:           "book",
			Difficulty:     "intermediate",
			Rating:         4.6,
			EstimatedHours: 50,
		},
	},
}

// curatedResources returns the curated descriptors for a topic, filtered by
// exact difficulty label. difficulty "mixed" passes everything through.
func curatedResources(topic, difficulty string) []Descriptor {
	var out []Descriptor
	for _, d := range curatedDB[topic] {
		if difficulty == "mixed" || d.Difficulty == difficulty {
			out = append(out, d)
		}
	}
	return out
}
