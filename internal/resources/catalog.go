package resources

import (
	"strings"

	"github.com/abhisek/skillpath/internal/profile"
)

// catalog is the fixed in-memory resource database, built once at init.
var catalog = seedCatalog()

// Catalog returns all catalog entries.
func Catalog() []LearningResource {
	return append([]LearningResource(nil), catalog...)
}

// FindRelevant returns catalog resources that teach the given skill
// (case-insensitive) at a difficulty no more than one level above the
// target, in catalog order.
func FindRelevant(skill string, target profile.SkillLevel) []LearningResource {
	var out []LearningResource
	for _, r := range catalog {
		if !teaches(r, skill) {
			continue
		}
		if int(r.Difficulty) <= int(target)+1 {
			out = append(out, r)
		}
	}
	return out
}

func teaches(r LearningResource, skill string) bool {
	for _, s := range r.SkillsTaught {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

func seedCatalog() []LearningResource {
	return []LearningResource{
		{
			ID:             "ml_course_1",
			Title:          "Machine Learning A-Z: Hands-On Python & R",
			Description:    "Complete machine learning course with practical projects",
			Type:           TypeCourse,
			Difficulty:     DifficultyIntermediate,
			EstimatedHours: 40,
			SkillsTaught:   []string{"Machine Learning", "Python", "Data Analysis"},
			Prerequisites:  []string{"Python", "Statistics"},
			CostUSD:        89.99,
			Rating:         4.5,
			Provider:       "Udemy",
			Tags:           []string{"hands-on", "practical", "comprehensive"},
		},
		{
			ID:             "python_basics",
			Title:          "Python for Everybody Specialization",
			Description:    "Learn Python programming fundamentals",
			Type:           TypeCourse,
			Difficulty:     DifficultyBeginner,
			EstimatedHours: 60,
			SkillsTaught:   []string{"Python"},
			Prerequisites:  nil,
			CostUSD:        0,
			Rating:         4.8,
			Provider:       "Coursera",
			Tags:           []string{"beginner-friendly", "university", "free"},
		},
		{
			ID:             "data_analysis_project",
			Title:          "Exploratory Data Analysis with Pandas",
			Description:    "Hands-on project for data analysis skills",
			Type:           TypeProject,
			Difficulty:     DifficultyIntermediate,
			EstimatedHours: 20,
			SkillsTaught:   []string{"Data Analysis", "Python"},
			Prerequisites:  []string{"Python"},
			CostUSD:        0,
			Rating:         4.3,
			Tags:           []string{"project-based", "pandas", "free"},
		},
		{
			ID:             "deep_learning_spec",
			Title:          "Deep Learning Specialization",
			Description:    "Comprehensive deep learning course by Andrew Ng",
			Type:           TypeCourse,
			Difficulty:     DifficultyAdvanced,
			EstimatedHours: 120,
			SkillsTaught:   []string{"Deep Learning", "Machine Learning", "Python"},
			Prerequisites:  []string{"Machine Learning", "Python", "Statistics"},
			CostUSD:        39.99,
			Rating:         4.9,
			Provider:       "Coursera",
			Tags:           []string{"andrew-ng", "comprehensive", "theory"},
		},
		{
			ID:             "sql_tutorial",
			Title:          "SQL Tutorial for Data Analysis",
			Description:    "Complete SQL guide for data professionals",
			Type:           TypeTutorial,
			Difficulty:     DifficultyBeginner,
			EstimatedHours: 25,
			SkillsTaught:   []string{"SQL", "Data Analysis"},
			Prerequisites:  nil,
			CostUSD:        0,
			Rating:         4.4,
			Tags:           []string{"sql", "databases", "free"},
		},
		{
			ID:             "react_course",
			Title:          "Complete React Developer Course",
			Description:    "Learn React from basics to advanced concepts",
			Type:           TypeCourse,
			Difficulty:     DifficultyIntermediate,
			EstimatedHours: 45,
			SkillsTaught:   []string{"React", "JavaScript", "Frontend"},
			Prerequisites:  []string{"JavaScript", "HTML", "CSS"},
			CostUSD:        69.99,
			Rating:         4.6,
			Provider:       "Udemy",
			Tags:           []string{"react", "frontend", "modern"},
		},
		{
			ID:             "js_fundamentals",
			Title:          "JavaScript: The Complete Guide",
			Description:    "Master JavaScript from beginner to advanced",
			Type:           TypeCourse,
			Difficulty:     DifficultyBeginner,
			EstimatedHours: 50,
			SkillsTaught:   []string{"JavaScript", "Web Development"},
			Prerequisites:  []string{"HTML", "CSS"},
			CostUSD:        49.99,
			Rating:         4.7,
			Provider:       "Udemy",
			Tags:           []string{"javascript", "fundamentals", "comprehensive"},
		},
	}
}
