package profile

// skillCategories groups known skill names into categories for gap analysis.
// Lookups are exact (case-sensitive); an unknown skill simply has no category.
var skillCategories = map[string][]string{
	"Programming":     {"Python", "JavaScript", "Java", "C++", "Go", "Rust"},
	"Data Science":    {"Machine Learning", "Statistics", "Data Analysis", "Deep Learning"},
	"Web Development": {"Frontend", "Backend", "Full Stack", "DevOps"},
	"Cloud Computing": {"AWS", "Azure", "GCP", "Docker", "Kubernetes"},
	"Databases":       {"SQL", "NoSQL", "Database Design", "Data Warehousing"},
	"Soft Skills":     {"Leadership", "Communication", "Project Management"},
}

// prerequisiteMap declares the prerequisite skills for targets that have them.
// Skills not listed here are assumed accessible without prerequisites.
var prerequisiteMap = map[string][]string{
	"Machine Learning": {"Python", "Statistics", "Data Analysis"},
	"Deep Learning":    {"Machine Learning", "Python", "Statistics"},
	"Backend":          {"Programming fundamentals"},
	"Full Stack":       {"Frontend", "Backend"},
	"DevOps":           {"Backend", "Cloud Computing"},
	"Kubernetes":       {"Docker", "Cloud Computing"},
	"Data Warehousing": {"SQL", "Database Design"},
}

// Categories returns all category names with their member skills.
func Categories() map[string][]string {
	out := make(map[string][]string, len(skillCategories))
	for cat, skills := range skillCategories {
		out[cat] = append([]string(nil), skills...)
	}
	return out
}

// CategoryOf returns the category containing the given skill name, or
// ("", false) when the skill is unknown. Matching is exact.
func CategoryOf(skill string) (string, bool) {
	for cat, skills := range skillCategories {
		for _, s := range skills {
			if s == skill {
				return cat, true
			}
		}
	}
	return "", false
}

// Prerequisites returns the prerequisite skills declared for the target
// skill. Unknown skills yield an empty list, never an error.
func Prerequisites(skill string) []string {
	prereqs, ok := prerequisiteMap[skill]
	if !ok {
		return nil
	}
	return append([]string(nil), prereqs...)
}
