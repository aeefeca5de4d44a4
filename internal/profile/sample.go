package profile

// SampleProfile returns a ready-made profile for demos and tests.
func SampleProfile() *UserProfile {
	budget := 500.0
	p, err := NewProfile(
		"Alex Johnson",
		"alex.johnson@example.com",
		[]UserSkill{
			{SkillName: "Python", Level: LevelIntermediate, YearsExperience: 2.0, ConfidenceScore: 7},
			{SkillName: "SQL", Level: LevelBeginner, YearsExperience: 0.5, ConfidenceScore: 5},
			{SkillName: "Statistics", Level: LevelBeginner, YearsExperience: 1.0, ConfidenceScore: 4},
		},
		[]LearningGoal{
			{GoalName: "Machine Learning", TargetLevel: LevelIntermediate, Priority: 1, TimelineMonths: 6},
			{GoalName: "Data Analysis", TargetLevel: LevelAdvanced, Priority: 2, TimelineMonths: 4},
			{GoalName: "Deep Learning", TargetLevel: LevelBeginner, Priority: 3, TimelineMonths: 12},
		},
		"visual and hands-on",
		10,
		&budget,
	)
	if err != nil {
		panic("sample profile must be valid: " + err.Error())
	}
	return p
}
