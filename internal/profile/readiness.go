package profile

// noPrereqReadiness is the score for skills with no declared prerequisites.
const noPrereqReadiness = 0.8

// ReadinessScore measures how ready the user is to learn targetSkill,
// on a 0-1 scale. Each declared prerequisite contributes
// (level/4 + confidence/10)/2 when the user has it, and 0 when missing;
// the result is the mean across prerequisites.
func ReadinessScore(p *UserProfile, targetSkill string) float64 {
	prereqs := Prerequisites(targetSkill)
	if len(prereqs) == 0 {
		return noPrereqReadiness
	}

	var sum float64
	var n int
	for _, prereq := range prereqs {
		n++
		skill, ok := p.FindSkill(prereq)
		if !ok {
			continue // missing prerequisite contributes 0
		}
		levelScore := float64(skill.Level) / 4.0
		confScore := float64(skill.ConfidenceScore) / 10.0
		sum += (levelScore + confScore) / 2.0
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

// AssessSkillGaps maps each category to the goal skills the user is missing
// in it. Categories without gaps are omitted.
func AssessSkillGaps(p *UserProfile) map[string][]string {
	have := make(map[string]bool, len(p.CurrentSkills))
	for _, s := range p.CurrentSkills {
		have[s.SkillName] = true
	}
	want := make(map[string]bool, len(p.LearningGoals))
	for _, g := range p.LearningGoals {
		want[g.GoalName] = true
	}

	gaps := make(map[string][]string)
	for cat, skills := range skillCategories {
		var missing []string
		for _, skill := range skills {
			if want[skill] && !have[skill] {
				missing = append(missing, skill)
			}
		}
		if len(missing) > 0 {
			gaps[cat] = missing
		}
	}
	return gaps
}
