package pathgen

// monthLengthWeeks is the average number of weeks in a month, used to
// translate path duration into a weekly hour load.
const monthLengthWeeks = 4.33

// PathAnalytics derives descriptive statistics from a completed path.
// The path is not mutated; calling twice yields identical output. A nil or
// degenerate path yields an empty map rather than an error.
func PathAnalytics(path *LearningPath) map[string]any {
	if path == nil || path.Months <= 0 {
		return map[string]any{}
	}
	steps := path.Steps()

	avgRating := 0.0
	free := 0
	if len(steps) > 0 {
		sum := 0.0
		for _, s := range steps {
			sum += s.Resource.Rating
			if s.Resource.CostUSD == 0 {
				free++
			}
		}
		avgRating = sum / float64(len(steps))
	}

	return map[string]any{
		"total_modules":           len(path.Modules),
		"total_resources":         len(steps),
		"resource_types":          resourceTypeCounts(steps),
		"difficulty_distribution": difficultyCounts(path.Modules),
		"avg_resource_rating":     avgRating,
		"free_resources_count":    free,
		"estimated_weekly_hours":  float64(path.TotalHours) / (float64(path.Months) * monthLengthWeeks),
		"skill_tree_path":         path.SkillTreePath,
		"confidence_breakdown":    confidenceFactors(steps),
		"cost_breakdown":          costByType(steps),
		"time_breakdown":          hoursByModule(path.Modules),
	}
}

func resourceTypeCounts(steps []LearningStep) map[string]int {
	counts := make(map[string]int)
	for _, s := range steps {
		counts[string(s.Resource.Type)]++
	}
	return counts
}

func difficultyCounts(modules []LearningModule) map[string]int {
	counts := make(map[string]int)
	for _, m := range modules {
		counts[m.Difficulty.Name()]++
	}
	return counts
}

func confidenceFactors(steps []LearningStep) map[string]float64 {
	if len(steps) == 0 {
		return map[string]float64{}
	}
	var readiness, priority float64
	met := 0
	for _, s := range steps {
		readiness += s.ReadinessScore
		priority += s.PriorityScore
		if s.PrerequisitesMet {
			met++
		}
	}
	n := float64(len(steps))
	return map[string]float64{
		"avg_readiness":          readiness / n,
		"avg_priority":           priority / n,
		"prerequisites_coverage": float64(met) / n,
	}
}

func costByType(steps []LearningStep) map[string]float64 {
	costs := make(map[string]float64)
	for _, s := range steps {
		costs[string(s.Resource.Type)] += s.Resource.CostUSD
	}
	return costs
}

func hoursByModule(modules []LearningModule) map[string]int {
	hours := make(map[string]int)
	for _, m := range modules {
		hours[m.ModuleName] += m.EstimatedHours
	}
	return hours
}
