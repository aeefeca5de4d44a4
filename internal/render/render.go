// Package render turns generated paths and analytics into styled terminal
// output.
package render

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillpath/internal/pathgen"
	"github.com/abhisek/skillpath/internal/profile"
	"github.com/abhisek/skillpath/internal/skilltree"
	"github.com/abhisek/skillpath/internal/ui/theme"
)

// Path renders a full learning path, module by module.
func Path(p *pathgen.LearningPath) string {
	var b strings.Builder

	header := fmt.Sprintf("%s  →  %s", p.GoalSkill, p.TargetLevel.String())
	b.WriteString(theme.Title.Render(header) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"%d modules · %d hours · $%.2f · ~%d months · confidence %.0f%%",
		len(p.Modules), p.TotalHours, p.TotalCostUSD, p.Months, p.Confidence*100)) + "\n\n")

	for i, m := range p.Modules {
		b.WriteString(renderModule(i+1, m))
	}
	return b.String()
}

func renderModule(number int, m pathgen.LearningModule) string {
	var b strings.Builder

	b.WriteString(theme.Label.Render(fmt.Sprintf("%d. %s", number, m.ModuleName)))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  [%s · %dh]", m.Difficulty.Name(), m.EstimatedHours)))
	b.WriteString("\n")
	if len(m.SkillsTaught) > 0 {
		b.WriteString(theme.Hint.Render("   teaches: "+strings.Join(m.SkillsTaught, ", ")) + "\n")
	}

	for _, s := range m.Steps {
		marker := theme.Positive.Render("✓")
		if !s.PrerequisitesMet {
			marker = theme.Negative.Render("✗")
		}
		cost := "free"
		if s.Resource.CostUSD > 0 {
			cost = fmt.Sprintf("$%.2f", s.Resource.CostUSD)
		}
		b.WriteString(fmt.Sprintf("   %s %s\n", marker,
			theme.Body.Render(s.Resource.Title)))
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
			"      %s · %s · %dh (~%dw) · %s · rating %.1f · priority %.1f",
			s.Resource.Type, s.Resource.Difficulty, s.Resource.EstimatedHours,
			s.CompletionWeeks, cost, s.Resource.Rating, s.PriorityScore)) + "\n")
		if s.Resource.URL != "" {
			b.WriteString(theme.Hint.Render("      "+s.Resource.URL) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// PathSummaries renders a compact one-line-per-path overview for a batch.
func PathSummaries(paths []*pathgen.LearningPath) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Learning Plan") + "\n\n")
	for i, p := range paths {
		b.WriteString(fmt.Sprintf("%s %s\n",
			theme.Selected.Render(fmt.Sprintf("%d.", i+1)),
			theme.Body.Render(fmt.Sprintf("%s (%s) — %d modules, %dh, ~%d months, confidence %.0f%%",
				p.GoalSkill, p.TargetLevel.String(), len(p.Modules),
				p.TotalHours, p.Months, p.Confidence*100))))
	}
	b.WriteString("\n")
	return b.String()
}

// Analytics renders the derived statistics map for one path.
func Analytics(a map[string]any) string {
	if len(a) == 0 {
		return theme.Hint.Render("no analytics available") + "\n"
	}
	var b strings.Builder
	b.WriteString(theme.Label.Render("Path analytics") + "\n")

	b.WriteString(fmt.Sprintf("  modules: %v · resources: %v · free resources: %v\n",
		a["total_modules"], a["total_resources"], a["free_resources_count"]))
	b.WriteString(fmt.Sprintf("  avg rating: %.2f · weekly load: %.1fh\n",
		a["avg_resource_rating"], a["estimated_weekly_hours"]))

	if types, ok := a["resource_types"].(map[string]int); ok && len(types) > 0 {
		b.WriteString("  by type: " + countLine(types) + "\n")
	}
	if diffs, ok := a["difficulty_distribution"].(map[string]int); ok && len(diffs) > 0 {
		b.WriteString("  by difficulty: " + countLine(diffs) + "\n")
	}
	if factors, ok := a["confidence_breakdown"].(map[string]float64); ok && len(factors) > 0 {
		b.WriteString(fmt.Sprintf("  readiness %.2f · priority %.1f · prerequisites %.0f%%\n",
			factors["avg_readiness"], factors["avg_priority"],
			factors["prerequisites_coverage"]*100))
	}
	return b.String()
}

func countLine(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", k, counts[k]))
	}
	return strings.Join(parts, " · ")
}

// Gaps renders the per-category skill gap analysis for a profile.
func Gaps(p *profile.UserProfile) string {
	gaps := profile.AssessSkillGaps(p)
	var b strings.Builder
	b.WriteString(theme.Title.Render("Skill gaps for "+p.Name) + "\n\n")

	if len(gaps) == 0 {
		b.WriteString(theme.Positive.Render("No gaps — every goal skill is already covered.") + "\n")
		return b.String()
	}

	categories := make([]string, 0, len(gaps))
	for c := range gaps {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		b.WriteString(theme.Label.Render(c) + "\n")
		for _, skill := range gaps[c] {
			b.WriteString("  " + theme.Body.Render(skill))
			if prereqs := profile.Prerequisites(skill); len(prereqs) > 0 {
				b.WriteString(theme.Hint.Render("  (needs " + strings.Join(prereqs, ", ") + ")"))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Tree renders every domain of the skill tree with its modules.
func Tree() string {
	var b strings.Builder
	for _, domain := range skilltree.Domains() {
		b.WriteString(theme.Title.Render(domain) + "\n")
		for _, m := range skilltree.Modules(domain) {
			b.WriteString("  " + theme.Label.Render(m.Name) + "\n")
			b.WriteString(theme.Subtitle.Render("    skills: "+strings.Join(m.Skills, ", ")) + "\n")
			if len(m.Prerequisites) > 0 {
				b.WriteString(theme.Hint.Render("    after:  "+strings.Join(m.Prerequisites, ", ")) + "\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Route renders the resolved module sequence for one goal.
func Route(goalSkill string, route []string) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("Route to "+goalSkill) + "\n")
	for i, name := range route {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			theme.Selected.Render(fmt.Sprintf("%d.", i+1)), theme.Body.Render(name)))
	}
	return b.String()
}

// Profile renders a profile summary card.
func Profile(p *profile.UserProfile) string {
	var lines []string
	lines = append(lines, theme.Title.Render(p.Name)+theme.Subtitle.Render("  <"+p.Email+">"))

	var skills []string
	for _, s := range p.CurrentSkills {
		skills = append(skills, fmt.Sprintf("%s (%s, %.1fy, conf %d/10)",
			s.SkillName, s.Level.String(), s.YearsExperience, s.ConfidenceScore))
	}
	if len(skills) > 0 {
		lines = append(lines, theme.Label.Render("Skills")+" "+theme.Body.Render(strings.Join(skills, "; ")))
	}

	var goals []string
	for _, g := range p.LearningGoals {
		goals = append(goals, fmt.Sprintf("%s → %s (priority %d, %d months)",
			g.GoalName, g.TargetLevel.String(), g.Priority, g.TimelineMonths))
	}
	if len(goals) > 0 {
		lines = append(lines, theme.Label.Render("Goals")+" "+theme.Body.Render(strings.Join(goals, "; ")))
	}

	budget := "none"
	if p.BudgetUSD != nil {
		budget = fmt.Sprintf("$%.0f", *p.BudgetUSD)
	}
	lines = append(lines, theme.Subtitle.Render(fmt.Sprintf(
		"style %s · %dh/week · budget %s", p.PreferredLearningStyle, p.WeeklyHours, budget)))

	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}
