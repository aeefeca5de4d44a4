package pathgen

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/skillpath/internal/profile"
	"github.com/abhisek/skillpath/internal/resources"
	"github.com/abhisek/skillpath/internal/skilltree"
	"github.com/abhisek/skillpath/internal/store"
)

// stepsPerModule caps how many resources one module carries.
const stepsPerModule = 3

// Engine generates learning paths. It owns a resource fetcher whose cache
// lives as long as the engine; construct one engine per process or share it
// freely, both are safe.
type Engine struct {
	fetcher *resources.Fetcher
	events  store.EventRepo
}

// NewEngine creates an Engine. events may be nil to disable telemetry.
func NewEngine(fetcher *resources.Fetcher, events store.EventRepo) *Engine {
	return &Engine{fetcher: fetcher, events: events}
}

// GenerateLearningPath builds a complete path for one goal. It never fails:
// anything that would prevent assembly degrades to a generic one-module
// fallback path.
func (e *Engine) GenerateLearningPath(ctx context.Context, p *profile.UserProfile, goal profile.LearningGoal) *LearningPath {
	if p == nil || p.WeeklyHours <= 0 {
		return e.fallbackPath(ctx, p, goal)
	}

	skillPath := skilltree.PathForGoal(goal.GoalName, p.SkillNames())
	if len(skillPath) == 0 {
		return e.fallbackPath(ctx, p, goal)
	}

	modules := make([]LearningModule, 0, len(skillPath))
	totalHours := 0
	totalCost := 0.0
	for i, name := range skillPath {
		m := e.buildModule(ctx, name, goal, p, i+1)
		modules = append(modules, m)
		totalHours += m.EstimatedHours
		for _, step := range m.Steps {
			totalCost += step.Resource.CostUSD
		}
	}

	months := totalHours / (p.WeeklyHours * 4)
	if months < 1 {
		months = 1
	}

	readiness := profile.ReadinessScore(p, goal.GoalName)

	path := &LearningPath{
		PathID:        "path_" + uuid.NewString(),
		UserID:        p.Email,
		GoalSkill:     goal.GoalName,
		TargetLevel:   goal.TargetLevel,
		Modules:       modules,
		TotalHours:    totalHours,
		TotalCostUSD:  totalCost,
		Months:        months,
		Confidence:    pathConfidence(modules, readiness),
		SkillTreePath: skillPath,
	}
	e.record(ctx, path, false)
	return path
}

// GenerateMultiplePaths builds one path per goal and orders the result by
// goal priority (1 first), breaking ties on higher confidence. Individual
// goals cannot fail, so the batch always covers every goal.
func (e *Engine) GenerateMultiplePaths(ctx context.Context, p *profile.UserProfile) []*LearningPath {
	if p == nil {
		return nil
	}

	// First goal with a given name decides the priority used for sorting.
	priorities := make(map[string]int, len(p.LearningGoals))
	paths := make([]*LearningPath, 0, len(p.LearningGoals))
	for _, goal := range p.LearningGoals {
		paths = append(paths, e.GenerateLearningPath(ctx, p, goal))
		if _, ok := priorities[goal.GoalName]; !ok {
			priorities[goal.GoalName] = goal.Priority
		}
	}

	sort.SliceStable(paths, func(i, j int) bool {
		pi, pj := priorities[paths[i].GoalSkill], priorities[paths[j].GoalSkill]
		if pi != pj {
			return pi < pj
		}
		return paths[i].Confidence > paths[j].Confidence
	})
	return paths
}

func (e *Engine) buildModule(ctx context.Context, moduleName string, goal profile.LearningGoal, p *profile.UserProfile, number int) LearningModule {
	skills := skilltree.ModuleSkills(moduleName)
	primary := moduleName
	if len(skills) > 0 {
		primary = skills[0]
	}

	difficulty := resources.DifficultyForLevel(goal.TargetLevel)
	fetched := e.fetcher.Fetch(ctx, primary, difficulty, "mixed")
	catalogHits := resources.FindRelevant(primary, goal.TargetLevel)

	// Fetched descriptors come first, then catalog entries, capped at
	// stepsPerModule.
	candidates := make([]resources.LearningResource, 0, len(fetched)+len(catalogHits))
	for i, d := range fetched {
		candidates = append(candidates, d.ToResource(fmt.Sprintf("%s_%d", moduleName, i)))
	}
	candidates = append(candidates, catalogHits...)
	if len(candidates) > stepsPerModule {
		candidates = candidates[:stepsPerModule]
	}

	readiness := profile.ReadinessScore(p, primary)
	steps := make([]LearningStep, 0, len(candidates))
	for i, res := range candidates {
		weeks := res.EstimatedHours / p.WeeklyHours
		if weeks < 1 {
			weeks = 1
		}
		steps = append(steps, LearningStep{
			StepNumber:       i + 1,
			Resource:         res,
			CompletionWeeks:  weeks,
			PriorityScore:    resourcePriority(res, p, goal),
			ReadinessScore:   readiness,
			ModuleName:       moduleName,
			PrerequisitesMet: prerequisitesMet(res, p),
		})
	}

	hours := 0
	for _, s := range steps {
		hours += s.Resource.EstimatedHours
	}

	return LearningModule{
		ModuleID:       fmt.Sprintf("module_%d_%s", number, strings.ReplaceAll(moduleName, " ", "_")),
		ModuleName:     moduleName,
		Description:    fmt.Sprintf("Learn %s through hands-on practice and projects", strings.Join(skills, ", ")),
		SkillsTaught:   skills,
		Prerequisites:  skilltree.ModulePrerequisites(moduleName),
		EstimatedHours: hours,
		Steps:          steps,
		Difficulty:     moduleDifficulty(steps),
	}
}

// typeBonuses expresses the hands-on-first resource type preference.
var typeBonuses = map[resources.ResourceType]float64{
	resources.TypeProject:       3,
	resources.TypeCourse:        2,
	resources.TypeTutorial:      2,
	resources.TypeVideo:         1.5,
	resources.TypeCertification: 1,
	resources.TypeBook:          1,
	resources.TypeDocumentation: 0.5,
}

// resourcePriority ranks a resource for a given user and goal by blending
// rating, difficulty fit, cost fit, time fit, and type preference.
func resourcePriority(r resources.LearningResource, p *profile.UserProfile, goal profile.LearningGoal) float64 {
	score := r.Rating * 2

	levelDiff := int(r.Difficulty) - int(goal.TargetLevel)
	if levelDiff < 0 {
		levelDiff = -levelDiff
	}
	if fit := 5 - float64(levelDiff); fit > 0 {
		score += fit
	}

	if r.CostUSD == 0 {
		score += 3
	} else if p.BudgetUSD != nil && *p.BudgetUSD > 0 {
		ratio := r.CostUSD / *p.BudgetUSD
		score += math.Max(0, 3-ratio*3)
	}

	if r.EstimatedHours <= p.WeeklyHours*4 {
		score += 2
	}

	if bonus, ok := typeBonuses[r.Type]; ok {
		score += bonus
	} else {
		score += 1
	}

	return score
}

// prerequisitesMet reports whether every prerequisite the resource declares
// appears among the user's current skill names (case-insensitive).
func prerequisitesMet(r resources.LearningResource, p *profile.UserProfile) bool {
	for _, prereq := range r.Prerequisites {
		if _, ok := p.FindSkill(prereq); !ok {
			return false
		}
	}
	return true
}

// moduleDifficulty derives a module's difficulty from the mean of its step
// difficulty ordinals. Modules without steps default to intermediate.
func moduleDifficulty(steps []LearningStep) resources.Difficulty {
	if len(steps) == 0 {
		return resources.DifficultyIntermediate
	}
	sum := 0
	for _, s := range steps {
		sum += int(s.Resource.Difficulty)
	}
	mean := float64(sum) / float64(len(steps))
	switch {
	case mean <= 1.5:
		return resources.DifficultyBeginner
	case mean <= 2.5:
		return resources.DifficultyIntermediate
	case mean <= 3.5:
		return resources.DifficultyAdvanced
	default:
		return resources.DifficultyExpert
	}
}

// pathConfidence blends resource quality, readiness, path completeness, and
// prerequisite coverage into a 0-1 score.
func pathConfidence(modules []LearningModule, readiness float64) float64 {
	if len(modules) == 0 {
		return 0
	}
	var steps []LearningStep
	for _, m := range modules {
		steps = append(steps, m.Steps...)
	}
	if len(steps) == 0 {
		return 0
	}

	ratingSum := 0.0
	met := 0
	for _, s := range steps {
		ratingSum += s.Resource.Rating
		if s.PrerequisitesMet {
			met++
		}
	}
	ratingScore := ratingSum / float64(len(steps)) / 5.0
	completeness := math.Min(1, float64(len(modules))/3.0)
	coverage := float64(met) / float64(len(steps))

	confidence := 0.3*ratingScore + 0.3*readiness + 0.2*completeness + 0.2*coverage
	return math.Min(1, confidence)
}

// fallbackPath is the deterministic degraded result: one generic module
// holding one generic free resource.
func (e *Engine) fallbackPath(ctx context.Context, p *profile.UserProfile, goal profile.LearningGoal) *LearningPath {
	module := fallbackModule("Learn "+goal.GoalName, 1)

	email := ""
	if p != nil {
		email = p.Email
	}
	path := &LearningPath{
		PathID:        "fallback_" + uuid.NewString(),
		UserID:        email,
		GoalSkill:     goal.GoalName,
		TargetLevel:   goal.TargetLevel,
		Modules:       []LearningModule{module},
		TotalHours:    module.EstimatedHours,
		TotalCostUSD:  0,
		Months:        2,
		Confidence:    0.5,
		SkillTreePath: []string{goal.GoalName},
	}
	e.record(ctx, path, true)
	return path
}

func fallbackModule(moduleName string, number int) LearningModule {
	step := LearningStep{
		StepNumber:       1,
		Resource:         fallbackResource(fmt.Sprintf("fallback_%d", number)),
		CompletionWeeks:  2,
		PriorityScore:    3.0,
		ReadinessScore:   0.7,
		ModuleName:       moduleName,
		PrerequisitesMet: true,
	}
	return LearningModule{
		ModuleID:       fmt.Sprintf("fallback_module_%d", number),
		ModuleName:     moduleName,
		Description:    fmt.Sprintf("Basic learning module for %s", moduleName),
		SkillsTaught:   []string{moduleName},
		Prerequisites:  nil,
		EstimatedHours: 20,
		Steps:          []LearningStep{step},
		Difficulty:     resources.DifficultyIntermediate,
	}
}

func fallbackResource(id string) resources.LearningResource {
	return resources.LearningResource{
		ID:             id,
		Title:          "Basic Learning Resource",
		Description:    "Foundational learning material",
		Type:           resources.TypeTutorial,
		Difficulty:     resources.DifficultyIntermediate,
		EstimatedHours: 20,
		SkillsTaught:   []string{"General Skills"},
		CostUSD:        0,
		Rating:         4.0,
		Provider:       "Generic",
	}
}

func (e *Engine) record(ctx context.Context, path *LearningPath, fallback bool) {
	if e.events == nil {
		return
	}
	data := store.PathGeneratedEventData{
		PathID:       path.PathID,
		UserEmail:    path.UserID,
		GoalSkill:    path.GoalSkill,
		TargetLevel:  path.TargetLevel.String(),
		Modules:      len(path.Modules),
		Steps:        len(path.Steps()),
		TotalHours:   path.TotalHours,
		TotalCostUSD: path.TotalCostUSD,
		Months:       path.Months,
		Confidence:   path.Confidence,
		Fallback:     fallback,
	}
	if err := e.events.AppendPathGenerated(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log path event: %v\n", err)
	}
}
