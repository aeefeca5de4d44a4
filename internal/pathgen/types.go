package pathgen

import (
	"github.com/abhisek/skillpath/internal/profile"
	"github.com/abhisek/skillpath/internal/resources"
)

// LearningStep is one resource within a module, annotated with the scores
// computed at generation time. Steps are never mutated after the path is
// assembled.
type LearningStep struct {
	StepNumber       int // 1-based within the module
	Resource         resources.LearningResource
	CompletionWeeks  int
	PriorityScore    float64
	ReadinessScore   float64 // 0-1
	ModuleName       string
	PrerequisitesMet bool
}

// LearningModule is one unit of a path, mapped 1:1 to a skill tree module.
// It owns its steps exclusively.
type LearningModule struct {
	ModuleID       string
	ModuleName     string
	Description    string
	SkillsTaught   []string
	Prerequisites  []string
	EstimatedHours int // sum over steps
	Steps          []LearningStep
	Difficulty     resources.Difficulty
}

// LearningPath is the immutable result of one generation run. The engine
// keeps no reference to it after returning.
type LearningPath struct {
	PathID        string
	UserID        string
	GoalSkill     string
	TargetLevel   profile.SkillLevel
	Modules       []LearningModule
	TotalHours    int
	TotalCostUSD  float64
	Months        int
	Confidence    float64 // 0-1
	SkillTreePath []string
}

// Steps returns every step across all modules, in path order.
func (p *LearningPath) Steps() []LearningStep {
	var all []LearningStep
	for _, m := range p.Modules {
		all = append(all, m.Steps...)
	}
	return all
}
