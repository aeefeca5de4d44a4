package profile

import (
	"fmt"
	"strings"
)

// SkillLevel is an ordinal proficiency rank. The numeric value is used
// directly in difficulty-gap arithmetic, so the ordering matters.
type SkillLevel int

const (
	LevelBeginner     SkillLevel = 1
	LevelIntermediate SkillLevel = 2
	LevelAdvanced     SkillLevel = 3
	LevelExpert       SkillLevel = 4
)

// String returns the canonical upper-case name for the level.
func (l SkillLevel) String() string {
	switch l {
	case LevelBeginner:
		return "BEGINNER"
	case LevelIntermediate:
		return "INTERMEDIATE"
	case LevelAdvanced:
		return "ADVANCED"
	case LevelExpert:
		return "EXPERT"
	default:
		return fmt.Sprintf("SkillLevel(%d)", int(l))
	}
}

// Valid reports whether the level is one of the four defined ranks.
func (l SkillLevel) Valid() bool {
	return l >= LevelBeginner && l <= LevelExpert
}

// ParseSkillLevel parses a level name (case-insensitive).
func ParseSkillLevel(s string) (SkillLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BEGINNER":
		return LevelBeginner, nil
	case "INTERMEDIATE":
		return LevelIntermediate, nil
	case "ADVANCED":
		return LevelAdvanced, nil
	case "EXPERT":
		return LevelExpert, nil
	default:
		return 0, fmt.Errorf("invalid skill level: %q (want BEGINNER, INTERMEDIATE, ADVANCED, or EXPERT)", s)
	}
}

// UserSkill is one skill the user already has.
type UserSkill struct {
	SkillName       string
	Level           SkillLevel
	YearsExperience float64
	ConfidenceScore int // 1-10 scale
}

// NewUserSkill validates and constructs a UserSkill.
func NewUserSkill(name string, level SkillLevel, years float64, confidence int) (UserSkill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UserSkill{}, fmt.Errorf("skill name cannot be empty")
	}
	if !level.Valid() {
		return UserSkill{}, fmt.Errorf("skill %q: invalid level %d", name, int(level))
	}
	if years < 0 {
		return UserSkill{}, fmt.Errorf("skill %q: years of experience must be non-negative, got %g", name, years)
	}
	if confidence < 1 || confidence > 10 {
		return UserSkill{}, fmt.Errorf("skill %q: confidence score must be between 1 and 10, got %d", name, confidence)
	}
	return UserSkill{
		SkillName:       name,
		Level:           level,
		YearsExperience: years,
		ConfidenceScore: confidence,
	}, nil
}

// Timeline bounds for learning goals. The upstream UI capped timelines at 24
// months while the programmatic constructor allowed 60; skillpath uses the
// wider constructor bound everywhere.
const (
	MinTimelineMonths = 1
	MaxTimelineMonths = 60
)

// LearningGoal is a target skill with priority and timeline.
// Priority 1 is the most important.
type LearningGoal struct {
	GoalName       string
	TargetLevel    SkillLevel
	Priority       int // 1-5, 1 = highest
	TimelineMonths int
}

// NewLearningGoal validates and constructs a LearningGoal.
func NewLearningGoal(name string, target SkillLevel, priority, timelineMonths int) (LearningGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return LearningGoal{}, fmt.Errorf("goal name cannot be empty")
	}
	if !target.Valid() {
		return LearningGoal{}, fmt.Errorf("goal %q: invalid target level %d", name, int(target))
	}
	if priority < 1 || priority > 5 {
		return LearningGoal{}, fmt.Errorf("goal %q: priority must be between 1 and 5, got %d", name, priority)
	}
	if timelineMonths < MinTimelineMonths || timelineMonths > MaxTimelineMonths {
		return LearningGoal{}, fmt.Errorf("goal %q: timeline must be between %d and %d months, got %d",
			name, MinTimelineMonths, MaxTimelineMonths, timelineMonths)
	}
	return LearningGoal{
		GoalName:       name,
		TargetLevel:    target,
		Priority:       priority,
		TimelineMonths: timelineMonths,
	}, nil
}

// learningStyles is the allow-list for PreferredLearningStyle.
var learningStyles = []string{
	"video", "reading", "hands-on", "interactive", "mixed",
	"visual and hands-on", "project-based",
}

// UserProfile is the caller-owned input to path generation. The engine never
// mutates a profile once it receives one.
type UserProfile struct {
	Name                   string
	Email                  string
	CurrentSkills          []UserSkill
	LearningGoals          []LearningGoal
	PreferredLearningStyle string
	WeeklyHours            int
	BudgetUSD              *float64 // nil = no budget limit
}

// NewProfile validates and constructs a UserProfile. Style defaults to
// "mixed" when empty. A nil budget means unlimited.
func NewProfile(name, email string, skills []UserSkill, goals []LearningGoal,
	style string, weeklyHours int, budgetUSD *float64) (*UserProfile, error) {

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	var errs []string
	if name == "" {
		errs = append(errs, "name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		errs = append(errs, "valid email is required")
	}
	if len(skills) == 0 {
		errs = append(errs, "at least one current skill must be specified")
	}
	if len(goals) == 0 {
		errs = append(errs, "at least one learning goal must be specified")
	}
	if weeklyHours <= 0 {
		errs = append(errs, "time commitment must be positive")
	}
	if budgetUSD != nil && *budgetUSD < 0 {
		errs = append(errs, "budget must be non-negative")
	}

	style = strings.TrimSpace(style)
	if style == "" {
		style = "mixed"
	} else if !validStyle(style) {
		errs = append(errs, fmt.Sprintf("invalid learning style %q (want one of: %s)",
			style, strings.Join(learningStyles, ", ")))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("profile validation failed: %s", strings.Join(errs, "; "))
	}

	return &UserProfile{
		Name:                   name,
		Email:                  email,
		CurrentSkills:          skills,
		LearningGoals:          goals,
		PreferredLearningStyle: style,
		WeeklyHours:            weeklyHours,
		BudgetUSD:              budgetUSD,
	}, nil
}

func validStyle(style string) bool {
	for _, s := range learningStyles {
		if strings.EqualFold(style, s) {
			return true
		}
	}
	return false
}

// SkillNames returns the names of the user's current skills, in order.
func (p *UserProfile) SkillNames() []string {
	names := make([]string, len(p.CurrentSkills))
	for i, s := range p.CurrentSkills {
		names[i] = s.SkillName
	}
	return names
}

// FindSkill returns the first current skill whose name matches
// (case-insensitive), or (UserSkill{}, false) if absent.
func (p *UserProfile) FindSkill(name string) (UserSkill, bool) {
	for _, s := range p.CurrentSkills {
		if strings.EqualFold(s.SkillName, name) {
			return s, true
		}
	}
	return UserSkill{}, false
}
