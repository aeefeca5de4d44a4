package profile

import (
	"encoding/json"
	"fmt"
	"os"
)

// SkillInput is the raw JSON shape for a current skill.
type SkillInput struct {
	SkillName       string   `json:"skill_name"`
	Level           string   `json:"level"`
	YearsExperience *float64 `json:"years_experience,omitempty"`
	ConfidenceScore *int     `json:"confidence_score,omitempty"`
}

// GoalInput is the raw JSON shape for a learning goal.
type GoalInput struct {
	GoalName       string `json:"goal_name"`
	TargetLevel    string `json:"target_level"`
	Priority       *int   `json:"priority,omitempty"`
	TimelineMonths *int   `json:"timeline_months,omitempty"`
}

// ProfileInput is the raw JSON shape for a complete profile.
type ProfileInput struct {
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	CurrentSkills []SkillInput `json:"current_skills"`
	LearningGoals []GoalInput  `json:"learning_goals"`
	LearningStyle string       `json:"preferred_learning_style,omitempty"`
	WeeklyHours   int          `json:"time_commitment_hours_per_week"`
	BudgetUSD     *float64     `json:"budget_usd,omitempty"`
}

// Defaults applied when optional input fields are omitted.
const (
	defaultYearsExperience = 1.0
	defaultConfidence      = 5
	defaultPriority        = 3
	defaultTimelineMonths  = 6
)

// FromInput validates a raw input and builds a UserProfile.
func FromInput(in ProfileInput) (*UserProfile, error) {
	skills := make([]UserSkill, 0, len(in.CurrentSkills))
	for _, si := range in.CurrentSkills {
		level, err := ParseSkillLevel(si.Level)
		if err != nil {
			return nil, fmt.Errorf("skill %q: %w", si.SkillName, err)
		}
		years := defaultYearsExperience
		if si.YearsExperience != nil {
			years = *si.YearsExperience
		}
		confidence := defaultConfidence
		if si.ConfidenceScore != nil {
			confidence = *si.ConfidenceScore
		}
		skill, err := NewUserSkill(si.SkillName, level, years, confidence)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	goals := make([]LearningGoal, 0, len(in.LearningGoals))
	for _, gi := range in.LearningGoals {
		target, err := ParseSkillLevel(gi.TargetLevel)
		if err != nil {
			return nil, fmt.Errorf("goal %q: %w", gi.GoalName, err)
		}
		priority := defaultPriority
		if gi.Priority != nil {
			priority = *gi.Priority
		}
		timeline := defaultTimelineMonths
		if gi.TimelineMonths != nil {
			timeline = *gi.TimelineMonths
		}
		goal, err := NewLearningGoal(gi.GoalName, target, priority, timeline)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return NewProfile(in.Name, in.Email, skills, goals, in.LearningStyle, in.WeeklyHours, in.BudgetUSD)
}

// LoadFile reads and validates a profile from a JSON file.
func LoadFile(path string) (*UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var in ProfileInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	p, err := FromInput(in)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Input converts a profile back into its raw JSON shape.
func (p *UserProfile) Input() ProfileInput {
	in := ProfileInput{
		Name:          p.Name,
		Email:         p.Email,
		LearningStyle: p.PreferredLearningStyle,
		WeeklyHours:   p.WeeklyHours,
		BudgetUSD:     p.BudgetUSD,
	}
	for _, s := range p.CurrentSkills {
		years := s.YearsExperience
		conf := s.ConfidenceScore
		in.CurrentSkills = append(in.CurrentSkills, SkillInput{
			SkillName:       s.SkillName,
			Level:           s.Level.String(),
			YearsExperience: &years,
			ConfidenceScore: &conf,
		})
	}
	for _, g := range p.LearningGoals {
		priority := g.Priority
		months := g.TimelineMonths
		in.LearningGoals = append(in.LearningGoals, GoalInput{
			GoalName:       g.GoalName,
			TargetLevel:    g.TargetLevel.String(),
			Priority:       &priority,
			TimelineMonths: &months,
		})
	}
	return in
}

// SaveFile writes a profile to a JSON file readable by LoadFile.
func (p *UserProfile) SaveFile(path string) error {
	data, err := json.MarshalIndent(p.Input(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
