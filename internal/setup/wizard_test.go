package setup

import (
	"testing"
)

// enter sets the pending text answer and advances one stage.
func enter(t *testing.T, m wizardModel, value string) wizardModel {
	t.Helper()
	m.input.Model.SetValue(value)
	next, _ := m.advance()
	nm, ok := next.(wizardModel)
	if !ok {
		t.Fatalf("advance returned %T, want wizardModel", next)
	}
	return nm
}

// pick selects a menu choice by index and advances.
func pick(t *testing.T, m wizardModel, index int) wizardModel {
	t.Helper()
	if !m.usesMenu() {
		t.Fatalf("stage %d does not use a menu", m.stage)
	}
	m.menu.Selected = index
	next, _ := m.advance()
	return next.(wizardModel)
}

func TestWizard_FullFlow(t *testing.T) {
	m := newWizardModel()

	m = enter(t, m, "Jane Doe")
	m = enter(t, m, "jane@example.com")

	// one skill
	m = enter(t, m, "Python")
	m = pick(t, m, 1) // intermediate
	m = enter(t, m, "2.5")
	m = enter(t, m, "7")

	// blank skill name ends the skills loop
	m = enter(t, m, "")
	if m.stage != stageGoalName {
		t.Fatalf("stage = %d, want stageGoalName", m.stage)
	}

	// one goal
	m = enter(t, m, "Machine Learning")
	m = pick(t, m, 2) // advanced
	m = enter(t, m, "1")
	m = enter(t, m, "12")

	m = enter(t, m, "") // end goals loop
	m = pick(t, m, 5)   // mixed
	m = enter(t, m, "10")
	m = enter(t, m, "500")

	if !m.finished {
		t.Fatal("wizard did not finish")
	}

	in := m.answers
	if in.Name != "Jane Doe" || in.Email != "jane@example.com" {
		t.Errorf("identity = %q / %q", in.Name, in.Email)
	}
	if len(in.CurrentSkills) != 1 {
		t.Fatalf("skills = %d, want 1", len(in.CurrentSkills))
	}
	s := in.CurrentSkills[0]
	if s.SkillName != "Python" || s.Level != "intermediate" {
		t.Errorf("skill = %+v", s)
	}
	if s.YearsExperience == nil || *s.YearsExperience != 2.5 {
		t.Errorf("years = %v, want 2.5", s.YearsExperience)
	}
	if s.ConfidenceScore == nil || *s.ConfidenceScore != 7 {
		t.Errorf("confidence = %v, want 7", s.ConfidenceScore)
	}
	if len(in.LearningGoals) != 1 {
		t.Fatalf("goals = %d, want 1", len(in.LearningGoals))
	}
	g := in.LearningGoals[0]
	if g.GoalName != "Machine Learning" || g.TargetLevel != "advanced" {
		t.Errorf("goal = %+v", g)
	}
	if in.LearningStyle != "mixed" || in.WeeklyHours != 10 {
		t.Errorf("style/hours = %q / %d", in.LearningStyle, in.WeeklyHours)
	}
	if in.BudgetUSD == nil || *in.BudgetUSD != 500 {
		t.Errorf("budget = %v, want 500", in.BudgetUSD)
	}
}

func TestWizard_RequiresName(t *testing.T) {
	m := newWizardModel()
	m = enter(t, m, "   ")
	if m.stage != stageName {
		t.Errorf("stage = %d, want stageName", m.stage)
	}
	if m.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestWizard_RejectsBadEmail(t *testing.T) {
	m := newWizardModel()
	m = enter(t, m, "Jane")
	m = enter(t, m, "not-an-email")
	if m.stage != stageEmail {
		t.Errorf("stage = %d, want stageEmail", m.stage)
	}
}

func TestWizard_RequiresAtLeastOneGoal(t *testing.T) {
	m := newWizardModel()
	m = enter(t, m, "Jane")
	m = enter(t, m, "jane@example.com")
	m = enter(t, m, "") // skip skills entirely, that is allowed
	if m.stage != stageGoalName {
		t.Fatalf("stage = %d, want stageGoalName", m.stage)
	}
	m = enter(t, m, "")
	if m.stage != stageGoalName || m.errMsg == "" {
		t.Errorf("blank goal list accepted: stage=%d err=%q", m.stage, m.errMsg)
	}
}

func TestWizard_DefaultsOnBlankNumbers(t *testing.T) {
	m := newWizardModel()
	m = enter(t, m, "Jane")
	m = enter(t, m, "jane@example.com")
	m = enter(t, m, "SQL")
	m = pick(t, m, 0)
	m = enter(t, m, "") // years falls back to 1.0
	m = enter(t, m, "") // confidence falls back to 5

	s := m.answers.CurrentSkills[0]
	if *s.YearsExperience != 1.0 || *s.ConfidenceScore != 5 {
		t.Errorf("defaults = %v years, %v confidence", *s.YearsExperience, *s.ConfidenceScore)
	}
}

func TestWizard_BoundsChecks(t *testing.T) {
	m := newWizardModel()
	m = enter(t, m, "Jane")
	m = enter(t, m, "jane@example.com")
	m = enter(t, m, "SQL")
	m = pick(t, m, 0)
	m = enter(t, m, "1")
	m = enter(t, m, "11") // confidence out of range
	if m.stage != stageSkillConfidence || m.errMsg == "" {
		t.Errorf("confidence 11 accepted: stage=%d err=%q", m.stage, m.errMsg)
	}
}
