package profile

import (
	"math"
	"testing"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestReadinessScore_NoPrerequisites(t *testing.T) {
	p := SampleProfile()
	if got := ReadinessScore(p, "Python"); !floatEq(got, 0.8) {
		t.Errorf("no-prereq readiness = %v, want 0.8", got)
	}
}

func TestReadinessScore_MachineLearning(t *testing.T) {
	// Sample profile: Python INTERMEDIATE/conf 7, Statistics BEGINNER/conf 4,
	// no Data Analysis. Prereqs for ML: Python, Statistics, Data Analysis.
	//   Python:      (2/4 + 7/10)/2 = 0.6
	//   Statistics:  (1/4 + 4/10)/2 = 0.325
	//   Data Analysis: missing     = 0
	// mean = 0.925/3
	p := SampleProfile()
	want := (0.6 + 0.325 + 0.0) / 3.0
	if got := ReadinessScore(p, "Machine Learning"); !floatEq(got, want) {
		t.Errorf("readiness = %v, want %v", got, want)
	}
}

func TestReadinessScore_AllPrereqsMissing(t *testing.T) {
	skill, _ := NewUserSkill("Rust", LevelExpert, 5, 10)
	goal, _ := NewLearningGoal("Kubernetes", LevelIntermediate, 1, 6)
	p, err := NewProfile("A", "a@b.c", []UserSkill{skill}, []LearningGoal{goal}, "", 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := ReadinessScore(p, "Kubernetes"); !floatEq(got, 0.0) {
		t.Errorf("readiness = %v, want 0", got)
	}
}

func TestReadinessScore_Bounds(t *testing.T) {
	p := SampleProfile()
	for _, skill := range []string{"Python", "Machine Learning", "Deep Learning", "Full Stack", "Unknown"} {
		got := ReadinessScore(p, skill)
		if got < 0 || got > 1 {
			t.Errorf("ReadinessScore(%q) = %v, out of [0,1]", skill, got)
		}
	}
}

func TestAssessSkillGaps(t *testing.T) {
	// Sample profile has goals ML, Data Analysis, Deep Learning and already
	// has none of them as current skills, so all three are Data Science gaps.
	p := SampleProfile()
	gaps := AssessSkillGaps(p)

	ds, ok := gaps["Data Science"]
	if !ok {
		t.Fatalf("expected Data Science gap, got %v", gaps)
	}
	if len(ds) != 3 {
		t.Errorf("Data Science gaps = %v, want 3 entries", ds)
	}
	if _, ok := gaps["Programming"]; ok {
		t.Error("Programming should have no gaps")
	}
}
