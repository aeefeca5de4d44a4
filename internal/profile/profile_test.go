package profile

import (
	"strings"
	"testing"
)

func TestParseSkillLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    SkillLevel
		wantErr bool
	}{
		{"BEGINNER", LevelBeginner, false},
		{"intermediate", LevelIntermediate, false},
		{" Advanced ", LevelAdvanced, false},
		{"EXPERT", LevelExpert, false},
		{"grandmaster", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSkillLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSkillLevel(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseSkillLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSkillLevelOrdering(t *testing.T) {
	if !(LevelBeginner < LevelIntermediate && LevelIntermediate < LevelAdvanced && LevelAdvanced < LevelExpert) {
		t.Error("skill levels must be strictly ordered")
	}
	if int(LevelExpert) != 4 {
		t.Errorf("LevelExpert ordinal = %d, want 4", int(LevelExpert))
	}
}

func TestNewUserSkill_Validation(t *testing.T) {
	tests := []struct {
		name       string
		skill      string
		level      SkillLevel
		years      float64
		confidence int
		wantErr    string
	}{
		{"valid", "Python", LevelIntermediate, 2.0, 7, ""},
		{"empty name", "  ", LevelBeginner, 1.0, 5, "cannot be empty"},
		{"bad level", "Python", SkillLevel(9), 1.0, 5, "invalid level"},
		{"negative years", "Python", LevelBeginner, -0.5, 5, "non-negative"},
		{"confidence too low", "Python", LevelBeginner, 1.0, 0, "between 1 and 10"},
		{"confidence too high", "Python", LevelBeginner, 1.0, 11, "between 1 and 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUserSkill(tt.skill, tt.level, tt.years, tt.confidence)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got error %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewLearningGoal_Validation(t *testing.T) {
	tests := []struct {
		name     string
		goal     string
		priority int
		timeline int
		wantErr  bool
	}{
		{"valid", "Machine Learning", 1, 6, false},
		{"timeline upper bound", "Machine Learning", 1, 60, false},
		{"timeline too long", "Machine Learning", 1, 61, true},
		{"timeline zero", "Machine Learning", 1, 0, true},
		{"priority zero", "Machine Learning", 0, 6, true},
		{"priority six", "Machine Learning", 6, 6, true},
		{"empty name", "", 1, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLearningGoal(tt.goal, LevelIntermediate, tt.priority, tt.timeline)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewProfile_Validation(t *testing.T) {
	skill, _ := NewUserSkill("Python", LevelIntermediate, 2, 7)
	goal, _ := NewLearningGoal("Machine Learning", LevelIntermediate, 1, 6)
	skills := []UserSkill{skill}
	goals := []LearningGoal{goal}

	if _, err := NewProfile("Alex", "alex@example.com", skills, goals, "hands-on", 10, nil); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	cases := []struct {
		name string
		fn   func() (*UserProfile, error)
	}{
		{"missing name", func() (*UserProfile, error) {
			return NewProfile("", "alex@example.com", skills, goals, "", 10, nil)
		}},
		{"bad email", func() (*UserProfile, error) {
			return NewProfile("Alex", "not-an-email", skills, goals, "", 10, nil)
		}},
		{"no skills", func() (*UserProfile, error) {
			return NewProfile("Alex", "alex@example.com", nil, goals, "", 10, nil)
		}},
		{"no goals", func() (*UserProfile, error) {
			return NewProfile("Alex", "alex@example.com", skills, nil, "", 10, nil)
		}},
		{"zero hours", func() (*UserProfile, error) {
			return NewProfile("Alex", "alex@example.com", skills, goals, "", 0, nil)
		}},
		{"bad style", func() (*UserProfile, error) {
			return NewProfile("Alex", "alex@example.com", skills, goals, "telepathy", 10, nil)
		}},
		{"negative budget", func() (*UserProfile, error) {
			b := -1.0
			return NewProfile("Alex", "alex@example.com", skills, goals, "", 10, &b)
		}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.fn(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestNewProfile_Defaults(t *testing.T) {
	skill, _ := NewUserSkill("Python", LevelIntermediate, 2, 7)
	goal, _ := NewLearningGoal("Machine Learning", LevelIntermediate, 1, 6)

	p, err := NewProfile("Alex", "Alex@Example.COM", []UserSkill{skill}, []LearningGoal{goal}, "", 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PreferredLearningStyle != "mixed" {
		t.Errorf("default style = %q, want mixed", p.PreferredLearningStyle)
	}
	if p.Email != "alex@example.com" {
		t.Errorf("email not lowercased: %q", p.Email)
	}
}

func TestFindSkill_CaseInsensitiveFirstMatch(t *testing.T) {
	p := SampleProfile()

	s, ok := p.FindSkill("python")
	if !ok {
		t.Fatal("expected to find python")
	}
	if s.SkillName != "Python" {
		t.Errorf("got %q, want Python", s.SkillName)
	}

	if _, ok := p.FindSkill("Basket Weaving"); ok {
		t.Error("found skill that should not exist")
	}
}

func TestCategoryOf(t *testing.T) {
	cat, ok := CategoryOf("Python")
	if !ok || cat != "Programming" {
		t.Errorf("CategoryOf(Python) = %q, %v; want Programming, true", cat, ok)
	}
	// Category lookup is case-sensitive.
	if _, ok := CategoryOf("python"); ok {
		t.Error("CategoryOf should be case-sensitive")
	}
	if _, ok := CategoryOf("Quantum Basket Weaving"); ok {
		t.Error("unknown skill should have no category")
	}
}

func TestPrerequisites_UnknownSkillEmpty(t *testing.T) {
	if got := Prerequisites("Quantum Basket Weaving"); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
	got := Prerequisites("Machine Learning")
	want := []string{"Python", "Statistics", "Data Analysis"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("prereq[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := SampleProfile()
	path := t.TempDir() + "/profile.json"
	if err := p.SaveFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != p.Name || loaded.Email != p.Email {
		t.Errorf("identity changed: %q/%q", loaded.Name, loaded.Email)
	}
	if len(loaded.CurrentSkills) != len(p.CurrentSkills) {
		t.Fatalf("skills = %d, want %d", len(loaded.CurrentSkills), len(p.CurrentSkills))
	}
	if loaded.CurrentSkills[0].Level != p.CurrentSkills[0].Level {
		t.Errorf("level = %v, want %v", loaded.CurrentSkills[0].Level, p.CurrentSkills[0].Level)
	}
	if len(loaded.LearningGoals) != len(p.LearningGoals) {
		t.Fatalf("goals = %d, want %d", len(loaded.LearningGoals), len(p.LearningGoals))
	}
	if loaded.BudgetUSD == nil || *loaded.BudgetUSD != *p.BudgetUSD {
		t.Errorf("budget = %v, want %v", loaded.BudgetUSD, p.BudgetUSD)
	}
}
