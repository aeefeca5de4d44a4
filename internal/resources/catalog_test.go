package resources

import (
	"testing"

	"github.com/abhisek/skillpath/internal/profile"
)

func TestFindRelevant(t *testing.T) {
	tests := []struct {
		name   string
		skill  string
		target profile.SkillLevel
		want   []string // expected IDs in catalog order
	}{
		{
			name:   "beginner ML allows one level of slack",
			skill:  "Machine Learning",
			target: profile.LevelBeginner,
			want:   []string{"ml_course_1"},
		},
		{
			name:   "intermediate ML reaches advanced entries",
			skill:  "Machine Learning",
			target: profile.LevelIntermediate,
			want:   []string{"ml_course_1", "deep_learning_spec"},
		},
		{
			name:   "skill match is case-insensitive",
			skill:  "python",
			target: profile.LevelIntermediate,
			want:   []string{"ml_course_1", "python_basics", "data_analysis_project", "deep_learning_spec"},
		},
		{
			name:   "unknown skill yields nothing",
			skill:  "Basket Weaving",
			target: profile.LevelExpert,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindRelevant(tt.skill, tt.target)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d resources, want %d", len(got), len(tt.want))
			}
			for i, r := range got {
				if r.ID != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, r.ID, tt.want[i])
				}
			}
		})
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	a := Catalog()
	a[0].ID = "mutated"
	b := Catalog()
	if b[0].ID == "mutated" {
		t.Error("Catalog must not expose the backing slice")
	}
}

func TestDescriptorToResourceDefaults(t *testing.T) {
	r := Descriptor{}.ToResource("x1")
	if r.Title != "Learning Resource" {
		t.Errorf("title = %q, want default", r.Title)
	}
	if r.EstimatedHours != 20 {
		t.Errorf("hours = %d, want 20", r.EstimatedHours)
	}
	if r.Rating != 4.0 {
		t.Errorf("rating = %v, want 4.0", r.Rating)
	}
	if r.Provider != "Unknown" {
		t.Errorf("provider = %q, want Unknown", r.Provider)
	}
	if len(r.SkillsTaught) != 1 || r.SkillsTaught[0] != "General" {
		t.Errorf("skills taught = %v, want [General]", r.SkillsTaught)
	}
	if r.ID != "x1" {
		t.Errorf("id = %q, want x1", r.ID)
	}
}

func TestParseResourceType(t *testing.T) {
	tests := []struct {
		in   string
		want ResourceType
	}{
		{"course", TypeCourse},
		{"PROJECT", TypeProject},
		{" video ", TypeVideo},
		{"mixed", TypeTutorial},
		{"nonsense", TypeTutorial},
	}
	for _, tt := range tests {
		if got := ParseResourceType(tt.in); got != tt.want {
			t.Errorf("ParseResourceType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"beginner", DifficultyBeginner},
		{"Expert", DifficultyExpert},
		{"mixed", DifficultyIntermediate},
		{"", DifficultyIntermediate},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
