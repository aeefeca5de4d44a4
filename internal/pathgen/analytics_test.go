package pathgen

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/abhisek/skillpath/internal/profile"
)

func TestPathAnalytics(t *testing.T) {
	e := testEngine()
	p := mustProfile(t,
		[]profile.UserSkill{mustSkill(t, "Python", profile.LevelIntermediate)},
		nil, 10, nil)
	path := e.GenerateLearningPath(context.Background(), p, mustGoal(t, "Machine Learning", profile.LevelIntermediate, 1))

	a := PathAnalytics(path)

	if a["total_modules"] != len(path.Modules) {
		t.Errorf("total_modules = %v, want %d", a["total_modules"], len(path.Modules))
	}
	if a["total_resources"] != len(path.Steps()) {
		t.Errorf("total_resources = %v, want %d", a["total_resources"], len(path.Steps()))
	}

	wantWeekly := float64(path.TotalHours) / (float64(path.Months) * 4.33)
	if got := a["estimated_weekly_hours"].(float64); math.Abs(got-wantWeekly) > 1e-9 {
		t.Errorf("estimated_weekly_hours = %v, want %v", got, wantWeekly)
	}

	types := a["resource_types"].(map[string]int)
	total := 0
	for _, n := range types {
		total += n
	}
	if total != len(path.Steps()) {
		t.Errorf("resource_types counts sum to %d, want %d", total, len(path.Steps()))
	}

	diffs := a["difficulty_distribution"].(map[string]int)
	total = 0
	for _, n := range diffs {
		total += n
	}
	if total != len(path.Modules) {
		t.Errorf("difficulty_distribution counts sum to %d, want %d", total, len(path.Modules))
	}

	breakdown := a["confidence_breakdown"].(map[string]float64)
	for _, key := range []string{"avg_readiness", "avg_priority", "prerequisites_coverage"} {
		if _, ok := breakdown[key]; !ok {
			t.Errorf("confidence_breakdown missing %q", key)
		}
	}

	hours := a["time_breakdown"].(map[string]int)
	sumHours := 0
	for _, h := range hours {
		sumHours += h
	}
	if sumHours != path.TotalHours {
		t.Errorf("time_breakdown sums to %d, want %d", sumHours, path.TotalHours)
	}

	costs := a["cost_breakdown"].(map[string]float64)
	sumCost := 0.0
	for _, c := range costs {
		sumCost += c
	}
	if math.Abs(sumCost-path.TotalCostUSD) > 1e-9 {
		t.Errorf("cost_breakdown sums to %v, want %v", sumCost, path.TotalCostUSD)
	}
}

func TestPathAnalytics_Idempotent(t *testing.T) {
	e := testEngine()
	p := mustProfile(t, nil, nil, 10, nil)
	path := e.GenerateLearningPath(context.Background(), p, mustGoal(t, "SQL", profile.LevelBeginner, 1))

	first := PathAnalytics(path)
	second := PathAnalytics(path)
	if !reflect.DeepEqual(first, second) {
		t.Error("analytics must be identical across repeated calls")
	}
}

func TestPathAnalytics_DegenerateInput(t *testing.T) {
	if got := PathAnalytics(nil); len(got) != 0 {
		t.Errorf("nil path analytics = %v, want empty map", got)
	}
	if got := PathAnalytics(&LearningPath{}); len(got) != 0 {
		t.Errorf("zero-month path analytics = %v, want empty map", got)
	}
}
