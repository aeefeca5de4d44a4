package render

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/skillpath/internal/pathgen"
	"github.com/abhisek/skillpath/internal/profile"
	"github.com/abhisek/skillpath/internal/resources"
)

func testPath(t *testing.T) *pathgen.LearningPath {
	t.Helper()
	engine := pathgen.NewEngine(resources.NewFetcher(nil, nil), nil)
	p := profile.SampleProfile()
	path := engine.GenerateLearningPath(context.Background(), p, p.LearningGoals[0])
	if path == nil {
		t.Fatal("no path generated")
	}
	return path
}

func TestPathIncludesModulesAndResources(t *testing.T) {
	path := testPath(t)
	out := Path(path)

	if !strings.Contains(out, path.GoalSkill) {
		t.Errorf("output missing goal %q", path.GoalSkill)
	}
	for _, m := range path.Modules {
		if !strings.Contains(out, m.ModuleName) {
			t.Errorf("output missing module %q", m.ModuleName)
		}
		for _, s := range m.Steps {
			if !strings.Contains(out, s.Resource.Title) {
				t.Errorf("output missing resource %q", s.Resource.Title)
			}
		}
	}
}

func TestAnalyticsHandlesEmptyMap(t *testing.T) {
	out := Analytics(map[string]any{})
	if !strings.Contains(out, "no analytics") {
		t.Errorf("empty analytics rendered as %q", out)
	}
}

func TestAnalyticsIncludesCounts(t *testing.T) {
	path := testPath(t)
	out := Analytics(pathgen.PathAnalytics(path))
	if !strings.Contains(out, "modules:") || !strings.Contains(out, "by type:") {
		t.Errorf("analytics output incomplete:\n%s", out)
	}
}

func TestGapsListsMissingSkills(t *testing.T) {
	p := profile.SampleProfile()
	out := Gaps(p)
	if !strings.Contains(out, p.Name) {
		t.Errorf("output missing profile name")
	}
}

func TestTreeListsEveryDomain(t *testing.T) {
	out := Tree()
	for _, want := range []string{"Data Science", "Web Development", "Cloud Computing"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing domain %q", want)
		}
	}
}

func TestProfileCardShowsBudget(t *testing.T) {
	p := profile.SampleProfile()
	out := Profile(p)
	if !strings.Contains(out, p.Email) {
		t.Error("output missing email")
	}
}
