package skilltree

import (
	"reflect"
	"testing"
)

func TestDomains_Order(t *testing.T) {
	want := []string{"Data Science", "Web Development", "Cloud Computing"}
	if got := Domains(); !reflect.DeepEqual(got, want) {
		t.Errorf("Domains() = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed data invalid: %v", err)
	}
}

func TestModuleForSkill(t *testing.T) {
	domain, m, ok := ModuleForSkill("Machine Learning")
	if !ok {
		t.Fatal("expected module for Machine Learning")
	}
	if domain != "Data Science" || m.Name != "Machine Learning Basics" {
		t.Errorf("got %q/%q, want Data Science/Machine Learning Basics", domain, m.Name)
	}

	// "Docker" is taught by MLOps, DevOps, and Container Orchestration;
	// enumeration order picks MLOps (Data Science comes first).
	_, m, ok = ModuleForSkill("Docker")
	if !ok || m.Name != "MLOps" {
		t.Errorf("ModuleForSkill(Docker) = %q, want MLOps", m.Name)
	}

	if _, _, ok := ModuleForSkill("Quantum Basket Weaving"); ok {
		t.Error("unknown skill should have no module")
	}
}

func TestPathForGoal_UnknownSkill(t *testing.T) {
	got := PathForGoal("Quantum Basket Weaving", nil)
	want := []string{"Custom Learning Path for Quantum Basket Weaving"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !IsCustomPath(got[0]) {
		t.Error("expected custom path name to be recognized")
	}
}

func TestPathForGoal_PrerequisiteOrdering(t *testing.T) {
	// A user with only Python skips Python Fundamentals but still needs
	// Statistics Fundamentals before Machine Learning Basics.
	path := PathForGoal("Machine Learning", []string{"Python"})

	idx := make(map[string]int, len(path))
	for i, name := range path {
		idx[name] = i
	}

	if _, ok := idx["Python Fundamentals"]; ok {
		t.Errorf("Python Fundamentals should be pruned, path = %v", path)
	}
	stats, ok := idx["Statistics Fundamentals"]
	if !ok {
		t.Fatalf("Statistics Fundamentals missing from path %v", path)
	}
	ml, ok := idx["Machine Learning Basics"]
	if !ok {
		t.Fatalf("Machine Learning Basics missing from path %v", path)
	}
	if stats >= ml {
		t.Errorf("Statistics Fundamentals (%d) must come before Machine Learning Basics (%d)", stats, ml)
	}
}

func TestPathForGoal_SkillShortCircuitsSubtree(t *testing.T) {
	// Having "Pandas" short-circuits Data Analysis Basics and its whole
	// prerequisite subtree (Python Fundamentals), even though the user has
	// never shown Python itself.
	path := PathForGoal("Machine Learning", []string{"Pandas"})

	for _, name := range path {
		if name == "Data Analysis Basics" || name == "Python Fundamentals" {
			t.Errorf("%s should be pruned by the Pandas short-circuit, path = %v", name, path)
		}
	}
}

func TestPathForGoal_TargetAlreadyKnown(t *testing.T) {
	// User already has the goal module's skill: the walk produces nothing
	// and falls back to the target module alone.
	got := PathForGoal("Machine Learning", []string{"Machine Learning"})
	want := []string{"Machine Learning Basics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPathForGoal_FullRoute(t *testing.T) {
	// No current skills: full closure in prerequisite-first order.
	got := PathForGoal("Machine Learning", nil)
	want := []string{
		"Python Fundamentals",
		"Data Analysis Basics",
		"Statistics Fundamentals",
		"Machine Learning Basics",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestModuleSkills_SyntheticFallback(t *testing.T) {
	name := CustomPathName("Quantum Basket Weaving")
	got := ModuleSkills(name)
	if !reflect.DeepEqual(got, []string{name}) {
		t.Errorf("got %v, want [%s]", got, name)
	}
	if prereqs := ModulePrerequisites(name); len(prereqs) != 0 {
		t.Errorf("synthetic module should have no prerequisites, got %v", prereqs)
	}
}

func TestModules_DeclarationOrder(t *testing.T) {
	mods := Modules("Cloud Computing")
	if len(mods) != 4 {
		t.Fatalf("got %d modules, want 4", len(mods))
	}
	if mods[0].Name != "Cloud Basics" || mods[3].Name != "Cloud Security" {
		t.Errorf("unexpected module order: %v", mods)
	}
	if Modules("Underwater Basket Weaving") != nil {
		t.Error("unknown domain should yield nil")
	}
}
