package skilltree

import (
	"fmt"
	"strings"
)

// Module is one named unit of a domain tree: the skills it teaches, the
// modules it requires first, and informational forward edges.
type Module struct {
	Name          string
	Skills        []string
	Prerequisites []string
	Next          []string // informational only; path resolution walks Prerequisites
}

// domainTree is an ordered set of modules for one learning domain.
type domainTree struct {
	domain  string
	order   []string
	modules map[string]Module
}

// forest holds all domain trees in fixed enumeration order.
type forest struct {
	order []string
	trees map[string]*domainTree
}

// f is the package-level forest singleton, set by init() in seed.go.
var f *forest

func buildForest(domains []seedDomain) *forest {
	fr := &forest{trees: make(map[string]*domainTree, len(domains))}
	for _, d := range domains {
		dt := &domainTree{
			domain:  d.domain,
			modules: make(map[string]Module, len(d.modules)),
		}
		for _, m := range d.modules {
			dt.order = append(dt.order, m.Name)
			dt.modules[m.Name] = m
		}
		fr.order = append(fr.order, d.domain)
		fr.trees[d.domain] = dt
	}
	return fr
}

// Domains returns all domain names in enumeration order.
func Domains() []string {
	return append([]string(nil), f.order...)
}

// Modules returns the modules of a domain in declaration order.
// Unknown domains yield nil.
func Modules(domain string) []Module {
	dt, ok := f.trees[domain]
	if !ok {
		return nil
	}
	out := make([]Module, 0, len(dt.order))
	for _, name := range dt.order {
		out = append(out, dt.modules[name])
	}
	return out
}

// FindModule looks up a module by name across all domains, in enumeration
// order. Returns the owning domain and the module.
func FindModule(name string) (string, Module, bool) {
	for _, domain := range f.order {
		dt := f.trees[domain]
		if m, ok := dt.modules[name]; ok {
			return domain, m, true
		}
	}
	return "", Module{}, false
}

// ModuleForSkill finds the first module (tree order, then module order)
// whose taught skills include the goal skill exactly.
func ModuleForSkill(goalSkill string) (string, Module, bool) {
	for _, domain := range f.order {
		dt := f.trees[domain]
		for _, name := range dt.order {
			m := dt.modules[name]
			for _, s := range m.Skills {
				if s == goalSkill {
					return domain, m, true
				}
			}
		}
	}
	return "", Module{}, false
}

// ModuleSkills returns the skills taught by the named module, or the module
// name itself when the module is synthetic/unknown.
func ModuleSkills(name string) []string {
	if _, m, ok := FindModule(name); ok {
		return append([]string(nil), m.Skills...)
	}
	return []string{name}
}

// ModulePrerequisites returns the prerequisite module names for the named
// module, or empty for synthetic/unknown modules.
func ModulePrerequisites(name string) []string {
	if _, m, ok := FindModule(name); ok {
		return append([]string(nil), m.Prerequisites...)
	}
	return nil
}

// CustomPathName is the synthetic module name used when no tree covers the
// goal skill.
func CustomPathName(goalSkill string) string {
	return fmt.Sprintf("Custom Learning Path for %s", goalSkill)
}

// IsCustomPath reports whether a module name is a synthetic custom-path name.
func IsCustomPath(name string) bool {
	return strings.HasPrefix(name, "Custom Learning Path for ")
}

// PathForGoal resolves the ordered module route toward the goal skill.
//
// The walk visits prerequisite modules depth-first before the module that
// requires them. A module is skipped entirely, prerequisites included, when
// the user already has any one of the skills it teaches; partial overlap is
// treated as readiness for the whole subtree. This never fails: unknown goal
// skills get a synthetic single-module path, and an empty result falls back
// to the target module alone.
func PathForGoal(goalSkill string, currentSkills []string) []string {
	_, target, ok := ModuleForSkill(goalSkill)
	if !ok {
		return []string{CustomPathName(goalSkill)}
	}

	domain, _, _ := FindModule(target.Name)
	path := buildPathToModule(domain, target.Name, currentSkills)
	if len(path) == 0 {
		return []string{target.Name}
	}
	return path
}

// buildPathToModule performs the prerequisite-closure walk within one domain.
func buildPathToModule(domain, targetModule string, currentSkills []string) []string {
	dt, ok := f.trees[domain]
	if !ok {
		return []string{targetModule}
	}

	have := make(map[string]bool, len(currentSkills))
	for _, s := range currentSkills {
		have[s] = true
	}

	visited := make(map[string]bool)
	var path []string
	inPath := make(map[string]bool)

	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		m, ok := dt.modules[name]
		if !ok {
			return
		}
		visited[name] = true

		// Any taught skill already held short-circuits the whole subtree.
		for _, s := range m.Skills {
			if have[s] {
				return
			}
		}

		for _, prereq := range m.Prerequisites {
			visit(prereq)
		}

		if !inPath[name] {
			inPath[name] = true
			path = append(path, name)
		}
	}

	visit(targetModule)
	return path
}
