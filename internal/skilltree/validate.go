package skilltree

import (
	"fmt"
	"strings"
)

// validateForest performs structural checks on the seeded forest.
// Next edges are informational and may point outside the tree, so only
// prerequisite edges are checked. Returns a combined error describing all
// problems found, or nil if valid.
func validateForest(fr *forest) error {
	var errs []string

	seen := make(map[string]string) // module name -> domain
	for _, domain := range fr.order {
		dt := fr.trees[domain]
		for _, name := range dt.order {
			if prev, ok := seen[name]; ok {
				errs = append(errs, fmt.Sprintf("duplicate module %q in %q and %q", name, prev, domain))
			}
			seen[name] = domain

			m := dt.modules[name]
			if len(m.Skills) == 0 {
				errs = append(errs, fmt.Sprintf("module %q teaches no skills", name))
			}
			for _, prereq := range m.Prerequisites {
				if _, ok := dt.modules[prereq]; !ok {
					errs = append(errs, fmt.Sprintf("module %q references nonexistent prerequisite %q", name, prereq))
				}
			}
		}

		if cycle := findCycle(dt); cycle != "" {
			errs = append(errs, fmt.Sprintf("domain %q: prerequisite cycle involving %s", domain, cycle))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill tree validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// findCycle runs Kahn's algorithm over a domain's prerequisite edges and
// returns the names of any modules left unprocessed (i.e. on a cycle).
func findCycle(dt *domainTree) string {
	inDegree := make(map[string]int, len(dt.order))
	dependents := make(map[string][]string)
	for _, name := range dt.order {
		m := dt.modules[name]
		for _, prereq := range m.Prerequisites {
			if _, ok := dt.modules[prereq]; !ok {
				continue
			}
			inDegree[name]++
			dependents[prereq] = append(dependents[prereq], name)
		}
	}

	var queue []string
	for _, name := range dt.order {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	processed := 0
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		processed++
		for _, dep := range dependents[name] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if processed == len(dt.order) {
		return ""
	}
	var stuck []string
	for _, name := range dt.order {
		if inDegree[name] > 0 {
			stuck = append(stuck, fmt.Sprintf("%q", name))
		}
	}
	return strings.Join(stuck, ", ")
}

// Validate checks the seeded forest for structural issues.
func Validate() error {
	return validateForest(f)
}
