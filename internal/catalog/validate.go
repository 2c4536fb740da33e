package catalog

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func (c *Catalog) Validate() error {
	return validateCourses(c.All(), c.collectAll())
}

// collectAll returns every record including duplicates, so duplicate-code
// detection sees the raw collections rather than the deduplicated index.
func (c *Catalog) collectAll() []Course {
	var all []Course
	all = append(all, c.core...)
	for _, major := range c.MajorNames() {
		all = append(all, c.majors[major]...)
	}
	all = append(all, c.ged...)
	return all
}

// validateCourses checks the combined course set for duplicate codes,
// dangling prerequisites, and prerequisite cycles.
func validateCourses(unique, raw []Course) error {
	var errs []string

	codeSet := make(map[string]bool, len(raw))
	for _, course := range raw {
		if codeSet[course.Code] {
			errs = append(errs, fmt.Sprintf("duplicate course code: %q", course.Code))
		}
		codeSet[course.Code] = true
	}

	for _, course := range unique {
		if course.Credit <= 0 {
			errs = append(errs, fmt.Sprintf("course %q has non-positive credit %v", course.Code, course.Credit))
		}
		for _, prereq := range course.Prerequisites {
			if !codeSet[prereq] {
				errs = append(errs, fmt.Sprintf("course %q references nonexistent prerequisite %q", course.Code, prereq))
			}
		}
		switch course.EffectiveDifficulty() {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
		default:
			errs = append(errs, fmt.Sprintf("course %q has unknown difficulty %q", course.Code, course.Difficulty))
		}
	}

	// Cycle check via Kahn's algorithm over the prerequisite edges.
	inDegree := make(map[string]int, len(unique))
	dependents := make(map[string][]string)
	for _, course := range unique {
		inDegree[course.Code] = len(course.Prerequisites)
		for _, prereq := range course.Prerequisites {
			dependents[prereq] = append(dependents[prereq], course.Code)
		}
	}

	var queue []string
	for _, course := range unique {
		if inDegree[course.Code] == 0 {
			queue = append(queue, course.Code)
		}
	}

	visited := 0
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range dependents[code] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited < len(unique) {
		var cycleNodes []string
		for _, course := range unique {
			if inDegree[course.Code] > 0 {
				cycleNodes = append(cycleNodes, course.Code)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
