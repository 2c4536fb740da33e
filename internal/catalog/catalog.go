package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Catalog is the immutable set of known courses: the core curriculum,
// per-major elective lists, and general-education electives. Build one with
// New; re-initialization is building a new value.
type Catalog struct {
	core   []Course
	majors map[string][]Course
	ged    []Course

	byCode      map[string]*Course
	byTrimester map[int][]Course
}

// New builds a Catalog from the three collections, normalizing every course
// code and prerequisite to canonical form and precomputing lookup indices.
// Collection order is preserved; the planner depends on it.
func New(core []Course, majors map[string][]Course, ged []Course) *Catalog {
	c := &Catalog{
		core:        normalizeCourses(core),
		majors:      make(map[string][]Course, len(majors)),
		ged:         normalizeCourses(ged),
		byCode:      make(map[string]*Course),
		byTrimester: make(map[int][]Course),
	}
	for major, courses := range majors {
		c.majors[major] = normalizeCourses(courses)
	}

	index := func(courses []Course) {
		for i := range courses {
			if _, ok := c.byCode[courses[i].Code]; !ok {
				c.byCode[courses[i].Code] = &courses[i]
			}
		}
	}
	index(c.core)
	for _, major := range c.MajorNames() {
		index(c.majors[major])
	}
	index(c.ged)

	for _, course := range c.core {
		if course.Trimester > 0 {
			c.byTrimester[course.Trimester] = append(c.byTrimester[course.Trimester], course)
		}
	}

	return c
}

func normalizeCourses(courses []Course) []Course {
	out := make([]Course, len(courses))
	for i, course := range courses {
		course.Code = NormalizeCode(course.Code)
		prereqs := make([]string, len(course.Prerequisites))
		for j, p := range course.Prerequisites {
			prereqs[j] = NormalizeCode(p)
		}
		course.Prerequisites = prereqs
		out[i] = course
	}
	return out
}

// Empty reports whether the catalog holds no courses at all.
func (c *Catalog) Empty() bool {
	return len(c.byCode) == 0
}

// Len returns the number of distinct course codes in the catalog.
func (c *Catalog) Len() int {
	return len(c.byCode)
}

// Find looks up a course by code, case-insensitively. The second return
// value reports whether the course exists.
func (c *Catalog) Find(code string) (Course, bool) {
	course, ok := c.byCode[NormalizeCode(code)]
	if !ok {
		return Course{}, false
	}
	return *course, true
}

// Core returns the core-curriculum courses in catalog order.
func (c *Catalog) Core() []Course {
	return slices.Clone(c.core)
}

// CoreByTrimester returns core courses tagged for the given trimester,
// in catalog order.
func (c *Catalog) CoreByTrimester(trimester int) []Course {
	return slices.Clone(c.byTrimester[trimester])
}

// MajorElectives returns the elective list for a major, in catalog order.
// An unknown or empty major yields nil.
func (c *Catalog) MajorElectives(major string) []Course {
	if major == "" {
		return nil
	}
	return slices.Clone(c.majors[major])
}

// MajorNames returns the known major names, sorted.
func (c *Catalog) MajorNames() []string {
	names := make([]string, 0, len(c.majors))
	for name := range c.majors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GEDElectives returns the general-education electives in catalog order.
func (c *Catalog) GEDElectives() []Course {
	return slices.Clone(c.ged)
}

// All returns every course in the catalog: core first, then each major's
// electives in sorted major order, then GED electives. Duplicate codes
// (a validation error) appear once, at their first position.
func (c *Catalog) All() []Course {
	seen := make(map[string]bool, len(c.byCode))
	var all []Course
	add := func(courses []Course) {
		for _, course := range courses {
			if seen[course.Code] {
				continue
			}
			seen[course.Code] = true
			all = append(all, course)
		}
	}
	add(c.core)
	for _, major := range c.MajorNames() {
		add(c.majors[major])
	}
	add(c.ged)
	return all
}

// KindOf reports which collection a course code belongs to.
func (c *Catalog) KindOf(code string) (Kind, error) {
	code = NormalizeCode(code)
	for _, course := range c.core {
		if course.Code == code {
			return KindCore, nil
		}
	}
	for _, major := range c.MajorNames() {
		for _, course := range c.majors[major] {
			if course.Code == code {
				return KindMajorElective, nil
			}
		}
	}
	for _, course := range c.ged {
		if course.Code == code {
			return KindGEDElective, nil
		}
	}
	return "", fmt.Errorf("course not found: %q", code)
}
