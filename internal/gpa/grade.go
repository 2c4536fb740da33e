// Package gpa implements grade arithmetic: CGPA recomputation with
// retakes, target GPA planning, projections, course mark grading and
// credit pace tracking.
package gpa

import "sort"

// letterBand maps a minimum grade point to its letter.
type letterBand struct {
	min    float64
	letter string
}

var pointBands = []letterBand{
	{4.0, "A"},
	{3.67, "A-"},
	{3.33, "B+"},
	{3.0, "B"},
	{2.67, "B-"},
	{2.33, "C+"},
	{2.0, "C"},
	{1.67, "C-"},
	{1.33, "D+"},
	{1.0, "D"},
}

// Letter returns the letter grade for a grade point. Points below 1.0
// are an F.
func Letter(point float64) string {
	for _, b := range pointBands {
		if point >= b.min {
			return b.letter
		}
	}
	return "F"
}

// markBand maps a minimum total mark to its letter and point.
type markBand struct {
	min    float64
	letter string
	point  float64
}

var markBands = []markBand{
	{90, "A", 4.00},
	{86, "A-", 3.67},
	{82, "B+", 3.33},
	{78, "B", 3.00},
	{74, "B-", 2.67},
	{70, "C+", 2.33},
	{66, "C", 2.00},
	{62, "C-", 1.67},
	{58, "D+", 1.33},
	{55, "D", 1.00},
}

// CourseMarks holds the raw mark components of a single course.
// ClassTests may hold any number of scores; only the best three count.
type CourseMarks struct {
	Assignment float64   `json:"assignment"`
	Attendance float64   `json:"attendance"`
	Midterm    float64   `json:"midterm"`
	Final      float64   `json:"final"`
	ClassTests []float64 `json:"class_tests"`
}

// CourseGradeResult is the graded outcome of a set of course marks.
type CourseGradeResult struct {
	Total  float64 `json:"total"`
	Letter string  `json:"letter"`
	Point  float64 `json:"point"`
}

// bestClassTestAverage averages the best three class test scores. The
// divisor is always three, so fewer than three tests dilute the average.
func bestClassTestAverage(scores []float64) float64 {
	sorted := append([]float64(nil), scores...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}
	var sum float64
	for _, s := range sorted {
		sum += s
	}
	return sum / 3
}

// GradeCourse totals the mark components, capped at 100, and maps the
// total onto the letter scale.
func GradeCourse(marks CourseMarks) CourseGradeResult {
	total := marks.Assignment + marks.Attendance + marks.Midterm + marks.Final
	total += bestClassTestAverage(marks.ClassTests)
	if total > 100 {
		total = 100
	}

	for _, b := range markBands {
		if total >= b.min {
			return CourseGradeResult{Total: total, Letter: b.letter, Point: b.point}
		}
	}
	return CourseGradeResult{Total: total, Letter: "F", Point: 0}
}
