// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the planevent type in the database.
	Label = "plan_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldSemesters holds the string denoting the semesters field in the database.
	FieldSemesters = "semesters"
	// FieldCourseCount holds the string denoting the course_count field in the database.
	FieldCourseCount = "course_count"
	// FieldTotalCredits holds the string denoting the total_credits field in the database.
	FieldTotalCredits = "total_credits"
	// Table holds the table name of the planevent in the database.
	Table = "plan_events"
)

// Columns holds all SQL columns for planevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPlanID,
	FieldMode,
	FieldSemesters,
	FieldCourseCount,
	FieldTotalCredits,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultCourseCount holds the default value on creation for the "course_count" field.
	DefaultCourseCount int
	// DefaultTotalCredits holds the default value on creation for the "total_credits" field.
	DefaultTotalCredits float64
)

// OrderOption defines the ordering options for the PlanEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByCourseCount orders the results by the course_count field.
func ByCourseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseCount, opts...).ToFunc()
}

// ByTotalCredits orders the results by the total_credits field.
func ByTotalCredits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCredits, opts...).ToFunc()
}
