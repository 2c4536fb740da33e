// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gradpath/ent/planevent"
	"github.com/abhisek/gradpath/ent/predicate"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *PlanEventUpdate) SetMode(v string) *PlanEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableMode(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSemesters sets the "semesters" field.
func (_u *PlanEventUpdate) SetSemesters(v map[string][]string) *PlanEventUpdate {
	_u.mutation.SetSemesters(v)
	return _u
}

// SetCourseCount sets the "course_count" field.
func (_u *PlanEventUpdate) SetCourseCount(v int) *PlanEventUpdate {
	_u.mutation.ResetCourseCount()
	_u.mutation.SetCourseCount(v)
	return _u
}

// SetNillableCourseCount sets the "course_count" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableCourseCount(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetCourseCount(*v)
	}
	return _u
}

// AddCourseCount adds value to the "course_count" field.
func (_u *PlanEventUpdate) AddCourseCount(v int) *PlanEventUpdate {
	_u.mutation.AddCourseCount(v)
	return _u
}

// SetTotalCredits sets the "total_credits" field.
func (_u *PlanEventUpdate) SetTotalCredits(v float64) *PlanEventUpdate {
	_u.mutation.ResetTotalCredits()
	_u.mutation.SetTotalCredits(v)
	return _u
}

// SetNillableTotalCredits sets the "total_credits" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableTotalCredits(v *float64) *PlanEventUpdate {
	if v != nil {
		_u.SetTotalCredits(*v)
	}
	return _u
}

// AddTotalCredits adds value to the "total_credits" field.
func (_u *PlanEventUpdate) AddTotalCredits(v float64) *PlanEventUpdate {
	_u.mutation.AddTotalCredits(v)
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(planevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semesters(); ok {
		_spec.SetField(planevent.FieldSemesters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CourseCount(); ok {
		_spec.SetField(planevent.FieldCourseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCourseCount(); ok {
		_spec.AddField(planevent.FieldCourseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCredits(); ok {
		_spec.SetField(planevent.FieldTotalCredits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCredits(); ok {
		_spec.AddField(planevent.FieldTotalCredits, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetMode sets the "mode" field.
func (_u *PlanEventUpdateOne) SetMode(v string) *PlanEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableMode(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSemesters sets the "semesters" field.
func (_u *PlanEventUpdateOne) SetSemesters(v map[string][]string) *PlanEventUpdateOne {
	_u.mutation.SetSemesters(v)
	return _u
}

// SetCourseCount sets the "course_count" field.
func (_u *PlanEventUpdateOne) SetCourseCount(v int) *PlanEventUpdateOne {
	_u.mutation.ResetCourseCount()
	_u.mutation.SetCourseCount(v)
	return _u
}

// SetNillableCourseCount sets the "course_count" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableCourseCount(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetCourseCount(*v)
	}
	return _u
}

// AddCourseCount adds value to the "course_count" field.
func (_u *PlanEventUpdateOne) AddCourseCount(v int) *PlanEventUpdateOne {
	_u.mutation.AddCourseCount(v)
	return _u
}

// SetTotalCredits sets the "total_credits" field.
func (_u *PlanEventUpdateOne) SetTotalCredits(v float64) *PlanEventUpdateOne {
	_u.mutation.ResetTotalCredits()
	_u.mutation.SetTotalCredits(v)
	return _u
}

// SetNillableTotalCredits sets the "total_credits" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableTotalCredits(v *float64) *PlanEventUpdateOne {
	if v != nil {
		_u.SetTotalCredits(*v)
	}
	return _u
}

// AddTotalCredits adds value to the "total_credits" field.
func (_u *PlanEventUpdateOne) AddTotalCredits(v float64) *PlanEventUpdateOne {
	_u.mutation.AddTotalCredits(v)
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(planevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semesters(); ok {
		_spec.SetField(planevent.FieldSemesters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CourseCount(); ok {
		_spec.SetField(planevent.FieldCourseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCourseCount(); ok {
		_spec.AddField(planevent.FieldCourseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCredits(); ok {
		_spec.SetField(planevent.FieldTotalCredits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCredits(); ok {
		_spec.AddField(planevent.FieldTotalCredits, field.TypeFloat64, value)
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
