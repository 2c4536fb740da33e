package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent records every generated or validated course plan, keyed by
// a stable plan ID so a plan can be referred back to later.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Unique().
			Immutable().
			Comment("UUID assigned when the plan was produced"),
		field.String("mode").
			Comment("auto or custom"),
		field.JSON("semesters", map[string][]string{}).
			Comment("Planned course codes keyed by semester number"),
		field.Int("course_count").
			Default(0).
			Comment("Total courses across all semesters"),
		field.Float("total_credits").
			Default(0).
			Comment("Total credits across all semesters"),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
		index.Fields("mode"),
	}
}
