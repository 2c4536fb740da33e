package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/gradpath/ent"
	"github.com/abhisek/gradpath/ent/planevent"
)

// NewPlanID mints a stable identifier for a produced plan.
func NewPlanID() string {
	return uuid.NewString()
}

func (r *eventRepo) AppendPlan(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	planID := data.PlanID
	if planID == "" {
		planID = NewPlanID()
	}

	_, err = r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetPlanID(planID).
		SetMode(data.Mode).
		SetSemesters(data.Semesters).
		SetCourseCount(data.CourseCount).
		SetTotalCredits(data.TotalCredits).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentPlans(ctx context.Context, limit int) ([]PlanRecord, error) {
	q := r.client.PlanEvent.Query().
		Order(ent.Desc(planevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan events: %w", err)
	}

	records := make([]PlanRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, PlanRecord{
			ID:           row.ID,
			Sequence:     row.Sequence,
			Timestamp:    row.Timestamp,
			PlanID:       row.PlanID,
			Mode:         row.Mode,
			Semesters:    row.Semesters,
			CourseCount:  row.CourseCount,
			TotalCredits: row.TotalCredits,
		})
	}
	return records, nil
}
