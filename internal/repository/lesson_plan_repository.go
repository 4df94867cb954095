package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/kmq-gateway/internal/models"
)

// LessonPlanRepository reads lesson plans of either variant.
type LessonPlanRepository struct {
	obs QueryObserver
}

// NewLessonPlanRepository constructs the repository.
func NewLessonPlanRepository(obs QueryObserver) *LessonPlanRepository {
	return &LessonPlanRepository{obs: obs}
}

// List returns plans of filter.Type in the date window, newest first.
func (r *LessonPlanRepository) List(ctx context.Context, q Queryer, filter models.LessonPlanFilter) ([]models.LessonPlan, error) {
	table, ok := models.LessonPlanTables[filter.Type]
	if !ok {
		return nil, fmt.Errorf("list lesson plans: unknown lesson type %q", filter.Type)
	}
	defer observe(r.obs, "lesson_plans.list."+string(filter.Type), time.Now())
	query, args := newSelect(table).
		Eq("Site_ID", filter.SiteID).
		Eq("Room_ID", filter.RoomID).
		Contains("Teacher_Name", filter.TeacherName).
		Where("DOR >= ? AND DOR < ?", dateArg(filter.DateFrom), dateArg(filter.DateUntil)).
		OrderDesc("DOR").
		Limit(filter.Limit).
		Build()
	var rows []models.LessonPlan
	if err := q.SelectContext(ctx, &rows, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list lesson plans: %w", err)
	}
	return rows, nil
}
