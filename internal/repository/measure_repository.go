package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/noah-isme/kmq-gateway/internal/models"
)

// MeasureRepository reads lesson plan detail lines and the measure catalog.
type MeasureRepository struct {
	obs QueryObserver
}

// NewMeasureRepository constructs the repository.
func NewMeasureRepository(obs QueryObserver) *MeasureRepository {
	return &MeasureRepository{obs: obs}
}

// MeasureSlots returns the plan's detail lines whose slot code carries measure references.
func (r *MeasureRepository) MeasureSlots(ctx context.Context, q Queryer, planID string) ([]models.LessonPlanDetail, error) {
	defer observe(r.obs, "lesson_plan_details.measure_slots", time.Now())
	query, args := newSelect(models.LessonPlanDetailsTable).
		Eq("Form_ID", planID).
		Where("P_No LIKE ?", models.MeasureSlotPattern).
		Build()
	var rows []models.LessonPlanDetail
	if err := q.SelectContext(ctx, &rows, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list measure slots: %w", err)
	}
	return rows, nil
}

// FindMeasure looks up a catalog entry by exact id. A missing entry returns (nil, nil).
func (r *MeasureRepository) FindMeasure(ctx context.Context, q Queryer, id string) (*models.MeasureCatalogEntry, error) {
	defer observe(r.obs, "drdp_items.find", time.Now())
	query, args := newSelect(models.MeasureCatalogTable).
		Where("UUID_Item = ?", id).
		Limit(1).
		Build()
	var entry models.MeasureCatalogEntry
	if err := q.GetContext(ctx, &entry, q.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find measure %s: %w", id, err)
	}
	return &entry, nil
}
