package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/kmq-gateway/internal/models"
)

// AssessmentRepository reads DRDP assessment records.
type AssessmentRepository struct {
	obs QueryObserver
}

// NewAssessmentRepository constructs the repository.
func NewAssessmentRepository(obs QueryObserver) *AssessmentRepository {
	return &AssessmentRepository{obs: obs}
}

// List returns records submitted in [DateFrom, DateUntil) from enrollment year
// models.MinEnrollYear onwards, newest first.
func (r *AssessmentRepository) List(ctx context.Context, q Queryer, filter models.AssessmentFilter) ([]models.AssessmentRecord, error) {
	defer observe(r.obs, "assessments.list", time.Now())
	query, args := newSelect(models.AssessmentsTable).
		Where("Enroll_Year >= ?", models.MinEnrollYear).
		Eq("Site_ID", filter.SiteID).
		Eq("Room_ID", filter.RoomID).
		Eq("Child_ID", filter.ChildID).
		Where("Submit_Datetime >= ? AND Submit_Datetime < ?", dateArg(filter.DateFrom), dateArg(filter.DateUntil)).
		OrderDesc("Submit_Datetime").
		Limit(filter.Limit).
		Build()

	rows, err := q.QueryxContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var records []models.AssessmentRecord
	for rows.Next() {
		var rec models.AssessmentRecord
		if err := rows.Scan(rec.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}
	return records, nil
}
