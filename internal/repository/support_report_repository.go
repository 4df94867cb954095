package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/kmq-gateway/internal/models"
)

// SupportReportRepository reads center support reports.
type SupportReportRepository struct {
	obs QueryObserver
}

// NewSupportReportRepository constructs the repository.
func NewSupportReportRepository(obs QueryObserver) *SupportReportRepository {
	return &SupportReportRepository{obs: obs}
}

// List returns reports in the date window, newest first.
func (r *SupportReportRepository) List(ctx context.Context, q Queryer, filter models.SupportReportFilter) ([]models.SupportReport, error) {
	defer observe(r.obs, "support_reports.list", time.Now())
	query, args := newSelect(models.SupportReportsTable).
		Eq("Site_ID", filter.SiteID).
		Eq("User_ID", filter.UserID).
		Contains("User_ID", filter.StaffName).
		Where("Form_Date >= ? AND Form_Date < ?", dateArg(filter.DateFrom), dateArg(filter.DateUntil)).
		OrderDesc("Form_Date").
		Limit(filter.Limit).
		Build()
	var rows []models.SupportReport
	if err := q.SelectContext(ctx, &rows, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list support reports: %w", err)
	}
	return rows, nil
}
