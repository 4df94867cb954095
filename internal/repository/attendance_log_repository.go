package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/kmq-gateway/internal/models"
)

// AttendanceLogRepository reads daily attendance logs.
type AttendanceLogRepository struct {
	obs QueryObserver
}

// NewAttendanceLogRepository constructs the repository.
func NewAttendanceLogRepository(obs QueryObserver) *AttendanceLogRepository {
	return &AttendanceLogRepository{obs: obs}
}

// List returns logs in the date window, newest first.
func (r *AttendanceLogRepository) List(ctx context.Context, q Queryer, filter models.AttendanceLogFilter) ([]models.AttendanceLog, error) {
	defer observe(r.obs, "attendance_logs.list", time.Now())
	query, args := newSelect(models.AttendanceLogsTable).
		Eq("Site_ID", filter.SiteID).
		Eq("Room_ID", filter.RoomID).
		Where("Form_Date >= ? AND Form_Date < ?", dateArg(filter.DateFrom), dateArg(filter.DateUntil)).
		OrderDesc("Form_Date").
		Limit(filter.Limit).
		Build()
	var rows []models.AttendanceLog
	if err := q.SelectContext(ctx, &rows, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list attendance logs: %w", err)
	}
	return rows, nil
}
