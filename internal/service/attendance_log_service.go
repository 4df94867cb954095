package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/models"
	"github.com/noah-isme/kmq-gateway/internal/repository"
	"github.com/noah-isme/kmq-gateway/pkg/daterange"
)

type attendanceLogLister interface {
	List(ctx context.Context, q repository.Queryer, filter models.AttendanceLogFilter) ([]models.AttendanceLog, error)
}

// AttendanceLogService answers attendance log queries.
type AttendanceLogService struct {
	queryBase
	repo   attendanceLogLister
	logger *zap.Logger
}

// NewAttendanceLogService constructs the service.
func NewAttendanceLogService(store sessionRunner, repo attendanceLogLister, validate *validator.Validate, cfg QueryConfig, logger *zap.Logger) *AttendanceLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceLogService{queryBase: newQueryBase(store, validate, cfg), repo: repo, logger: logger}
}

// Query returns logs for the requested window, newest first.
func (s *AttendanceLogService) Query(ctx context.Context, req dto.AttendanceLogQuery) (*dto.AttendanceLogResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	window, err := s.window(req.StartDate, req.EndDate, daterange.AttendancePolicy)
	if err != nil {
		return nil, err
	}

	filter := models.AttendanceLogFilter{
		SiteID:    req.SiteID,
		RoomID:    req.RoomID,
		DateFrom:  window.Start,
		DateUntil: window.EndExclusive(),
		Limit:     s.cfg.limit(req.Limit),
	}

	var rows []models.AttendanceLog
	if err := s.store.Session(ctx, func(q repository.Queryer) error {
		var err error
		rows, err = s.repo.List(ctx, q, filter)
		return err
	}); err != nil {
		return nil, err
	}

	records := make([]dto.AttendanceLogRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, dto.AttendanceLogRecord{
			FormID:              row.FormID,
			SiteID:              row.SiteID,
			RoomID:              row.RoomID,
			FormDate:            dto.FormatDate(row.FormDate),
			DOR:                 dto.FormatTimestamp(row.DOR),
			LogType1:            row.LogType1,
			LogType2:            row.LogType2,
			LogDescription:      row.LogDescription,
			TimeIn:              row.TimeIn,
			TimeOut:             row.TimeOut,
			Breakfast:           row.Breakfast,
			Lunch:               row.Lunch,
			PMSnack:             row.PMSnack,
			MealConfirmDatetime: dto.FormatTimestamp(row.MealConfirmDatetime),
		})
	}

	s.logger.Debug("attendance logs queried",
		zap.String("start", window.StartString()),
		zap.String("end", window.EndString()),
		zap.Int("records", len(records)),
	)

	return &dto.AttendanceLogResult{
		QueryInfo: dto.AttendanceLogQueryInfo{
			SiteID:     dto.Optional(req.SiteID),
			RoomID:     dto.Optional(req.RoomID),
			WindowInfo: windowInfo(window, len(records)),
		},
		Records: records,
	}, nil
}

func windowInfo(w daterange.Window, total int) dto.WindowInfo {
	return dto.WindowInfo{
		StartDate:    w.StartString(),
		EndDate:      w.EndString(),
		DurationDays: w.DurationDays,
		TotalRecords: total,
	}
}
