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

type supportReportLister interface {
	List(ctx context.Context, q repository.Queryer, filter models.SupportReportFilter) ([]models.SupportReport, error)
}

// SupportReportService answers center support report queries.
type SupportReportService struct {
	queryBase
	repo   supportReportLister
	logger *zap.Logger
}

// NewSupportReportService constructs the service.
func NewSupportReportService(store sessionRunner, repo supportReportLister, validate *validator.Validate, cfg QueryConfig, logger *zap.Logger) *SupportReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupportReportService{queryBase: newQueryBase(store, validate, cfg), repo: repo, logger: logger}
}

// Query returns reports for the requested window, newest first.
func (s *SupportReportService) Query(ctx context.Context, req dto.SupportReportQuery) (*dto.SupportReportResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	window, err := s.window(req.StartDate, req.EndDate, daterange.SupportReportPolicy)
	if err != nil {
		return nil, err
	}

	filter := models.SupportReportFilter{
		SiteID:    req.SiteID,
		UserID:    req.UserID,
		StaffName: req.StaffName,
		DateFrom:  window.Start,
		DateUntil: window.EndExclusive(),
		Limit:     s.cfg.limit(req.Limit),
	}

	var rows []models.SupportReport
	if err := s.store.Session(ctx, func(q repository.Queryer) error {
		var err error
		rows, err = s.repo.List(ctx, q, filter)
		return err
	}); err != nil {
		return nil, err
	}

	records := make([]dto.SupportReportRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, dto.SupportReportRecord{
			FormID:          row.FormID,
			UserID:          row.UserID,
			SiteID:          row.SiteID,
			FormDate:        dto.FormatDate(row.FormDate),
			StartTime:       row.StartTime,
			EndTime:         row.EndTime,
			SupportLog:      row.SupportLog,
			Category:        row.Category,
			OnsiteRemote:    row.OnsiteRemote,
			Strategies:      row.Strategies,
			StrategiesOther: row.StrategiesOther,
			Debrief:         row.Debrief,
		})
	}

	s.logger.Debug("support reports queried",
		zap.String("start", window.StartString()),
		zap.String("end", window.EndString()),
		zap.Int("records", len(records)),
	)

	return &dto.SupportReportResult{
		QueryInfo: dto.SupportReportQueryInfo{
			SiteID:     dto.Optional(req.SiteID),
			UserID:     dto.Optional(req.UserID),
			StaffName:  dto.Optional(req.StaffName),
			WindowInfo: windowInfo(window, len(records)),
		},
		Records: records,
	}, nil
}
