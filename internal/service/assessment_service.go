package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/models"
	"github.com/noah-isme/kmq-gateway/internal/repository"
	"github.com/noah-isme/kmq-gateway/pkg/daterange"
	"github.com/noah-isme/kmq-gateway/pkg/drdp"
)

type assessmentLister interface {
	List(ctx context.Context, q repository.Queryer, filter models.AssessmentFilter) ([]models.AssessmentRecord, error)
}

// measureKeys are the output keys of the score columns, in column order.
var measureKeys = func() []string {
	keys := make([]string, len(drdp.Measures))
	for i, m := range drdp.Measures {
		keys[i] = strings.ToLower(m)
	}
	return keys
}()

// AssessmentService answers DRDP assessment queries and decodes every score.
type AssessmentService struct {
	queryBase
	repo   assessmentLister
	logger *zap.Logger
}

// NewAssessmentService constructs the service.
func NewAssessmentService(store sessionRunner, repo assessmentLister, validate *validator.Validate, cfg QueryConfig, logger *zap.Logger) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{queryBase: newQueryBase(store, validate, cfg), repo: repo, logger: logger}
}

// Query returns records submitted within the requested window, newest first.
func (s *AssessmentService) Query(ctx context.Context, req dto.AssessmentQuery) (*dto.AssessmentResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	window, err := s.window(req.StartDate, req.EndDate, daterange.AssessmentPolicy)
	if err != nil {
		return nil, err
	}

	filter := models.AssessmentFilter{
		SiteID:    req.SiteID,
		RoomID:    req.RoomID,
		ChildID:   req.ChildID,
		DateFrom:  window.Start,
		DateUntil: window.EndExclusive(),
		Limit:     s.cfg.limit(req.Limit),
	}

	var rows []models.AssessmentRecord
	if err := s.store.Session(ctx, func(q repository.Queryer) error {
		var err error
		rows, err = s.repo.List(ctx, q, filter)
		return err
	}); err != nil {
		return nil, err
	}

	records := make([]dto.AssessmentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, assessmentRecord(row))
	}

	s.logger.Debug("assessments queried",
		zap.String("start", window.StartString()),
		zap.String("end", window.EndString()),
		zap.Int("records", len(records)),
	)

	return &dto.AssessmentResult{
		QueryInfo: dto.AssessmentQueryInfo{
			SiteID:     dto.Optional(req.SiteID),
			RoomID:     dto.Optional(req.RoomID),
			ChildID:    dto.Optional(req.ChildID),
			WindowInfo: windowInfo(window, len(records)),
		},
		Records: records,
	}, nil
}

func assessmentRecord(row models.AssessmentRecord) dto.AssessmentRecord {
	measurements := make(map[string]dto.MeasureScore, len(measureKeys))
	for i, key := range measureKeys {
		var score *float64
		if i < len(row.Scores) {
			score = row.Scores[i]
		}
		measurements[key] = dto.MeasureScore{
			NumericValue:     score,
			LevelDescription: drdp.DecodeLevel(score),
		}
	}
	return dto.AssessmentRecord{
		FormID:         row.FormID,
		EnrollYear:     row.EnrollYear,
		ChildID:        row.ChildID,
		DOR:            dto.FormatTimestamp(row.DOR),
		SiteID:         row.SiteID,
		RoomID:         row.RoomID,
		SubmitDatetime: dto.FormatTimestamp(row.SubmitDatetime),
		Measurements:   measurements,
	}
}
