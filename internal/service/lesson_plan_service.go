package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/models"
	"github.com/noah-isme/kmq-gateway/internal/repository"
	"github.com/noah-isme/kmq-gateway/pkg/daterange"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

const invalidLessonTypeMessage = "Invalid lesson_type. Must be either 'preschool' or 'it' (infant/toddler)."

type lessonPlanLister interface {
	List(ctx context.Context, q repository.Queryer, filter models.LessonPlanFilter) ([]models.LessonPlan, error)
}

// LessonPlanService answers lesson plan queries for both plan variants.
type LessonPlanService struct {
	queryBase
	repo     lessonPlanLister
	measures *MeasureResolver
	logger   *zap.Logger
}

// NewLessonPlanService constructs the service.
func NewLessonPlanService(store sessionRunner, repo lessonPlanLister, measures *MeasureResolver, validate *validator.Validate, cfg QueryConfig, logger *zap.Logger) *LessonPlanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LessonPlanService{queryBase: newQueryBase(store, validate, cfg), repo: repo, measures: measures, logger: logger}
}

// Query returns plans of the requested type with their referenced measures.
func (s *LessonPlanService) Query(ctx context.Context, req dto.LessonPlanQuery) (*dto.LessonPlanResult, error) {
	lessonType, ok := models.ParseLessonType(req.LessonType)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidLessonType, invalidLessonTypeMessage)
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	window, err := s.window(req.StartDate, req.EndDate, daterange.LessonPlanPolicy)
	if err != nil {
		return nil, err
	}

	filter := models.LessonPlanFilter{
		Type:        lessonType,
		SiteID:      req.SiteID,
		RoomID:      req.RoomID,
		TeacherName: req.TeacherName,
		DateFrom:    window.Start,
		DateUntil:   window.EndExclusive(),
		Limit:       s.cfg.limit(req.Limit),
	}

	var records []dto.LessonPlanRecord
	if err := s.store.Session(ctx, func(q repository.Queryer) error {
		rows, err := s.repo.List(ctx, q, filter)
		if err != nil {
			return err
		}
		lookup := s.measures.Bind(q)
		records = make([]dto.LessonPlanRecord, 0, len(rows))
		for _, row := range rows {
			measures, err := lookup.Resolve(ctx, row.FormID)
			if err != nil {
				return err
			}
			records = append(records, lessonPlanRecord(lessonType, row, measures))
		}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Debug("lesson plans queried",
		zap.String("lesson_type", string(lessonType)),
		zap.String("start", window.StartString()),
		zap.String("end", window.EndString()),
		zap.Int("records", len(records)),
	)

	return &dto.LessonPlanResult{
		QueryInfo: dto.LessonPlanQueryInfo{
			LessonType:  string(lessonType),
			SiteID:      dto.Optional(req.SiteID),
			RoomID:      dto.Optional(req.RoomID),
			TeacherName: dto.Optional(req.TeacherName),
			WindowInfo:  windowInfo(window, len(records)),
		},
		Records: records,
	}, nil
}

func lessonPlanRecord(lessonType models.LessonType, row models.LessonPlan, measures []dto.MeasureDescriptor) dto.LessonPlanRecord {
	rec := dto.LessonPlanRecord{
		FormID:                   row.FormID,
		DOR:                      dto.FormatTimestamp(row.DOR),
		SiteID:                   row.SiteID,
		RoomID:                   row.RoomID,
		WeekCount:                row.WeekCount,
		TeacherName:              row.TeacherName,
		StudyTopic:               row.StudyTopic,
		FocusWeek:                row.FocusWeek,
		IntentionalTeachingCards: row.IntentionalTeachingCards,
		MightyMinutes:            row.MightyMinutes,
		Vocabulary:               row.Vocabulary,
		Books:                    row.Books,
		FamilyEngagement:         row.FamilyEngagement,
		Individualizations:       row.Individualizations,
		Blocks:                   row.Blocks,
		WaterSensory:             row.WaterSensory,
		Art:                      row.Art,
		MusicMovement:            row.MusicMovement,
		DramaticPlay:             row.DramaticPlay,
		Manipulatives:            row.Manipulatives,
		OutdoorClassroom:         row.OutdoorClassroom,
		Teachers:                 row.Teachers,
		EnrollYear:               row.EnrollYear,
		DRDPMeasures:             measures,
	}
	switch lessonType {
	case models.LessonTypePreschool:
		rec.PreschoolAreas = &dto.PreschoolAreas{
			Science: row.Science,
			Math:    row.Math,
			Writing: row.Writing,
			Library: row.Library,
			Other:   row.Other,
		}
	case models.LessonTypeInfantToddler:
		rec.InfantToddlerAreas = &dto.InfantToddlerAreas{
			InfantModification: row.InfantModification,
			ScienceMath:        row.ScienceMath,
		}
	}
	return rec
}
