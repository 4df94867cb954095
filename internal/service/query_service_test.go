package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/models"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

func requireAppError(t *testing.T, err error, want *appErrors.Error, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, want.Code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
	assert.True(t, appErrors.IsValidation(err))
}

func TestQueryConfigLimit(t *testing.T) {
	assert.Equal(t, DefaultQueryLimit, QueryConfig{}.limit(0))
	assert.Equal(t, 100, QueryConfig{DefaultLimit: 100}.limit(-3))
	assert.Equal(t, 5000, QueryConfig{}.limit(5000))
	assert.Equal(t, 1000, QueryConfig{MaxLimit: 1000}.limit(5000))
	assert.Equal(t, 20, QueryConfig{MaxLimit: 1000}.limit(20))
}

func TestAttendanceLogServiceDefaultsWindow(t *testing.T) {
	store := &fakeStore{}
	repo := &fakeAttendanceRepo{rows: []models.AttendanceLog{{
		FormID:              "F1",
		SiteID:              strPtr("S1"),
		FormDate:            timePtr(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)),
		DOR:                 timePtr(time.Date(2024, 3, 14, 7, 45, 12, 0, time.UTC)),
		MealConfirmDatetime: nil,
	}}}
	svc := NewAttendanceLogService(store, repo, nil, QueryConfig{}, nil)
	svc.now = fixedClock

	result, err := svc.Query(context.Background(), dto.AttendanceLogQuery{SiteID: "S1"})
	require.NoError(t, err)

	assert.Equal(t, 1, store.sessions)
	assert.Equal(t, "2024-03-08", result.QueryInfo.StartDate)
	assert.Equal(t, "2024-03-15", result.QueryInfo.EndDate)
	assert.Equal(t, 7, result.QueryInfo.DurationDays)
	assert.Equal(t, 1, result.QueryInfo.TotalRecords)
	assert.Equal(t, "S1", *result.QueryInfo.SiteID)
	assert.Nil(t, result.QueryInfo.RoomID)

	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), repo.filter.DateUntil)
	assert.Equal(t, DefaultQueryLimit, repo.filter.Limit)

	rec := result.Records[0]
	assert.Equal(t, "2024-03-14", *rec.FormDate)
	assert.Equal(t, "2024-03-14 07:45:12", *rec.DOR)
	assert.Nil(t, rec.MealConfirmDatetime)
}

func TestAttendanceLogServiceRejectsOldStart(t *testing.T) {
	store := &fakeStore{}
	svc := NewAttendanceLogService(store, &fakeAttendanceRepo{}, nil, QueryConfig{}, nil)
	svc.now = fixedClock

	start := fixedNow.AddDate(0, 0, -100).Format("2006-01-02")
	_, err := svc.Query(context.Background(), dto.AttendanceLogQuery{StartDate: &start})
	requireAppError(t, err, appErrors.ErrRangeTooOld, "Start date cannot be more than 3 months ago. Earliest allowed date: 2023-12-16")
	assert.Zero(t, store.sessions)
}

func TestAttendanceLogServiceMalformedDateNeverTouchesStore(t *testing.T) {
	for _, raw := range []string{"03/15/2024", "2024-13-01", "yesterday", "2024-3-5"} {
		store := &fakeStore{}
		svc := NewAttendanceLogService(store, &fakeAttendanceRepo{}, nil, QueryConfig{}, nil)
		svc.now = fixedClock
		value := raw

		_, err := svc.Query(context.Background(), dto.AttendanceLogQuery{EndDate: &value})
		requireAppError(t, err, appErrors.ErrInvalidDateFormat, "Invalid end_date format. Use YYYY-MM-DD format.")
		assert.Zero(t, store.sessions, raw)
	}
}

func TestSupportReportServicePassesFilters(t *testing.T) {
	repo := &fakeSupportRepo{rows: []models.SupportReport{{FormID: "R1", UserID: strPtr("coach@example.org"), OnsiteRemote: nil}}}
	svc := NewSupportReportService(&fakeStore{}, repo, nil, QueryConfig{MaxLimit: 100}, nil)
	svc.now = fixedClock
	start, end := "2024-01-01", "2024-02-01"

	result, err := svc.Query(context.Background(), dto.SupportReportQuery{
		UserID: "coach@example.org", StaffName: "coach", StartDate: &start, EndDate: &end, Limit: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "coach@example.org", repo.filter.UserID)
	assert.Equal(t, "coach", repo.filter.StaffName)
	assert.Equal(t, 100, repo.filter.Limit)
	assert.Equal(t, 31, result.QueryInfo.DurationDays)
	assert.Equal(t, "coach", *result.QueryInfo.StaffName)
	assert.Nil(t, result.QueryInfo.SiteID)
}

func TestSupportReportServiceRejectsFutureEnd(t *testing.T) {
	store := &fakeStore{}
	svc := NewSupportReportService(store, &fakeSupportRepo{}, nil, QueryConfig{}, nil)
	svc.now = fixedClock
	end := "2024-03-16"

	_, err := svc.Query(context.Background(), dto.SupportReportQuery{EndDate: &end})
	requireAppError(t, err, appErrors.ErrFutureDateNotAllowed, "End date cannot be in the future. Latest allowed date: 2024-03-15")
	assert.Zero(t, store.sessions)
}

func TestSupportReportServiceValidatesLengths(t *testing.T) {
	store := &fakeStore{}
	svc := NewSupportReportService(store, &fakeSupportRepo{}, nil, QueryConfig{}, nil)
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}

	_, err := svc.Query(context.Background(), dto.SupportReportQuery{StaffName: string(long)})
	requireAppError(t, err, appErrors.ErrValidation, "")
	assert.Zero(t, store.sessions)
}

func TestAssessmentServiceRejectsWideRange(t *testing.T) {
	store := &fakeStore{}
	svc := NewAssessmentService(store, &fakeAssessmentRepo{}, nil, QueryConfig{}, nil)
	svc.now = fixedClock
	start, end := "2023-01-01", "2024-03-01"

	_, err := svc.Query(context.Background(), dto.AssessmentQuery{StartDate: &start, EndDate: &end})
	requireAppError(t, err, appErrors.ErrRangeTooWide,
		"Date range cannot exceed 1 year (365 days). Current range: 425 days. Please reduce the date range.")
	assert.Zero(t, store.sessions)
}

func TestAssessmentServiceDecodesEveryMeasure(t *testing.T) {
	scores := make([]*float64, len(measureKeys))
	scores[0] = floatPtr(5.5)
	scores[1] = floatPtr(99)
	scores[len(scores)-1] = floatPtr(3.25)
	repo := &fakeAssessmentRepo{rows: []models.AssessmentRecord{{
		FormID:         "A1",
		SubmitDatetime: timePtr(time.Date(2024, 3, 15, 9, 5, 0, 0, time.UTC)),
		Scores:         scores,
	}}}
	svc := NewAssessmentService(&fakeStore{}, repo, nil, QueryConfig{}, nil)
	svc.now = fixedClock

	result, err := svc.Query(context.Background(), dto.AssessmentQuery{ChildID: "C1"})
	require.NoError(t, err)
	assert.Equal(t, "C1", repo.filter.ChildID)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), repo.filter.DateUntil)

	rec := result.Records[0]
	assert.Equal(t, "2024-03-15 09:05:00", *rec.SubmitDatetime)
	require.Len(t, rec.Measurements, 47)

	atl := rec.Measurements["atl_reg_1"]
	assert.Equal(t, 5.5, *atl.NumericValue)
	assert.Equal(t, "Exploring Later + Emerging", *atl.LevelDescription)
	assert.Equal(t, "Conditional measure", *rec.Measurements["atl_reg_2"].LevelDescription)
	assert.Contains(t, *rec.Measurements["pd_hlth_10"].LevelDescription, "Exploring Earlier + 0.25")

	empty := rec.Measurements["sed_1"]
	assert.Nil(t, empty.NumericValue)
	assert.Nil(t, empty.LevelDescription)
}

func TestQueryServicePropagatesStoreFailure(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewSupportReportService(&fakeStore{err: boom}, &fakeSupportRepo{}, nil, QueryConfig{}, nil)
	svc.now = fixedClock

	_, err := svc.Query(context.Background(), dto.SupportReportQuery{})
	require.ErrorIs(t, err, boom)
	assert.False(t, appErrors.IsValidation(err))
}
