package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/noah-isme/kmq-gateway/internal/models"
	"github.com/noah-isme/kmq-gateway/internal/repository"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

var fixedNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

// fakeStore runs sessions with a nil Queryer and counts them.
type fakeStore struct {
	sessions int
	err      error
}

func (f *fakeStore) Session(ctx context.Context, fn func(q repository.Queryer) error) error {
	f.sessions++
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

type fakeAttendanceRepo struct {
	rows   []models.AttendanceLog
	filter models.AttendanceLogFilter
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ repository.Queryer, filter models.AttendanceLogFilter) ([]models.AttendanceLog, error) {
	f.filter = filter
	return f.rows, nil
}

type fakeSupportRepo struct {
	rows   []models.SupportReport
	filter models.SupportReportFilter
}

func (f *fakeSupportRepo) List(_ context.Context, _ repository.Queryer, filter models.SupportReportFilter) ([]models.SupportReport, error) {
	f.filter = filter
	return f.rows, nil
}

type fakeLessonPlanRepo struct {
	rows   []models.LessonPlan
	filter models.LessonPlanFilter
	calls  int
}

func (f *fakeLessonPlanRepo) List(_ context.Context, _ repository.Queryer, filter models.LessonPlanFilter) ([]models.LessonPlan, error) {
	f.calls++
	f.filter = filter
	return f.rows, nil
}

type fakeAssessmentRepo struct {
	rows   []models.AssessmentRecord
	filter models.AssessmentFilter
}

func (f *fakeAssessmentRepo) List(_ context.Context, _ repository.Queryer, filter models.AssessmentFilter) ([]models.AssessmentRecord, error) {
	f.filter = filter
	return f.rows, nil
}

type fakeMeasureRepo struct {
	slots   map[string][]models.LessonPlanDetail
	catalog map[string]models.MeasureCatalogEntry
	lookups map[string]int
}

func (f *fakeMeasureRepo) MeasureSlots(_ context.Context, _ repository.Queryer, planID string) ([]models.LessonPlanDetail, error) {
	return f.slots[planID], nil
}

func (f *fakeMeasureRepo) FindMeasure(_ context.Context, _ repository.Queryer, id string) (*models.MeasureCatalogEntry, error) {
	if f.lookups == nil {
		f.lookups = map[string]int{}
	}
	f.lookups[id]++
	entry, ok := f.catalog[id]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

type fakeSiteRepo struct {
	sites     []models.Site
	rooms     map[string][]models.Room
	listCalls int
}

func (f *fakeSiteRepo) List(_ context.Context, _ repository.Queryer, _ models.SiteFilter) ([]models.Site, error) {
	f.listCalls++
	return f.sites, nil
}

func (f *fakeSiteRepo) RoomsBySite(_ context.Context, _ repository.Queryer, _ []string) (map[string][]models.Room, error) {
	return f.rooms, nil
}

// memoryCache is an in-process CacheRepository.
type memoryCache struct {
	items map[string][]byte
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.sets++
	m.items[key] = raw
	return nil
}

func (m *memoryCache) DeleteByPattern(_ context.Context, _ string) (int, error) {
	n := len(m.items)
	m.items = map[string][]byte{}
	return n, nil
}
