package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/models"
	"github.com/noah-isme/kmq-gateway/internal/repository"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

type siteReader interface {
	List(ctx context.Context, q repository.Queryer, filter models.SiteFilter) ([]models.Site, error)
	RoomsBySite(ctx context.Context, q repository.Queryer, siteIDs []string) (map[string][]models.Room, error)
}

// SiteService lists sites with their classrooms.
type SiteService struct {
	store     sessionRunner
	repo      siteReader
	cache     *CacheService
	ttl       time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSiteService constructs the service. cache may be nil.
func NewSiteService(store sessionRunner, repo siteReader, cache *CacheService, ttl time.Duration, validate *validator.Validate, logger *zap.Logger) *SiteService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteService{store: store, repo: repo, cache: cache, ttl: ttl, validator: validate, logger: logger}
}

// ListWithClassrooms returns sites whose name contains req.SiteName, each
// with its rooms, and whether the result came from cache.
func (s *SiteService) ListWithClassrooms(ctx context.Context, req dto.SiteQuery) ([]dto.SiteWithClassrooms, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters")
	}

	key := "sites:" + req.SiteName
	var cached []dto.SiteWithClassrooms
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	var (
		sites []models.Site
		rooms map[string][]models.Room
	)
	if err := s.store.Session(ctx, func(q repository.Queryer) error {
		var err error
		sites, err = s.repo.List(ctx, q, models.SiteFilter{NameContains: req.SiteName})
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(sites))
		for _, site := range sites {
			ids = append(ids, site.ID)
		}
		rooms, err = s.repo.RoomsBySite(ctx, q, ids)
		return err
	}); err != nil {
		return nil, false, err
	}

	result := make([]dto.SiteWithClassrooms, 0, len(sites))
	for _, site := range sites {
		classrooms := make([]dto.Classroom, 0, len(rooms[site.ID]))
		for _, room := range rooms[site.ID] {
			classrooms = append(classrooms, dto.Classroom{
				RoomID:       room.ID,
				RoomName:     room.Name,
				RoomAgeGroup: room.AgeGroup,
			})
		}
		result = append(result, dto.SiteWithClassrooms{
			SiteID:      site.ID,
			SiteName:    site.Name,
			SiteAddress: site.Address,
			SiteZip:     site.Zip,
			Classrooms:  classrooms,
		})
	}

	_ = s.cache.Set(ctx, key, result, s.ttl)
	s.logger.Debug("sites listed", zap.String("site_name", req.SiteName), zap.Int("sites", len(result)))
	return result, false, nil
}
