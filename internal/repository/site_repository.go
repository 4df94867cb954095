package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/kmq-gateway/internal/models"
)

// SiteRepository reads the site/room hierarchy.
type SiteRepository struct {
	obs QueryObserver
}

// NewSiteRepository constructs the repository.
func NewSiteRepository(obs QueryObserver) *SiteRepository {
	return &SiteRepository{obs: obs}
}

// List returns sites whose name contains filter.NameContains.
func (r *SiteRepository) List(ctx context.Context, q Queryer, filter models.SiteFilter) ([]models.Site, error) {
	defer observe(r.obs, "sites.list", time.Now())
	query, args := newSelect(models.SitesTable).
		Contains("Site_Name", filter.NameContains).
		Build()
	var rows []models.Site
	if err := q.SelectContext(ctx, &rows, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return rows, nil
}

// RoomsBySite returns rooms for the given sites keyed by site id, preserving stored order.
func (r *SiteRepository) RoomsBySite(ctx context.Context, q Queryer, siteIDs []string) (map[string][]models.Room, error) {
	result := make(map[string][]models.Room, len(siteIDs))
	if len(siteIDs) == 0 {
		return result, nil
	}
	defer observe(r.obs, "rooms.by_site", time.Now())
	base, _ := newSelect(models.RoomsTable).Build()
	query, args, err := sqlx.In(base+" WHERE Site_ID IN (?)", siteIDs)
	if err != nil {
		return nil, fmt.Errorf("expand rooms query: %w", err)
	}
	var rows []models.Room
	if err := q.SelectContext(ctx, &rows, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	for _, room := range rows {
		if room.SiteID == nil {
			continue
		}
		result[*room.SiteID] = append(result[*room.SiteID], room)
	}
	return result, nil
}
