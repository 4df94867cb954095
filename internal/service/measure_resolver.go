package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/models"
	"github.com/noah-isme/kmq-gateway/internal/repository"
)

type measureSource interface {
	MeasureSlots(ctx context.Context, q repository.Queryer, planID string) ([]models.LessonPlanDetail, error)
	FindMeasure(ctx context.Context, q repository.Queryer, id string) (*models.MeasureCatalogEntry, error)
}

// MeasureResolver expands the measure references embedded in lesson plan
// slots into catalog descriptors.
type MeasureResolver struct {
	repo   measureSource
	cache  *CacheService
	ttl    time.Duration
	logger *zap.Logger
}

// NewMeasureResolver constructs a resolver. cache may be nil.
func NewMeasureResolver(repo measureSource, cache *CacheService, ttl time.Duration, logger *zap.Logger) *MeasureResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeasureResolver{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// Bind returns a lookup scoped to one session. Catalog hits and misses are
// remembered for the lifetime of the lookup.
func (r *MeasureResolver) Bind(q repository.Queryer) *MeasureLookup {
	return &MeasureLookup{resolver: r, q: q, memo: make(map[string]*models.MeasureCatalogEntry)}
}

// Resolve is a convenience for resolving a single plan.
func (r *MeasureResolver) Resolve(ctx context.Context, q repository.Queryer, planID string) ([]dto.MeasureDescriptor, error) {
	return r.Bind(q).Resolve(ctx, planID)
}

// MeasureLookup resolves plans against one session.
type MeasureLookup struct {
	resolver *MeasureResolver
	q        repository.Queryer
	memo     map[string]*models.MeasureCatalogEntry
}

// Resolve returns descriptors in slot order then token order. Tokens that
// match no catalog entry are omitted.
func (l *MeasureLookup) Resolve(ctx context.Context, planID string) ([]dto.MeasureDescriptor, error) {
	slots, err := l.resolver.repo.MeasureSlots(ctx, l.q, planID)
	if err != nil {
		return nil, err
	}

	descriptors := []dto.MeasureDescriptor{}
	for _, slot := range slots {
		if slot.Content == nil {
			continue
		}
		slotCode := ""
		if slot.SlotNo != nil {
			slotCode = *slot.SlotNo
		}
		for _, token := range splitReferences(*slot.Content) {
			entry, err := l.find(ctx, token)
			if err != nil {
				return nil, err
			}
			if entry == nil {
				continue
			}
			descriptors = append(descriptors, dto.MeasureDescriptor{
				SlotCode:    slotCode,
				ReferenceID: token,
				DisplayName: entry.Name,
				Category:    entry.Category,
			})
		}
	}
	return descriptors, nil
}

func (l *MeasureLookup) find(ctx context.Context, id string) (*models.MeasureCatalogEntry, error) {
	if entry, ok := l.memo[id]; ok {
		return entry, nil
	}

	key := "drdp_items:" + id
	var cached models.MeasureCatalogEntry
	if hit, err := l.resolver.cache.Get(ctx, key, &cached); err == nil && hit {
		l.memo[id] = &cached
		return &cached, nil
	}

	entry, err := l.resolver.repo.FindMeasure(ctx, l.q, id)
	if err != nil {
		return nil, err
	}
	l.memo[id] = entry
	if entry != nil {
		_ = l.resolver.cache.Set(ctx, key, entry, l.resolver.ttl)
	}
	return entry, nil
}

// splitReferences splits a comma-separated payload, trimming whitespace and
// dropping empty tokens.
func splitReferences(payload string) []string {
	parts := strings.Split(payload, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
