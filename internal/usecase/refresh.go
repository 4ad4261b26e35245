package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/pantrychef/backend/internal/domain"
	"github.com/pantrychef/backend/internal/infrastructure/usda"
	"github.com/pantrychef/backend/internal/refdata"
)

// RefreshConfig holds configuration for the reference-data refresh service.
type RefreshConfig struct {
	CacheTTL           time.Duration
	Interval           time.Duration
	EnableDebugLogging bool
}

// RefreshService rebuilds the reference snapshot out of band: curated seed
// tables, enriched with household-portion data from USDA FoodData Central
// where the curated portion table has gaps. The finished snapshot is swapped
// in atomically, so request-path calls never see a partial table set.
type RefreshService struct {
	store              *refdata.Store
	source             domain.PortionSource
	cache              domain.CacheRepository
	cacheTTL           time.Duration
	interval           time.Duration
	enableDebugLogging bool
}

// NewRefreshService creates a refresh service. source may be nil, in which
// case refreshes rebuild from the curated seed only.
func NewRefreshService(
	store *refdata.Store,
	source domain.PortionSource,
	cache domain.CacheRepository,
	config RefreshConfig,
) *RefreshService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour // USDA portion data moves slowly
	}
	interval := config.Interval
	if interval == 0 {
		interval = 24 * time.Hour
	}

	return &RefreshService{
		store:              store,
		source:             source,
		cache:              cache,
		cacheTTL:           cacheTTL,
		interval:           interval,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Refresh builds a complete new snapshot and swaps it in. Enrichment
// failures for individual foods are logged and skipped; the refresh still
// succeeds with whatever factors it could gather.
func (s *RefreshService) Refresh(ctx context.Context) (*refdata.Snapshot, error) {
	data := refdata.SeedData()

	if s.source != nil {
		enriched := 0
		for _, food := range refdata.EnrichmentFoods() {
			portions, err := s.lookupPortions(ctx, food)
			if err != nil {
				log.Printf("[REFRESH] portion lookup for %q failed: %v", food, err)
				continue
			}

			factor, ok := usda.DerivePortionFactor(food, portions)
			if !ok {
				if s.enableDebugLogging {
					log.Printf("[REFRESH] no usable household portions for %q", food)
				}
				continue
			}
			data.Portions = append(data.Portions, factor)
			enriched++
		}
		data.Version = fmt.Sprintf("%s+usda.%s", refdata.SeedVersion, time.Now().UTC().Format("20060102T1504Z"))
		log.Printf("[REFRESH] enriched %d portion factors from USDA", enriched)
	}

	snap, err := refdata.NewSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("building reference snapshot: %w", err)
	}

	s.store.Swap(snap)
	log.Printf("[REFRESH] snapshot %s active: %d categories, %d portion factors",
		snap.Version, len(snap.Rules.AllCategories()), snap.PortionCount())
	return snap, nil
}

// Start runs periodic refreshes until the context is cancelled.
func (s *RefreshService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Refresh(ctx); err != nil {
					log.Printf("[REFRESH] periodic refresh failed: %v", err)
				}
			}
		}
	}()
}

// lookupPortions fetches reference portions for a food, through the cache
// when one is configured.
func (s *RefreshService) lookupPortions(ctx context.Context, food string) ([]domain.FoodPortion, error) {
	cacheKey := fmt.Sprintf("portions:%s", refdata.NormalizeFoodName(food))

	if s.cache != nil {
		if value, err := s.cache.Get(ctx, cacheKey); err == nil {
			if portions, ok := portionsFromCacheValue(value); ok {
				if s.enableDebugLogging {
					log.Printf("[REFRESH] cache hit for %q", food)
				}
				return portions, nil
			}
		}
	}

	portions, err := s.source.LookupPortions(ctx, food)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, portions, s.cacheTTL); err != nil {
			log.Printf("[REFRESH] caching portions for %q failed: %v", food, err)
		}
	}

	return portions, nil
}

// portionsFromCacheValue recovers portion records from a cached value. The
// memory cache round-trips values through JSON, so re-marshaling is the
// simplest faithful decode.
func portionsFromCacheValue(value interface{}) ([]domain.FoodPortion, bool) {
	if portions, ok := value.([]domain.FoodPortion); ok {
		return portions, true
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}
	var portions []domain.FoodPortion
	if err := json.Unmarshal(raw, &portions); err != nil {
		return nil, false
	}
	return portions, len(portions) > 0
}
