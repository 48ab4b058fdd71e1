package usecase

import (
	"context"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/domain/repository"
)

type StatsUseCase struct {
	substationRepo repository.SubstationRepository
	polygonRepo    repository.PolygonRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	statsCacheTTL  time.Duration
}

func NewStatsUseCase(
	substationRepo repository.SubstationRepository,
	polygonRepo repository.PolygonRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	statsCacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		substationRepo: substationRepo,
		polygonRepo:    polygonRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		statsCacheTTL:  statsCacheTTL,
	}
}

// GetStatistics returns the aggregated corpus view, cached with a TTL.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		return cached, nil
	}

	stats, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.statsCacheTTL); err != nil {
		uc.logger.Warn("Failed to cache statistics", zap.Error(err))
	}

	return stats, nil
}

// Refresh recomputes the statistics and replaces the cached copy. Called by
// the stats worker whenever a collection change event arrives.
func (uc *StatsUseCase) Refresh(ctx context.Context) error {
	stats, err := uc.compute(ctx)
	if err != nil {
		return err
	}
	return uc.cacheRepo.SetStats(ctx, stats, uc.statsCacheTTL)
}

func (uc *StatsUseCase) compute(ctx context.Context) (*domain.Statistics, error) {
	substations, _, err := uc.substationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	polygons, _, err := uc.polygonRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Statistics{
		Substations: domain.SubstationStats{
			Total:  len(substations),
			ByType: make(map[string]int),
		},
		Components: domain.ComponentStats{
			Total:   len(polygons),
			ByLabel: make(map[string]int),
		},
		LastUpdated: time.Now().UTC(),
	}

	var (
		bound    orb.Bound
		hasBound bool
	)

	for i := range substations {
		sub := &substations[i]
		if sub.Completed {
			stats.Substations.Completed++
		}
		if sub.SubstationType != nil && *sub.SubstationType != "" {
			stats.Substations.ByType[*sub.SubstationType]++
		}
		if sub.Geometry != nil {
			b := sub.Geometry.Geometry().Bound()
			if hasBound {
				bound = bound.Union(b)
			} else {
				bound = b
				hasBound = true
			}
		}
	}
	stats.Substations.Remaining = stats.Substations.Total - stats.Substations.Completed

	for i := range polygons {
		p := &polygons[i]
		if p.FromOSM {
			stats.Components.FromOSM++
		} else {
			stats.Components.UserAuthored++
		}
		if p.SubstationUUID == nil {
			stats.Components.Unassigned++
		}
		if p.Label != "" {
			stats.Components.ByLabel[p.Label]++
		}
	}

	if hasBound {
		center := bound.Center()
		stats.Coverage = domain.CoverageStats{
			BBoxMinLat: bound.Min[1],
			BBoxMaxLat: bound.Max[1],
			BBoxMinLon: bound.Min[0],
			BBoxMaxLon: bound.Max[0],
			CenterLat:  center[1],
			CenterLon:  center[0],
			AreaSqKm:   geo.Area(bound) / 1e6,
		}
	}

	return stats, nil
}
