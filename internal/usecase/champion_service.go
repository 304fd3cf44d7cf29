package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/galero/internal/domain/placement"
	"github.com/riskibarqy/galero/internal/platform/logging"
	"github.com/riskibarqy/galero/internal/platform/tracing"
)

const defaultOverviewWorkers = 3

type ChampionService struct {
	reader          placement.SnapshotReader
	recorder        ComputationRecorder
	logger          *logging.Logger
	overviewWorkers int
}

func NewChampionService(
	reader placement.SnapshotReader,
	recorder ComputationRecorder,
	logger *logging.Logger,
	overviewWorkers int,
) *ChampionService {
	if logger == nil {
		logger = logging.Default()
	}
	if overviewWorkers <= 0 {
		overviewWorkers = defaultOverviewWorkers
	}

	return &ChampionService{
		reader:          reader,
		recorder:        recorderOrNop(recorder),
		logger:          logger,
		overviewWorkers: overviewWorkers,
	}
}

// ChampionsOverview bundles the three leaderboards computed from one snapshot.
type ChampionsOverview struct {
	EditionWinners []placement.EditionWinRecord
	AllTimeScorers []placement.ScoringRecord
	PlacementStats []placement.PlacementStatsRecord
}

func (s *ChampionService) EditionWinLeaders(ctx context.Context, limit int) (out []placement.EditionWinRecord, err error) {
	ctx, span := tracer.Start(ctx, "ChampionService.EditionWinLeaders", tracing.AttrLimit.Int(limit))
	defer tracing.End(span, &err)

	started := time.Now()
	defer func() { s.recorder.ObserveComputation("edition_win_leaders", time.Since(started), err) }()

	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	graph, err := loadGraph(ctx, s.reader)
	if err != nil {
		return nil, err
	}

	out, err = graph.EditionWinLeaders(limit)
	if err != nil {
		s.logIfInvalidState(ctx, "edition_win_leaders", err)
		return nil, engineError("compute edition win leaders", err)
	}

	return out, nil
}

func (s *ChampionService) AllTimeScorers(ctx context.Context, limit int) (out []placement.ScoringRecord, err error) {
	ctx, span := tracer.Start(ctx, "ChampionService.AllTimeScorers", tracing.AttrLimit.Int(limit))
	defer tracing.End(span, &err)

	started := time.Now()
	defer func() { s.recorder.ObserveComputation("all_time_scorers", time.Since(started), err) }()

	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	graph, err := loadGraph(ctx, s.reader)
	if err != nil {
		return nil, err
	}

	out, err = graph.AllTimeScorers(limit)
	if err != nil {
		return nil, engineError("compute all-time scorers", err)
	}

	return out, nil
}

func (s *ChampionService) PlacementStats(ctx context.Context, limit int) (out []placement.PlacementStatsRecord, err error) {
	ctx, span := tracer.Start(ctx, "ChampionService.PlacementStats", tracing.AttrLimit.Int(limit))
	defer tracing.End(span, &err)

	started := time.Now()
	defer func() { s.recorder.ObserveComputation("placement_stats", time.Since(started), err) }()

	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	graph, err := loadGraph(ctx, s.reader)
	if err != nil {
		return nil, err
	}

	out, err = graph.PlacementStats(limit)
	if err != nil {
		s.logIfInvalidState(ctx, "placement_stats", err)
		return nil, engineError("compute placement stats", err)
	}

	return out, nil
}

// Overview computes the three leaderboards over a single snapshot. The
// rollups only read the immutable graph, so they run side by side on a
// bounded pool and the first failure (in leaderboard order) is returned.
func (s *ChampionService) Overview(ctx context.Context, limit int) (out ChampionsOverview, err error) {
	ctx, span := tracer.Start(ctx, "ChampionService.Overview", tracing.AttrLimit.Int(limit))
	defer tracing.End(span, &err)

	started := time.Now()
	defer func() { s.recorder.ObserveComputation("champions_overview", time.Since(started), err) }()

	if err := validateLimit(limit); err != nil {
		return ChampionsOverview{}, err
	}

	graph, err := loadGraph(ctx, s.reader)
	if err != nil {
		return ChampionsOverview{}, err
	}

	tasks := []func() error{
		func() error {
			items, err := graph.EditionWinLeaders(limit)
			if err != nil {
				return engineError("compute edition win leaders", err)
			}
			out.EditionWinners = items
			return nil
		},
		func() error {
			items, err := graph.AllTimeScorers(limit)
			if err != nil {
				return engineError("compute all-time scorers", err)
			}
			out.AllTimeScorers = items
			return nil
		},
		func() error {
			items, err := graph.PlacementStats(limit)
			if err != nil {
				return engineError("compute placement stats", err)
			}
			out.PlacementStats = items
			return nil
		},
	}

	pool, err := ants.NewPool(s.overviewWorkers)
	if err != nil {
		return ChampionsOverview{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	errs := make([]error, len(tasks))
	var workers sync.WaitGroup
	for i, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			errs[i] = task()
		}); err != nil {
			workers.Done()
			workers.Wait()
			return ChampionsOverview{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, taskErr := range errs {
		if taskErr != nil {
			s.logIfInvalidState(ctx, "champions_overview", taskErr)
			return ChampionsOverview{}, taskErr
		}
	}

	return out, nil
}

func (s *ChampionService) logIfInvalidState(ctx context.Context, operation string, err error) {
	if errors.Is(err, placement.ErrInvalidState) {
		s.logger.WarnContext(ctx, "competition data violates placement invariant",
			"operation", operation,
			"error", err,
		)
	}
}
