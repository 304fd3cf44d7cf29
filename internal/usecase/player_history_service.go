package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/galero/internal/domain/placement"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/platform/logging"
	"github.com/riskibarqy/galero/internal/platform/tracing"
)

type PlayerHistoryService struct {
	reader   placement.SnapshotReader
	recorder ComputationRecorder
	logger   *logging.Logger
}

func NewPlayerHistoryService(reader placement.SnapshotReader, recorder ComputationRecorder, logger *logging.Logger) *PlayerHistoryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerHistoryService{
		reader:   reader,
		recorder: recorderOrNop(recorder),
		logger:   logger,
	}
}

type PlayerGoalCount struct {
	Player    player.Player
	GoalCount int
}

// History returns the player's placements over their limit most recent
// editions, newest first.
func (s *PlayerHistoryService) History(ctx context.Context, playerID int64, limit int) (out []placement.Record, err error) {
	ctx, span := tracer.Start(ctx, "PlayerHistoryService.History", tracing.AttrPlayerID.Int64(playerID), tracing.AttrLimit.Int(limit))
	defer tracing.End(span, &err)

	started := time.Now()
	defer func() { s.recorder.ObserveComputation("player_history", time.Since(started), err) }()

	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	graph, err := loadGraph(ctx, s.reader)
	if err != nil {
		return nil, err
	}

	out, err = graph.PlayerHistory(playerID, limit)
	if err != nil {
		if errors.Is(err, placement.ErrInvalidState) {
			s.logger.WarnContext(ctx, "player history hit inconsistent final", "player_id", playerID, "error", err)
		}
		return nil, engineError(fmt.Sprintf("player history player=%d", playerID), err)
	}

	return out, nil
}

func (s *PlayerHistoryService) PlacementStats(ctx context.Context, playerID int64) (out placement.PlacementStatsRecord, err error) {
	ctx, span := tracer.Start(ctx, "PlayerHistoryService.PlacementStats", tracing.AttrPlayerID.Int64(playerID))
	defer tracing.End(span, &err)

	started := time.Now()
	defer func() { s.recorder.ObserveComputation("player_placement_stats", time.Since(started), err) }()

	if err := validatePlayerID(playerID); err != nil {
		return placement.PlacementStatsRecord{}, err
	}

	graph, err := loadGraph(ctx, s.reader)
	if err != nil {
		return placement.PlacementStatsRecord{}, err
	}

	out, err = graph.PlacementStatsForPlayer(playerID)
	if err != nil {
		return placement.PlacementStatsRecord{}, engineError(fmt.Sprintf("placement stats player=%d", playerID), err)
	}

	return out, nil
}

func (s *PlayerHistoryService) GoalCount(ctx context.Context, playerID int64) (_ PlayerGoalCount, err error) {
	ctx, span := tracer.Start(ctx, "PlayerHistoryService.GoalCount", tracing.AttrPlayerID.Int64(playerID))
	defer tracing.End(span, &err)

	if err := validatePlayerID(playerID); err != nil {
		return PlayerGoalCount{}, err
	}

	graph, err := loadGraph(ctx, s.reader)
	if err != nil {
		return PlayerGoalCount{}, err
	}

	p, ok := graph.Player(playerID)
	if !ok {
		return PlayerGoalCount{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return PlayerGoalCount{Player: p, GoalCount: graph.GoalCount(playerID)}, nil
}
