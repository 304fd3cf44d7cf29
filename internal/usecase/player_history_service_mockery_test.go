package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/placement"
	placementmock "github.com/riskibarqy/galero/internal/mocks/domain/placement"
	"github.com/stretchr/testify/mock"
)

type traceKey string

func TestPlayerHistoryService_History_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), traceKey("trace_id"), "trace-123")
	reader := placementmock.NewSnapshotReader(t)
	reader.
		On("ReadSnapshot", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(twoEditionSnapshot(), nil).
		Once()

	service := NewPlayerHistoryService(reader, nil, nil)
	got, err := service.History(ctx, 20, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].EditionNumber != 2 || got[0].Placement != placement.PlacementThird || got[0].FinalType != match.TypeSmallFinal {
		t.Fatalf("unexpected latest record: %+v", got[0])
	}
	if got[0].OpponentColor != "purple" || got[0].OwnScore != 4 || got[0].OpponentScore != 2 {
		t.Fatalf("unexpected scoreline: %+v", got[0])
	}
	if got[1].EditionNumber != 1 || got[1].Placement != placement.PlacementRunnerUp || got[1].OpponentColor != "red" {
		t.Fatalf("unexpected oldest record: %+v", got[1])
	}
}

func TestPlayerHistoryService_History_UnknownPlayerUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := placementmock.NewSnapshotReader(t)
	reader.
		On("ReadSnapshot", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(twoEditionSnapshot(), nil).
		Once()

	service := NewPlayerHistoryService(reader, nil, nil)
	_, err := service.History(ctx, 999, 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerHistoryService_History_InvalidInputUsingMockery(t *testing.T) {
	t.Parallel()

	reader := placementmock.NewSnapshotReader(t)
	service := NewPlayerHistoryService(reader, nil, nil)

	if _, err := service.History(context.Background(), 10, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero limit, got %v", err)
	}
	if _, err := service.History(context.Background(), 0, 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero player id, got %v", err)
	}
}

func TestPlayerHistoryService_PlacementStatsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := placementmock.NewSnapshotReader(t)
	reader.
		On("ReadSnapshot", mock.Anything).
		Return(twoEditionSnapshot(), nil).
		Twice()

	service := NewPlayerHistoryService(reader, nil, nil)

	stats, err := service.PlacementStats(ctx, 10)
	if err != nil {
		t.Fatalf("placement stats: %v", err)
	}
	if stats.FirstPlaceCount != 2 || stats.EditionsPlayedCount != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	_, err = service.PlacementStats(ctx, 40)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for player without participation, got %v", err)
	}
}

func TestPlayerHistoryService_GoalCountUsingMockery(t *testing.T) {
	t.Parallel()

	reader := placementmock.NewSnapshotReader(t)
	reader.
		On("ReadSnapshot", mock.Anything).
		Return(twoEditionSnapshot(), nil).
		Twice()

	service := NewPlayerHistoryService(reader, nil, nil)

	got, err := service.GoalCount(context.Background(), 30)
	if err != nil {
		t.Fatalf("goal count: %v", err)
	}
	if got.GoalCount != 1 || got.Player.LastName != "Costa" {
		t.Fatalf("unexpected goal count: %+v", got)
	}

	if _, err := service.GoalCount(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
