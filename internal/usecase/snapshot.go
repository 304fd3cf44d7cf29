package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/galero/internal/domain/placement"
	"github.com/riskibarqy/galero/internal/platform/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// ComputationRecorder receives the duration and result of every engine run.
type ComputationRecorder interface {
	ObserveComputation(operation string, duration time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveComputation(string, time.Duration, error) {}

func recorderOrNop(r ComputationRecorder) ComputationRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

// loadGraph reads a fresh snapshot and indexes it. Nothing is reused across
// calls so every computation sees current data.
func loadGraph(ctx context.Context, reader placement.SnapshotReader) (_ *placement.Graph, err error) {
	ctx, span := tracer.Start(ctx, "loadGraph")
	defer tracing.End(span, &err)

	snapshot, err := reader.ReadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read snapshot: %w", ErrDependencyUnavailable, err)
	}

	span.SetAttributes(
		attribute.Int("snapshot.editions", len(snapshot.Editions)),
		attribute.Int("snapshot.players", len(snapshot.Players)),
		attribute.Int("snapshot.matches", len(snapshot.Matches)),
		attribute.Int("snapshot.goals", len(snapshot.Goals)),
	)

	return placement.NewGraph(snapshot), nil
}

func validateLimit(limit int) error {
	if limit < 1 {
		return fmt.Errorf("%w: limit must be >= 1", ErrInvalidInput)
	}
	return nil
}

func validatePlayerID(playerID int64) error {
	if playerID <= 0 {
		return fmt.Errorf("%w: player id must be > 0", ErrInvalidInput)
	}
	return nil
}
